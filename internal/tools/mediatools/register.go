// Package mediatools registers the Image & Media tools: the simulated audio
// and video converters, the real image tools, and the QR and barcode
// generators.
package mediatools

import (
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/simulate"
)

func init() {
	for _, t := range Tools() {
		registry.Register(t)
	}
}

// Tools lists the descriptors this package registers.
func Tools() []registry.Tool {
	return []registry.Tool{
		{
			ID:          "audio-to-text",
			Name:        "Audio to Text Converter",
			Description: "Convert speech to text transcription",
			Category:    registry.Image,
			Spec:        AudioToText,
		},
		{
			ID:          "video-to-mp3",
			Name:        "Video to MP3 Converter",
			Description: "Extract audio from video files",
			Category:    registry.Image,
			Spec:        VideoToMP3,
		},
		{
			ID:          "image-to-text",
			Name:        "Image to Text (OCR)",
			Description: "Extract text from images using OCR",
			Category:    registry.Image,
			Spec:        ImageToText,
		},
		{
			ID:          "background-remover",
			Name:        "Background Remover",
			Description: "Remove backgrounds from images automatically using AI. Perfect for product photos, portraits, and more.",
			Category:    registry.Image,
			Spec:        BackgroundRemover,
		},
		{
			ID:          "gif-maker",
			Name:        "GIF Maker",
			Description: "Create animated GIFs from images",
			Category:    registry.Image,
			Spec:        GIFMaker,
		},
		{
			ID:          "barcode-generator",
			Name:        "Barcode Generator",
			Description: "Generate barcodes for products and inventory",
			Category:    registry.Image,
			Spec:        BarcodeGenerator,
		},
		{
			ID:          "qr-generator",
			Name:        "QR Code Generator",
			Description: "Create custom QR codes for URLs, text, contact information, and more. Download as PNG image.",
			Category:    registry.Image,
			Spec:        QRGenerator,
		},
		{
			ID:          "image-compressor",
			Name:        "Image Compressor",
			Description: "Reduce image file size without losing quality. Adjust compression level to balance quality and file size.",
			Category:    registry.Image,
			Spec:        ImageCompressor,
		},
		{
			ID:          "image-resizer",
			Name:        "Image Resizer",
			Description: "Resize images to custom dimensions",
			Category:    registry.Image,
			Spec:        ImageResizer,
		},
		{
			ID:          "image-cropper",
			Name:        "Image Cropper & Resizer",
			Description: "Crop and resize images to any dimension. Perfect for social media posts, avatars, and thumbnails.",
			Category:    registry.Image,
			Spec:        ImageCropper,
		},
		{
			ID:          "color-picker",
			Name:        "Color Picker & Palette Generator",
			Description: "Extract accurate dominant colors from images and generate color palettes. Perfect for design inspiration.",
			Category:    registry.Image,
			Spec:        ColorPicker,
		},
	}
}

func fileField(kind runner.FieldKind, rule *simulate.FileRule) runner.Field {
	label := "File"
	if kind == runner.FieldFiles {
		label = "Files"
	}
	return runner.Field{Key: "file", Label: label, Kind: kind, Placeholder: rule.Describe()}
}
