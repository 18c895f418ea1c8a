package mediatools

import (
	"strconv"

	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/simulate"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

func withMock(d registry.Deps, m *simulate.Mock, s runner.Spec) runner.Spec {
	s.Transform = d.Mock(m)
	s.Failure = m.Failure
	return s
}

func AudioToText(d registry.Deps) runner.Spec {
	m := simulate.AudioToText()
	return withMock(d, m, runner.Spec{
		ID:          "audio-to-text",
		Title:       "Audio to Text Converter",
		Description: "Convert speech to text transcription",
		Steps: []shell.Step{
			{Title: "Choose Audio", Description: "Select an audio file (MP3, WAV, M4A)"},
			{Title: "Process", Description: "Press Ctrl+G to convert speech to text"},
			{Title: "Review & Copy", Description: "Review the transcription and copy or download"},
		},
		Fields:  []runner.Field{fileField(runner.FieldFile, m.Rule)},
		Success: "Transcription complete",
	})
}

func VideoToMP3(d registry.Deps) runner.Spec {
	m := simulate.VideoToMP3()
	return withMock(d, m, runner.Spec{
		ID:          "video-to-mp3",
		Title:       "Video to MP3 Converter",
		Description: "Extract audio from video files",
		Steps: []shell.Step{
			{Title: "Choose Video", Description: "Select your video file (MP4, AVI, MOV, etc.)"},
			{Title: "Extract Audio", Description: "Press Ctrl+G to start conversion"},
			{Title: "Download MP3", Description: "Press s to save your extracted audio file"},
		},
		Fields:  []runner.Field{fileField(runner.FieldFile, m.Rule)},
		Success: "Audio extracted successfully",
	})
}

func ImageToText(d registry.Deps) runner.Spec {
	m := simulate.ImageToText()
	return withMock(d, m, runner.Spec{
		ID:          "image-to-text",
		Title:       "Image to Text (OCR)",
		Description: "Extract text from images using OCR",
		Steps: []shell.Step{
			{Title: "Choose Image", Description: "Select an image containing text"},
			{Title: "Extract Text", Description: "Press Ctrl+G to run OCR"},
			{Title: "Copy Result", Description: "Copy the extracted text to clipboard"},
		},
		Fields:  []runner.Field{fileField(runner.FieldFile, m.Rule)},
		Success: "Text extracted successfully",
	})
}

func BackgroundRemover(d registry.Deps) runner.Spec {
	m := simulate.BackgroundRemover()
	return withMock(d, m, runner.Spec{
		ID:          "background-remover",
		Title:       "Background Remover",
		Description: "Remove backgrounds from images automatically using AI. Perfect for product photos, portraits, and more.",
		Fields:      []runner.Field{fileField(runner.FieldFile, m.Rule)},
		Success:     "Background removed successfully",
	})
}

func GIFMaker(d registry.Deps) runner.Spec {
	m := simulate.GIFMaker()
	return withMock(d, m, runner.Spec{
		ID:          "gif-maker",
		Title:       "GIF Maker",
		Description: "Create animated GIFs from images",
		Steps: []shell.Step{
			{Title: "Choose Images", Description: "Select 2 or more images for your GIF"},
			{Title: "Adjust Settings", Description: "Set the frame delay in milliseconds"},
			{Title: "Create & Download", Description: "Generate and save your animated GIF"},
		},
		Fields: []runner.Field{
			fileField(runner.FieldFiles, m.Rule),
			{
				Key: "delay", Label: "Frame Delay (ms)", Kind: runner.FieldNumber,
				Default: strconv.Itoa(simulate.DefaultFrameDelay), Min: simulate.MinFrameDelay, Max: simulate.MaxFrameDelay,
			},
		},
		Success: "GIF created successfully",
	})
}

// maxBarcodeLength is the longest text the barcode form accepts.
const maxBarcodeLength = 50

func BarcodeGenerator(d registry.Deps) runner.Spec {
	return withMock(d, simulate.BarcodeGenerator(d.Rand), runner.Spec{
		ID:          "barcode-generator",
		Title:       "Barcode Generator",
		Description: "Generate barcodes for products and inventory",
		Steps: []shell.Step{
			{Title: "Enter Data", Description: "Type the text or number for your barcode"},
			{Title: "Generate", Description: "Press Enter to create it"},
			{Title: "Download", Description: "Press s to save your barcode as an image"},
		},
		Fields: []runner.Field{
			{Key: "text", Label: "Barcode Data", Kind: runner.FieldText, Placeholder: "Enter text or numbers...", Primary: true},
		},
		Validate: func(in transform.Input) error {
			if len([]rune(in.Get("text"))) > maxBarcodeLength {
				return toolerr.Validationf("Barcode data must be at most %d characters", maxBarcodeLength)
			}
			return nil
		},
		Success: "Barcode generated successfully",
	})
}
