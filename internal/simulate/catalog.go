package simulate

import (
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/ryan-rushton/toolbelt/internal/output"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

// Media types used by the mock payloads.
const (
	MIMEText = "text/plain"
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMEGIF  = "image/gif"
	MIMEPDF  = "application/pdf"
	MIMEMP3  = "audio/mpeg"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func imageRule(typeMsg string) *FileRule {
	return &FileRule{
		Accept:         []string{"image/*"},
		MaxMB:          10,
		MissingMessage: "Please upload an image first",
		TypeMessage:    typeMsg,
	}
}

// TranscriptionText is the canned transcription for an audio file called name.
func TranscriptionText(name string) string {
	return fmt.Sprintf(`This is a simulated transcription of the audio file "%s".

In a real implementation, this would use a speech-to-text API like:
- OpenAI Whisper API
- Google Cloud Speech-to-Text
- AWS Transcribe
- Azure Speech Services

The transcription would contain the actual spoken words from your audio file, with proper punctuation and formatting.

For now, this is a demonstration of how the tool would work. Upload your audio file and the transcription would appear here with timestamps and speaker identification if available.`, name)
}

// OCRText is the canned text recognition result.
const OCRText = `This is a simulated OCR (Optical Character Recognition) result.

In a real implementation, this would use an OCR API like:
- Google Cloud Vision API
- AWS Textract
- Azure Computer Vision
- Tesseract.js

The extracted text would contain all readable text from your image, including:
- Printed text
- Handwritten text (with varying accuracy)
- Text in different fonts and sizes
- Multi-column layouts

For best results:
- Use high-resolution images
- Ensure good lighting and contrast
- Avoid blurry or distorted text
- Keep text horizontal when possible`

func firstFile(in transform.Input) transform.File {
	f, _ := in.File()
	return f
}

// AudioToText pretends to transcribe speech.
func AudioToText() *Mock {
	return &Mock{
		ID: "audio-to-text",
		Rule: &FileRule{
			Accept:         []string{"audio/mpeg", "audio/wav", "audio/mp4", "audio/x-m4a"},
			MaxMB:          50,
			MissingMessage: "Please upload an audio file first",
			TypeMessage:    "Please upload a valid audio file (MP3, WAV, M4A)",
		},
		Delay:   2 * time.Second,
		Failure: "Failed to transcribe audio. Please try again.",
		Payload: func(in transform.Input) (transform.Result, error) {
			f := firstFile(in)
			text := TranscriptionText(f.Name)
			return transform.Result{
				Text:      text,
				Artifacts: []transform.Artifact{transform.TextArtifact(f.Base()+"_transcription.txt", text)},
			}, nil
		},
	}
}

// ImageToText pretends to run OCR.
func ImageToText() *Mock {
	return &Mock{
		ID:      "image-to-text",
		Rule:    imageRule("Please upload a valid image file"),
		Delay:   2 * time.Second,
		Failure: "Failed to extract text. Please try again.",
		Payload: func(transform.Input) (transform.Result, error) {
			return transform.Result{
				Text:      OCRText,
				Artifacts: []transform.Artifact{transform.TextArtifact("extracted-text.txt", OCRText)},
			}, nil
		},
	}
}

// BackgroundRemover hands the original image back, as a data URL, under a
// new name.
func BackgroundRemover() *Mock {
	return &Mock{
		ID:      "background-remover",
		Rule:    imageRule("Please select an image file"),
		Delay:   3 * time.Second,
		Failure: "Failed to remove background",
		Payload: func(in transform.Input) (transform.Result, error) {
			f := firstFile(in)
			return transform.Result{
				Text:      "Background removed successfully",
				Artifacts: []transform.Artifact{{Filename: "no-background.png", MIME: MIMEPNG, URL: output.DataURL(f.MIME, f.Data)}},
			}, nil
		},
	}
}

// HEICToJPG returns a placeholder JPEG.
func HEICToJPG() *Mock {
	return &Mock{
		ID: "heic-to-jpg",
		Rule: &FileRule{
			Patterns:       []string{"*.{heic,heif}"},
			MaxMB:          20,
			MissingMessage: "Please upload a HEIC file first",
			TypeMessage:    "Please upload a valid HEIC/HEIF file",
		},
		Delay:   1500 * time.Millisecond,
		Failure: "Failed to convert HEIC file. Please try again.",
		Payload: func(transform.Input) (transform.Result, error) {
			data, err := PlaceholderJPEG(640, 480, "Converted JPG")
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{
				Text:      "HEIC converted to JPG",
				Artifacts: []transform.Artifact{{Filename: "converted-image.jpg", MIME: MIMEJPEG, Data: data}},
			}, nil
		},
	}
}

// PDFToImage returns two placeholder page images.
func PDFToImage() *Mock {
	return &Mock{
		ID: "pdf-to-image",
		Rule: &FileRule{
			Accept:         []string{MIMEPDF},
			MaxMB:          10,
			MissingMessage: "Please upload a PDF file first",
			TypeMessage:    "Please upload a valid PDF file",
			SizeMessage:    "Please upload a PDF smaller than 10MB",
		},
		Delay:   2 * time.Second,
		Failure: "Failed to convert PDF. Please try again.",
		Payload: func(transform.Input) (transform.Result, error) {
			var res transform.Result
			for i := 1; i <= 2; i++ {
				data, err := PlaceholderPNG(595, 842, fmt.Sprintf("Page %d", i))
				if err != nil {
					return transform.Result{}, err
				}
				res.Artifacts = append(res.Artifacts, transform.Artifact{
					Filename: fmt.Sprintf("page-%d.png", i),
					MIME:     MIMEPNG,
					Data:     data,
				})
			}
			res.Text = fmt.Sprintf("PDF converted to %d images successfully", len(res.Artifacts))
			return res, nil
		},
	}
}

// PDFToWord returns a stand-in Word document.
func PDFToWord() *Mock {
	return &Mock{
		ID: "pdf-to-word",
		Rule: &FileRule{
			Patterns:       []string{"*.pdf"},
			MaxMB:          10,
			MissingMessage: "Please upload a PDF file first",
			TypeMessage:    "Please upload a valid PDF file",
		},
		Delay:   2 * time.Second,
		Failure: "Failed to convert PDF. Please try again.",
		Payload: func(in transform.Input) (transform.Result, error) {
			name := firstFile(in).Name
			out := "converted.docx"
			if name != "" {
				out = strings.Replace(name, ".pdf", ".docx", 1)
			}
			return transform.Result{
				Text:      "PDF converted to Word",
				Artifacts: []transform.Artifact{{Filename: out, MIME: MIMEDOCX, Data: []byte("Converted Word content")}},
			}, nil
		},
	}
}

var wordExt = regexp.MustCompile(`\.(doc|docx)$`)

// WordToPDF returns a stand-in PDF.
func WordToPDF() *Mock {
	return &Mock{
		ID: "word-to-pdf",
		Rule: &FileRule{
			Patterns:       []string{"*.{doc,docx}"},
			MaxMB:          10,
			MissingMessage: "Please upload a Word file first",
			TypeMessage:    "Please upload a valid Word file",
		},
		Delay:   2 * time.Second,
		Failure: "Failed to convert Word file. Please try again.",
		Payload: func(in transform.Input) (transform.Result, error) {
			name := firstFile(in).Name
			out := "converted.pdf"
			if name != "" {
				out = wordExt.ReplaceAllString(name, ".pdf")
			}
			return transform.Result{
				Text:      "Word document converted to PDF",
				Artifacts: []transform.Artifact{{Filename: out, MIME: MIMEPDF, Data: []byte("PDF content")}},
			}, nil
		},
	}
}

// VideoToMP3 steps through eleven progress ticks and returns stand-in audio.
func VideoToMP3() *Mock {
	return &Mock{
		ID: "video-to-mp3",
		Rule: &FileRule{
			Accept:         []string{"video/*"},
			MaxMB:          10,
			MissingMessage: "Please upload a video file first",
			TypeMessage:    "Please upload a valid video file",
		},
		Steps:     11,
		StepDelay: 200 * time.Millisecond,
		Failure:   "Failed to extract audio. Please try again.",
		Payload: func(in transform.Input) (transform.Result, error) {
			out := "audio.mp3"
			if f := firstFile(in); f.Name != "" {
				out = f.Base() + ".mp3"
			}
			return transform.Result{
				Text:      "Audio extracted successfully",
				Artifacts: []transform.Artifact{{Filename: out, MIME: MIMEMP3, Data: []byte("MP3 audio data")}},
			}, nil
		},
	}
}

// GIF frame delay bounds in milliseconds.
const (
	MinFrameDelay     = 100
	MaxFrameDelay     = 2000
	DefaultFrameDelay = 500
)

// GIFMaker returns a placeholder animation with one frame per upload.
func GIFMaker() *Mock {
	return &Mock{
		ID: "gif-maker",
		Rule: &FileRule{
			Accept:         []string{"image/*"},
			MaxMB:          5,
			MinFiles:       2,
			MissingMessage: "Please upload at least 2 images",
			TypeMessage:    "Please upload valid image files",
			CountMessage:   "Please upload at least 2 images",
		},
		Delay:   2 * time.Second,
		Failure: "Failed to create GIF. Please try again.",
		Payload: func(in transform.Input) (transform.Result, error) {
			delay := max(MinFrameDelay, min(in.Int("delay", DefaultFrameDelay), MaxFrameDelay))
			data, err := PlaceholderGIF(320, 240, len(in.Files), delay)
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{
				Text:      fmt.Sprintf("GIF created from %d images (%dms per frame)", len(in.Files), delay),
				Artifacts: []transform.Artifact{{Filename: "animated.gif", MIME: MIMEGIF, Data: data}},
			}, nil
		},
	}
}

// ArchiveEntries is the fixed listing every archive "contains".
var ArchiveEntries = []transform.Item{
	{Name: "document.pdf", Size: 245000, MIME: "application/pdf"},
	{Name: "image.jpg", Size: 156000, MIME: "image/jpeg"},
	{Name: "data.json", Size: 12000, MIME: "application/json"},
	{Name: "readme.txt", Size: 3400, MIME: "text/plain"},
	{Name: "styles.css", Size: 8900, MIME: "text/css"},
}

// ZipExtractor lists ArchiveEntries whatever the archive holds.
func ZipExtractor() *Mock {
	return &Mock{
		ID: "zip-extractor",
		Rule: &FileRule{
			Accept:         []string{"application/zip", "application/x-zip-compressed", "application/x-rar-compressed"},
			Patterns:       []string{"*.{zip,rar}"},
			MaxMB:          100,
			MissingMessage: "Please upload an archive first",
			TypeMessage:    "Please upload a valid ZIP or RAR file",
		},
		Delay:   1500 * time.Millisecond,
		Failure: "Failed to extract archive. Please try again.",
		Payload: func(transform.Input) (transform.Result, error) {
			return transform.Result{
				Text:  fmt.Sprintf("Extracted %d files", len(ArchiveEntries)),
				Items: append([]transform.Item(nil), ArchiveEntries...),
			}, nil
		},
	}
}

// placeholderPDF is a minimal one-page document.
const placeholderPDF = "%PDF-1.4\n1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj\n" +
	"2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj\n" +
	"3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] >> endobj\n" +
	"trailer << /Root 1 0 R >>\n%%EOF\n"

// ImageToPDF returns a placeholder PDF.
func ImageToPDF() *Mock {
	return &Mock{
		ID: "image-to-pdf",
		Rule: &FileRule{
			Accept:         []string{"image/*"},
			MaxMB:          10,
			MissingMessage: "Please select at least one image",
			TypeMessage:    "Please select only image files",
		},
		Delay:   2 * time.Second,
		Failure: "Failed to generate PDF",
		Payload: func(in transform.Input) (transform.Result, error) {
			return transform.Result{
				Text:      fmt.Sprintf("PDF generated successfully from %d images", len(in.Files)),
				Artifacts: []transform.Artifact{{Filename: "images.pdf", MIME: MIMEPDF, Data: []byte(placeholderPDF)}},
			}, nil
		},
	}
}

// Compression quality bounds in percent.
const (
	MinQuality            = 10
	MaxQuality            = 100
	DefaultFileQuality    = 75
	DefaultImageQuality   = 80
	compressionMaxSavings = 0.5
)

// CompressedSize is the size the file compressor reports: quality q removes
// up to half the bytes.
func CompressedSize(size int64, quality int) int64 {
	ratio := 1 - float64(quality)/100*compressionMaxSavings
	return int64(math.Floor(float64(size) * ratio))
}

// Savings is the reduction from before to after in percent.
func Savings(before, after int64) float64 {
	if before <= 0 {
		return 0
	}
	return float64(before-after) / float64(before) * 100
}

// Compression is the file compressor's structured result.
type Compression struct {
	Original   int64
	Compressed int64
	Savings    float64
}

// FileCompressor reports a size computed from the quality setting.
func FileCompressor() *Mock {
	return &Mock{
		ID: "file-compressor",
		Rule: &FileRule{
			MaxMB:          100,
			MissingMessage: "Please upload a file first",
		},
		Delay:   1500 * time.Millisecond,
		Failure: "Failed to compress file. Please try again.",
		Payload: func(in transform.Input) (transform.Result, error) {
			f := firstFile(in)
			q := max(MinQuality, min(in.Int("quality", DefaultFileQuality), MaxQuality))
			c := Compression{Original: f.Size, Compressed: CompressedSize(f.Size, q)}
			c.Savings = Savings(c.Original, c.Compressed)
			return transform.Result{
				Text: fmt.Sprintf("Compressed %s from %s to %s (%.1f%% smaller)",
					f.Name, transform.FormatSize(c.Original), transform.FormatSize(c.Compressed), c.Savings),
				Sections: []transform.Section{
					{Title: "Original Size", Body: transform.FormatSize(c.Original)},
					{Title: "Compressed Size", Body: transform.FormatSize(c.Compressed)},
				},
				Data: c,
			}, nil
		},
	}
}

// BarcodeGenerator draws a decorative barcode captioned with the input text.
// rng nil means a randomly seeded source.
func BarcodeGenerator(rng *rand.Rand) *Mock {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Mock{
		ID:      "barcode-generator",
		Failure: "Failed to generate barcode. Please try again.",
		Payload: func(in transform.Input) (transform.Result, error) {
			text := in.Get("text")
			if text == "" {
				return transform.Result{}, toolerr.Validation("Please enter text for the barcode")
			}
			data, err := BarcodePNG(text, rng)
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{
				Text:      text,
				Artifacts: []transform.Artifact{{Filename: "barcode.png", MIME: MIMEPNG, Data: data}},
			}, nil
		},
	}
}
