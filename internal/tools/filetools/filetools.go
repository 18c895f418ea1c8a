// Package filetools registers the File Conversion tools. Every one of them
// is simulated: the upload is checked, the tool waits, and a placeholder
// comes back.
package filetools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/simulate"
	"github.com/ryan-rushton/toolbelt/internal/styles"
	"github.com/ryan-rushton/toolbelt/internal/transform"
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
			ID:          "pdf-to-image",
			Name:        "PDF to Image Converter",
			Description: "Convert your PDF pages into high-quality images. Each page will be converted to a separate image file.",
			Category:    registry.File,
			Spec:        PDFToImage,
		},
		{
			ID:          "pdf-to-word",
			Name:        "PDF to Word Converter",
			Description: "Convert PDF documents to editable Word files",
			Category:    registry.File,
			Spec:        PDFToWord,
		},
		{
			ID:          "word-to-pdf",
			Name:        "Word to PDF Converter",
			Description: "Convert Word documents to PDF format",
			Category:    registry.File,
			Spec:        WordToPDF,
		},
		{
			ID:          "image-to-pdf",
			Name:        "Image to PDF Converter",
			Description: "Combine multiple images into a single PDF document. Upload images in any order and rearrange them as needed.",
			Category:    registry.File,
			Spec:        ImageToPDF,
		},
		{
			ID:          "heic-to-jpg",
			Name:        "HEIC to JPG Converter",
			Description: "Convert HEIC images to JPG format",
			Category:    registry.File,
			Spec:        HEICToJPG,
		},
		{
			ID:          "file-compressor",
			Name:        "File Compressor",
			Description: "Compress PDF, images, and videos",
			Category:    registry.File,
			Spec:        FileCompressor,
		},
		{
			ID:          "zip-extractor",
			Name:        "ZIP Extractor",
			Description: "Extract files from ZIP and RAR archives",
			Category:    registry.File,
			Spec:        ZipExtractor,
		},
	}
}

// mockSpec fills in the parts every simulated file tool shares: a file
// field described by the mock's rule and the mock as the transform.
func mockSpec(d registry.Deps, m *simulate.Mock, kind runner.FieldKind, s runner.Spec) runner.Spec {
	m = d.Mock(m)
	label := "File"
	if kind == runner.FieldFiles {
		label = "Files"
	}
	placeholder := "path/to/file"
	if m.Rule != nil {
		placeholder = m.Rule.Describe()
	}
	file := runner.Field{Key: "file", Label: label, Kind: kind, Placeholder: placeholder}
	s.Fields = append([]runner.Field{file}, s.Fields...)
	s.Transform = m
	s.Failure = m.Failure
	return s
}

func PDFToImage(d registry.Deps) runner.Spec {
	return mockSpec(d, simulate.PDFToImage(), runner.FieldFile, runner.Spec{
		ID:          "pdf-to-image",
		Title:       "PDF to Image Converter",
		Description: "Convert your PDF pages into high-quality images. Each page will be converted to a separate image file.",
		Steps: shell.TextSteps(
			"Enter the path of a PDF file on your computer",
			"Press Ctrl+G to start the conversion process",
			"Wait for the conversion to complete (each page becomes a separate image)",
			"Press s to save every page image",
		),
		Success: "PDF converted successfully",
	})
}

func PDFToWord(d registry.Deps) runner.Spec {
	return mockSpec(d, simulate.PDFToWord(), runner.FieldFile, runner.Spec{
		ID:          "pdf-to-word",
		Title:       "PDF to Word Converter",
		Description: "Convert PDF documents to editable Word files",
		Steps: []shell.Step{
			{Title: "Choose PDF", Description: "Enter the path of your PDF file"},
			{Title: "Convert", Description: "Press Ctrl+G and wait for processing"},
			{Title: "Download", Description: "Press s to save your converted Word document"},
		},
		Success: "PDF converted to Word",
	})
}

func WordToPDF(d registry.Deps) runner.Spec {
	return mockSpec(d, simulate.WordToPDF(), runner.FieldFile, runner.Spec{
		ID:          "word-to-pdf",
		Title:       "Word to PDF Converter",
		Description: "Convert Word documents to PDF format",
		Steps: []shell.Step{
			{Title: "Choose Word File", Description: "Select your .doc or .docx file"},
			{Title: "Convert", Description: "Press Ctrl+G to convert"},
			{Title: "Download", Description: "Press s to save your PDF document"},
		},
		Success: "Word document converted to PDF",
	})
}

func ImageToPDF(d registry.Deps) runner.Spec {
	return mockSpec(d, simulate.ImageToPDF(), runner.FieldFiles, runner.Spec{
		ID:          "image-to-pdf",
		Title:       "Image to PDF Converter",
		Description: "Combine multiple images into a single PDF document. Upload images in any order and rearrange them as needed.",
		Success:     "PDF generated successfully",
	})
}

func HEICToJPG(d registry.Deps) runner.Spec {
	return mockSpec(d, simulate.HEICToJPG(), runner.FieldFile, runner.Spec{
		ID:          "heic-to-jpg",
		Title:       "HEIC to JPG Converter",
		Description: "Convert HEIC images to JPG format",
		Steps: []shell.Step{
			{Title: "Choose HEIC", Description: "Select HEIC/HEIF image files from iPhone"},
			{Title: "Convert", Description: "Press Ctrl+G to convert to JPG"},
			{Title: "Download", Description: "Press s to save your converted JPG image"},
		},
		Success: "HEIC converted to JPG",
	})
}

func renderCompression(res transform.Result) string {
	c, ok := res.Data.(simulate.Compression)
	if !ok {
		return runner.RenderResult(res)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", styles.Label.Render("Original Size:  "), transform.FormatSize(c.Original))
	fmt.Fprintf(&b, "%s %s\n", styles.Label.Render("Compressed Size:"), styles.Success.Render(transform.FormatSize(c.Compressed)))
	fmt.Fprintf(&b, "%s %s", styles.Label.Render("Saved:          "), styles.Success.Render(fmt.Sprintf("%.1f%%", c.Savings)))
	return b.String()
}

func FileCompressor(d registry.Deps) runner.Spec {
	return mockSpec(d, simulate.FileCompressor(), runner.FieldFile, runner.Spec{
		ID:          "file-compressor",
		Title:       "File Compressor",
		Description: "Compress PDF, images, and videos",
		Steps: []shell.Step{
			{Title: "Choose File", Description: "Select a PDF, image, or video file"},
			{Title: "Adjust Quality", Description: "Choose compression level (higher = better quality)"},
			{Title: "Compress", Description: "Press Ctrl+G to compress and see the new size"},
		},
		Fields: []runner.Field{
			{
				Key: "quality", Label: "Quality (%)", Kind: runner.FieldNumber,
				Default: strconv.Itoa(simulate.DefaultFileQuality), Min: simulate.MinQuality, Max: simulate.MaxQuality,
			},
		},
		Render: renderCompression,
		LogAttrs: func(res transform.Result) []any {
			c, _ := res.Data.(simulate.Compression)
			return []any{"original", c.Original, "compressed", c.Compressed}
		},
		DownloadName: "compression-report.txt",
		Success:      "File compressed successfully",
	})
}

func ZipExtractor(d registry.Deps) runner.Spec {
	return mockSpec(d, simulate.ZipExtractor(), runner.FieldFile, runner.Spec{
		ID:          "zip-extractor",
		Title:       "ZIP Extractor",
		Description: "Extract files from ZIP and RAR archives",
		Steps: []shell.Step{
			{Title: "Choose Archive", Description: "Select a ZIP or RAR file to extract"},
			{Title: "Extract", Description: "Press Ctrl+G to unpack the archive"},
			{Title: "Review", Description: "Browse the extracted file list"},
		},
		Success: "Archive extracted successfully",
	})
}
