package mediatools

import (
	"context"

	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/simulate"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

func QRGenerator(d registry.Deps) runner.Spec {
	client := d.QRClient()
	return runner.Spec{
		ID:          "qr-generator",
		Title:       "QR Code Generator",
		Description: "Create custom QR codes for URLs, text, contact information, and more. Download as PNG image.",
		Steps: []shell.Step{
			{Title: "Enter Content", Description: "Type a URL, text, or contact details"},
			{Title: "Generate", Description: "Press Enter to fetch the QR code"},
			{Title: "Download", Description: "Press s to save it as a PNG image"},
		},
		Fields: []runner.Field{
			{Key: "text", Label: "Text or URL", Kind: runner.FieldText, Placeholder: "https://example.com", Primary: true},
		},
		Transform: transform.New("qr", func(ctx context.Context, in transform.Input) (transform.Result, error) {
			text := in.Get("text")
			data, err := client.Fetch(ctx, text)
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{
				Text:      client.URL(text),
				Artifacts: []transform.Artifact{{Filename: "qr-code.png", MIME: simulate.MIMEPNG, Data: data}},
			}, nil
		}),
		LogAttrs: func(res transform.Result) []any {
			if len(res.Artifacts) == 0 {
				return nil
			}
			return []any{"bytes", len(res.Artifacts[0].Data)}
		},
		Success: "QR code generated successfully",
		Failure: "Failed to generate QR code",
	}
}
