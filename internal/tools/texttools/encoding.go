package texttools

import (
	"context"
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/codec"
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

const (
	modeEncode = "encode"
	modeDecode = "decode"
)

func Base64(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "base64-encoder",
		Title:       "Base64 Encoder/Decoder",
		Description: "Encode text to Base64 or decode Base64 strings back to plain text.",
		Steps: []shell.Step{
			{Title: "Choose Mode", Description: "Select 'Encode' to convert text to Base64, or 'Decode' to convert Base64 back to text"},
			{Title: "Enter Text", Description: "Paste or type your text in the input area"},
			{Title: "Convert", Description: "Press Ctrl+G to encode or decode"},
			{Title: "Copy Result", Description: "Press c to copy the result to your clipboard"},
		},
		Fields: []runner.Field{
			{Key: "mode", Label: "Mode", Kind: runner.FieldChoice, Choices: []string{modeEncode, modeDecode}},
			{Key: "text", Label: "Input", Kind: runner.FieldTextArea, Placeholder: "Enter text to encode...", Primary: true},
		},
		Validate: func(in transform.Input) error {
			if strings.TrimSpace(in.Get("text")) != "" {
				return nil
			}
			if in.Get("mode") == modeDecode {
				return toolerr.Validation("Please enter Base64 string to decode")
			}
			return toolerr.Validation("Please enter text to encode")
		},
		Transform: transform.New("base64", func(_ context.Context, in transform.Input) (transform.Result, error) {
			text := in.Get("text")
			if in.Get("mode") == modeDecode {
				out, err := codec.DecodeBase64(text)
				if err != nil {
					return transform.Result{}, err
				}
				return transform.Result{Text: out, Artifacts: []transform.Artifact{transform.TextArtifact("decoded.txt", out)}}, nil
			}
			out := codec.EncodeBase64(text)
			return transform.Result{Text: out, Artifacts: []transform.Artifact{transform.TextArtifact("encoded.txt", out)}}, nil
		}),
		Success: "Conversion complete",
		Failure: "Failed to encode text",
	}
}

func HashGenerator(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "hash-generator",
		Title:       "Hash Generator",
		Description: "Generate cryptographic hashes (MD5, SHA-1, SHA-256) for text and data verification.",
		Steps: []shell.Step{
			{Title: "Enter Text", Description: "Type or paste the text you want to hash"},
			{Title: "Generate", Description: "Press Ctrl+G to generate the hashes"},
			{Title: "Compare Algorithms", Description: "SHA-256 and SHA-1 are shown together; MD5 is not available"},
			{Title: "Copy Hash", Description: "Press c to copy the SHA-256 hash or s to save both"},
		},
		Fields: []runner.Field{
			{Key: "text", Label: "Input Text", Kind: runner.FieldTextArea, Placeholder: "Enter text to hash...", Primary: true},
		},
		Validate: func(in transform.Input) error {
			if in.Get("text") == "" {
				return toolerr.Validation("Please enter text to hash")
			}
			return nil
		},
		Transform: transform.New("hash", func(_ context.Context, in transform.Input) (transform.Result, error) {
			d := codec.Hash(in.Get("text"))
			return transform.Result{
				Sections: []transform.Section{
					{Title: "SHA-256 Hash", Body: d.SHA256},
					{Title: "SHA-1 Hash", Body: d.SHA1},
					{Title: "MD5 Hash", Body: d.MD5},
				},
				Artifacts: []transform.Artifact{
					transform.TextArtifact("sha256-hash.txt", d.SHA256),
					transform.TextArtifact("sha1-hash.txt", d.SHA1),
				},
				Data: d,
			}, nil
		}),
		Success: "Hashes generated successfully",
		Failure: "Failed to generate hashes",
	}
}
