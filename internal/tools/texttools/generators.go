package texttools

import (
	"context"
	"strconv"
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/generate"
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/styles"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

func UUIDGenerator(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "uuid-generator",
		Title:       "UUID Generator",
		Description: "Generate unique identifiers (UUIDs/GUIDs) for databases, APIs, and applications. Version 4 (random) UUIDs.",
		Steps: []shell.Step{
			{Title: "Set Count", Description: "Enter how many UUIDs you want to generate (1-50)"},
			{Title: "Generate", Description: "Press Enter or Ctrl+G to generate"},
			{Title: "Copy All", Description: "Press c to copy every UUID at once"},
			{Title: "Download", Description: "Press s to save them as uuids.txt"},
		},
		Fields: []runner.Field{
			{
				Key: "count", Label: "Number of UUIDs", Kind: runner.FieldNumber,
				Default: strconv.Itoa(generate.DefaultUUIDs), Min: generate.MinUUIDs, Max: generate.MaxUUIDs,
			},
		},
		Transform: transform.New("uuid-v4", func(_ context.Context, in transform.Input) (transform.Result, error) {
			ids, err := generate.UUIDs(generate.ParseCount(in.Get("count"), generate.DefaultUUIDs))
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{Text: strings.Join(ids, "\n"), Data: ids}, nil
		}),
		LogAttrs: func(res transform.Result) []any {
			ids, _ := res.Data.([]string)
			return []any{"count", len(ids)}
		},
		DownloadName: "uuids.txt",
		Success:      "UUIDs generated successfully",
	}
}

// Password is the password generator's structured result.
type Password struct {
	Value    string
	Strength string
}

func strengthStyle(s string) string {
	switch s {
	case generate.Weak:
		return styles.Err.Render(s)
	case generate.Medium:
		return styles.Notice.Render(s)
	default:
		return styles.Success.Render(s)
	}
}

func PasswordGenerator(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "password-generator",
		Title:       "Password Generator",
		Description: "Generate strong, secure, and random passwords. Customize length and character types for your needs.",
		Steps: shell.TextSteps(
			"Set the password length (8-64 characters)",
			"Select which character types to include (uppercase, lowercase, numbers, symbols)",
			"Press Ctrl+G to generate",
			"Copy the password and check its strength indicator",
		),
		Fields: []runner.Field{
			{
				Key: "length", Label: "Password Length", Kind: runner.FieldNumber,
				Default: strconv.Itoa(generate.DefaultPasswordLength), Min: generate.MinPasswordLength, Max: generate.MaxPasswordLength,
			},
			{Key: "uppercase", Label: "Uppercase (A-Z)", Kind: runner.FieldToggle, Default: "true"},
			{Key: "lowercase", Label: "Lowercase (a-z)", Kind: runner.FieldToggle, Default: "true"},
			{Key: "numbers", Label: "Numbers (0-9)", Kind: runner.FieldToggle, Default: "true"},
			{Key: "symbols", Label: "Symbols (!@#$...)", Kind: runner.FieldToggle, Default: "true"},
		},
		Transform: transform.New("password", func(_ context.Context, in transform.Input) (transform.Result, error) {
			pw, err := generate.Password(generate.PasswordOptions{
				Length:    in.Int("length", generate.DefaultPasswordLength),
				Uppercase: in.Bool("uppercase"),
				Lowercase: in.Bool("lowercase"),
				Digits:    in.Bool("numbers"),
				Symbols:   in.Bool("symbols"),
			})
			if err != nil {
				return transform.Result{}, err
			}
			p := Password{Value: pw, Strength: generate.Strength(pw)}
			return transform.Result{
				Text:     pw,
				Sections: []transform.Section{{Title: "Password Strength", Body: p.Strength}},
				Data:     p,
			}, nil
		}),
		Render: func(res transform.Result) string {
			p, ok := res.Data.(Password)
			if !ok {
				return runner.RenderResult(res)
			}
			return styles.Panel.Render(p.Value) + "\n\n" +
				styles.Label.Render("Password Strength: ") + strengthStyle(p.Strength)
		},
		LogAttrs: func(res transform.Result) []any {
			p, _ := res.Data.(Password)
			return []any{"length", len([]rune(p.Value)), "strength", p.Strength}
		},
		Success: "Password generated successfully",
	}
}

const (
	defaultLoremCount = 5
	maxLoremCount     = 100
)

func LoremIpsum(d registry.Deps) runner.Spec {
	lorem := generate.NewLorem(d.Rand)
	return runner.Spec{
		ID:          "lorem-ipsum",
		Title:       "Lorem Ipsum Generator",
		Description: "Generate placeholder text for your designs and mockups. Choose paragraphs, sentences, or words.",
		Steps: []shell.Step{
			{Title: "Choose Type", Description: "Select paragraphs, sentences, or words"},
			{Title: "Set Count", Description: "Enter how many units you want to generate"},
			{Title: "Generate", Description: "Press Ctrl+G to generate"},
			{Title: "Copy Text", Description: "Press c to copy the generated text"},
		},
		Fields: []runner.Field{
			{
				Key: "type", Label: "Type", Kind: runner.FieldChoice,
				Choices: []string{generate.UnitParagraphs, generate.UnitSentences, generate.UnitWords},
			},
			{Key: "count", Label: "Count", Kind: runner.FieldNumber, Default: strconv.Itoa(defaultLoremCount), Min: 1, Max: maxLoremCount},
		},
		Transform: transform.New("lorem-ipsum", func(_ context.Context, in transform.Input) (transform.Result, error) {
			n := min(generate.ParseCount(in.Get("count"), defaultLoremCount), maxLoremCount)
			return transform.Result{Text: lorem.Generate(in.Get("type"), n)}, nil
		}),
		DownloadName: "lorem-ipsum.txt",
		Success:      "Lorem ipsum generated successfully",
	}
}
