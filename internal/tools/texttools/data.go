package texttools

import (
	"context"

	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/structured"
	"github.com/ryan-rushton/toolbelt/internal/textops"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

const mimeJSON = "application/json"

func JSONFormatter(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "json-formatter",
		Title:       "JSON Formatter & Validator",
		Description: "Format, validate, and minify JSON data. Paste your JSON to beautify or compress it.",
		Steps: shell.TextSteps(
			"Paste your JSON data into the input text area",
			"Choose format, minify or validate",
			"Copy the formatted output or fix any validation errors shown",
			"Use Ctrl+G to format quickly",
		),
		Fields: []runner.Field{
			{Key: "json", Label: "Input JSON", Kind: runner.FieldTextArea, Placeholder: `{"name": "John", "age": 30}`, Primary: true},
			{
				Key: "mode", Label: "Action", Kind: runner.FieldChoice,
				Choices: []string{structured.ModeFormat, structured.ModeMinify, structured.ModeValidate},
			},
		},
		Transform: transform.New("json", func(_ context.Context, in transform.Input) (transform.Result, error) {
			out, err := structured.Apply(in.Get("mode"), in.Get("json"))
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{Text: out}, nil
		}),
		DownloadName: "formatted.json",
		DownloadMIME: mimeJSON,
		Success:      "JSON processed successfully",
	}
}

func CSVToJSON(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "csv-to-json",
		Title:       "CSV to JSON Converter",
		Description: "Convert CSV data to JSON format instantly. Perfect for developers working with data transformation.",
		Steps: []shell.Step{
			{Title: "Input CSV", Description: "Paste your CSV data or pipe a CSV file in"},
			{Title: "Choose Delimiter", Description: "Select comma, semicolon, tab or pipe as delimiter"},
			{Title: "Convert", Description: "Press Ctrl+G to generate JSON"},
			{Title: "Copy/Download", Description: "Copy to clipboard or save as a .json file"},
		},
		Fields: []runner.Field{
			{Key: "csv", Label: "CSV Input", Kind: runner.FieldTextArea, Placeholder: "name,age,city\nJohn,30,New York", Primary: true},
			{Key: "delimiter", Label: "Delimiter", Kind: runner.FieldChoice, Choices: structured.DelimiterNames},
		},
		Transform: transform.New("csv-to-json", func(_ context.Context, in transform.Input) (transform.Result, error) {
			out, err := structured.CSVToJSON(in.Get("csv"), structured.DelimiterFor(in.Get("delimiter")))
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{Text: out}, nil
		}),
		DownloadName: "converted.json",
		DownloadMIME: mimeJSON,
		Success:      "CSV converted to JSON successfully",
		Failure:      "Failed to convert CSV. Please check your data format.",
	}
}

func CodeBeautifier(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "code-beautifier",
		Title:       "Code Beautifier",
		Description: "Format and beautify HTML, CSS, JavaScript, and JSON code. Make your code more readable and organized.",
		Steps: []shell.Step{
			{Title: "Choose Language", Description: "Select the code language (JSON, HTML, CSS, JavaScript)"},
			{Title: "Paste Code", Description: "Paste your code in the input area"},
			{Title: "Beautify", Description: "Press Ctrl+G to format the code"},
			{Title: "Copy Result", Description: "Copy the formatted code to your clipboard"},
		},
		Fields: []runner.Field{
			{Key: "language", Label: "Language", Kind: runner.FieldChoice, Choices: textops.Languages},
			{Key: "code", Label: "Input Code", Kind: runner.FieldTextArea, Placeholder: "Paste your code here...", Primary: true},
		},
		Transform: transform.New("beautify", func(_ context.Context, in transform.Input) (transform.Result, error) {
			out, err := textops.Beautify(in.Get("language"), in.Get("code"))
			if err != nil {
				return transform.Result{}, err
			}
			return transform.Result{Text: out}, nil
		}),
		DownloadName: "beautified.txt",
		Success:      "Code formatted successfully",
		Failure:      "Failed to format code",
	}
}
