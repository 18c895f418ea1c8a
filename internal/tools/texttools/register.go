// Package texttools registers the Text & Developer tools.
package texttools

import "github.com/ryan-rushton/toolbelt/internal/registry"

func init() {
	for _, t := range Tools() {
		registry.Register(t)
	}
}

// Tools lists the descriptors this package registers.
func Tools() []registry.Tool {
	return []registry.Tool{
		{
			ID:          "base64-encoder",
			Name:        "Base64 Encoder/Decoder",
			Description: "Encode text to Base64 or decode Base64 strings back to plain text.",
			Category:    registry.Text,
			Spec:        Base64,
		},
		{
			ID:          "case-converter",
			Name:        "Text Case Converter",
			Description: "Convert text to different cases",
			Category:    registry.Text,
			Spec:        CaseConverter,
		},
		{
			ID:          "code-beautifier",
			Name:        "Code Beautifier",
			Description: "Format and beautify HTML, CSS, JavaScript, and JSON code. Make your code more readable and organized.",
			Category:    registry.Text,
			Spec:        CodeBeautifier,
		},
		{
			ID:          "csv-to-json",
			Name:        "CSV to JSON Converter",
			Description: "Convert CSV data to JSON format instantly. Perfect for developers working with data transformation.",
			Category:    registry.Text,
			Spec:        CSVToJSON,
		},
		{
			ID:          "hash-generator",
			Name:        "Hash Generator",
			Description: "Generate cryptographic hashes (MD5, SHA-1, SHA-256) for text and data verification.",
			Category:    registry.Text,
			Spec:        HashGenerator,
		},
		{
			ID:          "json-formatter",
			Name:        "JSON Formatter & Validator",
			Description: "Format, validate, and minify JSON data. Paste your JSON to beautify or compress it.",
			Category:    registry.Text,
			Spec:        JSONFormatter,
		},
		{
			ID:          "line-break-remover",
			Name:        "Line Break Remover",
			Description: "Remove unwanted line breaks from text",
			Category:    registry.Text,
			Spec:        LineBreakRemover,
		},
		{
			ID:          "lorem-ipsum",
			Name:        "Lorem Ipsum Generator",
			Description: "Generate placeholder text for your designs and mockups. Choose paragraphs, sentences, or words.",
			Category:    registry.Text,
			Spec:        LoremIpsum,
		},
		{
			ID:          "password-generator",
			Name:        "Password Generator",
			Description: "Generate strong, secure, and random passwords. Customize length and character types for your needs.",
			Category:    registry.Text,
			Spec:        PasswordGenerator,
		},
		{
			ID:          "text-diff",
			Name:        "Text Diff Checker",
			Description: "Compare two texts and highlight the differences. Perfect for reviewing changes and finding modifications.",
			Category:    registry.Text,
			Spec:        TextDiff,
		},
		{
			ID:          "uuid-generator",
			Name:        "UUID Generator",
			Description: "Generate unique identifiers (UUIDs/GUIDs) for databases, APIs, and applications. Version 4 (random) UUIDs.",
			Category:    registry.Text,
			Spec:        UUIDGenerator,
		},
		{
			ID:          "word-counter",
			Name:        "Word & Character Counter",
			Description: "Count words, characters, and analyze your text",
			Category:    registry.Text,
			Spec:        WordCounter,
		},
	}
}
