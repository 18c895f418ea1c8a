package texttools

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/styles"
	"github.com/ryan-rushton/toolbelt/internal/textops"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

func CaseConverter(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "case-converter",
		Title:       "Text Case Converter",
		Description: "Convert text to different cases",
		Steps: []shell.Step{
			{Title: "Enter Text", Description: "Type or paste your text in the input area"},
			{Title: "Choose Case", Description: "Pick the case with ←/→ and press Ctrl+G"},
			{Title: "Copy Result", Description: "Copy the converted text to your clipboard"},
		},
		Fields: []runner.Field{
			{Key: "text", Label: "Input Text", Kind: runner.FieldTextArea, Placeholder: "Enter your text here...", Primary: true},
			{Key: "case", Label: "Case", Kind: runner.FieldChoice, Choices: textops.CaseNames},
		},
		Validate: func(in transform.Input) error {
			if in.Get("text") == "" {
				return toolerr.Validation("Please enter text to convert")
			}
			return nil
		},
		Transform: transform.New("case", func(_ context.Context, in transform.Input) (transform.Result, error) {
			return transform.Result{Text: textops.ConvertCase(in.Get("case"), in.Get("text"))}, nil
		}),
		DownloadName: "converted.txt",
	}
}

func LineBreakRemover(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "line-break-remover",
		Title:       "Line Break Remover",
		Description: "Remove unwanted line breaks from text",
		Steps: []shell.Step{
			{Title: "Paste Text", Description: "Paste text with unwanted line breaks"},
			{Title: "Remove Breaks", Description: "Press Ctrl+G to remove line breaks"},
			{Title: "Copy Result", Description: "Copy the cleaned text"},
		},
		Fields: []runner.Field{
			{Key: "text", Label: "Input Text", Kind: runner.FieldTextArea, Placeholder: "Paste your text with line breaks here...", Primary: true},
		},
		Transform: transform.New("line-breaks", func(_ context.Context, in transform.Input) (transform.Result, error) {
			return transform.Result{Text: textops.RemoveLineBreaks(in.Get("text"))}, nil
		}),
		DownloadName: "cleaned.txt",
	}
}

func renderStats(res transform.Result) string {
	st, ok := res.Data.(textops.Stats)
	if !ok {
		return runner.RenderResult(res)
	}
	cell := func(label string, n int) string {
		return styles.Panel.Render(fmt.Sprintf("%s\n%s", styles.Title.Render(fmt.Sprint(n)), styles.Muted.Render(label)))
	}
	row1 := []string{cell("Words", st.Words), cell("Characters", st.Characters), cell("No Spaces", st.CharactersNoSpaces)}
	row2 := []string{cell("Sentences", st.Sentences), cell("Paragraphs", st.Paragraphs), cell("Min Read", st.ReadingTime)}
	return strings.Join(row1, " ") + "\n" + strings.Join(row2, " ")
}

func WordCounter(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "word-counter",
		Title:       "Word & Character Counter",
		Description: "Count words, characters, and analyze your text",
		Steps: []shell.Step{
			{Title: "Enter Text", Description: "Type or paste your text in the input area"},
			{Title: "View Stats", Description: "See real-time word and character counts"},
			{Title: "Analyze", Description: "Review detailed statistics about your text"},
		},
		Fields: []runner.Field{
			{Key: "text", Label: "Enter Your Text", Kind: runner.FieldTextArea, Placeholder: "Start typing or paste your text here...", Primary: true},
		},
		Transform: transform.New("count", func(_ context.Context, in transform.Input) (transform.Result, error) {
			st := textops.Count(in.Get("text"))
			text := fmt.Sprintf("Words: %d\nCharacters: %d\nCharacters (no spaces): %d\nSentences: %d\nParagraphs: %d\nReading time: %d min",
				st.Words, st.Characters, st.CharactersNoSpaces, st.Sentences, st.Paragraphs, st.ReadingTime)
			return transform.Result{Text: text, Data: st}, nil
		}),
		Render: renderStats,
		Live:   true,
	}
}

// Diff is the text diff's structured result.
type Diff struct {
	Tokens                    []textops.Token
	Added, Removed, Unchanged int
}

func renderDiff(res transform.Result) string {
	d, ok := res.Data.(Diff)
	if !ok {
		return runner.RenderResult(res)
	}
	words := make([]string, len(d.Tokens))
	for i, t := range d.Tokens {
		switch t.Type {
		case textops.Added:
			words[i] = styles.Added.Render(t.Value)
		case textops.Removed:
			words[i] = styles.Removed.Render(t.Value)
		default:
			words[i] = t.Value
		}
	}
	summary := fmt.Sprintf("%s  %s  %s",
		styles.Added.Render(fmt.Sprintf("+%d added", d.Added)),
		styles.Removed.Render(fmt.Sprintf("-%d removed", d.Removed)),
		styles.Muted.Render(fmt.Sprintf("%d unchanged", d.Unchanged)))
	return summary + "\n\n" + styles.Panel.Render(strings.Join(words, " "))
}

// diffText marks each token for plain-text output: "+word", "-word" or "word".
func diffText(tokens []textops.Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		switch t.Type {
		case textops.Added:
			words[i] = "+" + t.Value
		case textops.Removed:
			words[i] = "-" + t.Value
		default:
			words[i] = t.Value
		}
	}
	return strings.Join(words, " ")
}

func TextDiff(registry.Deps) runner.Spec {
	return runner.Spec{
		ID:          "text-diff",
		Title:       "Text Diff Checker",
		Description: "Compare two texts and highlight the differences. Perfect for reviewing changes and finding modifications.",
		Steps: []shell.Step{
			{Title: "Enter Original", Description: "Paste the original text in the first text area"},
			{Title: "Enter Modified", Description: "Paste the modified text in the second text area"},
			{Title: "Compare", Description: "Press Ctrl+G to compare the texts"},
			{Title: "Review Changes", Description: "Green highlights show additions, red shows deletions"},
		},
		Fields: []runner.Field{
			{Key: "original", Label: "Original Text", Kind: runner.FieldTextArea, Placeholder: "Paste original text here...", Primary: true},
			{Key: "modified", Label: "Modified Text", Kind: runner.FieldTextArea, Placeholder: "Paste modified text here..."},
		},
		Transform: transform.New("word-diff", func(_ context.Context, in transform.Input) (transform.Result, error) {
			tokens, err := textops.Diff(in.Get("original"), in.Get("modified"))
			if err != nil {
				return transform.Result{}, err
			}
			d := Diff{Tokens: tokens}
			d.Added, d.Removed, d.Unchanged = textops.DiffSummary(tokens)
			return transform.Result{Text: diffText(tokens), Data: d}, nil
		}),
		Render:       renderDiff,
		DownloadName: "diff.txt",
		Success:      "Text comparison complete",
	}
}
