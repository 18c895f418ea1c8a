// Package textops holds the plain-text tools: case conversion, line-break
// removal, counting, word diff and the code beautifier.
package textops

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case names.
const (
	CaseUpper    = "upper"
	CaseLower    = "lower"
	CaseSentence = "sentence"
	CaseTitle    = "title"
	CaseCamel    = "camel"
	CaseSnake    = "snake"
)

// CaseNames lists the supported cases in display order.
var CaseNames = []string{CaseUpper, CaseLower, CaseSentence, CaseTitle, CaseCamel, CaseSnake}

var (
	sentenceStart = regexp.MustCompile(`(^\s*\w|[.!?]\s*\w)`)
	wordStart     = regexp.MustCompile(`\b\w`)
	camelBreak    = regexp.MustCompile(`[^a-zA-Z0-9]+(.)`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

func upper(s string) string { return cases.Upper(language.Und).String(s) }
func lower(s string) string { return cases.Lower(language.Und).String(s) }

// ConvertCase rewrites text in the named case. Every case except upper starts
// from the lowercased text. Unknown names return text unchanged.
func ConvertCase(name, text string) string {
	switch name {
	case CaseUpper:
		return upper(text)
	case CaseLower:
		return lower(text)
	case CaseSentence:
		return sentenceStart.ReplaceAllStringFunc(lower(text), strings.ToUpper)
	case CaseTitle:
		return wordStart.ReplaceAllStringFunc(lower(text), strings.ToUpper)
	case CaseCamel:
		return camelBreak.ReplaceAllStringFunc(lower(text), func(m string) string {
			r, _ := utf8.DecodeLastRuneInString(m)
			return strings.ToUpper(string(r))
		})
	case CaseSnake:
		return whitespaceRun.ReplaceAllString(lower(text), "_")
	}
	return text
}

// RemoveLineBreaks joins lines with single spaces and collapses every
// whitespace run.
func RemoveLineBreaks(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
