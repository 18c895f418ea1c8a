package textops

import (
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/structured"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

// Beautifier languages.
const (
	LangJSON       = "json"
	LangHTML       = "html"
	LangCSS        = "css"
	LangJavaScript = "javascript"
)

// Languages lists the beautifier languages in display order.
var Languages = []string{LangJSON, LangHTML, LangCSS, LangJavaScript}

// Beautify re-indents JSON. Other languages only get each line trimmed.
func Beautify(lang, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", toolerr.Validation("Please enter code to beautify")
	}
	if lang == LangJSON {
		out, err := structured.Format(code)
		if err != nil {
			return "", toolerr.Failure("Failed to format code", err)
		}
		return out, nil
	}
	lines := strings.Split(code, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, "\n"), nil
}
