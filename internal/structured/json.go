// Package structured formats JSON and converts CSV to JSON.
package structured

import (
	"encoding/json"
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

// JSON modes.
const (
	ModeFormat   = "format"
	ModeMinify   = "minify"
	ModeValidate = "validate"
)

// ValidMessage is what validate mode reports for well-formed input.
const ValidMessage = "Valid JSON"

func parse(input string) (any, error) {
	src := strings.TrimSpace(input)
	if src == "" {
		return nil, toolerr.Validation("Please enter JSON data")
	}
	var v any
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		return nil, toolerr.Parse("Invalid JSON: "+err.Error(), err)
	}
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()
	tree, err := decodeValue(dec)
	if err != nil {
		return nil, toolerr.Parse("Invalid JSON: "+err.Error(), err)
	}
	return tree, nil
}

// Format re-serialises input with 2-space indentation, the way a browser's
// JSON.stringify(JSON.parse(input), null, 2) does.
func Format(input string) (string, error) {
	v, err := parse(input)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	writeValue(&b, v, "  ", "")
	return b.String(), nil
}

// Minify re-serialises input with no insignificant whitespace.
func Minify(input string) (string, error) {
	v, err := parse(input)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	writeValue(&b, v, "", "")
	return b.String(), nil
}

// Validate reports whether input parses.
func Validate(input string) error {
	_, err := parse(input)
	return err
}

// Apply runs the given mode. Unknown modes format.
func Apply(mode, input string) (string, error) {
	switch mode {
	case ModeMinify:
		return Minify(input)
	case ModeValidate:
		if err := Validate(input); err != nil {
			return "", err
		}
		return ValidMessage, nil
	}
	return Format(input)
}
