package structured

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

// Delimiter names accepted by DelimiterFor.
const (
	DelimComma     = "comma"
	DelimSemicolon = "semicolon"
	DelimTab       = "tab"
	DelimPipe      = "pipe"
)

// DelimiterNames lists the supported delimiters in display order.
var DelimiterNames = []string{DelimComma, DelimSemicolon, DelimTab, DelimPipe}

// DelimiterFor maps a delimiter name to its separator. Single-character
// separators are passed through; anything else is a comma.
func DelimiterFor(name string) string {
	switch name {
	case DelimSemicolon, ";":
		return ";"
	case DelimTab, "\t":
		return "\t"
	case DelimPipe, "|":
		return "|"
	}
	return ","
}

// Record is one CSV row keyed by header, marshalled in header order.
type Record struct {
	keys   []string
	values map[string]string
}

func newRecord() *Record {
	return &Record{values: map[string]string{}}
}

// Set assigns key, keeping the position of its first assignment.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key.
func (r *Record) Get(key string) string {
	return r.values[key]
}

// Keys returns the keys in header order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// MarshalJSON writes the record as an object with keys in header order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if s != "" && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}

func splitFields(line, sep string) []string {
	parts := strings.Split(line, sep)
	for i, p := range parts {
		parts[i] = cleanField(p)
	}
	return parts
}

// ParseCSV splits input into records. The first line holds the headers.
// Fields are trimmed and lose one surrounding quote on each side. Missing
// trailing fields become "" and blank lines are skipped. Quoted separators
// are not understood.
func ParseCSV(input, delimiter string) ([]*Record, error) {
	src := strings.TrimSpace(input)
	if src == "" {
		return nil, toolerr.Validation("Please enter CSV data to convert")
	}
	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return nil, toolerr.Validation("CSV must have at least a header row and one data row")
	}

	sep := DelimiterFor(delimiter)
	headers := splitFields(lines[0], sep)
	records := make([]*Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitFields(line, sep)
		rec := newRecord()
		for i, h := range headers {
			v := ""
			if i < len(values) {
				v = values[i]
			}
			rec.Set(h, v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// CSVToJSON converts input to a 2-space indented JSON array of objects.
func CSVToJSON(input, delimiter string) (string, error) {
	records, err := ParseCSV(input, delimiter)
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", toolerr.Failure("Failed to convert CSV. Please check your data format.", fmt.Errorf("marshal records: %w", err))
	}
	return string(out), nil
}
