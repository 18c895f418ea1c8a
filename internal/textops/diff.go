package textops

import (
	"regexp"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

// Token tags.
const (
	Added     = "added"
	Removed   = "removed"
	Unchanged = "unchanged"
)

// Token is one word of diff output.
type Token struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

var tokenSplit = regexp.MustCompile(`\s+`)

// Diff compares two texts word by word. It walks both token lists in step:
// equal tokens are unchanged, unequal ones become a removed/added pair, and
// whatever is left on the longer side is added or removed. An insertion
// shifts every later pair out of alignment.
func Diff(original, changed string) ([]Token, error) {
	if original == "" || changed == "" {
		return nil, toolerr.Validation("Please enter text in both fields")
	}
	a := tokenSplit.Split(original, -1)
	b := tokenSplit.Split(changed, -1)

	out := make([]Token, 0, max(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i >= len(a):
			out = append(out, Token{Added, b[j]})
			j++
		case j >= len(b):
			out = append(out, Token{Removed, a[i]})
			i++
		case a[i] == b[j]:
			out = append(out, Token{Unchanged, a[i]})
			i++
			j++
		default:
			out = append(out, Token{Removed, a[i]}, Token{Added, b[j]})
			i++
			j++
		}
	}
	return out, nil
}

// DiffSummary counts tokens by tag.
func DiffSummary(tokens []Token) (added, removed, unchanged int) {
	for _, t := range tokens {
		switch t.Type {
		case Added:
			added++
		case Removed:
			removed++
		default:
			unchanged++
		}
	}
	return added, removed, unchanged
}
