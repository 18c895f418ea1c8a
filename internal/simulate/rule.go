package simulate

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

const mb = 1024 * 1024

// FileRule is the allowlist and size ceiling a tool applies to its uploads.
// A file passes the type check when its media type matches one of Accept
// or its lowercased name matches one of Patterns. Both empty accepts anything.
type FileRule struct {
	// Accept holds media types; "image/*" matches a whole family.
	Accept []string
	// Patterns are doublestar globs over the file name, e.g. "*.{heic,heif}".
	Patterns []string
	// MaxMB is the per-file ceiling. Zero means no ceiling.
	MaxMB int
	// MinFiles is the number of files required. Zero means one.
	MinFiles int

	MissingMessage string
	TypeMessage    string
	SizeMessage    string
	CountMessage   string
}

// MatchMIME reports whether mime matches pattern, which may end in "/*".
func MatchMIME(pattern, mime string) bool {
	if family, ok := strings.CutSuffix(pattern, "/*"); ok {
		return strings.HasPrefix(mime, family+"/")
	}
	return pattern == mime
}

// Allows reports whether f passes the type check.
func (r FileRule) Allows(f transform.File) bool {
	if len(r.Accept) == 0 && len(r.Patterns) == 0 {
		return true
	}
	for _, a := range r.Accept {
		if MatchMIME(a, f.MIME) {
			return true
		}
	}
	name := strings.ToLower(path.Base(f.Name))
	for _, p := range r.Patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

func orDefault(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}

// Check validates files against the rule.
func (r FileRule) Check(files []transform.File) error {
	need := max(r.MinFiles, 1)
	if len(files) == 0 {
		return toolerr.Validation(orDefault(r.MissingMessage, "Please upload a file first"))
	}
	for _, f := range files {
		if !r.Allows(f) {
			return toolerr.Validation(orDefault(r.TypeMessage, "Unsupported file type"))
		}
		if r.MaxMB > 0 && f.Size > int64(r.MaxMB)*mb {
			return toolerr.Validation(orDefault(r.SizeMessage, fmt.Sprintf("Please upload a file smaller than %dMB", r.MaxMB)))
		}
	}
	if len(files) < need {
		return toolerr.Validation(orDefault(r.CountMessage, fmt.Sprintf("Please upload at least %d files", need)))
	}
	return nil
}

// Describe summarises the rule for the form hint line.
func (r FileRule) Describe() string {
	var parts []string
	if accepted := append(append([]string(nil), r.Accept...), r.Patterns...); len(accepted) > 0 {
		parts = append(parts, "Accepted: "+strings.Join(accepted, ", "))
	}
	if r.MaxMB > 0 {
		parts = append(parts, fmt.Sprintf("Max size: %dMB", r.MaxMB))
	}
	return strings.Join(parts, " • ")
}
