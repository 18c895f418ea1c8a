// Package transform defines the contract every tool's processing step
// satisfies, whether it does real work or only pretends to.
package transform

import (
	"context"
	"strconv"
	"strings"
)

// Transform turns a tool's input into a result.
type Transform interface {
	Name() string
	Run(ctx context.Context, in Input) (Result, error)
}

// Func adapts a function to Transform.
type Func struct {
	name string
	fn   func(ctx context.Context, in Input) (Result, error)
}

// New wraps fn as a Transform called name.
func New(name string, fn func(ctx context.Context, in Input) (Result, error)) Func {
	return Func{name: name, fn: fn}
}

func (f Func) Name() string { return f.name }

func (f Func) Run(ctx context.Context, in Input) (Result, error) {
	return f.fn(ctx, in)
}

// Input is what the form collected.
type Input struct {
	Values map[string]string
	Files  []File
	// Progress, when set, receives completion percentages in [0,100].
	Progress func(percent int)
}

// Get returns the raw value of a field.
func (in Input) Get(key string) string {
	return in.Values[key]
}

// Int parses a field, returning def when it is empty or not a number.
func (in Input) Int(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(in.Values[key]))
	if err != nil {
		return def
	}
	return n
}

// Bool reports whether a toggle field is on.
func (in Input) Bool(key string) bool {
	b, _ := strconv.ParseBool(in.Values[key])
	return b
}

// File returns the first file, if any.
func (in Input) File() (File, bool) {
	if len(in.Files) == 0 {
		return File{}, false
	}
	return in.Files[0], true
}

// Report forwards a progress percentage.
func (in Input) Report(percent int) {
	if in.Progress != nil {
		in.Progress(max(0, min(percent, 100)))
	}
}

// Result is a transform's output. Any combination of fields may be set.
type Result struct {
	// Text is the primary copyable output.
	Text string
	// Sections are titled blocks shown below Text.
	Sections []Section
	// Items is a listing such as the entries of an archive.
	Items []Item
	// Artifacts are files the user can save.
	Artifacts []Artifact
	// Data carries tool-specific structured output for custom rendering.
	Data any
}

// Section is a titled block of output.
type Section struct {
	Title string
	Body  string
}

// Item is one entry of a listing.
type Item struct {
	Name string
	Size int64
	MIME string
}

// Artifact is a saveable file.
type Artifact struct {
	Filename string
	MIME     string
	Data     []byte
	// URL is where the bytes live when Data is nil: a data URL or a remote
	// address fetched on save.
	URL string
}

// TextArtifact builds a text/plain artifact.
func TextArtifact(filename, text string) Artifact {
	return Artifact{Filename: filename, MIME: "text/plain", Data: []byte(text)}
}

// Copyable is the text the copy action puts on the clipboard: Text, or the
// first section body when there is no Text.
func (r Result) Copyable() string {
	if r.Text != "" {
		return r.Text
	}
	for _, s := range r.Sections {
		if s.Body != "" {
			return s.Body
		}
	}
	return ""
}

// Empty reports whether r carries nothing to show.
func (r Result) Empty() bool {
	return r.Text == "" && len(r.Sections) == 0 && len(r.Items) == 0 && len(r.Artifacts) == 0 && r.Data == nil
}
