// Package runner is the generic tool screen. A tool declares a Spec (its
// form, an optional validation step, a transform and how to render the
// result) and the runner supplies everything else: the edit, processing,
// result and error states, the in-flight guard, notices, copy and save,
// feedback and the first-use instructions.
package runner

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/ryan-rushton/toolbelt/internal/output"
	"github.com/ryan-rushton/toolbelt/internal/shell"
	"github.com/ryan-rushton/toolbelt/internal/store"
	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

// FieldKind is the widget a field is edited with.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldTextArea
	// FieldFile and FieldFiles take paths; FieldFiles accepts several,
	// separated by commas or newlines.
	FieldFile
	FieldFiles
	FieldChoice
	FieldNumber
	FieldToggle
)

// Field is one form control.
type Field struct {
	Key         string
	Label       string
	Kind        FieldKind
	Placeholder string
	// Default is the initial value; for toggles "true" or "false", for
	// choices one of Choices.
	Default string
	Choices []string
	// Min and Max bound a number field.
	Min, Max int
	// Primary marks the field piped stdin fills in headless runs.
	Primary bool
}

func (f Field) singleLine() bool {
	return f.Kind != FieldTextArea
}

func (f Field) isFile() bool {
	return f.Kind == FieldFile || f.Kind == FieldFiles
}

// Spec declares a tool.
type Spec struct {
	ID          string
	Title       string
	Description string
	Steps       []shell.Step
	Fields      []Field

	// Validate runs before the transform; its error is shown as is.
	Validate  func(transform.Input) error
	Transform transform.Transform
	// Render overrides the default result view.
	Render func(transform.Result) string

	// LogAttrs adds tool-specific attributes to the run's log line. Results
	// themselves are never logged.
	LogAttrs func(transform.Result) []any

	// Live tools recompute on every edit instead of waiting for a run.
	Live bool

	// DownloadName and DownloadMIME describe the file a text-only result is
	// saved as.
	DownloadName string
	DownloadMIME string

	// Success is the notice shown after a run; Failure is the message for
	// errors that carry none of their own.
	Success string
	Failure string
}

// Env is what the runner needs from the outside world.
type Env struct {
	Store         store.KV
	Saver         *output.Saver
	Clipboard     output.Clipboard
	Logger        *slog.Logger
	SkipTutorials bool
	Now           func() time.Time
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// Defaults returns every field's initial value.
func (s Spec) Defaults() map[string]string {
	vals := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		v := f.Default
		if f.Kind == FieldChoice && v == "" && len(f.Choices) > 0 {
			v = f.Choices[0]
		}
		if f.Kind == FieldToggle && v == "" {
			v = "false"
		}
		vals[f.Key] = v
	}
	return vals
}

// Field returns the field called key.
func (s Spec) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// PrimaryField is the field stdin fills: the one marked Primary, else the
// first text area, else the first text field.
func (s Spec) PrimaryField() (Field, bool) {
	for _, f := range s.Fields {
		if f.Primary {
			return f, true
		}
	}
	for _, kind := range []FieldKind{FieldTextArea, FieldText} {
		for _, f := range s.Fields {
			if f.Kind == kind {
				return f, true
			}
		}
	}
	return Field{}, false
}

// CheckValues rejects values a field cannot hold: unknown keys, choices
// outside the list and numbers that do not parse.
func (s Spec) CheckValues(vals map[string]string) error {
	for k, v := range vals {
		f, ok := s.Field(k)
		if !ok {
			return toolerr.Validationf("%s has no field %q", s.ID, k)
		}
		switch f.Kind {
		case FieldChoice:
			if !contains(f.Choices, v) {
				return toolerr.Validationf("%s: %q is not one of %v", k, v, f.Choices)
			}
		case FieldNumber:
			if _, err := strconv.Atoi(v); err != nil && v != "" {
				return toolerr.Validationf("%s: %q is not a number", k, v)
			}
		case FieldToggle:
			if _, err := strconv.ParseBool(v); err != nil {
				return toolerr.Validationf("%s: %q is not true or false", k, v)
			}
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// BuildInput loads the files named by file fields and assembles the input.
func (s Spec) BuildInput(ctx context.Context, vals map[string]string) (transform.Input, error) {
	in := transform.Input{Values: vals}
	var paths []string
	for _, f := range s.Fields {
		if f.isFile() {
			paths = append(paths, transform.SplitPaths(vals[f.Key])...)
		}
	}
	if len(paths) == 0 {
		return in, nil
	}
	files, err := transform.LoadFiles(ctx, paths)
	if err != nil {
		return in, toolerr.Validation(err.Error())
	}
	in.Files = files
	return in, nil
}

// Execute validates in and runs the transform, logging the outcome.
func Execute(ctx context.Context, s Spec, in transform.Input, logger *slog.Logger) (transform.Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	start := time.Now()
	res, err := execute(ctx, s, in)
	attrs := []any{"tool", s.ID, "transform", s.Transform.Name(), "duration", time.Since(start)}
	if err != nil {
		logger.Warn("tool run failed", append(attrs, "kind", toolerr.KindOf(err).String(), "error", err)...)
		return res, err
	}
	if s.LogAttrs != nil {
		attrs = append(attrs, s.LogAttrs(res)...)
	}
	logger.Info("tool run", attrs...)
	return res, nil
}

func execute(ctx context.Context, s Spec, in transform.Input) (transform.Result, error) {
	if s.Validate != nil {
		if err := s.Validate(in); err != nil {
			return transform.Result{}, err
		}
	}
	return s.Transform.Run(ctx, in)
}

// Downloads are the artifacts the save action writes: the result's own, or
// its text under the spec's download name.
func (s Spec) Downloads(res transform.Result) []transform.Artifact {
	if len(res.Artifacts) > 0 {
		return res.Artifacts
	}
	text := res.Copyable()
	if text == "" || s.DownloadName == "" {
		return nil
	}
	a := transform.TextArtifact(s.DownloadName, text)
	if s.DownloadMIME != "" {
		a.MIME = s.DownloadMIME
	}
	return []transform.Artifact{a}
}
