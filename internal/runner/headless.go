package runner

import (
	"context"
	"log/slog"
	"maps"

	"github.com/ryan-rushton/toolbelt/internal/transform"
)

// FileField is the first field that takes paths.
func (s Spec) FileField() (Field, bool) {
	for _, f := range s.Fields {
		if f.isFile() {
			return f, true
		}
	}
	return Field{}, false
}

// Merge checks overrides against the form and lays them over the defaults.
func (s Spec) Merge(overrides map[string]string) (map[string]string, error) {
	if err := s.CheckValues(overrides); err != nil {
		return nil, err
	}
	vals := s.Defaults()
	maps.Copy(vals, overrides)
	return vals, nil
}

// RunHeadless executes spec once, outside the TUI, with overrides applied
// to the form defaults.
func RunHeadless(ctx context.Context, s Spec, overrides map[string]string, logger *slog.Logger) (transform.Result, error) {
	vals, err := s.Merge(overrides)
	if err != nil {
		return transform.Result{}, err
	}
	in, err := s.BuildInput(ctx, vals)
	if err != nil {
		return transform.Result{}, err
	}
	return Execute(ctx, s, in, logger)
}
