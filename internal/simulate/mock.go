// Package simulate holds the mock transforms: tools that validate their
// input, wait as if working, then hand back a fixed placeholder.
//
// A Mock satisfies transform.Transform, so a real implementation can take its
// place without the runner noticing.
package simulate

import (
	"context"
	"errors"
	"time"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
	"github.com/ryan-rushton/toolbelt/internal/transform"
)

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoSleep returns immediately unless ctx is already done.
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Mock is a simulated transform.
type Mock struct {
	ID   string
	Rule *FileRule
	// Delay is a single fixed wait.
	Delay time.Duration
	// Steps, when positive, replaces Delay with Steps waits of StepDelay,
	// reporting progress from 0 to 100 evenly after each.
	Steps     int
	StepDelay time.Duration
	// Payload builds the placeholder result.
	Payload func(in transform.Input) (transform.Result, error)
	// Failure is shown when Payload fails.
	Failure string
	// Sleep defaults to the real Sleep.
	Sleep Sleeper
}

func (m *Mock) Name() string { return "mock:" + m.ID }

// WithSleep returns a copy of m that waits with s.
func (m *Mock) WithSleep(s Sleeper) *Mock {
	c := *m
	c.Sleep = s
	return &c
}

// Validate applies the file rule.
func (m *Mock) Validate(in transform.Input) error {
	if m.Rule == nil {
		return nil
	}
	return m.Rule.Check(in.Files)
}

// Run validates, waits, then builds the payload. Cancelling ctx abandons the
// wait.
func (m *Mock) Run(ctx context.Context, in transform.Input) (transform.Result, error) {
	if err := m.Validate(in); err != nil {
		return transform.Result{}, err
	}
	sleep := m.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	if m.Steps > 0 {
		for i := range m.Steps {
			if err := sleep(ctx, m.StepDelay); err != nil {
				return transform.Result{}, err
			}
			pct := 100
			if m.Steps > 1 {
				pct = i * 100 / (m.Steps - 1)
			}
			in.Report(pct)
		}
	} else if err := sleep(ctx, m.Delay); err != nil {
		return transform.Result{}, err
	}

	if m.Payload == nil {
		return transform.Result{}, nil
	}
	res, err := m.Payload(in)
	if err != nil {
		var te *toolerr.Error
		if errors.As(err, &te) {
			return transform.Result{}, err
		}
		return transform.Result{}, toolerr.Failure(m.Failure, err)
	}
	return res, nil
}
