// Package store persists the handful of values that outlive a session: the
// tutorial flags, tool feedback and the visitor counter.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// KV is a string key-value store.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Memory is an in-process KV.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.data)), nil
}

func (m *Memory) Close() error { return nil }

// Keys of the persisted layout.
const (
	KeyToolFeedback = "toolFeedback"
	KeyVisitorCount = "visitor-count"
	hideModalPrefix = "hideModal_"
)

// HideModalKey is the flag key for a tool's tutorial, by tool display name.
func HideModalKey(toolName string) string {
	return hideModalPrefix + toolName
}

// TutorialHidden reports whether the user opted out of a tool's tutorial.
func TutorialHidden(ctx context.Context, kv KV, toolName string) (bool, error) {
	v, ok, err := kv.Get(ctx, HideModalKey(toolName))
	if err != nil {
		return false, err
	}
	return ok && v == "true", nil
}

// HideTutorial stores the opt-out for a tool's tutorial.
func HideTutorial(ctx context.Context, kv KV, toolName string) error {
	return kv.Set(ctx, HideModalKey(toolName), "true")
}

// Feedback types.
const (
	Positive = "positive"
	Negative = "negative"
)

// Feedback is one tool's rating.
type Feedback struct {
	Type string `json:"type"`
	// Timestamp is Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// Feedbacks reads the feedback map. A missing or corrupt entry reads as empty.
func Feedbacks(ctx context.Context, kv KV) (map[string]Feedback, error) {
	out := map[string]Feedback{}
	raw, ok, err := kv.Get(ctx, KeyToolFeedback)
	if err != nil {
		return nil, err
	}
	if !ok {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return map[string]Feedback{}, nil
	}
	return out, nil
}

// RecordFeedback stores a rating for toolName, replacing any earlier one.
func RecordFeedback(ctx context.Context, kv KV, toolName string, positive bool, now time.Time) error {
	all, err := Feedbacks(ctx, kv)
	if err != nil {
		return err
	}
	kind := Negative
	if positive {
		kind = Positive
	}
	all[toolName] = Feedback{Type: kind, Timestamp: now.UnixMilli()}
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encoding feedback: %w", err)
	}
	return kv.Set(ctx, KeyToolFeedback, string(raw))
}
