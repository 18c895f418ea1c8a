package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSQLite opens a store in a temp directory.
func setupSQLite(t *testing.T) *SQLite {
	t.Helper()

	s, err := Open(t.TempDir(), DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func stores(t *testing.T) map[string]KV {
	return map[string]KV{
		"memory": NewMemory(),
		"sqlite": setupSQLite(t),
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "a", "b")
		s, err := Open(dir, DefaultOptions())
		require.NoError(t, err)
		defer s.Close()

		_, err = os.Stat(filepath.Join(dir, FileName))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, FileName), s.Path())
	})

	t.Run("missing database without create fails", func(t *testing.T) {
		t.Parallel()

		_, err := Open(t.TempDir(), Options{})
		require.Error(t, err)
	})

	t.Run("reopen keeps data", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s, err := Open(dir, DefaultOptions())
		require.NoError(t, err)
		require.NoError(t, s.Set(context.Background(), "k", "v"))
		require.NoError(t, s.Close())

		s, err = Open(dir, Options{EnableWAL: true})
		require.NoError(t, err)
		defer s.Close()
		v, ok, err := s.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	})
}

func TestKV(t *testing.T) {
	t.Parallel()

	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, "b", "1"))
			require.NoError(t, kv.Set(ctx, "a", "2"))
			require.NoError(t, kv.Set(ctx, "b", "3"))

			v, ok, err := kv.Get(ctx, "b")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "3", v)

			keys, err := kv.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, keys)

			require.NoError(t, kv.Delete(ctx, "a"))
			_, ok, err = kv.Get(ctx, "a")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestTutorialFlag(t *testing.T) {
	t.Parallel()

	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			hidden, err := TutorialHidden(ctx, kv, "Hash Generator")
			require.NoError(t, err)
			assert.False(t, hidden)

			require.NoError(t, HideTutorial(ctx, kv, "Hash Generator"))
			hidden, err = TutorialHidden(ctx, kv, "Hash Generator")
			require.NoError(t, err)
			assert.True(t, hidden)

			v, _, err := kv.Get(ctx, "hideModal_Hash Generator")
			require.NoError(t, err)
			assert.Equal(t, "true", v)
		})
	}
}

func TestRecordFeedback(t *testing.T) {
	t.Parallel()

	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			now := time.UnixMilli(1700000000123)

			require.NoError(t, RecordFeedback(ctx, kv, "UUID Generator", true, now))
			require.NoError(t, RecordFeedback(ctx, kv, "Text Diff", false, now))
			require.NoError(t, RecordFeedback(ctx, kv, "UUID Generator", false, now.Add(time.Second)))

			all, err := Feedbacks(ctx, kv)
			require.NoError(t, err)
			assert.Equal(t, map[string]Feedback{
				"UUID Generator": {Type: Negative, Timestamp: 1700000001123},
				"Text Diff":      {Type: Negative, Timestamp: 1700000000123},
			}, all)

			raw, _, err := kv.Get(ctx, KeyToolFeedback)
			require.NoError(t, err)
			assert.JSONEq(t, `{"UUID Generator":{"type":"negative","timestamp":1700000001123},"Text Diff":{"type":"negative","timestamp":1700000000123}}`, raw)
		})
	}
}

func TestFeedbacks_Corrupt(t *testing.T) {
	t.Parallel()

	kv := NewMemory()
	require.NoError(t, kv.Set(context.Background(), KeyToolFeedback, "{not json"))
	all, err := Feedbacks(context.Background(), kv)
	require.NoError(t, err)
	assert.Empty(t, all)
}
