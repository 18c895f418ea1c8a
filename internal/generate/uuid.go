package generate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// UUID count bounds.
const (
	MinUUIDs     = 1
	MaxUUIDs     = 50
	DefaultUUIDs = 5
)

// ClampUUIDCount bounds n to [MinUUIDs, MaxUUIDs].
func ClampUUIDCount(n int) int {
	return max(MinUUIDs, min(n, MaxUUIDs))
}

// ParseCount reads a count the way the form does: leading integer, falling
// back to def for anything unparsable or zero.
func ParseCount(s string, def int) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return def
	}
	return n
}

// UUIDs returns n version-4 identifiers, with n clamped to [1,50]. Every draw
// comes from crypto/rand.
func UUIDs(n int) ([]string, error) {
	n = ClampUUIDCount(n)
	out := make([]string, 0, n)
	for range n {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("generate uuid: %w", err)
		}
		out = append(out, id.String())
	}
	return out, nil
}
