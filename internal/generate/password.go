package generate

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

// Character classes, in the order they are added to the charset.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Password length bounds.
const (
	MinPasswordLength     = 8
	MaxPasswordLength     = 64
	DefaultPasswordLength = 16
)

// Strength labels.
const (
	Weak       = "Weak"
	Medium     = "Medium"
	Strong     = "Strong"
	VeryStrong = "Very Strong"
)

// PasswordOptions selects the length and character classes.
type PasswordOptions struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// DefaultPasswordOptions has every class on and length 16.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:    DefaultPasswordLength,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Charset is the union of the selected classes.
func (o PasswordOptions) Charset() string {
	var b strings.Builder
	if o.Lowercase {
		b.WriteString(Lowercase)
	}
	if o.Uppercase {
		b.WriteString(Uppercase)
	}
	if o.Digits {
		b.WriteString(Digits)
	}
	if o.Symbols {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Password draws a password from crypto/rand.
func Password(o PasswordOptions) (string, error) {
	return PasswordFrom(rand.Reader, o)
}

// PasswordFrom draws a password using src as the random source. Each
// character is an independent uniform draw over the charset. The length is
// clamped to [8,64].
func PasswordFrom(src io.Reader, o PasswordOptions) (string, error) {
	charset := o.Charset()
	if charset == "" {
		return "", toolerr.Validation("Please select at least one character type")
	}
	length := max(MinPasswordLength, min(o.Length, MaxPasswordLength))

	limit := big.NewInt(int64(len(charset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(src, limit)
		if err != nil {
			return "", fmt.Errorf("draw password character: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

// Strength grades a password by length and the number of classes present.
func Strength(password string) string {
	if password == "" {
		return ""
	}
	var upper, lower, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	variety := 0
	for _, ok := range []bool{upper, lower, digit, other} {
		if ok {
			variety++
		}
	}

	n := len([]rune(password))
	switch {
	case n < 8 || variety < 2:
		return Weak
	case n < 12 || variety < 3:
		return Medium
	case n < 16 || variety < 4:
		return Strong
	}
	return VeryStrong
}
