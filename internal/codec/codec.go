// Package codec holds the encoding and digest helpers behind the Base64 and
// hash tools.
package codec

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is offered as a checksum, not for security
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

// MD5Unsupported is what the hash tool shows in place of an MD5 digest.
const MD5Unsupported = "MD5 requires external library - SHA-256 recommended"

// EncodeBase64 encodes the UTF-8 bytes of text with the standard alphabet.
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 decodes s back to text. ASCII whitespace is ignored and
// trailing padding is optional. Malformed input is a parse error.
func DecodeBase64(s string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimRight(cleaned, "=")

	out, err := base64.RawStdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", toolerr.Parse("Invalid Base64 string", err)
	}
	return string(out), nil
}

// Digests are the hashes the hash tool renders.
type Digests struct {
	SHA256 string
	SHA1   string
	MD5    string
}

// Hash computes SHA-256 and SHA-1 over the UTF-8 bytes of text as lowercase
// hex. MD5 is not computed.
func Hash(text string) Digests {
	return Digests{
		SHA256: SHA256(text),
		SHA1:   SHA1(text),
		MD5:    MD5Unsupported,
	}
}

// SHA256 returns the lowercase hex SHA-256 digest of text.
func SHA256(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// SHA1 returns the lowercase hex SHA-1 digest of text.
func SHA1(text string) string {
	sum := sha1.Sum([]byte(text)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
