// Package output delivers results: files written into the output directory
// and text placed on the system clipboard.
package output

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/ryan-rushton/toolbelt/internal/transform"
)

// ErrInvalidDataURL is returned for data URLs that cannot be decoded.
var ErrInvalidDataURL = errors.New("invalid data URL")

// Saver writes files into Dir.
type Saver struct {
	Dir  string
	HTTP *http.Client
}

// NewSaver returns a Saver for dir; empty means the working directory.
func NewSaver(dir string) *Saver {
	if dir == "" {
		dir = "."
	}
	return &Saver{Dir: dir, HTTP: http.DefaultClient}
}

// freePath returns a path in s.Dir for name that does not exist yet,
// numbering it "name (1).ext", "name (2).ext" and so on.
func (s *Saver) freePath(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "download"
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	p := filepath.Join(s.Dir, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			return p
		}
		p = filepath.Join(s.Dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
	}
}

// write streams r into a temp file next to the target and renames it into
// place once complete.
func (s *Saver) write(name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	target := s.freePath(name)

	tmp, err := os.CreateTemp(s.Dir, ".toolbelt-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		cleanup()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		cleanup()
		return "", fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("saving %s: %w", filepath.Base(target), err)
	}
	return target, nil
}

// SaveText writes content as filename.
func (s *Saver) SaveText(content, filename string) (string, error) {
	return s.write(filename, strings.NewReader(content))
}

// SaveArtifact writes an artifact under its filename. An artifact without
// bytes is fetched from its URL, either a data URL or a remote one.
func (s *Saver) SaveArtifact(ctx context.Context, a transform.Artifact) (string, error) {
	switch {
	case a.Data != nil || a.URL == "":
		return s.write(a.Filename, bytes.NewReader(a.Data))
	case strings.HasPrefix(a.URL, "data:"):
		return s.SaveDataURL(a.URL, a.Filename)
	default:
		return s.SaveURL(ctx, a.URL, a.Filename)
	}
}

// SaveAll writes every artifact, stopping at the first failure.
func (s *Saver) SaveAll(ctx context.Context, as []transform.Artifact) ([]string, error) {
	paths := make([]string, 0, len(as))
	for _, a := range as {
		p, err := s.SaveArtifact(ctx, a)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// DecodeDataURL splits a base64 data URL into its media type and bytes.
func DecodeDataURL(u string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(u, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	mediaType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return mediaType, []byte(payload), nil
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	return mediaType, data, nil
}

// DataURL encodes data as a base64 data URL.
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// SaveDataURL decodes a data URL and writes it as filename.
func (s *Saver) SaveDataURL(u, filename string) (string, error) {
	_, data, err := DecodeDataURL(u)
	if err != nil {
		return "", err
	}
	return s.write(filename, bytes.NewReader(data))
}

// SaveURL downloads a remote file and writes it as filename.
func (s *Saver) SaveURL(ctx context.Context, u, filename string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	client := s.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", filename, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}
	return s.write(filename, resp.Body)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard is the real clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// Copy puts text on cb.
func Copy(cb Clipboard, text string) error {
	if cb == nil {
		cb = SystemClipboard
	}
	if err := cb.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
