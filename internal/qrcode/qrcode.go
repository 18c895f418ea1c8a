// Package qrcode renders QR codes through a remote HTTP endpoint. It is the
// only tool that talks to the network.
package qrcode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

// Defaults for the public rendering service.
const (
	DefaultEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultSize     = 300
	DefaultTimeout  = 10 * time.Second
)

// maxImageBytes bounds how much of a response body is read.
const maxImageBytes = 5 << 20

// Client fetches rendered QR codes.
type Client struct {
	Endpoint string
	Size     int
	HTTP     *http.Client
}

// New returns a client for endpoint. Empty or zero arguments take defaults.
func New(endpoint string, size int, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if size <= 0 {
		size = DefaultSize
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Endpoint: endpoint,
		Size:     size,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

// encodeComponent percent-encodes s for a query value with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// URL is the image address for text.
func (c *Client) URL(text string) string {
	return fmt.Sprintf("%s?size=%dx%d&data=%s", c.Endpoint, c.Size, c.Size, encodeComponent(text))
}

// Fetch downloads the PNG for text.
func (c *Client) Fetch(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, toolerr.Validation("Please enter text or URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(text), nil)
	if err != nil {
		return nil, toolerr.Failure("Failed to generate QR code", fmt.Errorf("building request: %w", err))
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, toolerr.Failure("Failed to generate QR code", fmt.Errorf("fetching qr code: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, toolerr.Failure("Failed to generate QR code", fmt.Errorf("qr endpoint returned status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, toolerr.Failure("Failed to generate QR code", fmt.Errorf("reading qr code: %w", err))
	}
	if len(data) == 0 {
		return nil, toolerr.Failure("Failed to generate QR code", fmt.Errorf("empty qr response"))
	}
	return data, nil
}
