package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	// AppName is the directory name used under every XDG base directory.
	AppName = "toolbelt"

	// DefaultBaseURL is where the published catalog lives; the sitemap and
	// robots.txt point at it.
	DefaultBaseURL = "https://alltoolshub.pro"

	// DefaultQREndpoint renders QR codes from a size and data query.
	DefaultQREndpoint = "https://api.qrserver.com/v1/create-qr-code/"

	// DefaultQRSize is the QR image edge in pixels.
	DefaultQRSize = 300

	// MaxQRSize is the largest edge the QR endpoint accepts.
	MaxQRSize = 1000

	// DefaultHTTPTimeout bounds every outbound request.
	DefaultHTTPTimeout = 10 * time.Second

	// LogFileName is the log file created under the XDG state directory.
	LogFileName = "toolbelt.log"
)

// Config holds every setting toolbelt reads. The yaml tags are the keys
// accepted in the config file.
type Config struct {
	// DataDir holds the SQLite store.
	DataDir string `yaml:"data_dir"`

	// OutputDir is where saved results are written.
	OutputDir string `yaml:"output_dir"`

	// LogFile receives the structured log. The TUI owns the terminal, so
	// nothing is logged to stderr while it runs.
	LogFile string `yaml:"log_file"`

	// Verbose lowers the log level to Debug.
	Verbose bool `yaml:"verbose"`

	BaseURL    string `yaml:"base_url"`
	QREndpoint string `yaml:"qr_endpoint"`
	QRSize     int    `yaml:"qr_size"`

	// SkipTutorials suppresses the first-use instructions for every tool.
	SkipTutorials bool `yaml:"skip_tutorials"`

	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// ConfigFilePath is the file the settings were loaded from, if any.
	ConfigFilePath string `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		DataDir:     XDGDataDir(),
		OutputDir:   ".",
		LogFile:     filepath.Join(XDGStateDir(), LogFileName),
		BaseURL:     DefaultBaseURL,
		QREndpoint:  DefaultQREndpoint,
		QRSize:      DefaultQRSize,
		HTTPTimeout: DefaultHTTPTimeout,
	}
}

// XDGDataDir returns the XDG data directory for toolbelt.
// On Linux: ~/.local/share/toolbelt
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGStateDir returns the XDG state directory for toolbelt.
// On Linux: ~/.local/state/toolbelt
func XDGStateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// XDGConfigDir returns the XDG config directory for toolbelt.
// On Linux: ~/.config/toolbelt
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

func httpURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate returns the first problem found with c.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return ErrInvalidDataDir
	}
	if c.OutputDir == "" {
		return ErrInvalidOutputDir
	}
	if !httpURL(c.BaseURL) {
		return ErrInvalidBaseURL
	}
	if !httpURL(c.QREndpoint) {
		return ErrInvalidQREndpoint
	}
	if c.QRSize <= 0 || c.QRSize > MaxQRSize {
		return ErrInvalidQRSize
	}
	if c.HTTPTimeout <= 0 {
		return ErrInvalidHTTPTimeout
	}
	return nil
}
