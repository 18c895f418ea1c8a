package config

import "errors"

// Validation errors returned by Config.Validate.
var (
	// ErrInvalidOutputDir is returned when no output directory is set.
	ErrInvalidOutputDir = errors.New("invalid output dir: must not be empty")

	// ErrInvalidDataDir is returned when no data directory is set.
	ErrInvalidDataDir = errors.New("invalid data dir: must not be empty")

	// ErrInvalidBaseURL is returned when base_url is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base url: must be an absolute http or https URL")

	// ErrInvalidQREndpoint is returned when qr_endpoint is not an absolute http(s) URL.
	ErrInvalidQREndpoint = errors.New("invalid qr endpoint: must be an absolute http or https URL")

	// ErrInvalidQRSize is returned when qr_size is outside 1..MaxQRSize.
	ErrInvalidQRSize = errors.New("invalid qr size: must be between 1 and 1000")

	// ErrInvalidHTTPTimeout is returned when http_timeout is not positive.
	ErrInvalidHTTPTimeout = errors.New("invalid http timeout: must be positive")
)
