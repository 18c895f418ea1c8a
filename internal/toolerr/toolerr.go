// Package toolerr defines the error kinds a tool can fail with and how each
// kind is turned into a message the user sees.
package toolerr

import (
	"errors"
	"fmt"
)

// Kind classifies a tool error.
type Kind int

const (
	// KindValidation covers missing input, wrong file types, oversized files
	// and too few data rows.
	KindValidation Kind = iota
	// KindParse covers malformed JSON and malformed Base64.
	KindParse
	// KindFailure is the generic branch for a transform that blew up.
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindParse:
		return "parse"
	case KindFailure:
		return "failure"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// DefaultMessage is shown when nothing more specific is known.
const DefaultMessage = "Something went wrong. Please try again."

// Error is a tool error carrying a user-facing message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a validation error with the given message.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Parse returns a parse error. msg is shown to the user, err is kept for logs.
func Parse(msg string, err error) error {
	return &Error{Kind: KindParse, Msg: msg, Err: err}
}

// Failure wraps an unexpected error. msg is the "failed, try again" text
// shown instead of err.
func Failure(msg string, err error) error {
	return &Error{Kind: KindFailure, Msg: msg, Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are failures.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindFailure
}

// Is reports whether err is a tool error of kind k.
func Is(err error, k Kind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == k
}

// Message maps err to the text shown to the user. Validation and parse errors
// speak for themselves; failures show their own message when they have one,
// then fallback, then DefaultMessage.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var te *Error
	if errors.As(err, &te) {
		if te.Kind != KindFailure || te.Msg != "" {
			return te.Error()
		}
	}
	if fallback != "" {
		return fallback
	}
	return DefaultMessage
}
