package generate

import (
	"errors"
	"fmt"
)

// ValidationError reports a request rejected before any model call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// MalformedError reports a model response that could not be decoded into
// the expected structure. Raw preserves the offending text for logs.
type MalformedError struct {
	Raw string
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is an undecodable model response.
func IsMalformed(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}

// ConfigError reports a feature invoked without the configuration it
// requires, most commonly a missing API key in offline mode.
type ConfigError struct {
	Feature string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s requires a configured Gemini API key", e.Feature)
}

// IsConfig reports whether err is a missing-configuration failure.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
