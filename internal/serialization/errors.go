package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrPayloadTooLarge    = errors.New("payload exceeds maximum size")
	ErrMalformed          = errors.New("malformed checkpoint")
)

// FieldError reports a missing or mistyped payload field.
type FieldError struct {
	Field   string // Dotted path of the field (e.g., "model.sizes")
	Details string // What was wrong with it
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", ErrMalformed, e.Field, e.Details)
}

// Unwrap lets errors.Is match ErrMalformed.
func (e *FieldError) Unwrap() error {
	return ErrMalformed
}
