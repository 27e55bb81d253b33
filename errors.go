package blockmark

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a token failed validation.
	ErrValidation = errors.New("validation error")

	// ErrStalled indicates a scanner produced a token without advancing the
	// cursor. It always points at a tokenizer bug, never at bad input.
	ErrStalled = errors.New("tokenizer made no progress")

	// ErrUnknownKind indicates a token kind the consumer cannot handle.
	ErrUnknownKind = errors.New("unknown token kind")

	// ErrUnsupportedVersion indicates a token dump with an unknown envelope version.
	ErrUnsupportedVersion = errors.New("unsupported version")
)
