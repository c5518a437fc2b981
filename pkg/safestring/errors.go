package safestring

import (
	"errors"

	"github.com/stefvanhouten/safestring/pkg/escape"
)

var (
	// ErrUnimplementedContext is returned when an operation is invoked on
	// ContextUnspecified (the zero value), or on a direction a context does
	// not support.
	ErrUnimplementedContext = errors.New("unimplemented safety context")

	// ErrTypeMismatch is returned when an escape routine receives a value of
	// a kind its context cannot encode.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Escaper failures re-exported from pkg/escape so callers can match every
// error this module produces through a single import.
var (
	ErrMalformedEncoding        = escape.ErrMalformedEncoding
	ErrNoAddressFound           = escape.ErrNoAddressFound
	ErrPlaceholderCountMismatch = escape.ErrPlaceholderCountMismatch
)
