package wtileerr

import (
	"errors"
	"fmt"
)

// Kind categorizes the failure so callers can branch on errors.As instead
// of matching message strings.
type Kind int

const (
	// Synthesis means the external texture-synthesis engine failed.
	Synthesis Kind = iota
	// IO means a filesystem or image decode/encode operation failed.
	IO
	// SizeMismatch means a blit or merge step found incompatible
	// source/target rectangles.
	SizeMismatch
	// InvalidInput means a precondition on the caller-supplied input was
	// violated (e.g. split-mode texture not square-and-even).
	InvalidInput
	// Parse means a string did not name a known Variation.
	Parse
	// Unsolvable means the atlas solver exhausted its candidates at some
	// cell.
	Unsolvable
)

// String returns the Kind's tag as used in error messages.
func (k Kind) String() string {
	switch k {
	case Synthesis:
		return "synthesis"
	case IO:
		return "io"
	case SizeMismatch:
		return "size mismatch"
	case InvalidInput:
		return "invalid input"
	case Parse:
		return "parse"
	case Unsolvable:
		return "unsolvable"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the tagged error type propagated by every package in the
// pipeline. Err is the wrapped cause, if any; Message is a short
// human-readable description added at the call boundary that produced
// this Error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New creates a Kind-tagged Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags err with kind and a short description, forming a new link in
// the error chain.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Context adds a short human-readable description to err without
// changing its Kind. This is the "Contextual" wrapping public entry
// points use at call boundaries ("Fail to build samples", "Fail to save
// tile k", ...). If err does not already carry a Kind, it is tagged
// Synthesis, the most common cause of an opaque failure crossing the
// engine boundary.
func Context(message string, err error) *Error {
	kind := Synthesis
	var inner *Error
	if errors.As(err, &inner) {
		kind = inner.Kind
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the first *Error in err's chain carries the given
// Kind. Deeper links are not inspected; Context copies the inner Kind
// outward, so a Kind survives context wrapping, while Wrap with a
// different Kind replaces it.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
