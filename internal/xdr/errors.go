// Package xdr implements the subset of RFC 4506 External Data
// Representation that the libvirt RPC protocol relies on: big-endian
// primitives, 4-byte alignment, bounded/unbounded strings and opaque
// data, fixed and variable arrays, optional pointers, enums, and
// discriminated unions.
//
// Encoding is deterministic and never fails for well-formed Go values
// except where a declared bound is violated. Decoding never panics on
// malformed input; every failure is returned as an error satisfying
// errors.Is against one of the sentinels below.
package xdr

import (
	"errors"
	"fmt"
)

// Sentinel errors for each XDR decode/encode failure kind named in the
// protocol design. Use errors.Is to test for a specific kind; Decode
// errors additionally carry positional context via fmt.Errorf wrapping.
var (
	// ErrUnexpectedEOF is returned when a decode operation runs past the
	// end of the input buffer.
	ErrUnexpectedEOF = errors.New("xdr: unexpected end of input")

	// ErrInvalidBool is returned when a decoded boolean's 4-byte word is
	// neither 0 nor 1.
	ErrInvalidBool = errors.New("xdr: invalid boolean value")

	// ErrInvalidOptional is returned when a decoded optional's
	// discriminant is neither 0 (absent) nor 1 (present).
	ErrInvalidOptional = errors.New("xdr: invalid optional discriminant")

	// ErrInvalidEnum is returned when a decoded enum value does not match
	// any variant declared for that enum type.
	ErrInvalidEnum = errors.New("xdr: invalid enum discriminant")

	// ErrInvalidUnion is returned when a decoded union discriminant
	// matches no case and the union has no default arm.
	ErrInvalidUnion = errors.New("xdr: invalid union discriminant")

	// ErrBoundExceeded is returned when a string, opaque, or array value
	// exceeds its declared maximum length, on either encode or decode.
	ErrBoundExceeded = errors.New("xdr: bound exceeded")

	// ErrDiscriminantMismatch is returned by Encode when a union value's
	// tagged arm disagrees with its own discriminant field.
	ErrDiscriminantMismatch = errors.New("xdr: discriminant mismatch")
)

// wrap attaches context to a sentinel error while keeping it matchable
// with errors.Is.
func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
