package xdr

import (
	"encoding/binary"
	"math"
)

// wordSize is the XDR alignment unit: every variable-width item is
// padded to a multiple of 4 bytes.
const wordSize = 4

// Encoder appends XDR-encoded values to an internal buffer. The zero
// value is ready to use. Primitive writes never fail; writes of
// bounded variable-width values return an error if the value exceeds
// its declared bound.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with an empty buffer.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the bytes written so far. The returned slice aliases
// the Encoder's internal buffer and must not be mutated.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Int32 encodes a signed 32-bit integer as 4 bytes big-endian.
func (e *Encoder) Int32(v int32) {
	e.Uint32(uint32(v))
}

// Uint32 encodes an unsigned 32-bit integer as 4 bytes big-endian.
func (e *Encoder) Uint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// Bool encodes a boolean as a 4-byte word: 0 for false, 1 for true.
func (e *Encoder) Bool(v bool) {
	if v {
		e.Uint32(1)
	} else {
		e.Uint32(0)
	}
}

// Int64 encodes a signed 64-bit integer (XDR "hyper") as 8 bytes
// big-endian.
func (e *Encoder) Int64(v int64) {
	e.Uint64(uint64(v))
}

// Uint64 encodes an unsigned 64-bit integer (XDR "unsigned hyper") as
// 8 bytes big-endian.
func (e *Encoder) Uint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// Float32 encodes an IEEE 754 single-precision float as 4 bytes
// big-endian.
func (e *Encoder) Float32(v float32) {
	e.Uint32(math.Float32bits(v))
}

// Float64 encodes an IEEE 754 double-precision float as 8 bytes
// big-endian.
func (e *Encoder) Float64(v float64) {
	e.Uint64(math.Float64bits(v))
}

// pad appends zero bytes to round the buffer up to the next 4-byte
// boundary.
func (e *Encoder) pad() {
	if n := len(e.buf) % wordSize; n != 0 {
		var zero [wordSize]byte
		e.buf = append(e.buf, zero[:wordSize-n]...)
	}
}

// rawOpaque appends b verbatim, then pads to a 4-byte boundary. It
// performs no length prefix and no bound check; callers decide which
// of those apply for their XDR type.
func (e *Encoder) rawOpaque(b []byte) {
	e.buf = append(e.buf, b...)
	e.pad()
}

// FixedOpaque encodes a fixed-length opaque value: exactly len(b)
// bytes, no length prefix, then padding to a 4-byte boundary. The
// caller's Go type determines the declared fixed length; there is no
// bound to violate.
func (e *Encoder) FixedOpaque(b []byte) {
	e.rawOpaque(b)
}

// VarOpaque encodes variable-length opaque data: a 4-byte length
// prefix, the bytes, then padding. If bound is non-negative and
// len(b) exceeds it, ErrBoundExceeded is returned and nothing is
// written.
func (e *Encoder) VarOpaque(b []byte, bound int) error {
	if bound >= 0 && len(b) > bound {
		return wrap(ErrBoundExceeded, "opaque<%d>: length %d exceeds bound", bound, len(b))
	}
	e.Uint32(uint32(len(b)))
	e.rawOpaque(b)
	return nil
}

// String encodes a string as XDR variable-length opaque data: a
// 4-byte length prefix, the raw bytes of s (no charset validation),
// then padding. If bound is non-negative and len(s) exceeds it,
// ErrBoundExceeded is returned and nothing is written.
func (e *Encoder) String(s string, bound int) error {
	return e.VarOpaque([]byte(s), bound)
}

// ArrayLen encodes the 4-byte element count that precedes a variable
// array (T<N> or T<>). The caller is responsible for then encoding
// exactly n elements. If bound is non-negative and n exceeds it,
// ErrBoundExceeded is returned and nothing is written.
func (e *Encoder) ArrayLen(n int, bound int) error {
	if bound >= 0 && n > bound {
		return wrap(ErrBoundExceeded, "array<%d>: length %d exceeds bound", bound, n)
	}
	e.Uint32(uint32(n))
	return nil
}

// Optional encodes the 4-byte discriminant of an optional (T*) value:
// 1 if present, 0 if absent. The caller is responsible for then
// encoding the referenced value when present is true.
func (e *Encoder) Optional(present bool) {
	e.Bool(present)
}
