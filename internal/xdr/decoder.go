package xdr

import (
	"encoding/binary"
	"math"
)

// Decoder reads XDR-encoded values from a byte slice, tracking a
// cursor. Decoding never panics; malformed input produces an error
// wrapping one of the sentinels in errors.go.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder returns a Decoder reading from b. b is not copied; it
// must not be mutated while the Decoder is in use.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Remaining returns the bytes not yet consumed.
func (d *Decoder) Remaining() []byte {
	return d.buf[d.pos:]
}

// Pos returns the current cursor offset into the input buffer.
func (d *Decoder) Pos() int {
	return d.pos
}

// take returns the next n bytes and advances the cursor, or
// ErrUnexpectedEOF if fewer than n bytes remain.
func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, wrap(ErrUnexpectedEOF, "need %d bytes, have %d", n, len(d.buf)-d.pos)
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// Int32 decodes a signed 32-bit integer.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.Uint32()
	return int32(v), err
}

// Uint32 decodes an unsigned 32-bit integer.
func (d *Decoder) Uint32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Bool decodes a boolean 4-byte word. Any value other than 0 or 1 is
// ErrInvalidBool.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.Uint32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, wrap(ErrInvalidBool, "value %d", v)
	}
}

// Int64 decodes a signed 64-bit integer (XDR "hyper").
func (d *Decoder) Int64() (int64, error) {
	v, err := d.Uint64()
	return int64(v), err
}

// Uint64 decodes an unsigned 64-bit integer (XDR "unsigned hyper").
func (d *Decoder) Uint64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// Float32 decodes an IEEE 754 single-precision float.
func (d *Decoder) Float32() (float32, error) {
	v, err := d.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Float64 decodes an IEEE 754 double-precision float.
func (d *Decoder) Float64() (float64, error) {
	v, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// skipPad consumes the padding bytes that follow a variable-width
// value, up to the next 4-byte boundary. Padding contents are not
// validated, per spec.
func (d *Decoder) skipPad() error {
	if n := d.pos % wordSize; n != 0 {
		_, err := d.take(wordSize - n)
		return err
	}
	return nil
}

// FixedOpaque decodes a fixed-length opaque value of exactly n bytes,
// then consumes padding to a 4-byte boundary. No length prefix is
// read.
func (d *Decoder) FixedOpaque(n int) ([]byte, error) {
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	if err := d.skipPad(); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// VarOpaque decodes variable-length opaque data: a 4-byte length
// prefix, that many bytes, then padding. If bound is non-negative and
// the decoded length exceeds it, ErrBoundExceeded is returned.
func (d *Decoder) VarOpaque(bound int) ([]byte, error) {
	n, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	if bound >= 0 && int(n) > bound {
		return nil, wrap(ErrBoundExceeded, "opaque<%d>: length %d exceeds bound", bound, n)
	}
	b, err := d.take(int(n))
	if err != nil {
		return nil, err
	}
	if err := d.skipPad(); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// String decodes a string as XDR variable-length opaque data. The
// result is the raw decoded bytes with no charset validation. If
// bound is non-negative and the decoded length exceeds it,
// ErrBoundExceeded is returned.
func (d *Decoder) String(bound int) (string, error) {
	b, err := d.VarOpaque(bound)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ArrayLen decodes the 4-byte element count preceding a variable
// array. The caller is responsible for then decoding exactly that
// many elements. If bound is non-negative and the decoded count
// exceeds it, ErrBoundExceeded is returned.
func (d *Decoder) ArrayLen(bound int) (int, error) {
	n, err := d.Uint32()
	if err != nil {
		return 0, err
	}
	if bound >= 0 && int(n) > bound {
		return 0, wrap(ErrBoundExceeded, "array<%d>: length %d exceeds bound", bound, n)
	}
	return int(n), nil
}

// Optional decodes the 4-byte discriminant of an optional (T*) value.
// Any value other than 0 or 1 is ErrInvalidOptional. The caller is
// responsible for then decoding the referenced value when present is
// true.
func (d *Decoder) Optional() (present bool, err error) {
	v, err := d.Uint32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, wrap(ErrInvalidOptional, "discriminant %d", v)
	}
}
