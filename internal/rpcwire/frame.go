// Package rpcwire implements libvirt's RPC message framing: a 4-byte
// big-endian total-length prefix followed by a 24-byte header
// (program, version, procedure, message type, serial, status) and a
// payload. The wire format for each frame is:
//
//	[4-byte length][24-byte header][payload]
//
// length counts the length field itself, the header and the payload,
// so a frame with an empty payload has length 28.
package rpcwire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Program and Version are fixed by the libvirt RPC protocol this
// package speaks.
const (
	Program = 0x20008086
	Version = 1
)

// HeaderLen is the fixed size, in bytes, of every frame's header.
const HeaderLen = 24

// MaxFrameLen bounds the total length field against a pathological or
// malicious peer; libvirtd itself rejects anything larger.
const MaxFrameLen = 256 * 1024 * 1024

// MsgType identifies the kind of RPC message a frame carries.
type MsgType uint32

const (
	MsgCall MsgType = iota
	MsgReply
	MsgMessage
	MsgStream
)

// Status reports the outcome of a call, carried in the reply header.
type Status uint32

const (
	StatusOK Status = iota
	StatusError
	StatusContinue
)

var (
	ErrProtocolMismatch = errors.New("rpcwire: program/version mismatch")
	ErrInvalidMsgType   = errors.New("rpcwire: invalid message type")
	ErrInvalidStatus    = errors.New("rpcwire: invalid status")
	ErrFrameTooLarge    = errors.New("rpcwire: frame length exceeds maximum")
)

// Header is the fixed 24-byte preamble of every frame.
type Header struct {
	Program   uint32
	Version   uint32
	Procedure uint32
	Type      MsgType
	Serial    uint32
	Status    Status
}

// Frame is one complete RPC message: its header plus an opaque,
// already-XDR-encoded payload.
type Frame struct {
	Header  Header
	Payload []byte
}

// Encode serializes f as the bytes that go on the wire, including the
// leading 4-byte length prefix.
func (f *Frame) Encode() ([]byte, error) {
	total := 4 + HeaderLen + len(f.Payload)
	if total > MaxFrameLen {
		return nil, fmt.Errorf("rpcwire: encode: %w (%d bytes)", ErrFrameTooLarge, total)
	}
	buf := make([]byte, total)
	binary.BigEndian.PutUint32(buf[0:4], uint32(total))
	binary.BigEndian.PutUint32(buf[4:8], f.Header.Program)
	binary.BigEndian.PutUint32(buf[8:12], f.Header.Version)
	binary.BigEndian.PutUint32(buf[12:16], f.Header.Procedure)
	binary.BigEndian.PutUint32(buf[16:20], uint32(f.Header.Type))
	binary.BigEndian.PutUint32(buf[20:24], f.Header.Serial)
	binary.BigEndian.PutUint32(buf[24:28], uint32(f.Header.Status))
	copy(buf[28:], f.Payload)
	return buf, nil
}

// ReadFrame reads one complete frame from r: the 4-byte length
// prefix, the 24-byte header, and the remaining payload bytes.
func ReadFrame(r io.Reader) (*Frame, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("rpcwire: read length prefix: %w", err)
	}
	total := binary.BigEndian.Uint32(lenBuf[:])
	if total > MaxFrameLen {
		return nil, fmt.Errorf("rpcwire: read: %w (%d bytes)", ErrFrameTooLarge, total)
	}
	if total < 4+HeaderLen {
		return nil, fmt.Errorf("rpcwire: frame length %d shorter than header", total)
	}

	rest := make([]byte, total-4)
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, fmt.Errorf("rpcwire: read frame body: %w", err)
	}

	hdr := Header{
		Program:   binary.BigEndian.Uint32(rest[0:4]),
		Version:   binary.BigEndian.Uint32(rest[4:8]),
		Procedure: binary.BigEndian.Uint32(rest[8:12]),
		Type:      MsgType(binary.BigEndian.Uint32(rest[12:16])),
		Serial:    binary.BigEndian.Uint32(rest[16:20]),
		Status:    Status(binary.BigEndian.Uint32(rest[20:24])),
	}
	if hdr.Program != Program || hdr.Version != Version {
		return nil, fmt.Errorf("rpcwire: program=%#x version=%d: %w", hdr.Program, hdr.Version, ErrProtocolMismatch)
	}
	if hdr.Type > MsgStream {
		return nil, fmt.Errorf("rpcwire: type=%d: %w", hdr.Type, ErrInvalidMsgType)
	}
	if hdr.Status > StatusContinue {
		return nil, fmt.Errorf("rpcwire: status=%d: %w", hdr.Status, ErrInvalidStatus)
	}

	return &Frame{Header: hdr, Payload: rest[HeaderLen:]}, nil
}
