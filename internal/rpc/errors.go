package rpc

import (
	"errors"
	"fmt"
)

// ErrConnectionClosed is returned by Call once the connection has shut
// down, whether from a local Close or a transport failure.
var ErrConnectionClosed = errors.New("rpc: connection closed")

// CodecError wraps a failure encoding or decoding a call's XDR
// payload.
type CodecError struct {
	Procedure uint32
	Err       error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("rpc: procedure %d: codec error: %v", e.Procedure, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// FramingError wraps a failure encoding an outgoing frame, such as a
// frame longer than rpcwire.MaxFrameLen. A received frame that fails
// validation shuts the connection down like a transport failure, and
// calls then see ErrConnectionClosed.
type FramingError struct {
	Err error
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("rpc: framing error: %v", e.Err)
}

func (e *FramingError) Unwrap() error { return e.Err }

// TransportError wraps a failure at the underlying connection (read,
// write, or the peer hanging up).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ContinueError reports that a reply frame arrived with STATUS_CONTINUE:
// the procedure is a streaming call and more frames will follow on the
// same serial. Payload carries the frame's raw bytes verbatim, since
// full stream fan-out is out of scope and there is no typed reply
// shape to decode it into. A caller that doesn't expect a streaming
// reply can treat this like any other error; a caller that does can
// type-assert or errors.As against it and read Payload itself.
type ContinueError struct {
	Procedure uint32
	Payload   []byte
}

func (e *ContinueError) Error() string {
	return fmt.Sprintf("rpc: procedure %d: reply status CONTINUE", e.Procedure)
}

// RemoteError reports a libvirtd-side failure: the reply frame's
// status was STATUS_ERROR. Message and Code are decoded from the
// remote_error payload libvirtd attaches to such replies.
type RemoteError struct {
	Code    int32
	Domain  int32
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("rpc: remote error (domain %d, code %d): %s", e.Domain, e.Code, e.Message)
}
