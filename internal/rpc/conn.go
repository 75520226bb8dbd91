// Package rpc implements the libvirt RPC call/reply protocol on top
// of internal/rpcwire framing and internal/xdr encoding: a single
// goroutine owns the connection's reads and demultiplexes replies to
// waiting callers by serial number, while writes are serialized with
// a mutex so concurrent callers never interleave frames.
package rpc

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/jbweber/virtnative/internal/rpcwire"
	"github.com/jbweber/virtnative/internal/xdr"
)

// Encodable is implemented by every generated request/argument type.
type Encodable interface {
	Encode(*xdr.Encoder) error
}

// Decodable is implemented by every generated reply type.
type Decodable interface {
	Decode(*xdr.Decoder) error
}

// EventSink receives asynchronous MESSAGE frames the server pushes
// outside of any pending Call, such as domain lifecycle events after
// the client has issued the matching subscribe procedure. Handle runs
// on the connection's receive loop; it must not block or call back
// into the Conn that invoked it.
type EventSink interface {
	Handle(procedure uint32, payload []byte)
}

// EventSinkFunc adapts a plain function to an EventSink.
type EventSinkFunc func(procedure uint32, payload []byte)

func (f EventSinkFunc) Handle(procedure uint32, payload []byte) {
	f(procedure, payload)
}

type pendingCall struct {
	replyCh chan *rpcwire.Frame
}

// Conn is one libvirt RPC connection. The zero value is not usable;
// construct with NewConn. A Conn is safe for concurrent use by
// multiple goroutines issuing Call.
type Conn struct {
	rwc io.ReadWriteCloser

	serial atomic.Uint32

	mu        sync.Mutex
	pending   map[uint32]*pendingCall
	closed    bool
	closeErr  error
	eventSink EventSink

	writeMu sync.Mutex

	done chan struct{}
}

// NewConn wraps rwc as an RPC connection and starts its receive loop.
// The caller must eventually call Close.
func NewConn(rwc io.ReadWriteCloser) *Conn {
	c := &Conn{
		rwc:     rwc,
		pending: make(map[uint32]*pendingCall),
		done:    make(chan struct{}),
	}
	c.serial.Store(1)
	go c.receiveLoop()
	return c
}

// SetEventSink registers sink to receive asynchronous MESSAGE frames.
// Passing nil clears any previously registered sink; with no sink
// registered, MESSAGE frames are dropped.
func (c *Conn) SetEventSink(sink EventSink) {
	c.mu.Lock()
	c.eventSink = sink
	c.mu.Unlock()
}

// Call issues one RPC procedure and blocks until its reply arrives,
// ctx is done, or the connection closes. args may be nil for
// procedures that take no arguments.
func (c *Conn) Call(ctx context.Context, procedure uint32, args Encodable, reply Decodable) error {
	serial := c.serial.Add(1) - 1

	var payload []byte
	if args != nil {
		enc := xdr.NewEncoder()
		if err := args.Encode(enc); err != nil {
			return &CodecError{Procedure: procedure, Err: err}
		}
		payload = enc.Bytes()
	}

	call := &pendingCall{replyCh: make(chan *rpcwire.Frame, 1)}

	// The pending slot must exist before the frame is written: the
	// receive loop can observe the reply on another goroutine's read
	// as soon as the write completes, and a missing slot would drop
	// that reply on the floor.
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrConnectionClosed
	}
	c.pending[serial] = call
	c.mu.Unlock()

	frame := &rpcwire.Frame{
		Header: rpcwire.Header{
			Program:   rpcwire.Program,
			Version:   rpcwire.Version,
			Procedure: procedure,
			Type:      rpcwire.MsgCall,
			Serial:    serial,
			Status:    rpcwire.StatusOK,
		},
		Payload: payload,
	}

	if err := c.writeFrame(frame); err != nil {
		c.mu.Lock()
		delete(c.pending, serial)
		c.mu.Unlock()
		return err
	}

	select {
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, serial)
		c.mu.Unlock()
		return ctx.Err()
	case <-c.done:
		return ErrConnectionClosed
	case frame, ok := <-call.replyCh:
		if !ok {
			return ErrConnectionClosed
		}
		return c.decodeReply(procedure, frame, reply)
	}
}

func (c *Conn) decodeReply(procedure uint32, frame *rpcwire.Frame, reply Decodable) error {
	switch frame.Header.Status {
	case rpcwire.StatusError:
		return decodeRemoteError(frame.Payload)
	case rpcwire.StatusContinue:
		return &ContinueError{Procedure: procedure, Payload: frame.Payload}
	}
	if reply == nil {
		return nil
	}
	dec := xdr.NewDecoder(frame.Payload)
	if err := reply.Decode(dec); err != nil {
		return &CodecError{Procedure: procedure, Err: err}
	}
	return nil
}

func (c *Conn) writeFrame(f *rpcwire.Frame) error {
	buf, err := f.Encode()
	if err != nil {
		return &FramingError{Err: err}
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := c.rwc.Write(buf); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// receiveLoop owns all reads from the connection. It runs until the
// underlying connection errors or is closed, delivering each REPLY or
// STREAM frame to its waiting Call by serial number (freeing that
// call's pending slot either way), routing MESSAGE frames to the
// registered event sink if any, and dropping frames with no matching
// pending call (a STREAM frame that arrives after its originating
// Call already returned).
func (c *Conn) receiveLoop() {
	for {
		frame, err := rpcwire.ReadFrame(c.rwc)
		if err != nil {
			c.shutdown(&TransportError{Err: err})
			return
		}

		if frame.Header.Type == rpcwire.MsgMessage {
			c.mu.Lock()
			sink := c.eventSink
			c.mu.Unlock()
			if sink != nil {
				sink.Handle(frame.Header.Procedure, frame.Payload)
			}
			continue
		}

		if frame.Header.Type != rpcwire.MsgReply && frame.Header.Type != rpcwire.MsgStream {
			continue
		}

		// Both REPLY and STREAM frames terminate their pending Call:
		// full stream fan-out (multiple STREAM frames per serial) is
		// out of scope, so the first frame of either type is the only
		// one a caller ever receives, and its pending slot must be
		// freed either way or it leaks for the life of the Conn.
		c.mu.Lock()
		call, ok := c.pending[frame.Header.Serial]
		if ok {
			delete(c.pending, frame.Header.Serial)
		}
		c.mu.Unlock()

		if !ok {
			continue
		}
		select {
		case call.replyCh <- frame:
		default:
		}
	}
}

func (c *Conn) shutdown(err error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.closeErr = err
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	close(c.done)
	for _, call := range pending {
		close(call.replyCh)
	}
	_ = c.rwc.Close()
}

// Close shuts down the connection and fails every pending Call with
// ErrConnectionClosed. It is safe to call more than once.
func (c *Conn) Close() error {
	c.shutdown(ErrConnectionClosed)
	return nil
}

func decodeRemoteError(payload []byte) error {
	d := xdr.NewDecoder(payload)
	code, err := d.Int32()
	if err != nil {
		return fmt.Errorf("rpc: decode remote error code: %w", err)
	}
	domain, err := d.Int32()
	if err != nil {
		return fmt.Errorf("rpc: decode remote error domain: %w", err)
	}
	present, err := d.Optional()
	if err != nil {
		return fmt.Errorf("rpc: decode remote error message presence: %w", err)
	}
	var msg string
	if present {
		msg, err = d.String(-1)
		if err != nil {
			return fmt.Errorf("rpc: decode remote error message: %w", err)
		}
	}
	return &RemoteError{Code: code, Domain: domain, Message: msg}
}
