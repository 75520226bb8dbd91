// Package protocol is the generated client for the libvirt RPC
// procedures declared in idl/remote_protocol.x, plus the hand-written
// RemoteClient type the generated methods in generated.go are defined
// on.
package protocol

//go:generate go run ../../cmd/virtnative-codegen -in ../../idl/remote_protocol.x -out generated.go -package protocol

import (
	"io"

	"github.com/jbweber/virtnative/internal/rpc"
)

// RemoteClient issues libvirt RPC calls over a single connection. Its
// per-procedure methods are generated (see generated.go); this file
// holds the parts a code generator has no business owning: the
// constructor and lifecycle methods.
type RemoteClient struct {
	conn *rpc.Conn
}

// NewRemoteClient wraps an already-dialed connection. The caller
// retains ownership of closing it via Close.
func NewRemoteClient(rwc io.ReadWriteCloser) *RemoteClient {
	return &RemoteClient{conn: rpc.NewConn(rwc)}
}

// Close shuts down the underlying connection.
func (c *RemoteClient) Close() error {
	return c.conn.Close()
}

// SetEventSink registers sink to receive asynchronous MESSAGE frames
// pushed by libvirtd, such as domain lifecycle events after issuing
// the matching connect-domain-event-register procedure. Passing nil
// clears any previously registered sink.
func (c *RemoteClient) SetEventSink(sink rpc.EventSink) {
	c.conn.SetEventSink(sink)
}
