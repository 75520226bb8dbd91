// Package libvirtclient wraps internal/protocol's generated RPC client with
// the connection lifecycle (dial, libvirt handshake, close) that
// internal/vm and its siblings need, the same way the teacher's go-libvirt
// based client used to wrap *libvirt.Libvirt.
package libvirtclient

import (
	"context"
	"fmt"
	"time"

	"github.com/jbweber/virtnative/internal/protocol"
	"github.com/jbweber/virtnative/internal/transport"
)

// DefaultURI is the libvirt connection URI used when none is supplied,
// matching the default local qemu:///system connection.
const DefaultURI = "qemu:///system"

// Client wraps a RemoteClient and the socket it runs over, so Close
// releases both.
type Client struct {
	remote *protocol.RemoteClient
}

// Connect dials libvirtd over a Unix domain socket and performs the RPC
// open handshake. An empty socketPath uses transport.DefaultSocketPath;
// a zero timeout uses transport.DefaultTimeout.
func Connect(socketPath string, timeout time.Duration) (*Client, error) {
	if timeout == 0 {
		timeout = transport.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return ConnectWithContext(ctx, socketPath, timeout)
}

// ConnectWithContext dials and opens the connection, honoring ctx for
// cancellation during both the dial and the handshake.
func ConnectWithContext(ctx context.Context, socketPath string, _ time.Duration) (*Client, error) {
	conn, err := transport.DialContext(ctx, socketPath)
	if err != nil {
		return nil, fmt.Errorf("libvirtclient: %w", err)
	}

	remote := protocol.NewRemoteClient(conn)
	if err := remote.ConnectOpen(ctx, &protocol.ConnectOpenArgs{Name: DefaultURI, Flags: 0}); err != nil {
		_ = remote.Close()
		return nil, fmt.Errorf("libvirtclient: open %s: %w", DefaultURI, err)
	}

	return &Client{remote: remote}, nil
}

// Close shuts down the underlying RPC connection. Safe to call on a nil
// receiver.
func (c *Client) Close() error {
	if c == nil || c.remote == nil {
		return nil
	}
	return c.remote.Close()
}

// Remote returns the underlying generated RPC client for direct
// procedure calls. Prefer higher-level helpers where they exist.
func (c *Client) Remote() *protocol.RemoteClient {
	return c.remote
}

// Ping verifies the connection is alive by issuing a cheap RPC call.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.remote == nil {
		return fmt.Errorf("libvirtclient: not connected")
	}
	if _, err := c.remote.ConnectGetLibVersion(ctx); err != nil {
		return fmt.Errorf("libvirtclient: connection is dead: %w", err)
	}
	return nil
}
