package vm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jbweber/virtnative/internal/libvirtclient"
	"github.com/jbweber/virtnative/internal/protocol"
)

// Get looks up a single VM by name and returns its current info.
func Get(ctx context.Context, name string) (VMInfo, error) {
	slog.Info("connecting to libvirt", "vm", name)
	client, err := libvirtclient.ConnectWithContext(ctx, "", 0)
	if err != nil {
		return VMInfo{}, fmt.Errorf("failed to connect to libvirt: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close libvirt connection", "error", err)
		}
	}()

	return getWithDeps(ctx, client.Remote(), name)
}

func getWithDeps(ctx context.Context, lv domainClient, name string) (VMInfo, error) {
	lookup, err := lv.DomainLookupByName(ctx, &protocol.DomainLookupByNameArgs{Name: name})
	if err != nil {
		return VMInfo{}, fmt.Errorf("VM '%s' not found: %w", name, err)
	}

	return getDomainInfo(ctx, lv, lookup.Dom)
}
