// Package vm provides high-level VM management operations.
package vm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jbweber/virtnative/internal/libvirtclient"
	"github.com/jbweber/virtnative/internal/protocol"
	"github.com/jbweber/virtnative/internal/storage"
)

const (
	// shutdownTimeout is how long to wait for graceful shutdown before forcing.
	shutdownTimeout = 5 * time.Second

	// Domain states (from the remote protocol's virDomainState enum)
	domainStateRunning = 1
	domainStateShutoff = 5
)

// Destroy destroys a VM by name.
//
// This orchestrates the entire VM destruction process:
//  1. Check if VM exists
//  2. Get VM state
//  3. Graceful shutdown if running (5s timeout)
//  4. Force destroy if still running
//  5. Undefine domain
//  6. Delete all storage volumes from the default pools
//
// Volume cleanup is best-effort - if volumes can't be deleted, warnings are logged
// but the operation continues.
//
// Returns an error if the VM doesn't exist or if critical libvirt operations fail.
func Destroy(ctx context.Context, vmName string) error {
	slog.Info("connecting to libvirt")
	client, err := libvirtclient.ConnectWithContext(ctx, "", 0)
	if err != nil {
		return fmt.Errorf("failed to connect to libvirt: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close libvirt connection", "error", err)
		}
	}()

	storageMgr, err := storage.NewManager(client.Remote())
	if err != nil {
		return fmt.Errorf("failed to create storage manager: %w", err)
	}

	if err := storageMgr.EnsureDefaultPools(ctx); err != nil {
		return fmt.Errorf("failed to ensure default pools: %w", err)
	}

	return destroyWithDeps(ctx, vmName, client.Remote(), storageMgr)
}

// destroyWithDeps destroys a VM with injected dependencies.
// This allows for testing by accepting interfaces instead of concrete types.
func destroyWithDeps(ctx context.Context, vmName string, lv domainClient, sm storageManager) error {
	slog.Info("looking up VM", "name", vmName)
	lookup, err := lv.DomainLookupByName(ctx, &protocol.DomainLookupByNameArgs{Name: vmName})
	if err != nil {
		return fmt.Errorf("VM '%s' not found: %w", vmName, err)
	}
	dom := lookup.Dom

	stateRet, err := lv.DomainGetState(ctx, &protocol.DomainGetStateArgs{Dom: dom, Flags: 0})
	if err != nil {
		return fmt.Errorf("failed to get VM state: %w", err)
	}

	needsForceDestroy := false
	if stateRet.State == domainStateRunning {
		slog.Info("VM is running, attempting graceful shutdown", "name", vmName)
		if err := lv.DomainShutdown(ctx, &protocol.DomainShutdownArgs{Dom: dom}); err != nil {
			slog.Warn("graceful shutdown failed", "name", vmName, "error", err)
			needsForceDestroy = true
		} else {
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()

			ticker := time.NewTicker(500 * time.Millisecond)
			defer ticker.Stop()

			shutdownSucceeded := false
			for !shutdownSucceeded {
				select {
				case <-shutdownCtx.Done():
					slog.Warn("graceful shutdown timed out", "name", vmName)
					needsForceDestroy = true
					shutdownSucceeded = true
				case <-ticker.C:
					currentState, err := lv.DomainGetState(ctx, &protocol.DomainGetStateArgs{Dom: dom, Flags: 0})
					if err != nil {
						slog.Warn("failed to check shutdown state", "name", vmName, "error", err)
						needsForceDestroy = true
						shutdownSucceeded = true
					} else if currentState.State == domainStateShutoff {
						slog.Info("VM shut down gracefully", "name", vmName)
						shutdownSucceeded = true
					}
				}
			}
		}
	}

	if needsForceDestroy {
		currentState, err := lv.DomainGetState(ctx, &protocol.DomainGetStateArgs{Dom: dom, Flags: 0})
		if err != nil {
			slog.Warn("failed to check state before destroy", "name", vmName, "error", err)
		}
		if err == nil && currentState.State == domainStateRunning {
			slog.Info("force destroying VM", "name", vmName)
			if err := lv.DomainDestroy(ctx, &protocol.DomainDestroyArgs{Dom: dom}); err != nil {
				slog.Warn("force destroy failed", "name", vmName, "error", err)
			}
		}
	}

	slog.Info("undefining domain", "name", vmName)
	if err := lv.DomainUndefine(ctx, &protocol.DomainUndefineArgs{Dom: dom}); err != nil {
		return fmt.Errorf("failed to undefine domain: %w", err)
	}

	slog.Info("cleaning up storage volumes", "name", vmName)
	pools := []string{storage.DefaultVMsPool, storage.DefaultImagesPool}
	deletedCount := 0
	vmPrefix := vmName + "_"

	for _, poolName := range pools {
		volumes, err := sm.ListVolumes(ctx, poolName)
		if err != nil {
			slog.Warn("failed to list volumes in pool", "pool", poolName, "error", err)
			continue
		}

		for _, vol := range volumes {
			if strings.HasPrefix(vol.Name, vmPrefix) {
				slog.Info("deleting volume", "volume", vol.Name, "pool", poolName)
				if err := sm.DeleteVolume(ctx, poolName, vol.Name); err != nil {
					slog.Warn("failed to delete volume", "volume", vol.Name, "error", err)
				} else {
					deletedCount++
				}
			}
		}
	}

	slog.Info("VM destroyed successfully", "name", vmName, "volumes_deleted", deletedCount)
	return nil
}

// TODO(future): Add "repave" operation that replaces only boot disk and cloud-init ISO
// while preserving data disks. This would be useful for OS upgrades without data loss.
// Workflow: stop VM → delete boot volume → delete cloudinit volume → recreate both →
// redefine domain → start VM. Data volumes remain untouched.
