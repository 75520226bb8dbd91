// Package vm provides high-level VM management operations.
package vm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/jbweber/virtnative/internal/libvirtclient"
	"github.com/jbweber/virtnative/internal/protocol"
)

// VMInfo represents information about a VM.
type VMInfo struct {
	Name     string `json:"name" yaml:"name"`
	UUID     string `json:"uuid" yaml:"uuid"`
	State    string `json:"state" yaml:"state"`
	CPUs     uint32 `json:"cpus" yaml:"cpus"`
	MemoryMB uint64 `json:"memory_mb" yaml:"memory_mb"`
}

// List lists all VMs (both running and stopped).
//
// Returns a slice of VMInfo structs containing details about each VM.
func List(ctx context.Context) ([]VMInfo, error) {
	slog.Info("connecting to libvirt")
	client, err := libvirtclient.ConnectWithContext(ctx, "", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to libvirt: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close libvirt connection", "error", err)
		}
	}()

	return listWithDeps(ctx, client.Remote())
}

// listWithDeps lists VMs with injected dependencies.
// This allows for testing by accepting interfaces instead of concrete types.
func listWithDeps(ctx context.Context, lv domainClient) ([]VMInfo, error) {
	ret, err := lv.DomainListAllDomains(ctx, &protocol.DomainListAllDomainsArgs{NeedResults: 1, Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	if len(ret.Domains) == 0 {
		return []VMInfo{}, nil
	}

	vms := make([]VMInfo, 0, len(ret.Domains))
	for _, domain := range ret.Domains {
		info, err := getDomainInfo(ctx, lv, domain)
		if err != nil {
			slog.Warn("failed to get info for domain", "name", domain.Name, "error", err)
			continue
		}
		vms = append(vms, info)
	}

	return vms, nil
}

// getDomainInfo gets detailed information about a single domain.
func getDomainInfo(ctx context.Context, lv domainClient, domain protocol.NonnullDomain) (VMInfo, error) {
	stateRet, err := lv.DomainGetState(ctx, &protocol.DomainGetStateArgs{Dom: domain, Flags: 0})
	if err != nil {
		return VMInfo{}, fmt.Errorf("failed to get domain state: %w", err)
	}

	infoRet, err := lv.DomainGetInfo(ctx, &protocol.DomainGetInfoArgs{Dom: domain})
	if err != nil {
		return VMInfo{}, fmt.Errorf("failed to get domain info: %w", err)
	}

	if int64(infoRet.State) != int64(stateRet.State) {
		slog.Warn("state mismatch", "name", domain.Name, "get_state", stateRet.State, "get_info", infoRet.State)
	}

	memoryMB := infoRet.Memory / 1024

	return VMInfo{
		Name:     domain.Name,
		UUID:     uuid.UUID(domain.UUID).String(),
		State:    stateToString(stateRet.State),
		CPUs:     infoRet.NrVirtCPU,
		MemoryMB: memoryMB,
	}, nil
}

// stateToString converts a domain state code to a human-readable string.
func stateToString(state int32) string {
	switch state {
	case 0:
		return "no state"
	case 1:
		return "running"
	case 2:
		return "blocked"
	case 3:
		return "paused"
	case 4:
		return "shutdown"
	case 5:
		return "shutoff"
	case 6:
		return "crashed"
	case 7:
		return "pmsuspended"
	default:
		return fmt.Sprintf("unknown(%d)", state)
	}
}

// PrintVMs prints a formatted table of VMs to stdout.
func PrintVMs(vms []VMInfo) {
	if len(vms) == 0 {
		fmt.Println("No VMs found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tUUID\tSTATE\tCPUs\tMEMORY")

	for _, vm := range vms {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d MiB\n",
			vm.Name, vm.UUID, vm.State, vm.CPUs, vm.MemoryMB)
	}

	_ = w.Flush()
}
