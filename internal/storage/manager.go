package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jbweber/virtnative/internal/protocol"
)

// remoteClient is the subset of protocol.RemoteClient this package calls.
// Defined here so tests can substitute a fake without dialing libvirtd.
type remoteClient interface {
	StoragePoolLookupByName(ctx context.Context, args *protocol.StoragePoolLookupByNameArgs) (*protocol.StoragePoolLookupByNameRet, error)
	StoragePoolDefineXML(ctx context.Context, args *protocol.StoragePoolDefineXMLArgs) (*protocol.StoragePoolDefineXMLRet, error)
	StoragePoolBuild(ctx context.Context, args *protocol.StoragePoolBuildArgs) error
	StoragePoolCreate(ctx context.Context, args *protocol.StoragePoolCreateArgs) error
	StoragePoolDestroy(ctx context.Context, args *protocol.StoragePoolDestroyArgs) error
	StoragePoolUndefine(ctx context.Context, args *protocol.StoragePoolUndefineArgs) error
	StoragePoolGetXMLDesc(ctx context.Context, args *protocol.StoragePoolGetXMLDescArgs) (*protocol.StoragePoolGetXMLDescRet, error)
	StoragePoolListAllPools(ctx context.Context, args *protocol.StoragePoolListAllPoolsArgs) (*protocol.StoragePoolListAllPoolsRet, error)
	StoragePoolListAllVolumes(ctx context.Context, args *protocol.StoragePoolListAllVolumesArgs) (*protocol.StoragePoolListAllVolumesRet, error)
	StoragePoolRefresh(ctx context.Context, args *protocol.StoragePoolRefreshArgs) error
	StorageVolLookupByName(ctx context.Context, args *protocol.StorageVolLookupByNameArgs) (*protocol.StorageVolLookupByNameRet, error)
	StorageVolCreateXML(ctx context.Context, args *protocol.StorageVolCreateXMLArgs) (*protocol.StorageVolCreateXMLRet, error)
	StorageVolDelete(ctx context.Context, args *protocol.StorageVolDeleteArgs) error
	StorageVolGetXMLDesc(ctx context.Context, args *protocol.StorageVolGetXMLDescArgs) (*protocol.StorageVolGetXMLDescRet, error)
	StorageVolGetInfo(ctx context.Context, args *protocol.StorageVolGetInfoArgs) (*protocol.StorageVolGetInfoRet, error)
}

// Manager coordinates storage operations for pools, volumes, and images.
type Manager struct {
	client  remoteClient
	qemuUID int
	qemuGID int
}

// NewManager creates a new storage manager over an already-open RPC client,
// resolving the qemu user/group to own volume files it writes directly.
func NewManager(client *protocol.RemoteClient) (*Manager, error) {
	uid, gid, err := GetQEMUUserGroup()
	if err != nil {
		return nil, fmt.Errorf("failed to determine qemu user: %w", err)
	}
	return newManager(client, uid, gid)
}

func newManager(client remoteClient, qemuUID, qemuGID string) (*Manager, error) {
	uid, err := strconv.Atoi(qemuUID)
	if err != nil {
		return nil, fmt.Errorf("invalid qemu uid %q: %w", qemuUID, err)
	}
	gid, err := strconv.Atoi(qemuGID)
	if err != nil {
		return nil, fmt.Errorf("invalid qemu gid %q: %w", qemuGID, err)
	}
	return &Manager{client: client, qemuUID: uid, qemuGID: gid}, nil
}

// EnsureDefaultPools ensures that the default foundry-images and foundry-vms pools exist.
// This is called automatically during VM creation if needed.
func (m *Manager) EnsureDefaultPools(ctx context.Context) error {
	if err := m.EnsurePool(ctx, DefaultImagesPool, PoolTypeDir, DefaultImagesPath); err != nil {
		return fmt.Errorf("failed to ensure images pool: %w", err)
	}

	if err := m.EnsurePool(ctx, DefaultVMsPool, PoolTypeDir, DefaultVMsPath); err != nil {
		return fmt.Errorf("failed to ensure VMs pool: %w", err)
	}

	return nil
}
