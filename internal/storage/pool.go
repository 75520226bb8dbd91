package storage

import (
	"context"
	"fmt"
	"strings"

	libvirtxml "libvirt.org/go/libvirtxml"

	"github.com/jbweber/virtnative/internal/protocol"
)

// EnsurePool ensures a storage pool exists, creating it if necessary.
// If the pool already exists, this is a no-op.
func (m *Manager) EnsurePool(ctx context.Context, name string, poolType PoolType, path string) error {
	_, err := m.client.StoragePoolLookupByName(ctx, &protocol.StoragePoolLookupByNameArgs{Name: name})
	if err == nil {
		return nil
	}

	return m.CreatePool(ctx, name, poolType, path)
}

// CreatePool creates a new storage pool.
// Returns an error if the pool already exists.
func (m *Manager) CreatePool(ctx context.Context, name string, poolType PoolType, path string) error {
	var poolXML string
	var err error

	switch poolType {
	case PoolTypeDir:
		poolXML, err = generateDirPoolXML(name, path)
	default:
		return fmt.Errorf("unsupported pool type: %s", poolType)
	}

	if err != nil {
		return fmt.Errorf("failed to generate pool XML: %w", err)
	}

	defRet, err := m.client.StoragePoolDefineXML(ctx, &protocol.StoragePoolDefineXMLArgs{XML: poolXML, Flags: 0})
	if err != nil {
		return fmt.Errorf("failed to define pool: %w", err)
	}
	pool := defRet.Pool

	if err := m.client.StoragePoolBuild(ctx, &protocol.StoragePoolBuildArgs{Pool: pool, Flags: 0}); err != nil {
		_ = m.client.StoragePoolUndefine(ctx, &protocol.StoragePoolUndefineArgs{Pool: pool})
		return fmt.Errorf("failed to build pool: %w", err)
	}

	if err := m.client.StoragePoolCreate(ctx, &protocol.StoragePoolCreateArgs{Pool: pool, Flags: 0}); err != nil {
		_ = m.client.StoragePoolUndefine(ctx, &protocol.StoragePoolUndefineArgs{Pool: pool})
		return fmt.Errorf("failed to start pool: %w", err)
	}

	return nil
}

// DeletePool deletes a storage pool.
// If force is true, all volumes in the pool are deleted first.
// Returns an error if the pool doesn't exist or if deletion fails.
func (m *Manager) DeletePool(ctx context.Context, name string, force bool) error {
	if name == DefaultImagesPool || name == DefaultVMsPool {
		return fmt.Errorf("cannot delete default pool: %s", name)
	}

	lookup, err := m.client.StoragePoolLookupByName(ctx, &protocol.StoragePoolLookupByNameArgs{Name: name})
	if err != nil {
		return fmt.Errorf("pool not found: %w", err)
	}
	pool := lookup.Pool

	if force {
		volsRet, err := m.client.StoragePoolListAllVolumes(ctx, &protocol.StoragePoolListAllVolumesArgs{Pool: pool, NeedResults: 1, Flags: 0})
		if err != nil {
			return fmt.Errorf("failed to list volumes: %w", err)
		}

		for _, vol := range volsRet.Vols {
			if err := m.client.StorageVolDelete(ctx, &protocol.StorageVolDeleteArgs{Vol: vol, Flags: 0}); err != nil {
				continue
			}
		}
	}

	info, err := m.GetPoolInfo(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get pool info: %w", err)
	}

	if info.State == "running" {
		if err := m.client.StoragePoolDestroy(ctx, &protocol.StoragePoolDestroyArgs{Pool: pool}); err != nil {
			return fmt.Errorf("failed to stop pool: %w", err)
		}
	}

	if err := m.client.StoragePoolUndefine(ctx, &protocol.StoragePoolUndefineArgs{Pool: pool}); err != nil {
		return fmt.Errorf("failed to undefine pool: %w", err)
	}

	return nil
}

// ListPools lists all storage pools.
func (m *Manager) ListPools(ctx context.Context) ([]PoolInfo, error) {
	poolsRet, err := m.client.StoragePoolListAllPools(ctx, &protocol.StoragePoolListAllPoolsArgs{NeedResults: 1, Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}

	var poolInfos []PoolInfo
	for _, pool := range poolsRet.Pools {
		info, err := m.GetPoolInfo(ctx, pool.Name)
		if err != nil {
			// Skip pools we can't get info for
			continue
		}
		poolInfos = append(poolInfos, *info)
	}

	return poolInfos, nil
}

// GetPoolInfo gets detailed information about a storage pool. Capacity,
// allocation and state are derived from the pool's XML description: this
// protocol exposes no dedicated get-info call, and an active dir pool's
// XML always carries populated capacity/allocation/available elements,
// while an inactive one omits them.
func (m *Manager) GetPoolInfo(ctx context.Context, name string) (*PoolInfo, error) {
	lookup, err := m.client.StoragePoolLookupByName(ctx, &protocol.StoragePoolLookupByNameArgs{Name: name})
	if err != nil {
		return nil, fmt.Errorf("pool not found: %w", err)
	}
	pool := lookup.Pool

	xmlRet, err := m.client.StoragePoolGetXMLDesc(ctx, &protocol.StoragePoolGetXMLDescArgs{Pool: pool, Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("failed to get pool XML: %w", err)
	}

	var poolDef libvirtxml.StoragePool
	if err := poolDef.Unmarshal(xmlRet.XML); err != nil {
		return nil, fmt.Errorf("failed to parse pool XML: %w", err)
	}

	poolType := PoolTypeDir
	poolPath := ""
	if poolDef.Type == "dir" && poolDef.Target != nil {
		poolType = PoolTypeDir
		poolPath = poolDef.Target.Path
	}

	var capacity, allocation, available uint64
	stateStr := "inactive"
	if poolDef.Capacity != nil {
		capacity = poolDef.Capacity.Value
		stateStr = "running"
	}
	if poolDef.Allocation != nil {
		allocation = poolDef.Allocation.Value
	}
	if poolDef.Available != nil {
		available = poolDef.Available.Value
	}

	uuid := fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		pool.UUID[0], pool.UUID[1], pool.UUID[2], pool.UUID[3],
		pool.UUID[4], pool.UUID[5],
		pool.UUID[6], pool.UUID[7],
		pool.UUID[8], pool.UUID[9],
		pool.UUID[10], pool.UUID[11], pool.UUID[12], pool.UUID[13], pool.UUID[14], pool.UUID[15])

	return &PoolInfo{
		Name:       pool.Name,
		Type:       poolType,
		Path:       poolPath,
		UUID:       uuid,
		State:      stateStr,
		Capacity:   capacity,
		Allocation: allocation,
		Available:  available,
	}, nil
}

// RefreshPool refreshes a storage pool, updating its state.
func (m *Manager) RefreshPool(ctx context.Context, name string) error {
	lookup, err := m.client.StoragePoolLookupByName(ctx, &protocol.StoragePoolLookupByNameArgs{Name: name})
	if err != nil {
		return fmt.Errorf("pool not found: %w", err)
	}

	if err := m.client.StoragePoolRefresh(ctx, &protocol.StoragePoolRefreshArgs{Pool: lookup.Pool, Flags: 0}); err != nil {
		return fmt.Errorf("failed to refresh pool: %w", err)
	}

	return nil
}

// generateDirPoolXML generates XML for a directory-based storage pool.
func generateDirPoolXML(name, path string) (string, error) {
	pool := &libvirtxml.StoragePool{
		Type: "dir",
		Name: name,
		Target: &libvirtxml.StoragePoolTarget{
			Path: path,
			Permissions: &libvirtxml.StoragePoolTargetPermissions{
				Owner: "107", // qemu user (typically uid 107)
				Group: "107", // qemu group (typically gid 107)
				Mode:  "0755",
			},
		},
	}

	xmlBytes, err := pool.Marshal()
	if err != nil {
		return "", err
	}

	xml := string(xmlBytes)
	xml = strings.TrimPrefix(xml, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	xml = strings.TrimSpace(xml)

	return xml, nil
}
