package storage

import (
	"context"
	"fmt"
	"os"
	"strings"

	libvirtxml "libvirt.org/go/libvirtxml"

	"github.com/jbweber/virtnative/internal/protocol"
)

// CreateVolume creates a new volume in the specified pool.
func (m *Manager) CreateVolume(ctx context.Context, poolName string, spec VolumeSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("invalid volume spec: %w", err)
	}

	lookup, err := m.client.StoragePoolLookupByName(ctx, &protocol.StoragePoolLookupByNameArgs{Name: poolName})
	if err != nil {
		return fmt.Errorf("pool not found: %w", err)
	}

	volumeXML, err := m.generateVolumeXML(ctx, poolName, spec)
	if err != nil {
		return fmt.Errorf("failed to generate volume XML: %w", err)
	}

	if _, err := m.client.StorageVolCreateXML(ctx, &protocol.StorageVolCreateXMLArgs{Pool: lookup.Pool, XML: volumeXML, Flags: 0}); err != nil {
		return fmt.Errorf("failed to create volume: %w", err)
	}

	return nil
}

// DeleteVolume deletes a volume from the specified pool.
func (m *Manager) DeleteVolume(ctx context.Context, poolName, volumeName string) error {
	lookup, err := m.client.StoragePoolLookupByName(ctx, &protocol.StoragePoolLookupByNameArgs{Name: poolName})
	if err != nil {
		return fmt.Errorf("pool not found: %w", err)
	}

	volLookup, err := m.client.StorageVolLookupByName(ctx, &protocol.StorageVolLookupByNameArgs{Pool: lookup.Pool, Name: volumeName})
	if err != nil {
		return fmt.Errorf("volume not found: %w", err)
	}

	if err := m.client.StorageVolDelete(ctx, &protocol.StorageVolDeleteArgs{Vol: volLookup.Vol, Flags: 0}); err != nil {
		return fmt.Errorf("failed to delete volume: %w", err)
	}

	return nil
}

// ListVolumes lists all volumes in the specified pool.
func (m *Manager) ListVolumes(ctx context.Context, poolName string) ([]VolumeInfo, error) {
	lookup, err := m.client.StoragePoolLookupByName(ctx, &protocol.StoragePoolLookupByNameArgs{Name: poolName})
	if err != nil {
		return nil, fmt.Errorf("pool not found: %w", err)
	}

	volsRet, err := m.client.StoragePoolListAllVolumes(ctx, &protocol.StoragePoolListAllVolumesArgs{Pool: lookup.Pool, NeedResults: 1, Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("failed to list volumes: %w", err)
	}

	var volumeInfos []VolumeInfo
	for _, vol := range volsRet.Vols {
		path, err := m.volumePath(ctx, vol)
		if err != nil {
			// Skip volumes we can't get the path for
			continue
		}

		infoRet, err := m.client.StorageVolGetInfo(ctx, &protocol.StorageVolGetInfoArgs{Vol: vol})
		if err != nil {
			// Skip volumes we can't get info for
			continue
		}

		volumeInfos = append(volumeInfos, VolumeInfo{
			Name:       vol.Name,
			Path:       path,
			Pool:       poolName,
			Capacity:   infoRet.Capacity,
			Allocation: infoRet.Allocation,
		})
	}

	return volumeInfos, nil
}

// GetVolumePath gets the full filesystem path for a volume.
func (m *Manager) GetVolumePath(ctx context.Context, poolName, volumeName string) (string, error) {
	lookup, err := m.client.StoragePoolLookupByName(ctx, &protocol.StoragePoolLookupByNameArgs{Name: poolName})
	if err != nil {
		return "", fmt.Errorf("pool not found: %w", err)
	}

	volLookup, err := m.client.StorageVolLookupByName(ctx, &protocol.StorageVolLookupByNameArgs{Pool: lookup.Pool, Name: volumeName})
	if err != nil {
		return "", fmt.Errorf("volume not found: %w", err)
	}

	return m.volumePath(ctx, volLookup.Vol)
}

// volumePath resolves a volume's filesystem path by parsing its XML
// description: this protocol has no dedicated get-path call.
func (m *Manager) volumePath(ctx context.Context, vol protocol.NonnullStorageVol) (string, error) {
	xmlRet, err := m.client.StorageVolGetXMLDesc(ctx, &protocol.StorageVolGetXMLDescArgs{Vol: vol, Flags: 0})
	if err != nil {
		return "", fmt.Errorf("failed to get volume XML: %w", err)
	}

	var volDef libvirtxml.StorageVolume
	if err := volDef.Unmarshal(xmlRet.XML); err != nil {
		return "", fmt.Errorf("failed to parse volume XML: %w", err)
	}

	if volDef.Target == nil || volDef.Target.Path == "" {
		return "", fmt.Errorf("volume %s has no target path", vol.Name)
	}

	return volDef.Target.Path, nil
}

// WriteVolumeData writes data to a volume's backing file (used for
// cloud-init ISOs). The upload RPC this protocol omits streams over a
// separate sub-protocol; writing directly to the resolved path is
// consistent with how disk.Manager populates boot and data disks.
func (m *Manager) WriteVolumeData(ctx context.Context, poolName, volumeName string, data []byte) error {
	path, err := m.GetVolumePath(ctx, poolName, volumeName)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write volume data: %w", err)
	}

	if err := os.Chown(path, m.qemuUID, m.qemuGID); err != nil {
		return fmt.Errorf("failed to set volume ownership: %w", err)
	}

	return nil
}

// VolumeExists checks if a volume exists in the specified pool.
func (m *Manager) VolumeExists(ctx context.Context, poolName, volumeName string) (bool, error) {
	lookup, err := m.client.StoragePoolLookupByName(ctx, &protocol.StoragePoolLookupByNameArgs{Name: poolName})
	if err != nil {
		return false, fmt.Errorf("pool not found: %w", err)
	}

	_, err = m.client.StorageVolLookupByName(ctx, &protocol.StorageVolLookupByNameArgs{Pool: lookup.Pool, Name: volumeName})
	if err != nil {
		return false, nil
	}

	return true, nil
}

// generateVolumeXML generates XML for a storage volume.
func (m *Manager) generateVolumeXML(ctx context.Context, poolName string, spec VolumeSpec) (string, error) {
	capacityBytes := spec.CapacityGB * 1024 * 1024 * 1024

	vol := &libvirtxml.StorageVolume{
		Type: "file",
		Name: spec.Name,
		Capacity: &libvirtxml.StorageVolumeSize{
			Value: capacityBytes,
			Unit:  "B",
		},
		Target: &libvirtxml.StorageVolumeTarget{
			Format: &libvirtxml.StorageVolumeTargetFormat{
				Type: string(spec.Format),
			},
			Permissions: &libvirtxml.StorageVolumeTargetPermissions{
				Owner: "107", // qemu user
				Group: "107", // qemu group
				Mode:  "0644",
			},
		},
	}

	if spec.BackingVolume != "" {
		backingPool := spec.BackingPool
		if backingPool == "" {
			backingPool = poolName
		}
		backingPath, err := m.GetVolumePath(ctx, backingPool, spec.BackingVolume)
		if err != nil {
			return "", fmt.Errorf("failed to get backing volume path: %w", err)
		}

		vol.BackingStore = &libvirtxml.StorageVolumeBackingStore{
			Path: backingPath,
			Format: &libvirtxml.StorageVolumeTargetFormat{
				Type: string(spec.Format),
			},
		}
	}

	xmlBytes, err := vol.Marshal()
	if err != nil {
		return "", err
	}

	xml := string(xmlBytes)
	xml = strings.TrimPrefix(xml, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	xml = strings.TrimSpace(xml)

	return xml, nil
}
