package storage

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	libvirtxml "libvirt.org/go/libvirtxml"

	"github.com/jbweber/virtnative/internal/protocol"
)

// newTestManager builds a Manager over a mockRemoteClient, owning the qemu
// uid/gid as the current test process so WriteVolumeData's chown succeeds
// without root.
func newTestManager(client *mockRemoteClient) *Manager {
	mgr, err := newManager(client, strconv.Itoa(os.Getuid()), strconv.Itoa(os.Getgid()))
	if err != nil {
		panic(err)
	}
	return mgr
}

// mockRemoteClient is a mock implementation of remoteClient for testing.
// Volume paths live under baseDir so tests exercising WriteVolumeData's
// direct filesystem write hit real, writable files.
type mockRemoteClient struct {
	pools   map[string]*mockPool
	volumes map[string]map[string]*mockVolume // pool name -> volume name -> volume
	baseDir string
}

type mockPool struct {
	name      string
	uuid      string
	running   bool
	capacity  uint64
	allocated uint64
	available uint64
	path      string
}

type mockVolume struct {
	name      string
	path      string
	capacity  uint64
	allocated uint64
}

func newMockRemoteClient() *mockRemoteClient {
	dir, err := os.MkdirTemp("", "virtnative-storage-test")
	if err != nil {
		panic(err)
	}
	return &mockRemoteClient{
		pools:   make(map[string]*mockPool),
		volumes: make(map[string]map[string]*mockVolume),
		baseDir: dir,
	}
}

func mockUUID(s string) protocol.UUID {
	var uuid protocol.UUID
	copy(uuid[:], s)
	return uuid
}

func (m *mockRemoteClient) StoragePoolLookupByName(_ context.Context, args *protocol.StoragePoolLookupByNameArgs) (*protocol.StoragePoolLookupByNameRet, error) {
	pool, ok := m.pools[args.Name]
	if !ok {
		return nil, fmt.Errorf("storage pool not found: %s", args.Name)
	}
	return &protocol.StoragePoolLookupByNameRet{
		Pool: protocol.NonnullStoragePool{Name: pool.name, UUID: mockUUID(pool.uuid)},
	}, nil
}

func (m *mockRemoteClient) StoragePoolDefineXML(_ context.Context, args *protocol.StoragePoolDefineXMLArgs) (*protocol.StoragePoolDefineXMLRet, error) {
	name := extractTagValue(args.XML, "name")
	if name == "" {
		return nil, fmt.Errorf("invalid pool XML: missing name")
	}
	if _, ok := m.pools[name]; ok {
		return nil, fmt.Errorf("storage pool already exists: %s", name)
	}

	pool := &mockPool{
		name:      name,
		uuid:      "mock-uuid-" + name,
		running:   false,
		capacity:  1024 * 1024 * 1024 * 1024, // 1 TB
		allocated: 0,
		available: 1024 * 1024 * 1024 * 1024, // 1 TB
		path:      extractTagValue(args.XML, "path"),
	}
	m.pools[name] = pool
	m.volumes[name] = make(map[string]*mockVolume)

	return &protocol.StoragePoolDefineXMLRet{
		Pool: protocol.NonnullStoragePool{Name: pool.name, UUID: mockUUID(pool.uuid)},
	}, nil
}

func (m *mockRemoteClient) StoragePoolCreate(_ context.Context, args *protocol.StoragePoolCreateArgs) error {
	p, ok := m.pools[args.Pool.Name]
	if !ok {
		return fmt.Errorf("storage pool not found: %s", args.Pool.Name)
	}
	p.running = true
	return nil
}

func (m *mockRemoteClient) StoragePoolBuild(_ context.Context, args *protocol.StoragePoolBuildArgs) error {
	if _, ok := m.pools[args.Pool.Name]; !ok {
		return fmt.Errorf("storage pool not found: %s", args.Pool.Name)
	}
	return nil
}

func (m *mockRemoteClient) StoragePoolDestroy(_ context.Context, args *protocol.StoragePoolDestroyArgs) error {
	p, ok := m.pools[args.Pool.Name]
	if !ok {
		return fmt.Errorf("storage pool not found: %s", args.Pool.Name)
	}
	p.running = false
	return nil
}

func (m *mockRemoteClient) StoragePoolUndefine(_ context.Context, args *protocol.StoragePoolUndefineArgs) error {
	if _, ok := m.pools[args.Pool.Name]; !ok {
		return fmt.Errorf("storage pool not found: %s", args.Pool.Name)
	}
	delete(m.pools, args.Pool.Name)
	delete(m.volumes, args.Pool.Name)
	return nil
}

func (m *mockRemoteClient) StoragePoolGetXMLDesc(_ context.Context, args *protocol.StoragePoolGetXMLDescArgs) (*protocol.StoragePoolGetXMLDescRet, error) {
	p, ok := m.pools[args.Pool.Name]
	if !ok {
		return nil, fmt.Errorf("storage pool not found: %s", args.Pool.Name)
	}

	def := &libvirtxml.StoragePool{
		Type: "dir",
		Name: p.name,
		Target: &libvirtxml.StoragePoolTarget{
			Path: p.path,
		},
	}
	if p.running {
		def.Capacity = &libvirtxml.StoragePoolSize{Value: p.capacity}
		def.Allocation = &libvirtxml.StoragePoolSize{Value: p.allocated}
		def.Available = &libvirtxml.StoragePoolSize{Value: p.available}
	}

	xml, err := def.Marshal()
	if err != nil {
		return nil, err
	}
	return &protocol.StoragePoolGetXMLDescRet{XML: xml}, nil
}

func (m *mockRemoteClient) StoragePoolListAllPools(_ context.Context, _ *protocol.StoragePoolListAllPoolsArgs) (*protocol.StoragePoolListAllPoolsRet, error) {
	var result []protocol.NonnullStoragePool
	for name, pool := range m.pools {
		result = append(result, protocol.NonnullStoragePool{Name: name, UUID: mockUUID(pool.uuid)})
	}
	return &protocol.StoragePoolListAllPoolsRet{Pools: result, Ret: uint32(len(result))}, nil
}

func (m *mockRemoteClient) StoragePoolListAllVolumes(_ context.Context, args *protocol.StoragePoolListAllVolumesArgs) (*protocol.StoragePoolListAllVolumesRet, error) {
	vols, ok := m.volumes[args.Pool.Name]
	if !ok {
		return nil, fmt.Errorf("storage pool not found: %s", args.Pool.Name)
	}

	var result []protocol.NonnullStorageVol
	for name := range vols {
		result = append(result, protocol.NonnullStorageVol{Pool: args.Pool.Name, Name: name})
	}
	return &protocol.StoragePoolListAllVolumesRet{Vols: result, Ret: uint32(len(result))}, nil
}

func (m *mockRemoteClient) StoragePoolRefresh(_ context.Context, args *protocol.StoragePoolRefreshArgs) error {
	if _, ok := m.pools[args.Pool.Name]; !ok {
		return fmt.Errorf("storage pool not found: %s", args.Pool.Name)
	}
	return nil
}

func (m *mockRemoteClient) StorageVolLookupByName(_ context.Context, args *protocol.StorageVolLookupByNameArgs) (*protocol.StorageVolLookupByNameRet, error) {
	vols, ok := m.volumes[args.Pool.Name]
	if !ok {
		return nil, fmt.Errorf("storage pool not found: %s", args.Pool.Name)
	}

	vol, ok := vols[args.Name]
	if !ok {
		return nil, fmt.Errorf("storage volume not found: %s", args.Name)
	}

	return &protocol.StorageVolLookupByNameRet{
		Vol: protocol.NonnullStorageVol{Pool: args.Pool.Name, Name: vol.name},
	}, nil
}

func (m *mockRemoteClient) StorageVolCreateXML(_ context.Context, args *protocol.StorageVolCreateXMLArgs) (*protocol.StorageVolCreateXMLRet, error) {
	vols, ok := m.volumes[args.Pool.Name]
	if !ok {
		return nil, fmt.Errorf("storage pool not found: %s", args.Pool.Name)
	}

	name := extractTagValue(args.XML, "name")
	if name == "" {
		return nil, fmt.Errorf("invalid volume XML: missing name")
	}
	if _, ok := vols[name]; ok {
		return nil, fmt.Errorf("storage volume already exists: %s", name)
	}

	poolDir := m.baseDir + "/" + args.Pool.Name
	if err := os.MkdirAll(poolDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create pool dir: %w", err)
	}
	volPath := poolDir + "/" + name
	if err := os.WriteFile(volPath, nil, 0644); err != nil {
		return nil, fmt.Errorf("failed to create volume file: %w", err)
	}

	vol := &mockVolume{
		name:      name,
		path:      volPath,
		capacity:  100 * 1024 * 1024 * 1024, // 100 GB default
		allocated: 0,
	}
	vols[name] = vol

	return &protocol.StorageVolCreateXMLRet{
		Vol: protocol.NonnullStorageVol{Pool: args.Pool.Name, Name: vol.name},
	}, nil
}

func (m *mockRemoteClient) StorageVolDelete(_ context.Context, args *protocol.StorageVolDeleteArgs) error {
	vols, ok := m.volumes[args.Vol.Pool]
	if !ok {
		return fmt.Errorf("storage pool not found: %s", args.Vol.Pool)
	}
	if _, ok := vols[args.Vol.Name]; !ok {
		return fmt.Errorf("storage volume not found: %s", args.Vol.Name)
	}
	delete(vols, args.Vol.Name)
	return nil
}

func (m *mockRemoteClient) StorageVolGetXMLDesc(_ context.Context, args *protocol.StorageVolGetXMLDescArgs) (*protocol.StorageVolGetXMLDescRet, error) {
	vols, ok := m.volumes[args.Vol.Pool]
	if !ok {
		return nil, fmt.Errorf("storage pool not found: %s", args.Vol.Pool)
	}
	v, ok := vols[args.Vol.Name]
	if !ok {
		return nil, fmt.Errorf("storage volume not found: %s", args.Vol.Name)
	}

	def := &libvirtxml.StorageVolume{
		Name: v.name,
		Target: &libvirtxml.StorageVolumeTarget{
			Path: v.path,
		},
	}
	xml, err := def.Marshal()
	if err != nil {
		return nil, err
	}
	return &protocol.StorageVolGetXMLDescRet{XML: xml}, nil
}

func (m *mockRemoteClient) StorageVolGetInfo(_ context.Context, args *protocol.StorageVolGetInfoArgs) (*protocol.StorageVolGetInfoRet, error) {
	vols, ok := m.volumes[args.Vol.Pool]
	if !ok {
		return nil, fmt.Errorf("storage pool not found: %s", args.Vol.Pool)
	}
	v, ok := vols[args.Vol.Name]
	if !ok {
		return nil, fmt.Errorf("storage volume not found: %s", args.Vol.Name)
	}
	return &protocol.StorageVolGetInfoRet{Capacity: v.capacity, Allocation: v.allocated}, nil
}

// Helper function to extract tag value from XML.
func extractTagValue(xml, tag string) string {
	start := strings.Index(xml, "<"+tag+">")
	if start == -1 {
		return ""
	}
	start += len(tag) + 2
	end := strings.Index(xml[start:], "</"+tag+">")
	if end == -1 {
		return ""
	}
	return xml[start : start+end]
}
