package vm

import (
	"context"
	"fmt"
	"sync"

	"github.com/jbweber/virtnative/internal/protocol"
	"github.com/jbweber/virtnative/internal/storage"
)

// mockDomainClient is a mock implementation of the domainClient interface for testing.
type mockDomainClient struct {
	mu sync.Mutex

	// Configurable behavior
	domainLookupByNameFunc  func(ctx context.Context, args *protocol.DomainLookupByNameArgs) (*protocol.DomainLookupByNameRet, error)
	domainDefineXMLFunc     func(ctx context.Context, args *protocol.DomainDefineXMLArgs) (*protocol.DomainDefineXMLRet, error)
	domainCreateFunc        func(ctx context.Context, args *protocol.DomainCreateArgs) error
	domainGetStateFunc      func(ctx context.Context, args *protocol.DomainGetStateArgs) (*protocol.DomainGetStateRet, error)
	domainGetInfoFunc       func(ctx context.Context, args *protocol.DomainGetInfoArgs) (*protocol.DomainGetInfoRet, error)
	domainShutdownFunc      func(ctx context.Context, args *protocol.DomainShutdownArgs) error
	domainDestroyFunc       func(ctx context.Context, args *protocol.DomainDestroyArgs) error
	domainUndefineFunc      func(ctx context.Context, args *protocol.DomainUndefineArgs) error
	domainListAllDomainsFunc func(ctx context.Context, args *protocol.DomainListAllDomainsArgs) (*protocol.DomainListAllDomainsRet, error)

	// Call tracking
	domainLookupByNameCalls  []string
	domainDefineXMLCalls     []string
	domainCreateCalls        []protocol.NonnullDomain
	domainGetStateCalls      []protocol.NonnullDomain
	domainGetInfoCalls       []protocol.NonnullDomain
	domainShutdownCalls      []protocol.NonnullDomain
	domainDestroyCalls       []protocol.NonnullDomain
	domainUndefineCalls      []protocol.NonnullDomain
	domainListAllDomainsCalls int

	// defined tracks names that a DomainDefineXML call has registered, so the
	// default lookup behavior mirrors libvirt: a domain is only found after
	// it has been defined.
	defined map[string]bool
}

// newMockDomainClient creates a new mock domain client with default behavior.
func newMockDomainClient() *mockDomainClient {
	m := &mockDomainClient{defined: make(map[string]bool)}

	m.domainLookupByNameFunc = func(ctx context.Context, args *protocol.DomainLookupByNameArgs) (*protocol.DomainLookupByNameRet, error) {
		if !m.defined[args.Name] {
			return nil, fmt.Errorf("domain not found: %s", args.Name)
		}
		return &protocol.DomainLookupByNameRet{Dom: protocol.NonnullDomain{Name: args.Name}}, nil
	}

	m.domainDefineXMLFunc = func(ctx context.Context, args *protocol.DomainDefineXMLArgs) (*protocol.DomainDefineXMLRet, error) {
		return &protocol.DomainDefineXMLRet{Dom: protocol.NonnullDomain{Name: "test-vm"}}, nil
	}

	m.domainCreateFunc = func(ctx context.Context, args *protocol.DomainCreateArgs) error {
		return nil
	}

	m.domainGetStateFunc = func(ctx context.Context, args *protocol.DomainGetStateArgs) (*protocol.DomainGetStateRet, error) {
		return &protocol.DomainGetStateRet{State: 1}, nil // VIR_DOMAIN_RUNNING
	}

	m.domainGetInfoFunc = func(ctx context.Context, args *protocol.DomainGetInfoArgs) (*protocol.DomainGetInfoRet, error) {
		return &protocol.DomainGetInfoRet{State: 1, MaxMem: 2 * 1024 * 1024, Memory: 2 * 1024 * 1024, NrVirtCPU: 2}, nil
	}

	m.domainShutdownFunc = func(ctx context.Context, args *protocol.DomainShutdownArgs) error {
		return nil
	}

	m.domainDestroyFunc = func(ctx context.Context, args *protocol.DomainDestroyArgs) error {
		return nil
	}

	m.domainUndefineFunc = func(ctx context.Context, args *protocol.DomainUndefineArgs) error {
		return nil
	}

	m.domainListAllDomainsFunc = func(ctx context.Context, args *protocol.DomainListAllDomainsArgs) (*protocol.DomainListAllDomainsRet, error) {
		return &protocol.DomainListAllDomainsRet{}, nil
	}

	return m
}

func (m *mockDomainClient) DomainLookupByName(ctx context.Context, args *protocol.DomainLookupByNameArgs) (*protocol.DomainLookupByNameRet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domainLookupByNameCalls = append(m.domainLookupByNameCalls, args.Name)
	return m.domainLookupByNameFunc(ctx, args)
}

func (m *mockDomainClient) DomainDefineXML(ctx context.Context, args *protocol.DomainDefineXMLArgs) (*protocol.DomainDefineXMLRet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domainDefineXMLCalls = append(m.domainDefineXMLCalls, args.XML)
	ret, err := m.domainDefineXMLFunc(ctx, args)
	if err == nil {
		m.defined[ret.Dom.Name] = true
	}
	return ret, err
}

func (m *mockDomainClient) DomainCreate(ctx context.Context, args *protocol.DomainCreateArgs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domainCreateCalls = append(m.domainCreateCalls, args.Dom)
	return m.domainCreateFunc(ctx, args)
}

func (m *mockDomainClient) DomainGetState(ctx context.Context, args *protocol.DomainGetStateArgs) (*protocol.DomainGetStateRet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domainGetStateCalls = append(m.domainGetStateCalls, args.Dom)
	return m.domainGetStateFunc(ctx, args)
}

func (m *mockDomainClient) DomainGetInfo(ctx context.Context, args *protocol.DomainGetInfoArgs) (*protocol.DomainGetInfoRet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domainGetInfoCalls = append(m.domainGetInfoCalls, args.Dom)
	return m.domainGetInfoFunc(ctx, args)
}

func (m *mockDomainClient) DomainShutdown(ctx context.Context, args *protocol.DomainShutdownArgs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domainShutdownCalls = append(m.domainShutdownCalls, args.Dom)
	return m.domainShutdownFunc(ctx, args)
}

func (m *mockDomainClient) DomainDestroy(ctx context.Context, args *protocol.DomainDestroyArgs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domainDestroyCalls = append(m.domainDestroyCalls, args.Dom)
	return m.domainDestroyFunc(ctx, args)
}

func (m *mockDomainClient) DomainUndefine(ctx context.Context, args *protocol.DomainUndefineArgs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domainUndefineCalls = append(m.domainUndefineCalls, args.Dom)
	return m.domainUndefineFunc(ctx, args)
}

func (m *mockDomainClient) DomainListAllDomains(ctx context.Context, args *protocol.DomainListAllDomainsArgs) (*protocol.DomainListAllDomainsRet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domainListAllDomainsCalls++
	return m.domainListAllDomainsFunc(ctx, args)
}

// mockStorageManager is a mock implementation of the storageManager interface for testing.
type mockStorageManager struct {
	mu sync.Mutex

	// Configurable behavior
	ensureDefaultPoolsFunc func(ctx context.Context) error
	volumeExistsFunc       func(ctx context.Context, poolName, volumeName string) (bool, error)
	createVolumeFunc       func(ctx context.Context, poolName string, spec storage.VolumeSpec) error
	deleteVolumeFunc       func(ctx context.Context, poolName, volumeName string) error
	getImagePathFunc       func(ctx context.Context, imageName string) (string, error)
	imageExistsFunc        func(ctx context.Context, imageName string) (bool, error)
	writeVolumeDataFunc    func(ctx context.Context, poolName, volumeName string, data []byte) error
	listVolumesFunc        func(ctx context.Context, poolName string) ([]storage.VolumeInfo, error)

	// Call tracking
	ensureDefaultPoolsCalls int
	volumeExistsCalls       []string // format: "pool/volume"
	createVolumeCalls       []storage.VolumeSpec
	deleteVolumeCalls       []string // format: "pool/volume"
	getImagePathCalls       []string
	imageExistsCalls        []string
	writeVolumeDataCalls    []string // format: "pool/volume"
	listVolumesCalls        []string // pool names
}

// newMockStorageManager creates a new mock storage manager with default behavior.
func newMockStorageManager() *mockStorageManager {
	return &mockStorageManager{
		// Default: pools exist
		ensureDefaultPoolsFunc: func(ctx context.Context) error {
			return nil
		},
		// Default: volumes don't exist
		volumeExistsFunc: func(ctx context.Context, poolName, volumeName string) (bool, error) {
			return false, nil
		},
		// Default: create succeeds
		createVolumeFunc: func(ctx context.Context, poolName string, spec storage.VolumeSpec) error {
			return nil
		},
		// Default: delete succeeds
		deleteVolumeFunc: func(ctx context.Context, poolName, volumeName string) error {
			return nil
		},
		// Default: image exists with path
		getImagePathFunc: func(ctx context.Context, imageName string) (string, error) {
			return "/var/lib/libvirt/images/foundry/foundry-images/" + imageName, nil
		},
		// Default: image exists
		imageExistsFunc: func(ctx context.Context, imageName string) (bool, error) {
			return true, nil
		},
		// Default: write succeeds
		writeVolumeDataFunc: func(ctx context.Context, poolName, volumeName string, data []byte) error {
			return nil
		},
		// Default: no volumes
		listVolumesFunc: func(ctx context.Context, poolName string) ([]storage.VolumeInfo, error) {
			return []storage.VolumeInfo{}, nil
		},
	}
}

func (m *mockStorageManager) EnsureDefaultPools(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureDefaultPoolsCalls++
	return m.ensureDefaultPoolsFunc(ctx)
}

func (m *mockStorageManager) VolumeExists(ctx context.Context, poolName, volumeName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumeExistsCalls = append(m.volumeExistsCalls, poolName+"/"+volumeName)
	return m.volumeExistsFunc(ctx, poolName, volumeName)
}

func (m *mockStorageManager) CreateVolume(ctx context.Context, poolName string, spec storage.VolumeSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createVolumeCalls = append(m.createVolumeCalls, spec)
	return m.createVolumeFunc(ctx, poolName, spec)
}

func (m *mockStorageManager) DeleteVolume(ctx context.Context, poolName, volumeName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteVolumeCalls = append(m.deleteVolumeCalls, poolName+"/"+volumeName)
	return m.deleteVolumeFunc(ctx, poolName, volumeName)
}

func (m *mockStorageManager) GetImagePath(ctx context.Context, imageName string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getImagePathCalls = append(m.getImagePathCalls, imageName)
	return m.getImagePathFunc(ctx, imageName)
}

func (m *mockStorageManager) ImageExists(ctx context.Context, imageName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.imageExistsCalls = append(m.imageExistsCalls, imageName)
	return m.imageExistsFunc(ctx, imageName)
}

func (m *mockStorageManager) WriteVolumeData(ctx context.Context, poolName, volumeName string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeVolumeDataCalls = append(m.writeVolumeDataCalls, poolName+"/"+volumeName)
	return m.writeVolumeDataFunc(ctx, poolName, volumeName, data)
}

func (m *mockStorageManager) ListVolumes(ctx context.Context, poolName string) ([]storage.VolumeInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listVolumesCalls = append(m.listVolumesCalls, poolName)
	return m.listVolumesFunc(ctx, poolName)
}
