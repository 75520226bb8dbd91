package vm

import (
	"context"

	"github.com/jbweber/virtnative/internal/protocol"
	"github.com/jbweber/virtnative/internal/storage"
)

// domainClient defines the domain operations needed for VM management.
// This wraps operations from *protocol.RemoteClient to allow for testing.
//
// In production, this is satisfied by *protocol.RemoteClient directly.
// In tests, this is satisfied by mock implementations.
type domainClient interface {
	// DomainLookupByName looks up a domain by name
	DomainLookupByName(ctx context.Context, args *protocol.DomainLookupByNameArgs) (*protocol.DomainLookupByNameRet, error)

	// DomainDefineXML defines a domain from XML
	DomainDefineXML(ctx context.Context, args *protocol.DomainDefineXMLArgs) (*protocol.DomainDefineXMLRet, error)

	// DomainCreate starts a domain
	DomainCreate(ctx context.Context, args *protocol.DomainCreateArgs) error

	// DomainGetState gets the state of a domain
	DomainGetState(ctx context.Context, args *protocol.DomainGetStateArgs) (*protocol.DomainGetStateRet, error)

	// DomainGetInfo gets resource info (CPU, memory) for a domain
	DomainGetInfo(ctx context.Context, args *protocol.DomainGetInfoArgs) (*protocol.DomainGetInfoRet, error)

	// DomainShutdown gracefully shuts down a domain
	DomainShutdown(ctx context.Context, args *protocol.DomainShutdownArgs) error

	// DomainDestroy force-stops a domain
	DomainDestroy(ctx context.Context, args *protocol.DomainDestroyArgs) error

	// DomainUndefine undefines a domain
	DomainUndefine(ctx context.Context, args *protocol.DomainUndefineArgs) error

	// DomainListAllDomains lists all domains, running and stopped
	DomainListAllDomains(ctx context.Context, args *protocol.DomainListAllDomainsArgs) (*protocol.DomainListAllDomainsRet, error)
}

// storageManager defines the storage operations needed for VM management.
// This allows for dependency injection and testing.
//
// In production, this is satisfied by *storage.Manager.
// In tests, this is satisfied by mock implementations.
type storageManager interface {
	// EnsureDefaultPools ensures the default foundry-images and foundry-vms pools exist
	EnsureDefaultPools(ctx context.Context) error

	// VolumeExists checks if a volume exists in a pool
	VolumeExists(ctx context.Context, poolName, volumeName string) (bool, error)

	// CreateVolume creates a new volume in a pool
	CreateVolume(ctx context.Context, poolName string, spec storage.VolumeSpec) error

	// DeleteVolume deletes a volume from a pool
	DeleteVolume(ctx context.Context, poolName, volumeName string) error

	// GetImagePath returns the filesystem path to an image volume
	GetImagePath(ctx context.Context, imageName string) (string, error)

	// ImageExists checks if an image exists in the foundry-images pool
	ImageExists(ctx context.Context, imageName string) (bool, error)

	// WriteVolumeData writes data to a volume (for cloud-init ISOs)
	WriteVolumeData(ctx context.Context, poolName, volumeName string, data []byte) error

	// ListVolumes lists all volumes in a pool
	ListVolumes(ctx context.Context, poolName string) ([]storage.VolumeInfo, error)
}
