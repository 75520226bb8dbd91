// Package vm provides high-level VM management operations.
package vm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jbweber/virtnative/internal/cloudinit"
	"github.com/jbweber/virtnative/internal/config"
	"github.com/jbweber/virtnative/internal/libvirtclient"
	"github.com/jbweber/virtnative/internal/protocol"
	"github.com/jbweber/virtnative/internal/storage"
)

// Create creates a VM from a YAML configuration file.
//
// This orchestrates the entire VM creation process:
//  1. Load and validate configuration
//  2. Connect to libvirt
//  3. Pre-flight checks (VM exists, volume collisions, backing image)
//  4. Create storage (boot volume, data volumes, cloud-init ISO)
//  5. Define domain in libvirt
//  6. Start the domain
//
// On any failure, attempts to clean up partially created resources.
//
// Returns an error if any step fails.
func Create(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	return CreateFromConfig(ctx, cfg)
}

// CreateFromConfig creates a VM from an already-loaded configuration.
//
// This is useful for testing and for callers that already have a config object.
// See Create() for the full workflow description.
func CreateFromConfig(ctx context.Context, cfg *config.VMConfig) error {
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

	return createFromConfigWithDeps(ctx, cfg, client.Remote(), storageMgr)
}

// createFromConfigWithDeps creates a VM with injected dependencies.
// This allows for testing by accepting interfaces instead of concrete types.
func createFromConfigWithDeps(ctx context.Context, cfg *config.VMConfig, lv domainClient, sm storageManager) error {
	var (
		domainDefined  bool
		storageCreated bool
	)

	var createErr error
	defer func() {
		if createErr != nil {
			cleanupWithDeps(ctx, cfg, sm, lv, domainDefined, storageCreated)
		}
	}()

	slog.Info("checking if VM already exists", "name", cfg.Name)
	if _, err := lv.DomainLookupByName(ctx, &protocol.DomainLookupByNameArgs{Name: cfg.Name}); err == nil {
		createErr = fmt.Errorf("VM '%s' already exists", cfg.Name)
		return createErr
	}

	if createErr = sm.EnsureDefaultPools(ctx); createErr != nil {
		return fmt.Errorf("failed to ensure default pools: %w", createErr)
	}

	storagePool := libvirtclient.GetStoragePool(cfg)
	bootVolumeName := libvirtclient.GetBootVolumeName(cfg)

	exists, createErr := sm.VolumeExists(ctx, storagePool, bootVolumeName)
	if createErr != nil {
		return fmt.Errorf("failed to check boot volume: %w", createErr)
	}
	if exists {
		createErr = fmt.Errorf("boot volume already exists: %s/%s", storagePool, bootVolumeName)
		return createErr
	}

	bootSpec := storage.VolumeSpec{
		Name:       bootVolumeName,
		Type:       storage.VolumeTypeBoot,
		Format:     storage.VolumeFormatQCOW2,
		CapacityGB: uint64(cfg.BootDisk.SizeGB),
	}

	if !cfg.BootDisk.Empty {
		imagePool, imageVolume, isFilePath, err := cfg.BootDisk.ParseImageReference()
		if err != nil {
			createErr = fmt.Errorf("invalid boot disk image reference: %w", err)
			return createErr
		}
		if isFilePath {
			createErr = fmt.Errorf("boot disk image %q: file paths are not supported, import the image into a pool first", cfg.BootDisk.Image)
			return createErr
		}

		imageExists, err := sm.ImageExists(ctx, imageVolume)
		if err != nil {
			createErr = fmt.Errorf("failed to check backing image: %w", err)
			return createErr
		}
		if !imageExists {
			createErr = fmt.Errorf("backing image not found: %s", imageVolume)
			return createErr
		}

		bootSpec.BackingVolume = imageVolume
		bootSpec.BackingPool = imagePool
	}

	slog.Info("creating boot volume", "pool", storagePool, "volume", bootVolumeName, "size_gb", cfg.BootDisk.SizeGB)
	if createErr = sm.CreateVolume(ctx, storagePool, bootSpec); createErr != nil {
		return fmt.Errorf("failed to create boot volume: %w", createErr)
	}
	storageCreated = true

	for _, dataDisk := range cfg.DataDisks {
		dataVolumeName := libvirtclient.GetDataVolumeName(cfg, dataDisk.Device)
		slog.Info("creating data volume", "pool", storagePool, "volume", dataVolumeName, "size_gb", dataDisk.SizeGB)
		dataSpec := storage.VolumeSpec{
			Name:       dataVolumeName,
			Type:       storage.VolumeTypeData,
			Format:     storage.VolumeFormatQCOW2,
			CapacityGB: uint64(dataDisk.SizeGB),
		}
		if createErr = sm.CreateVolume(ctx, storagePool, dataSpec); createErr != nil {
			return fmt.Errorf("failed to create data volume %s: %w", dataDisk.Device, createErr)
		}
	}

	if cfg.CloudInit != nil {
		slog.Info("generating cloud-init ISO")
		var isoData []byte
		isoData, createErr = cloudinit.GenerateISO(cfg)
		if createErr != nil {
			return fmt.Errorf("failed to generate cloud-init ISO: %w", createErr)
		}

		cloudInitVolumeName := libvirtclient.GetCloudInitVolumeName(cfg)
		cloudInitSpec := storage.VolumeSpec{
			Name:       cloudInitVolumeName,
			Type:       storage.VolumeTypeCloudInit,
			Format:     storage.VolumeFormatRaw,
			CapacityGB: 1,
		}
		if createErr = sm.CreateVolume(ctx, storagePool, cloudInitSpec); createErr != nil {
			return fmt.Errorf("failed to create cloud-init volume: %w", createErr)
		}
		if createErr = sm.WriteVolumeData(ctx, storagePool, cloudInitVolumeName, isoData); createErr != nil {
			return fmt.Errorf("failed to write cloud-init ISO: %w", createErr)
		}
	} else {
		slog.Info("skipping cloud-init, not configured")
	}

	slog.Info("generating domain XML")
	var domainXML string
	domainXML, createErr = libvirtclient.GenerateDomainXML(cfg)
	if createErr != nil {
		return fmt.Errorf("failed to generate domain XML: %w", createErr)
	}

	slog.Info("defining domain", "name", cfg.Name)
	defineRet, createErr := lv.DomainDefineXML(ctx, &protocol.DomainDefineXMLArgs{XML: domainXML})
	if createErr != nil {
		return fmt.Errorf("failed to define domain: %w", createErr)
	}
	domainDefined = true

	slog.Info("starting domain", "name", cfg.Name)
	if createErr = lv.DomainCreate(ctx, &protocol.DomainCreateArgs{Dom: defineRet.Dom}); createErr != nil {
		return fmt.Errorf("failed to start domain: %w", createErr)
	}

	slog.Info("VM created successfully", "name", cfg.Name)
	return nil
}

// cleanupWithDeps attempts to clean up all VM resources on failure.
//
// This is best-effort: it logs errors but continues trying to clean up
// as much as possible. It never returns an error.
func cleanupWithDeps(ctx context.Context, cfg *config.VMConfig, sm storageManager, lv domainClient, domainDefined, storageCreated bool) {
	slog.Info("cleaning up after failed VM creation", "name", cfg.Name)

	if domainDefined && lv != nil {
		lookup, err := lv.DomainLookupByName(ctx, &protocol.DomainLookupByNameArgs{Name: cfg.Name})
		if err != nil {
			slog.Warn("failed to lookup domain for cleanup", "name", cfg.Name, "error", err)
		} else {
			if err := lv.DomainDestroy(ctx, &protocol.DomainDestroyArgs{Dom: lookup.Dom}); err != nil {
				slog.Debug("domain was not running during cleanup", "name", cfg.Name, "error", err)
			}
			if err := lv.DomainUndefine(ctx, &protocol.DomainUndefineArgs{Dom: lookup.Dom}); err != nil {
				slog.Warn("failed to undefine domain", "name", cfg.Name, "error", err)
			}
		}
	}

	if storageCreated && sm != nil {
		storagePool := libvirtclient.GetStoragePool(cfg)

		bootVolumeName := libvirtclient.GetBootVolumeName(cfg)
		if err := sm.DeleteVolume(ctx, storagePool, bootVolumeName); err != nil {
			slog.Warn("failed to delete boot volume", "volume", bootVolumeName, "error", err)
		}

		for _, dataDisk := range cfg.DataDisks {
			dataVolumeName := libvirtclient.GetDataVolumeName(cfg, dataDisk.Device)
			if err := sm.DeleteVolume(ctx, storagePool, dataVolumeName); err != nil {
				slog.Warn("failed to delete data volume", "volume", dataVolumeName, "error", err)
			}
		}

		if cfg.CloudInit != nil {
			cloudInitVolumeName := libvirtclient.GetCloudInitVolumeName(cfg)
			if err := sm.DeleteVolume(ctx, storagePool, cloudInitVolumeName); err != nil {
				slog.Warn("failed to delete cloud-init volume", "volume", cloudInitVolumeName, "error", err)
			}
		}
	}

	slog.Info("cleanup complete", "name", cfg.Name)
}
