// Package metadata provides storage for VM configuration using libvirt's
// custom XML metadata feature. This allows the config to persist with the
// VM domain itself, eliminating the need for external storage.
package metadata

import (
	"context"
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jbweber/virtnative/internal/config"
	"github.com/jbweber/virtnative/internal/protocol"
)

const (
	// MetadataNamespace is the XML namespace used to tag our custom metadata
	// element, so it doesn't collide with metadata owned by other tools.
	MetadataNamespace = "https://github.com/jbweber/virtnative"

	// MetadataKey is the key used to set/get metadata from libvirt.
	MetadataKey = "virtnative-vm-config"

	// domainMetadataElement is libvirt's VIR_DOMAIN_METADATA_ELEMENT constant,
	// selecting the custom XML element form of domain metadata.
	domainMetadataElement = 2
)

// vmMetadata is the XML envelope used to store a VM config in libvirt
// domain metadata. The config itself is serialized as YAML for readability
// when inspecting the domain XML directly.
type vmMetadata struct {
	XMLName xml.Name `xml:"metadata"`
	Xmlns   string   `xml:"xmlns,attr"`
	// ConfigYAML contains the VM config serialized as YAML.
	ConfigYAML string `xml:",innerxml"`
}

// metadataClient is the subset of domainClient needed for metadata storage.
type metadataClient interface {
	DomainSetMetadata(ctx context.Context, args *protocol.DomainSetMetadataArgs) error
	DomainGetMetadata(ctx context.Context, args *protocol.DomainGetMetadataArgs) (*protocol.DomainGetMetadataRet, error)
}

// Store saves a VM config to libvirt domain metadata.
func Store(ctx context.Context, c metadataClient, dom protocol.NonnullDomain, cfg *config.VMConfig) error {
	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal VM config to YAML: %w", err)
	}

	meta := vmMetadata{
		Xmlns:      MetadataNamespace,
		ConfigYAML: string(yamlData),
	}

	xmlData, err := xml.MarshalIndent(meta, "  ", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata to XML: %w", err)
	}

	xmlStr := string(xmlData)
	key := MetadataKey
	uri := MetadataNamespace

	err = c.DomainSetMetadata(ctx, &protocol.DomainSetMetadataArgs{
		Dom:      dom,
		Type:     domainMetadataElement,
		Metadata: &xmlStr,
		Key:      &key,
		URI:      &uri,
		Flags:    0,
	})
	if err != nil {
		return fmt.Errorf("failed to set libvirt domain metadata: %w", err)
	}

	return nil
}

// Load retrieves a VM config from libvirt domain metadata.
func Load(ctx context.Context, c metadataClient, dom protocol.NonnullDomain) (*config.VMConfig, error) {
	uri := MetadataNamespace
	ret, err := c.DomainGetMetadata(ctx, &protocol.DomainGetMetadataArgs{
		Dom:   dom,
		Type:  domainMetadataElement,
		URI:   &uri,
		Flags: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get libvirt domain metadata: %w", err)
	}

	var meta vmMetadata
	if err := xml.Unmarshal([]byte(ret.Metadata), &meta); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata XML: %w", err)
	}

	var cfg config.VMConfig
	if err := yaml.Unmarshal([]byte(meta.ConfigYAML), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal VM config from YAML: %w", err)
	}

	return &cfg, nil
}

// Update replaces the stored metadata for an existing VM. This is just
// Store under a different name, kept distinct so callers can express intent
// (an update to an existing domain rather than its initial definition).
func Update(ctx context.Context, c metadataClient, dom protocol.NonnullDomain, cfg *config.VMConfig) error {
	return Store(ctx, c, dom, cfg)
}

// Delete removes virtnative metadata from a domain.
// This is typically called during VM destruction cleanup.
func Delete(ctx context.Context, c metadataClient, dom protocol.NonnullDomain) error {
	key := MetadataKey
	uri := MetadataNamespace

	err := c.DomainSetMetadata(ctx, &protocol.DomainSetMetadataArgs{
		Dom:      dom,
		Type:     domainMetadataElement,
		Metadata: nil, // nil metadata removes the element
		Key:      &key,
		URI:      &uri,
		Flags:    0,
	})
	if err != nil {
		return fmt.Errorf("failed to delete libvirt domain metadata: %w", err)
	}

	return nil
}

// Exists checks if virtnative metadata exists for a domain.
func Exists(ctx context.Context, c metadataClient, dom protocol.NonnullDomain) bool {
	uri := MetadataNamespace
	_, err := c.DomainGetMetadata(ctx, &protocol.DomainGetMetadataArgs{
		Dom:   dom,
		Type:  domainMetadataElement,
		URI:   &uri,
		Flags: 0,
	})
	return err == nil
}
