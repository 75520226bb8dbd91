package output

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jbweber/virtnative/internal/vm"
)

// YAMLFormatter formats VM info as YAML.
type YAMLFormatter struct{}

// FormatVM formats a single VM as YAML.
func (f *YAMLFormatter) FormatVM(info vm.VMInfo) (string, error) {
	data, err := yaml.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("failed to marshal VM to YAML: %w", err)
	}

	return string(data), nil
}

// FormatVMList formats a list of VMs as a YAML stream (multiple documents
// separated by ---).
func (f *YAMLFormatter) FormatVMList(infos []vm.VMInfo) (string, error) {
	if len(infos) == 0 {
		return "", nil
	}

	var buf bytes.Buffer

	for i, info := range infos {
		data, err := yaml.Marshal(info)
		if err != nil {
			return "", fmt.Errorf("failed to marshal VM %s to YAML: %w", info.Name, err)
		}

		if i > 0 {
			buf.WriteString("---\n")
		}

		buf.Write(data)
	}

	return buf.String(), nil
}
