package output

import (
	"encoding/json"
	"fmt"

	"github.com/jbweber/virtnative/internal/vm"
)

// JSONFormatter formats VM info as JSON.
type JSONFormatter struct{}

// FormatVM formats a single VM as JSON.
func (f *JSONFormatter) FormatVM(info vm.VMInfo) (string, error) {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal VM to JSON: %w", err)
	}

	return string(data) + "\n", nil
}

// FormatVMList formats a list of VMs as a JSON array.
func (f *JSONFormatter) FormatVMList(infos []vm.VMInfo) (string, error) {
	if len(infos) == 0 {
		return "[]\n", nil
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal VMs to JSON: %w", err)
	}

	return string(data) + "\n", nil
}
