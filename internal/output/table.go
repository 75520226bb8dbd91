package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/jbweber/virtnative/internal/vm"
)

// TableFormatter formats VM info as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatVM formats a single VM as a table row.
func (f *TableFormatter) FormatVM(info vm.VMInfo) (string, error) {
	return f.FormatVMList([]vm.VMInfo{info})
}

// FormatVMList formats a list of VMs as a table.
func (f *TableFormatter) FormatVMList(infos []vm.VMInfo) (string, error) {
	if len(infos) == 0 {
		return "No VMs found\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "NAME\tUUID\tSTATE\tCPUs\tMEMORY")
	}

	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d MiB\n",
			info.Name, info.UUID, info.State, info.CPUs, info.MemoryMB)
	}

	_ = w.Flush()
	return buf.String(), nil
}
