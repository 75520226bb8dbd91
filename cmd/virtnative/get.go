package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbweber/virtnative/internal/output"
	"github.com/jbweber/virtnative/internal/vm"
)

var (
	outputFormat string
	noHeaders    bool
)

var getCmd = &cobra.Command{
	Use:   "get <vm-name>",
	Short: "Get details about a VM",
	Long: `Get detailed information about a specific virtual machine.

Output formats:
  -o table  Human-readable table (default)
  -o yaml   YAML representation
  -o json   JSON representation`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vmName := args[0]

		if err := output.ValidateFormat(outputFormat); err != nil {
			return err
		}

		ctx := context.Background()
		info, err := vm.Get(ctx, vmName)
		if err != nil {
			return fmt.Errorf("failed to get VM: %w", err)
		}

		formatter, err := output.NewFormatter(output.Options{
			Format:    output.Format(outputFormat),
			NoHeaders: noHeaders,
		})
		if err != nil {
			return err
		}

		result, err := formatter.FormatVM(info)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}

		fmt.Print(result)
		return nil
	},
}

func init() {
	getCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, yaml, json)")
	getCmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Omit table headers")
}
