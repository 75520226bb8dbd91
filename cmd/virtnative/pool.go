package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jbweber/virtnative/internal/libvirtclient"
	"github.com/jbweber/virtnative/internal/storage"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Manage storage pools",
	Long: `Manage libvirt storage pools for VM disks and images.

Storage pools are containers for storage volumes (disk images). virtnative
uses two default pools: foundry-images (base OS images) and foundry-vms
(VM disks).`,
}

func init() {
	poolCmd.AddCommand(poolListCmd)
	poolCmd.AddCommand(poolInfoCmd)
	poolCmd.AddCommand(poolRefreshCmd)
	poolCmd.AddCommand(poolAddCmd)
	poolCmd.AddCommand(poolDeleteCmd)

	poolDeleteCmd.Flags().Bool("force", false, "Force deletion of pool with volumes")
}

func connectAndManager(ctx context.Context) (*libvirtclient.Client, *storage.Manager, error) {
	client, err := libvirtclient.ConnectWithContext(ctx, "", 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to libvirt: %w", err)
	}

	mgr, err := storage.NewManager(client.Remote())
	if err != nil {
		if closeErr := client.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close libvirt connection: %v\n", closeErr)
		}
		return nil, nil, fmt.Errorf("failed to create storage manager: %w", err)
	}

	return client, mgr, nil
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all storage pools",
	Long: `List all storage pools with their state and capacity information.

Shows pool name, type, state, and storage capacity/usage for each pool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, mgr, err := connectAndManager(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close libvirt connection: %v\n", closeErr)
			}
		}()

		pools, err := mgr.ListPools(ctx)
		if err != nil {
			return fmt.Errorf("failed to list pools: %w", err)
		}

		if len(pools) == 0 {
			fmt.Println("No storage pools found")
			return nil
		}

		fmt.Printf("%-20s %-10s %-10s %12s %12s %12s\n",
			"NAME", "TYPE", "STATE", "CAPACITY", "ALLOCATED", "AVAILABLE")
		fmt.Println(strings.Repeat("-", 88))

		for _, pool := range pools {
			name := pool.Name
			if pool.Name == storage.DefaultImagesPool || pool.Name == storage.DefaultVMsPool {
				name = pool.Name + " *"
			}

			fmt.Printf("%-20s %-10s %-10s %10.1fGB %10.1fGB %10.1fGB\n",
				name,
				pool.Type,
				pool.State,
				pool.CapacityGB(),
				pool.AllocationGB(),
				pool.AvailableGB(),
			)
		}

		fmt.Printf("\nTotal: %d pool(s)\n", len(pools))
		fmt.Println("* Default pools")
		return nil
	},
}

var poolInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show detailed information about a pool",
	Long: `Display detailed information about a storage pool.

Shows pool name, type, path, state, UUID, and capacity/allocation details.

Example:
  virtnative pool info foundry-images`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolName := args[0]

		ctx := context.Background()
		client, mgr, err := connectAndManager(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close libvirt connection: %v\n", closeErr)
			}
		}()

		poolInfo, err := mgr.GetPoolInfo(ctx, poolName)
		if err != nil {
			return fmt.Errorf("failed to get pool info: %w", err)
		}

		volumes, err := mgr.ListVolumes(ctx, poolName)
		if err != nil {
			return fmt.Errorf("failed to list volumes: %w", err)
		}

		fmt.Printf("Pool: %s\n", poolInfo.Name)
		fmt.Printf("Type: %s\n", poolInfo.Type)
		fmt.Printf("State: %s\n", poolInfo.State)
		if poolInfo.Path != "" {
			fmt.Printf("Path: %s\n", poolInfo.Path)
		}
		fmt.Printf("UUID: %s\n", poolInfo.UUID)
		fmt.Printf("Capacity: %.2f GB (%d bytes)\n", poolInfo.CapacityGB(), poolInfo.Capacity)
		fmt.Printf("Allocated: %.2f GB (%d bytes)\n", poolInfo.AllocationGB(), poolInfo.Allocation)
		fmt.Printf("Available: %.2f GB (%d bytes)\n", poolInfo.AvailableGB(), poolInfo.Available)

		usagePercent := 0.0
		if poolInfo.Capacity > 0 {
			usagePercent = (float64(poolInfo.Allocation) / float64(poolInfo.Capacity)) * 100
		}
		fmt.Printf("Usage: %.1f%%\n", usagePercent)
		fmt.Printf("Volumes: %d\n", len(volumes))

		return nil
	},
}

var poolRefreshCmd = &cobra.Command{
	Use:   "refresh <name>",
	Short: "Refresh a storage pool",
	Long: `Refresh a storage pool to detect external changes.

This scans the pool's storage backend to update the list of volumes
and capacity information. Useful after manually adding/removing files.

Example:
  virtnative pool refresh foundry-images`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolName := args[0]

		ctx := context.Background()
		client, mgr, err := connectAndManager(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close libvirt connection: %v\n", closeErr)
			}
		}()

		if err := mgr.RefreshPool(ctx, poolName); err != nil {
			return fmt.Errorf("failed to refresh pool: %w", err)
		}

		fmt.Printf("Pool %s refreshed successfully\n", poolName)
		return nil
	},
}

var poolAddCmd = &cobra.Command{
	Use:   "add <name> <type> <path>",
	Short: "Create a new storage pool",
	Long: `Create a new storage pool with the specified name, type, and path.

Currently only 'dir' (directory-based) pools are supported.

The pool will be created and started immediately, and set to autostart
on boot.

Example:
  virtnative pool add my-pool dir /var/lib/libvirt/images/my-pool`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolName := args[0]
		poolTypeStr := args[1]
		poolPath := args[2]

		poolType := storage.PoolType(poolTypeStr)
		if poolType != storage.PoolTypeDir {
			return fmt.Errorf("unsupported pool type: %s (only 'dir' is currently supported)", poolTypeStr)
		}

		ctx := context.Background()
		client, mgr, err := connectAndManager(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close libvirt connection: %v\n", closeErr)
			}
		}()

		fmt.Printf("Creating pool %s (type: %s, path: %s)...\n", poolName, poolType, poolPath)

		if err := mgr.CreatePool(ctx, poolName, poolType, poolPath); err != nil {
			return fmt.Errorf("failed to create pool: %w", err)
		}

		fmt.Printf("Pool %s created successfully\n", poolName)
		return nil
	},
}

var poolDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a storage pool",
	Long: `Delete a storage pool by name.

Cannot delete default pools (foundry-images, foundry-vms).

Use --force to delete pools that contain volumes. Without --force,
only empty pools can be deleted.

Example:
  virtnative pool delete my-pool
  virtnative pool delete my-pool --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		poolName := args[0]
		force, _ := cmd.Flags().GetBool("force")

		ctx := context.Background()
		client, mgr, err := connectAndManager(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close libvirt connection: %v\n", closeErr)
			}
		}()

		volumes, err := mgr.ListVolumes(ctx, poolName)
		if err != nil {
			return fmt.Errorf("failed to check pool volumes: %w", err)
		}

		if len(volumes) > 0 {
			if !force {
				return fmt.Errorf("pool %s contains %d volume(s), use --force to delete", poolName, len(volumes))
			}
			fmt.Printf("Warning: deleting pool %s with %d volume(s)...\n", poolName, len(volumes))
		} else {
			fmt.Printf("Deleting pool %s...\n", poolName)
		}

		if err := mgr.DeletePool(ctx, poolName, force); err != nil {
			return fmt.Errorf("failed to delete pool: %w", err)
		}

		fmt.Printf("Pool %s deleted successfully\n", poolName)
		return nil
	},
}
