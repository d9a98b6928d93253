package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/blockbag/pkg/itemtype"
)

func init() {
	rootCmd.AddCommand(newShowCmd())
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <inventory.json>",
		Short: "Print the slots of an inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args)
		},
	}
}

func runShow(args []string) error {
	reg := itemtype.Default()
	inv, err := readInventory(args[0], cfg.InventorySize, cfg.limits(), reg)
	if err != nil {
		return fmt.Errorf("failed to read inventory: %w", err)
	}

	f := inventoryToFile(inv, reg)
	if jsonOut {
		return printJSON(f)
	}

	printInfo("Inventory: %s (%d slots, %d used)\n", args[0], f.Size, len(f.Slots))
	for _, e := range f.Slots {
		qty := fmt.Sprintf("%d", e.Quantity)
		if e.Quantity < 0 {
			qty = "unlimited"
		}
		printInfo("  [%2d] %-20s %s\n", e.Slot, e.Item, qty)
	}
	return nil
}
