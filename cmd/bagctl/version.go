package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/blockbag/pkg/itemtype"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// versionInfo is the JSON output of version.
type versionInfo struct {
	Version       string `json:"version"`
	Commit        string `json:"commit"`
	Date          string `json:"date"`
	MaxStack      int    `json:"max_stack"`
	InventorySize int    `json:"inventory_size"`
	Items         int    `json:"items"`
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information and active limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	})
}

func runVersion() error {
	info := versionInfo{
		Version:       version,
		Commit:        commit,
		Date:          date,
		MaxStack:      cfg.limits().MaxStack,
		InventorySize: cfg.InventorySize,
		Items:         len(itemtype.Default().All()),
	}
	if jsonOut {
		return printJSON(info)
	}

	printInfo("bagctl %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
	printInfo("  max stack:      %d\n", info.MaxStack)
	printInfo("  inventory size: %d\n", info.InventorySize)
	printInfo("  known items:    %d\n", info.Items)
	return nil
}
