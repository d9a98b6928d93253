package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/blockbag/pkg/itemtype"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "items",
		Short: "List known item names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems()
		},
	})
}

type itemRow struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	UsesVariant bool     `json:"uses_variant"`
}

func runItems() error {
	all := itemtype.Default().All()

	if jsonOut {
		rows := make([]itemRow, 0, len(all))
		for _, info := range all {
			rows = append(rows, itemRow{
				ID:          int(info.Kind),
				Name:        info.Name,
				Aliases:     info.Aliases,
				UsesVariant: info.UsesVariant,
			})
		}
		return printJSON(rows)
	}

	for _, info := range all {
		line := info.Name
		if info.UsesVariant {
			line += ":<variant>"
		}
		if len(info.Aliases) > 0 {
			line += " (" + strings.Join(info.Aliases, ", ") + ")"
		}
		printInfo("%4d  %s\n", info.Kind, line)
	}
	return nil
}
