package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/blockbag/bag/alloc"
	"github.com/joshuapare/blockbag/bag/edit"
	"github.com/joshuapare/blockbag/bag/source"
	"github.com/joshuapare/blockbag/cmd/bagctl/logger"
	"github.com/joshuapare/blockbag/pkg/itemtype"
	"github.com/joshuapare/blockbag/pkg/types"
)

var applyDryRun bool

func init() {
	rootCmd.AddCommand(newApplyCmd())
}

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <inventory.json> <script>",
		Short: "Run a placement script against an inventory",
		Long: `The apply command loads an inventory fixture, runs every script line
through an edit session and writes the resulting inventory back.

Script lines:
  place <item> [n]      fetch n blocks (default 1)
  remove <item> [n]     store n blocks (default 1)
  replace <old> <new>   fetch new, then store old
  flush                 write the inventory back and reload it

Example:
  bagctl apply inv.json build.txt
  bagctl apply inv.json build.txt --dry-run --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args)
		},
	}
	cmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Do not write the inventory file")
	return cmd
}

// applyResult is the JSON output of apply.
type applyResult struct {
	Summary   edit.Summary   `json:"summary"`
	Missing   map[string]int `json:"missing,omitempty"`
	Overflow  map[string]int `json:"overflow,omitempty"`
	Inventory inventoryFile  `json:"inventory"`
}

func runApply(args []string) error {
	invPath, scriptPath := args[0], args[1]
	reg := itemtype.Default()

	inv, err := readInventory(invPath, cfg.InventorySize, cfg.limits(), reg)
	if err != nil {
		return fmt.Errorf("failed to read inventory: %w", err)
	}

	f, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	ops, err := parseScript(f, reg)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}

	printVerbose("Applying %d operations to %s\n", len(ops), invPath)

	sum, err := applyOps(inv, ops, reg)
	if err != nil {
		return err
	}

	if !applyDryRun {
		if err := writeInventory(invPath, inv, reg); err != nil {
			return fmt.Errorf("failed to write inventory: %w", err)
		}
	}

	if jsonOut {
		return printJSON(applyResult{
			Summary:   sum,
			Missing:   namedCounts(sum.Missing, reg),
			Overflow:  namedCounts(sum.Overflow, reg),
			Inventory: inventoryToFile(inv, reg),
		})
	}

	printInfo("Session %s\n", sum.SessionID)
	printInfo("  Placed:  %d\n", sum.Placed)
	printInfo("  Removed: %d\n", sum.Removed)
	printInfo("  Batches: %d (%d slots written, %d changed)\n", sum.Batches, sum.SlotsWritten, sum.SlotsChanged)
	printCounts("Missing", namedCounts(sum.Missing, reg))
	printCounts("No room", namedCounts(sum.Overflow, reg))
	return nil
}

// applyOps runs ops through one edit session over inv.
func applyOps(inv *source.Inventory, ops []op, reg *itemtype.Registry) (edit.Summary, error) {
	bag := alloc.NewForSource(inv, alloc.Options{
		Limits: cfg.limits(),
		Lookup: reg,
	})
	s := edit.NewSession(bag, edit.Options{Logger: logger.L})

	var pos types.Position
	for _, o := range ops {
		var err error
		switch o.kind {
		case opPlace:
			for range o.count {
				if _, err = s.Place(pos, o.item); err != nil {
					break
				}
			}
		case opRemove:
			for range o.count {
				if _, err = s.Remove(pos, o.item); err != nil {
					break
				}
			}
		case opReplace:
			_, err = s.Replace(pos, o.item, o.next)
		case opFlush:
			err = s.Checkpoint()
		}
		if err != nil {
			s.Cancel()
			return edit.Summary{}, fmt.Errorf("line %d: %w", o.line, err)
		}
	}

	return s.Finish()
}

func namedCounts(counts map[types.ItemKind]int, reg *itemtype.Registry) map[string]int {
	if len(counts) == 0 {
		return nil
	}
	out := make(map[string]int, len(counts))
	for kind, n := range counts {
		out[reg.Name(kind)] = n
	}
	return out
}

func printCounts(label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	printInfo("  %s:\n", label)
	for _, name := range names {
		printInfo("    %-20s %d\n", name, counts[name])
	}
}
