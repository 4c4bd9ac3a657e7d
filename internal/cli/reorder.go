package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planidx/planidx/internal/reorder"
)

var reorderDryRun bool

var reorderCmd = &cobra.Command{
	Use:   "reorder [index-file]",
	Short: "Sort the index's plan blocks most-recent first",
	Long: `Reorder the plan blocks in the index file by the timestamp encoded in
each plan identifier, most recent first. Blocks with equal timestamps keep
their original relative order.

If [index-file] is omitted the path comes from PLANIDX_INDEX, then
.planidx.yaml, then INDEX.txt in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine()
		if err != nil {
			return err
		}

		req := &reorder.Request{
			Path:   indexPath(cfg, args),
			DryRun: reorderDryRun,
		}

		result, err := eng.Run(req)
		if err != nil {
			return err
		}

		if reorderDryRun {
			if !result.Changed {
				PrintInfo("No changes.")
			} else {
				PrintInfo(fmt.Sprintf("Would reorder %s.", PrintCount(result.Moved, "section", "sections")))
			}
			return nil
		}

		if !result.Changed {
			PrintInfo("No changes.")
			return nil
		}
		PrintSuccess(fmt.Sprintf("Reordered %s.", PrintCount(result.Moved, "section", "sections")))
		return nil
	},
}

func init() {
	reorderCmd.Flags().BoolVar(&reorderDryRun, "dry-run", false, "Report what would change without writing")
}
