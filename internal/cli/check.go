package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planidx/planidx/internal/index"
)

var checkCmd = &cobra.Command{
	Use:   "check [index-file]",
	Short: "Validate the index without writing",
	Long: `Check that the index file has an Entries heading and that every plan
identifier carries a parseable timestamp. The file is never modified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine()
		if err != nil {
			return err
		}

		path := indexPath(cfg, args)
		result, err := eng.Check(path)
		if err != nil {
			var invalid *index.InvalidPlansError
			if errors.As(err, &invalid) {
				PrintError(fmt.Sprintf("%s: %s invalid", path, PrintCount(len(invalid.Plans), "plan identifier", "plan identifiers")))
				PrintDim("Expected YYYY-MM-DD-<h>am|pm_<name> (e.g. 2026-01-28-1pm_example.txt):")
				PrintList(invalid.Plans, 1)
				return fmt.Errorf("%s: validation failed", path)
			}
			return err
		}

		PrintSuccess(fmt.Sprintf("%s: %s OK.", path, PrintCount(result.Blocks, "plan block", "plan blocks")))
		return nil
	},
}
