package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the root command for planidx.
var rootCmd = &cobra.Command{
	Use:     "planidx",
	Version: "dev",
	Short:   "Plan index maintenance tool",
	Long: `planidx keeps a plain-text plan index sorted.

It reorders the "- Plan: " blocks below the Entries heading so the most
recent plan comes first, using the timestamp encoded in each plan's
filename (YYYY-MM-DD-<h>am|pm_<name>).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the planidx CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(reorderCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
