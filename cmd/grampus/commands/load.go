package commands

import (
	"github.com/spf13/cobra"
	"go.grampus.dev/grampus/internal/app"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <file|url>...",
		Short: "Load one or more graph documents into a target store",
		Long: `Load parses the given YAML graph documents and injects them, in
argument order, into a single target graph store. Vertices already present
in the target are reused; edges are appended and never deduplicated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := cmd.Flags().GetString("store")
			journal, _ := cmd.Flags().GetString("journal")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				StorePath:   store,
				JournalPath: journal,
				DryRun:      dryRun,
			})
		},
	}
	cmd.Flags().StringP("store", "s", "", "Path to the SQLite graph store (default: in-memory)")
	cmd.Flags().StringP("journal", "j", "", "Path to the load journal file (default: disabled)")
	cmd.Flags().Bool("dry-run", false, "Parse and validate the documents without injecting them")
	return cmd
}
