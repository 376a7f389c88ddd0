package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newPruneCmd(rt Runtime) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune-orphans",
		Short: "Delete generated shloks that never got linked to a date",
		Long: "A publisher that loses the race for a date deletes its own shlok. When that\n" +
			"cleanup fails the shlok is left unlinked; prune-orphans removes such rows once\n" +
			"they were inserted more than --older-than ago, so in-flight publications are never touched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := svc.PruneOrphans(cmd.Context(), olderThan)
			if err != nil {
				return fmt.Errorf("prune orphans: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d orphaned %s\n", n, plural(int(n), "shlok"))
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", time.Hour, "only delete orphans inserted before now minus this duration")
	return cmd
}
