package cli

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newMigrateCmd(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := rt.setup()
			if err != nil {
				return err
			}
			applied, err := rt.Migrate(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			log.Info("migrations applied", slog.Int("count", len(applied)))

			out := cmd.OutOrStdout()
			if len(applied) == 0 {
				fmt.Fprintln(out, "schema is up to date")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintf(out, "applied %05d\n", v)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := rt.setup()
			if err != nil {
				return err
			}
			states, err := rt.MigrationStatus(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("migrate status: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tSOURCE")
			for _, s := range states {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(tw, "%05d\t%s\t%s\n", s.Version, state, s.Source)
			}
			return tw.Flush()
		},
	})

	return cmd
}
