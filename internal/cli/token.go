package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daily-shlok/internal/auth"
)

func newTokenCmd(rt Runtime) *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := rt.setup()
			if err != nil {
				return err
			}
			if !cfg.Admin.Enabled() {
				return errors.New("admin.jwt_secret (ADMIN_JWT_SECRET) is not configured")
			}

			m := auth.NewJWTManager(cfg.Admin.JWTSecret, cfg.Admin.JWTIssuer, cfg.Admin.TokenTTL)
			token, exp, err := m.IssueAdminToken(subject)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "subject %s, expires %s\n", subject, exp.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject, recorded in request logs")
	return cmd
}
