package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/service/publication"
)

func newPublishCmd(rt Runtime) *cobra.Command {
	var (
		date   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish today's shlok, or back-fill a past date",
		Long: "publish runs the same pipeline as the scheduler. A date that is already\n" +
			"published is reported unchanged; future dates are rejected.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			d, err := dateFlag(date, svc)
			if err != nil {
				return err
			}
			res, err := svc.PublishForDate(cmd.Context(), d)
			if err != nil {
				return fmt.Errorf("publish %s: %w", d, err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}
			fmt.Fprintf(out, "%s %s", d, res.Status)
			if res.Status != publication.StatusExisting {
				fmt.Fprintf(out, " (%s, %d AI %s", res.Generation, res.AIAttempts, plural(res.AIAttempts, "attempt"))
				if res.FallbackReason != "" {
					fmt.Fprintf(out, ", fallback: %s", res.FallbackReason)
				}
				if res.UniqueRetry {
					fmt.Fprint(out, ", retried for uniqueness")
				}
				fmt.Fprint(out, ")")
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out)
			printShlok(out, &res.Shlok)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to publish, YYYY-MM-DD (default today in the home zone)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func newShowCmd(rt Runtime) *cobra.Command {
	var (
		date   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the shlok published for a date",
		Long:  "show reads like the API does: showing today publishes it if nobody has yet.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			d, err := dateFlag(date, svc)
			if err != nil {
				return err
			}
			p, err := svc.ForDate(cmd.Context(), d)
			if err != nil {
				return fmt.Errorf("show %s: %w", d, err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			printShlok(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to show, YYYY-MM-DD (default today in the home zone)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	return cmd
}

func printShlok(w io.Writer, p *domain.PublishedShlok) {
	header := p.Date.String()
	if p.Category != nil {
		header += "  [" + string(*p.Category) + "]"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, p.Text)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Hindi:   %s\n", p.MeaningHindi)
	fmt.Fprintf(w, "English: %s\n", p.MeaningEnglish)
	fmt.Fprintf(w, "Source:  %s\n", p.Source)
	fmt.Fprintf(w, "ID:      %s\n", p.ID)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
