package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganot/daylog/internal/domain/timelog"
)

func newReportCmd(a *app) *cobra.Command {
	return LeafCommand{
		Use:       "report",
		Short:     "Show hour totals per day or per category",
		Args:      cobra.NoArgs,
		BoolFlags: []BoolFlag{{Name: "by-category", Usage: "total hours per category instead of per day"}},
		StrFlags:  rangeFlags,
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, _ []string) error {
			byCategory, _ := cmd.Flags().GetBool("by-category")
			return runReport(cmd, s, rangeFromFlags(cmd), byCategory)
		}),
	}.Build()
}

func runReport(cmd *cobra.Command, s *Session, opts timelog.ListLogsOptions, byCategory bool) error {
	if err := timelog.ValidateListOptions(opts); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	summary := timelog.Summarize(timelog.FilterRange(s.Sync.Snapshot().Logs, opts))
	out := cmd.OutOrStdout()

	if len(summary.Days) == 0 {
		_, _ = fmt.Fprintln(out, Silent("No logs yet."))
		return nil
	}

	if byCategory {
		width := 0
		for _, c := range summary.Categories {
			width = max(width, len(c.Label))
		}
		for _, c := range summary.Categories {
			_, _ = fmt.Fprintf(out, "%-*s  %s\n", width, c.Label, Primary(formatHours(c.Total)))
		}
	} else {
		for _, d := range summary.Days {
			_, _ = fmt.Fprintf(out, "%s  %s\n", d.Date, Primary(formatHours(d.Total)))
		}
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", Silent("total:"), Primary(formatHours(summary.Total)))
	return nil
}
