package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganot/daylog/internal/domain/timelog"
)

var rangeFlags = []StringFlag{
	{Name: "from", Usage: "first date to include (YYYY-MM-DD)"},
	{Name: "to", Usage: "last date to include (YYYY-MM-DD)"},
}

func rangeFromFlags(cmd *cobra.Command) timelog.ListLogsOptions {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	return timelog.ListLogsOptions{From: from, To: to}
}

func newHistoryCmd(a *app) *cobra.Command {
	return LeafCommand{
		Use:      "history",
		Short:    "Show logged days, oldest first",
		Args:     cobra.NoArgs,
		StrFlags: rangeFlags,
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, _ []string) error {
			return runHistory(cmd, s, rangeFromFlags(cmd))
		}),
	}.Build()
}

func runHistory(cmd *cobra.Command, s *Session, opts timelog.ListLogsOptions) error {
	if err := timelog.ValidateListOptions(opts); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	logs := timelog.FilterRange(s.Sync.Snapshot().Logs, opts)
	if len(logs) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("No logs yet."))
		return nil
	}
	for _, l := range logs {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", Primary(l.Date), formatEntries(l.Entries))
	}
	return nil
}
