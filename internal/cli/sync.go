package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCmd(a *app) *cobra.Command {
	return LeafCommand{
		Use:   "sync",
		Short: "Reconcile the local store with the remote store",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, _ []string) error {
			return runSync(cmd, s)
		}),
	}.Build()
}

// runSync reports what the local store holds after reconciling.
func runSync(cmd *cobra.Command, s *Session) error {
	state := s.Sync.Snapshot()
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d categories, %d logged days\n", len(state.Config.Categories), len(state.Logs))
	return nil
}
