package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ganot/daylog/internal/syncer"
)

// Session is one command invocation's view of the orchestrator.
type Session struct {
	Sync    *syncer.Orchestrator
	Offline bool
	close   func() error
}

// NewSession wires an orchestrator over local and remote. With offline set,
// Begin only reads the local store.
func NewSession(local syncer.LocalStore, remote syncer.Remote, logger *slog.Logger, offline bool) *Session {
	return &Session{
		Sync:    syncer.New(local, remote, syncer.WithLogger(logger)),
		Offline: offline,
	}
}

// Begin loads local state and, unless offline, reconciles with the remote
// store before returning.
func (s *Session) Begin(ctx context.Context) {
	s.Sync.Load()
	if !s.Offline {
		s.Sync.Reconcile(ctx)
	}
}

// Finish waits for queued pushes and prints the resulting sync status.
func (s *Session) Finish(w io.Writer) error {
	s.Sync.Wait()
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("status:"), statusText(s.Sync.Status()))
	if s.close != nil {
		return s.close()
	}
	return nil
}

func statusText(st syncer.Status) string {
	switch st {
	case syncer.StatusSynced:
		return Primary(st.String())
	case syncer.StatusOffline:
		return Warning(st.String())
	default:
		return Text(st.String())
	}
}
