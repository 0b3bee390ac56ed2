package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ganot/daylog/internal/config"
	"github.com/ganot/daylog/internal/localstore"
	"github.com/ganot/daylog/internal/logging"
	"github.com/ganot/daylog/internal/remote"
)

// opener builds the session a command runs against.
type opener func(cmd *cobra.Command, offline, verbose bool) (*Session, error)

type app struct {
	offline bool
	verbose bool
	open    opener
}

// NewRootCmd builds the command tree backed by the configured local data
// directory and remote store.
func NewRootCmd() *cobra.Command {
	return newRootCmd(openConfigured)
}

func newRootCmd(open opener) *cobra.Command {
	a := &app{open: open}

	root := &cobra.Command{
		Use:   "daylog",
		Short: "Log daily hours per category and keep them in sync",
		Long: `daylog records how many hours you spend per category each day.
Data is kept in a local store and reconciled with a remote store when it is reachable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&a.offline, "offline", false, "skip reconciling with the remote store")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newCategoriesCmd(a))
	root.AddCommand(newLogCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newReportCmd(a))
	root.AddCommand(newSyncCmd(a))
	return root
}

// Execute is the entry point called from main.
func Execute() error {
	return NewRootCmd().Execute()
}

// withSession opens a session, reconciles unless offline, runs fn and prints
// the final status.
func (a *app) withSession(fn func(cmd *cobra.Command, s *Session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := a.open(cmd, a.offline, a.verbose)
		if err != nil {
			return err
		}
		s.Begin(cmd.Context())
		runErr := fn(cmd, s, args)
		return errors.Join(runErr, s.Finish(cmd.OutOrStdout()))
	}
}

func openConfigured(_ *cobra.Command, offline, verbose bool) (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logCfg := cfg.Log
	var console io.Writer
	if verbose {
		logCfg.Level = "debug"
		console = os.Stderr
	}
	logger, closer, err := logging.New(logCfg, console)
	if err != nil {
		return nil, err
	}

	local := localstore.New(localstore.NewFileBackend(cfg.Client.DataDir), logger)
	client := remote.NewClient(cfg.Client.RemoteURL,
		remote.WithTimeout(cfg.Client.Timeout),
		remote.WithLogger(logger),
	)

	s := NewSession(local, client, logger, offline)
	s.close = closer.Close
	return s, nil
}
