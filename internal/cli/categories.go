package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganot/daylog/internal/domain/timelog"
)

func newCategoriesCmd(a *app) *cobra.Command {
	list := LeafCommand{
		Use:   "list",
		Short: "List categories in order",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, _ []string) error {
			return runCategoriesList(cmd, s)
		}),
	}.Build()

	add := LeafCommand{
		Use:   "add <name>",
		Short: "Append a category",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, args []string) error {
			return runCategoriesAdd(cmd, s, args[0])
		}),
	}.Build()

	remove := LeafCommand{
		Use:   "remove <name|position>",
		Short: "Remove a category",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, args []string) error {
			return runCategoriesRemove(cmd, s, args[0])
		}),
	}.Build()

	rename := LeafCommand{
		Use:   "rename <name|position> <new-name>",
		Short: "Rename a category; past logs keep the old label",
		Args:  cobra.ExactArgs(2),
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, args []string) error {
			return runCategoriesRename(cmd, s, args[0], args[1])
		}),
	}.Build()

	move := LeafCommand{
		Use:   "move <name|position> <new-position>",
		Short: "Move a category to a new position",
		Args:  cobra.ExactArgs(2),
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, args []string) error {
			return runCategoriesMove(cmd, s, args[0], args[1])
		}),
	}.Build()

	return GroupCommand{
		Use:   "categories",
		Short: "Manage the categories hours are logged against",
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, _ []string) error {
			return runCategoriesList(cmd, s)
		}),
		Subcommands: []*cobra.Command{list, add, remove, rename, move},
	}.Build()
}

func runCategoriesList(cmd *cobra.Command, s *Session) error {
	categories := s.Sync.Snapshot().Config.Categories
	if len(categories) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("No categories."))
		return nil
	}
	for i, c := range categories {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Silent(fmt.Sprintf("%2d.", i+1)), Primary(c))
	}
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, s *Session, name string) error {
	if err := s.Sync.AddCategory(cmd.Context(), name); err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", Primary(strings.TrimSpace(name)))
	return nil
}

func runCategoriesRemove(cmd *cobra.Command, s *Session, ref string) error {
	cfg := s.Sync.Snapshot().Config
	i, err := resolveCategory(cfg, ref)
	if err != nil {
		return err
	}
	if err := s.Sync.DeleteCategory(cmd.Context(), i); err != nil {
		return fmt.Errorf("remove category: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", Primary(cfg.Categories[i]))
	return nil
}

func runCategoriesRename(cmd *cobra.Command, s *Session, ref, name string) error {
	cfg := s.Sync.Snapshot().Config
	i, err := resolveCategory(cfg, ref)
	if err != nil {
		return err
	}
	if err := s.Sync.RenameCategory(cmd.Context(), i, name); err != nil {
		return fmt.Errorf("rename category: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", Silent(cfg.Categories[i]), Primary(strings.TrimSpace(name)))
	return nil
}

func runCategoriesMove(cmd *cobra.Command, s *Session, ref, position string) error {
	cfg := s.Sync.Snapshot().Config
	from, err := resolveCategory(cfg, ref)
	if err != nil {
		return err
	}
	to, err := parsePosition(position)
	if err != nil {
		return err
	}
	if err := s.Sync.MoveCategory(cmd.Context(), from, to); err != nil {
		return fmt.Errorf("move category: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to position %d\n", Primary(cfg.Categories[from]), to+1)
	return nil
}

// resolveCategory maps a 1-based position or an exact name to an index.
func resolveCategory(cfg timelog.Configuration, ref string) (int, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(cfg.Categories) {
			return 0, fmt.Errorf("no category at position %d: %w", n, timelog.ErrInvalidInput)
		}
		return n - 1, nil
	}
	if i := timelog.IndexOf(cfg, ref); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("unknown category %q: %w", ref, timelog.ErrInvalidInput)
}

func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: %w", s, timelog.ErrInvalidInput)
	}
	return n - 1, nil
}
