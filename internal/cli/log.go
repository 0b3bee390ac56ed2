package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ganot/daylog/internal/domain/timelog"
)

// dayInput is what the user typed for one day.
type dayInput struct {
	Date        string
	Pairs       []string
	CustomLabel string
	CustomHours string
}

func newLogCmd(a *app) *cobra.Command {
	return LeafCommand{
		Use:   "log [category=hours...]",
		Short: "Record the hours for a day, replacing what was logged before",
		StrFlags: []StringFlag{
			{Name: "date", Usage: "date to log (YYYY-MM-DD, default today)"},
			{Name: "custom-label", Usage: "label for a one-off entry outside the categories"},
			{Name: "custom-hours", Usage: "hours for the custom entry"},
		},
		RunE: a.withSession(func(cmd *cobra.Command, s *Session, args []string) error {
			in := dayInput{Pairs: args}
			in.Date, _ = cmd.Flags().GetString("date")
			in.CustomLabel, _ = cmd.Flags().GetString("custom-label")
			in.CustomHours, _ = cmd.Flags().GetString("custom-hours")
			if in.Date == "" {
				in.Date = time.Now().Format(timelog.DateLayout)
			}
			return runLog(cmd, s, in)
		}),
	}.Build()
}

func runLog(cmd *cobra.Command, s *Session, in dayInput) error {
	cfg := s.Sync.Snapshot().Config
	entries, err := buildDay(cfg, in)
	if err != nil {
		return err
	}
	if err := s.Sync.SubmitDay(cmd.Context(), in.Date, entries); err != nil {
		return fmt.Errorf("log %s: %w", in.Date, err)
	}

	logged, _ := timelog.Find(s.Sync.Snapshot().Logs, in.Date)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %s\n", Primary(in.Date), formatEntries(logged.Entries))
	return nil
}

// buildDay turns category=hours pairs and the custom entry into the day's
// entries. Labels must name a configured category.
func buildDay(cfg timelog.Configuration, in dayInput) ([]timelog.Entry, error) {
	sums := make(map[string]decimal.Decimal, len(in.Pairs))
	for _, pair := range in.Pairs {
		i := strings.LastIndex(pair, "=")
		if i <= 0 {
			return nil, fmt.Errorf("expected category=hours, got %q: %w", pair, timelog.ErrInvalidInput)
		}
		label := strings.TrimSpace(pair[:i])
		if timelog.IndexOf(cfg, label) < 0 {
			return nil, fmt.Errorf("unknown category %q, use --custom-label for one-off entries: %w", label, timelog.ErrInvalidInput)
		}
		h, err := parseHours(pair[i+1:])
		if err != nil {
			return nil, err
		}
		sums[label] = sums[label].Add(h)
	}

	hours := make(map[string]float64, len(sums))
	for label, sum := range sums {
		f, err := finiteHours(sum, label)
		if err != nil {
			return nil, err
		}
		hours[label] = f
	}

	var customHours float64
	if in.CustomHours != "" {
		h, err := parseHours(in.CustomHours)
		if err != nil {
			return nil, err
		}
		customHours = h.InexactFloat64()
	}
	return timelog.BuildEntries(cfg.Categories, hours, in.CustomLabel, customHours), nil
}

func parseHours(s string) (decimal.Decimal, error) {
	h, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || h.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid hours %q: %w", s, timelog.ErrInvalidInput)
	}
	if _, err := finiteHours(h, s); err != nil {
		return decimal.Zero, err
	}
	return h, nil
}

// finiteHours converts h, rejecting values outside the float64 range.
func finiteHours(h decimal.Decimal, what string) (float64, error) {
	f := h.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("hours out of range for %q: %w", what, timelog.ErrInvalidInput)
	}
	return f, nil
}

func formatHours(h float64) string {
	return decimal.NewFromFloat(h).String() + "h"
}

func formatEntries(entries []timelog.Entry) string {
	if len(entries) == 0 {
		return Silent("nothing")
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s %s", e.Label, formatHours(e.Hours)))
	}
	total := timelog.SumHours(entries).InexactFloat64()
	return fmt.Sprintf("%s %s", strings.Join(parts, ", "), Silent("("+formatHours(total)+")"))
}
