package timelog

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the zero-padded ISO date format used as the log key.
const DateLayout = "2006-01-02"

// ValidateDate checks that date is a real calendar date in DateLayout.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidInput
	}
	return nil
}

// ValidateLogEntry validates a log entry before it is stored.
func ValidateLogEntry(entry LogEntry) error {
	if err := ValidateDate(entry.Date); err != nil {
		return err
	}
	for _, e := range entry.Entries {
		if strings.TrimSpace(e.Label) == "" {
			return ErrInvalidInput
		}
		if e.Hours < 0 || math.IsNaN(e.Hours) || math.IsInf(e.Hours, 0) {
			return ErrInvalidInput
		}
	}
	return nil
}

// ValidateListOptions checks the optional range bounds.
func ValidateListOptions(opts ListLogsOptions) error {
	if opts.From != "" {
		if err := ValidateDate(opts.From); err != nil {
			return err
		}
	}
	if opts.To != "" {
		if err := ValidateDate(opts.To); err != nil {
			return err
		}
	}
	if opts.From != "" && opts.To != "" && opts.From > opts.To {
		return ErrInvalidInput
	}
	return nil
}
