package timelog

import (
	"math"
	"slices"
	"strings"
)

// Upsert returns logs with any entry for entry.Date replaced by entry,
// sorted ascending by date. The input slice is left untouched.
func Upsert(logs []LogEntry, entry LogEntry) []LogEntry {
	out := make([]LogEntry, 0, len(logs)+1)
	for _, existing := range logs {
		if existing.Date != entry.Date {
			out = append(out, existing)
		}
	}
	out = append(out, entry)
	SortByDate(out)
	return out
}

// SortByDate sorts logs ascending by date. Lexicographic order is date order
// because dates are zero-padded.
func SortByDate(logs []LogEntry) {
	slices.SortStableFunc(logs, func(a, b LogEntry) int {
		return strings.Compare(a.Date, b.Date)
	})
}

// Find returns the entry stored for date.
func Find(logs []LogEntry, date string) (LogEntry, bool) {
	for _, l := range logs {
		if l.Date == date {
			return l, true
		}
	}
	return LogEntry{}, false
}

// FilterRange keeps the logs whose date falls within opts.
func FilterRange(logs []LogEntry, opts ListLogsOptions) []LogEntry {
	out := make([]LogEntry, 0, len(logs))
	for _, l := range logs {
		if opts.From != "" && l.Date < opts.From {
			continue
		}
		if opts.To != "" && l.Date > opts.To {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Normalize trims labels and drops entries with a blank label or
// non-positive or infinite hours. The result is never nil.
func Normalize(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		label := strings.TrimSpace(e.Label)
		if label == "" || !(e.Hours > 0) || math.IsInf(e.Hours, 0) {
			continue
		}
		out = append(out, Entry{Label: label, Hours: e.Hours})
	}
	return out
}

// BuildEntries turns per-category hour inputs plus an optional custom entry
// into a day's entry list. Categories keep their configured order; each
// distinct label appears once. The custom entry goes last.
func BuildEntries(categories []string, hours map[string]float64, customLabel string, customHours float64) []Entry {
	entries := make([]Entry, 0, len(categories)+1)
	seen := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if seen[cat] {
			continue
		}
		seen[cat] = true
		entries = append(entries, Entry{Label: cat, Hours: hours[cat]})
	}
	entries = append(entries, Entry{Label: customLabel, Hours: customHours})
	return Normalize(entries)
}
