package timelog

import "time"

// Entry is one (label, hours) pair inside a day's log.
type Entry struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// LogEntry holds everything submitted for one calendar date.
// Date is unique within a log collection.
type LogEntry struct {
	Date    string  `json:"date"`
	Entries []Entry `json:"entries"`
}

// Configuration is the ordered category list the user logs hours against.
type Configuration struct {
	Categories []string `json:"categories"`
}

// ConfigDocument is the stored form of the configuration on the remote store.
type ConfigDocument struct {
	Categories []string  `json:"categories"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LogDocument is the stored form of a day's log on the remote store.
type LogDocument struct {
	Date      string    `json:"date"`
	Entries   []Entry   `json:"entries"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LogEntry drops the storage metadata.
func (d LogDocument) LogEntry() LogEntry {
	return LogEntry{Date: d.Date, Entries: cloneEntries(d.Entries)}
}

// DefaultCategories returns the categories used when no configuration exists.
func DefaultCategories() []string {
	return []string{"Work (client)", "Work (personal)", "Exercise", "Reading", "TV"}
}

// DefaultConfiguration returns a fresh configuration holding DefaultCategories.
func DefaultConfiguration() Configuration {
	return Configuration{Categories: DefaultCategories()}
}

// Clone returns a deep copy.
func (c Configuration) Clone() Configuration {
	return Configuration{Categories: cloneStrings(c.Categories)}
}

// Clone returns a deep copy.
func (l LogEntry) Clone() LogEntry {
	return LogEntry{Date: l.Date, Entries: cloneEntries(l.Entries)}
}

// CloneLogs deep-copies a log collection.
func CloneLogs(logs []LogEntry) []LogEntry {
	out := make([]LogEntry, len(logs))
	for i, l := range logs {
		out[i] = l.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneEntries(in []Entry) []Entry {
	out := make([]Entry, len(in))
	copy(out, in)
	return out
}
