package syncer

// Status reflects the outcome of the most recent remote operation.
type Status string

const (
	StatusSyncing Status = "syncing"
	StatusSynced  Status = "synced"
	StatusOffline Status = "offline"
)

func (s Status) String() string { return string(s) }
