package timelog

// ListLogsOptions restricts a log listing to an inclusive date range.
// Empty bounds are open.
type ListLogsOptions struct {
	From string
	To   string
}
