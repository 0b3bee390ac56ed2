package mcp

import (
	"context"
	"errors"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/daylog/internal/domain/timelog"
)

// EntryParams is one (label, hours) pair.
type EntryParams struct {
	Label string  `json:"label" jsonschema:"category or custom label"`
	Hours float64 `json:"hours" jsonschema:"hours spent, zero or more"`
}

// GetCategoriesParams takes no arguments.
type GetCategoriesParams struct{}

// SetCategoriesParams replaces the category list.
type SetCategoriesParams struct {
	Categories []string `json:"categories" jsonschema:"ordered category labels, duplicates allowed"`
}

// CategoriesResult is the stored category list.
type CategoriesResult struct {
	Categories []string `json:"categories"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
}

// RangeParams bounds a query by date, both ends inclusive.
type RangeParams struct {
	From string `json:"from,omitempty" jsonschema:"first date to include, YYYY-MM-DD"`
	To   string `json:"to,omitempty" jsonschema:"last date to include, YYYY-MM-DD"`
}

// DayLog is one stored day.
type DayLog struct {
	Date      string        `json:"date"`
	Entries   []EntryParams `json:"entries"`
	UpdatedAt string        `json:"updated_at,omitempty"`
}

// ListLogsResult holds logs ascending by date.
type ListLogsResult struct {
	Logs []DayLog `json:"logs"`
}

// SubmitDayParams replaces everything logged for a date.
type SubmitDayParams struct {
	Date    string        `json:"date" jsonschema:"calendar date, YYYY-MM-DD"`
	Entries []EntryParams `json:"entries" jsonschema:"hours per label for the date"`
}

// SummaryResult is chart-ready aggregate data.
type SummaryResult struct {
	Days       []timelog.DayTotal       `json:"days"`
	Categories []timelog.CategorySeries `json:"categories"`
	Total      float64                  `json:"total"`
}

// Handler implements the tools on top of a TimelogService.
type Handler struct {
	svc TimelogService
}

// NewHandler creates a new tool handler.
func NewHandler(svc TimelogService) *Handler {
	return &Handler{svc: svc}
}

// GetCategories returns the stored categories, or an empty list when none are
// stored yet.
func (h *Handler) GetCategories(ctx context.Context, _ GetCategoriesParams) (CategoriesResult, error) {
	doc, err := h.svc.GetConfig(ctx)
	if errors.Is(err, timelog.ErrConfigNotFound) {
		return CategoriesResult{Categories: []string{}}, nil
	}
	if err != nil {
		return CategoriesResult{}, toolError(err)
	}
	return categoriesResult(doc), nil
}

// SetCategories replaces the category list.
func (h *Handler) SetCategories(ctx context.Context, params SetCategoriesParams) (CategoriesResult, error) {
	categories := params.Categories
	if categories == nil {
		categories = []string{}
	}
	doc, err := h.svc.SetConfig(ctx, categories)
	if err != nil {
		return CategoriesResult{}, toolError(err)
	}
	return categoriesResult(doc), nil
}

// ListLogs returns stored days within the range.
func (h *Handler) ListLogs(ctx context.Context, params RangeParams) (ListLogsResult, error) {
	docs, err := h.svc.ListLogs(ctx, timelog.ListLogsOptions{From: params.From, To: params.To})
	if err != nil {
		return ListLogsResult{}, toolError(err)
	}
	out := ListLogsResult{Logs: make([]DayLog, 0, len(docs))}
	for _, d := range docs {
		out.Logs = append(out.Logs, DayLog{
			Date:      d.Date,
			Entries:   entryParams(d.Entries),
			UpdatedAt: formatTime(d.UpdatedAt),
		})
	}
	return out, nil
}

// SubmitDay stores a day's entries. Zero-hour entries are dropped.
func (h *Handler) SubmitDay(ctx context.Context, params SubmitDayParams) (DayLog, error) {
	entries := make([]timelog.Entry, 0, len(params.Entries))
	for _, e := range params.Entries {
		entries = append(entries, timelog.Entry{Label: e.Label, Hours: e.Hours})
	}
	doc, err := h.svc.UpsertEntry(ctx, timelog.LogEntry{
		Date:    params.Date,
		Entries: timelog.Normalize(entries),
	})
	if err != nil {
		return DayLog{}, toolError(err)
	}
	return DayLog{Date: doc.Date, Entries: entryParams(doc.Entries), UpdatedAt: formatTime(doc.UpdatedAt)}, nil
}

// GetSummary aggregates stored days within the range.
func (h *Handler) GetSummary(ctx context.Context, params RangeParams) (SummaryResult, error) {
	summary, err := h.svc.Summary(ctx, timelog.ListLogsOptions{From: params.From, To: params.To})
	if err != nil {
		return SummaryResult{}, toolError(err)
	}
	return SummaryResult{Days: summary.Days, Categories: summary.Categories, Total: summary.Total}, nil
}

func registerTools(server *sdkmcp.Server, h *Handler) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_categories",
		Description: "Get the ordered category list hours are logged against",
	}, tool(h.GetCategories))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_categories",
		Description: "Replace the whole category list",
	}, tool(h.SetCategories))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_logs",
		Description: "List logged days ascending by date, optionally within a date range",
	}, tool(h.ListLogs))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "submit_day",
		Description: "Record the hours for one date, replacing anything logged for that date before",
	}, tool(h.SubmitDay))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_summary",
		Description: "Get per-day totals and per-category series for charting",
	}, tool(h.GetSummary))
}

// tool adapts a handler method to the SDK's typed tool signature. The SDK
// fills in the text and structured content from the output value.
func tool[In, Out any](fn func(context.Context, In) (Out, error)) sdkmcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
		out, err := fn(ctx, in)
		return nil, out, err
	}
}

func categoriesResult(doc *timelog.ConfigDocument) CategoriesResult {
	categories := doc.Categories
	if categories == nil {
		categories = []string{}
	}
	return CategoriesResult{Categories: categories, UpdatedAt: formatTime(doc.UpdatedAt)}
}

func entryParams(entries []timelog.Entry) []EntryParams {
	out := make([]EntryParams, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryParams{Label: e.Label, Hours: e.Hours})
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
