package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/daylog/internal/domain/timelog"
)

// TimelogService defines the store operations exposed as tools.
type TimelogService interface {
	GetConfig(ctx context.Context) (*timelog.ConfigDocument, error)
	SetConfig(ctx context.Context, categories []string) (*timelog.ConfigDocument, error)
	ListLogs(ctx context.Context, opts timelog.ListLogsOptions) ([]timelog.LogDocument, error)
	UpsertEntry(ctx context.Context, entry timelog.LogEntry) (*timelog.LogDocument, error)
	Summary(ctx context.Context, opts timelog.ListLogsOptions) (*timelog.Summary, error)
}

// Config contains server configuration.
type Config struct {
	Service TimelogService
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "daylog",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, NewHandler(cfg.Service))

	return server
}
