package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ganot/daylog/internal/domain/timelog"
)

// TimelogService defines the store operations served over HTTP.
type TimelogService interface {
	GetConfig(ctx context.Context) (*timelog.ConfigDocument, error)
	SetConfig(ctx context.Context, categories []string) (*timelog.ConfigDocument, error)
	ListLogs(ctx context.Context, opts timelog.ListLogsOptions) ([]timelog.LogDocument, error)
	UpsertEntry(ctx context.Context, entry timelog.LogEntry) (*timelog.LogDocument, error)
	Summary(ctx context.Context, opts timelog.ListLogsOptions) (*timelog.Summary, error)
}

// Options configures the HTTP server.
type Options struct {
	Logger *slog.Logger
	// MCP, when set, is mounted at /mcp.
	MCP http.Handler
}

// Server wires HTTP handlers.
type Server struct {
	svc    TimelogService
	logger *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(svc TimelogService, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	srv := &Server{svc: svc, logger: logger}

	r.Get("/health", srv.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/config", srv.handleGetConfig)
		r.Post("/config", srv.handleSetConfig)
		r.Get("/logs", srv.handleListLogs)
		r.Post("/entry", srv.handlePushEntry)
		r.Get("/summary", srv.handleSummary)
	})

	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
		r.Handle("/mcp/*", opts.MCP)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	doc, err := s.svc.GetConfig(r.Context())
	if errors.Is(err, timelog.ErrConfigNotFound) {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

type setConfigRequest struct {
	Categories []string `json:"categories"`
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var req setConfigRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := s.svc.SetConfig(r.Context(), req.Categories); err != nil {
		s.fail(w, r, err)
		return
	}
	writeOK(w)
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	docs, err := s.svc.ListLogs(r.Context(), rangeFromQuery(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handlePushEntry(w http.ResponseWriter, r *http.Request) {
	var entry timelog.LogEntry
	if err := decodeBody(w, r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := s.svc.UpsertEntry(r.Context(), entry); err != nil {
		s.fail(w, r, err)
		return
	}
	writeOK(w)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Summary(r.Context(), rangeFromQuery(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// fail maps domain errors to status codes. Anything unexpected is logged
// and reported as 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, timelog.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("request failed",
		"request_id", RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func rangeFromQuery(r *http.Request) timelog.ListLogsOptions {
	q := r.URL.Query()
	return timelog.ListLogsOptions{From: q.Get("from"), To: q.Get("to")}
}
