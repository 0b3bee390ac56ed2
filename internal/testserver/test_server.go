// Package testserver starts the full remote store stack for tests.
package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/daylog/internal/domain/timelog"
	"github.com/ganot/daylog/internal/mcp"
	"github.com/ganot/daylog/internal/sqlite"
	"github.com/ganot/daylog/internal/transport"
)

type TestServer struct {
	Server  *httptest.Server
	DB      *sqlite.DB
	Service *timelog.Service
}

// URL returns the base URL of the running server.
func (ts *TestServer) URL() string {
	return ts.Server.URL
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	svc := timelog.NewService(sqlite.NewConfigRepository(db), sqlite.NewLogRepository(db), nil)
	mcpServer := mcp.NewServer(mcp.Config{Service: svc})

	server := httptest.NewServer(transport.NewServer(svc, transport.Options{
		MCP: mcp.NewHTTPHandler(mcpServer),
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{Server: server, DB: db, Service: svc}
}
