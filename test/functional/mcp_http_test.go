package functional_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganot/daylog/internal/testserver"
)

func connectHTTP(t *testing.T, ts *testserver.TestServer) *sdkmcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.URL() + "/mcp"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "%s returned error: %v", name, result)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "%s should return text content", name)
	return json.RawMessage(text.Text)
}

func postJSON(t *testing.T, url, body string) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// Writes made over the REST endpoints are visible through the MCP tools
// and the other way around.
func TestMCPOverHTTP_SharesStoreWithREST(t *testing.T) {
	ts := testserver.New(t)
	session := connectHTTP(t, ts)

	postJSON(t, ts.URL()+"/api/config", `{"categories":["Exercise","Reading"]}`)
	postJSON(t, ts.URL()+"/api/entry", `{"date":"2024-03-05","entries":[{"label":"Exercise","hours":1.5}]}`)

	var categories struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(callTool(t, session, "get_categories", nil), &categories))
	assert.Equal(t, []string{"Exercise", "Reading"}, categories.Categories)

	callTool(t, session, "submit_day", map[string]any{
		"date":    "2024-03-04",
		"entries": []map[string]any{{"label": "Reading", "hours": 2}, {"label": "Exercise", "hours": 0}},
	})

	resp, err := http.Get(ts.URL() + "/api/logs")
	require.NoError(t, err)
	defer resp.Body.Close()
	var logs []struct {
		Date    string `json:"date"`
		Entries []struct {
			Label string  `json:"label"`
			Hours float64 `json:"hours"`
		} `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	require.Len(t, logs, 2)
	assert.Equal(t, "2024-03-04", logs[0].Date)
	require.Len(t, logs[0].Entries, 1)
	assert.Equal(t, "Reading", logs[0].Entries[0].Label)
	assert.Equal(t, "2024-03-05", logs[1].Date)
}

func TestMCPOverHTTP_Summary(t *testing.T) {
	ts := testserver.New(t)
	session := connectHTTP(t, ts)

	callTool(t, session, "submit_day", map[string]any{
		"date":    "2024-01-01",
		"entries": []map[string]any{{"label": "A", "hours": 0.1}, {"label": "B", "hours": 0.2}},
	})

	var summary struct {
		Total float64 `json:"total"`
		Days  []struct {
			Date  string  `json:"date"`
			Total float64 `json:"total"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(callTool(t, session, "get_summary", map[string]any{"from": "2024-01-01"}), &summary))
	assert.Equal(t, 0.3, summary.Total)
	require.Len(t, summary.Days, 1)
	assert.Equal(t, "2024-01-01", summary.Days[0].Date)
}
