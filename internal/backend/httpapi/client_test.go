package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method      string
	path        string
	contentType string
	requestID   string
	body        map[string]any
}

func newTestServer(t *testing.T, status int, response string, got *capturedRequest) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			got.method = r.Method
			got.path = r.URL.Path
			got.contentType = r.Header.Get("Content-Type")
			got.requestID = r.Header.Get("X-Request-ID")
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &got.body)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/"})
}

func TestConnect(t *testing.T) {
	var got capturedRequest
	c := newTestServer(t, http.StatusOK, `{"ok":true,"message":"httpfs configured"}`, &got)

	res, err := c.Connect(context.Background(), backend.ConnectionConfig{Region: "ap-northeast-1"})
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.Equal(t, "httpfs configured", res.Message)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, PathConnect, got.path)
	assert.Contains(t, got.contentType, "application/json")
	assert.NotEmpty(t, got.requestID)
	assert.Equal(t, map[string]any{"s3_region": "ap-northeast-1"}, got.body)
}

func TestQuickLoad(t *testing.T) {
	tests := []struct {
		name     string
		req      backend.QuickRequest
		wantBody map[string]any
	}{
		{
			name:     "with limit",
			req:      backend.QuickRequest{URI: "s3://b/logs/*.parquet", Format: backend.FormatParquet, Limit: 100},
			wantBody: map[string]any{"uri": "s3://b/logs/*.parquet", "format": "parquet", "limit": float64(100)},
		},
		{
			name:     "zero limit omitted",
			req:      backend.QuickRequest{URI: "s3://b/a.csv", Format: backend.FormatCSV},
			wantBody: map[string]any{"uri": "s3://b/a.csv", "format": "csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got capturedRequest
			c := newTestServer(t, http.StatusOK,
				`{"rows":[{"level":"INFO","n":12345678901234}],"columns":["level","n"],"sql":"SELECT * FROM read_parquet('s3://b') LIMIT 100"}`,
				&got)

			res, err := c.QuickLoad(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, PathQuick, got.path)
			assert.Equal(t, tt.wantBody, got.body)
			assert.Equal(t, []string{"level", "n"}, res.Columns)
			require.Len(t, res.Rows, 1)
			assert.Equal(t, json.Number("12345678901234"), res.Rows[0]["n"])
			assert.Equal(t, "SELECT * FROM read_parquet('s3://b') LIMIT 100", res.SQL)
		})
	}
}

func TestRunQuery(t *testing.T) {
	var got capturedRequest
	c := newTestServer(t, http.StatusOK, `{"rows":[{"ok":1}],"columns":["ok"]}`, &got)

	res, err := c.RunQuery(context.Background(), backend.QueryRequest{SQL: "SELECT 1 AS ok"})
	require.NoError(t, err)

	assert.Equal(t, PathQuery, got.path)
	assert.Equal(t, map[string]any{"sql": "SELECT 1 AS ok"}, got.body)
	assert.Equal(t, []string{"ok"}, res.Columns)
	assert.Equal(t, []backend.Row{{"ok": json.Number("1")}}, res.Rows)
}

func TestRequestFailed(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"json error field", http.StatusInternalServerError, `{"error":"bad uri"}`, "bad uri"},
		{"json without error field", http.StatusBadRequest, `{"detail":"x"}`, `{"detail":"x"}`},
		{"empty error field", http.StatusBadRequest, `{"error":""}`, `{"error":""}`},
		{"numeric error field", http.StatusInternalServerError, `{"error":123}`, "123"},
		{"object error field", http.StatusInternalServerError, `{"error":{"code":7}}`, `{"code":7}`},
		{"zero error field", http.StatusBadRequest, `{"error":0}`, `{"error":0}`},
		{"null error field", http.StatusBadRequest, `{"error":null}`, `{"error":null}`},
		{"plain text", http.StatusBadGateway, "upstream down\n", "upstream down"},
		{"empty body", http.StatusServiceUnavailable, "", "503 Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, tt.status, tt.body, nil)

			_, err := c.QuickLoad(context.Background(), backend.QuickRequest{URI: "s3://x", Format: backend.FormatJSON})
			require.Error(t, err)

			var rf *backend.RequestFailed
			require.ErrorAs(t, err, &rf)
			assert.Equal(t, tt.wantMsg, rf.Message)
			assert.Equal(t, tt.wantMsg, backend.Message(err))
		})
	}
}

func TestMalformedSuccessBody(t *testing.T) {
	c := newTestServer(t, http.StatusOK, `not json`, nil)

	_, err := c.RunQuery(context.Background(), backend.QueryRequest{SQL: "SELECT 1"})

	var rf *backend.RequestFailed
	require.ErrorAs(t, err, &rf)
	assert.Contains(t, rf.Message, "decode /query response")
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := New(Options{BaseURL: addr})
	_, err := c.Connect(context.Background(), backend.ConnectionConfig{})

	var rf *backend.RequestFailed
	require.ErrorAs(t, err, &rf)
	assert.NotEmpty(t, rf.Message)
	assert.Equal(t, addr, c.Address())
}
