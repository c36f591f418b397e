package app

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	connectFunc func(backend.ConnectionConfig) (*backend.ConnectResult, error)
	quickFunc   func(backend.QuickRequest) (*backend.QuickResult, error)
	queryFunc   func(backend.QueryRequest) (*backend.ResultSet, error)
}

func (f *fakeBackend) Connect(_ context.Context, cfg backend.ConnectionConfig) (*backend.ConnectResult, error) {
	return f.connectFunc(cfg)
}

func (f *fakeBackend) QuickLoad(_ context.Context, req backend.QuickRequest) (*backend.QuickResult, error) {
	return f.quickFunc(req)
}

func (f *fakeBackend) RunQuery(_ context.Context, req backend.QueryRequest) (*backend.ResultSet, error) {
	return f.queryFunc(req)
}

func (f *fakeBackend) Address() string { return "http://fake" }

func TestConnect(t *testing.T) {
	var got backend.ConnectionConfig
	svc := NewService(&fakeBackend{connectFunc: func(cfg backend.ConnectionConfig) (*backend.ConnectResult, error) {
		got = cfg
		return &backend.ConnectResult{OK: true, Message: "httpfs configured"}, nil
	}})

	res, err := svc.Connect(context.Background(), backend.ConnectionConfig{Region: "ap-northeast-1"})
	require.NoError(t, err)

	assert.Equal(t, "httpfs configured", res.Message)
	assert.Equal(t, "ap-northeast-1", got.Region)
	assert.Equal(t, "http://fake", svc.Address())
}

func TestQuickLoad(t *testing.T) {
	svc := NewService(&fakeBackend{quickFunc: func(req backend.QuickRequest) (*backend.QuickResult, error) {
		return &backend.QuickResult{
			ResultSet: backend.ResultSet{Columns: []string{"a"}, Rows: []backend.Row{{"a": json.Number("1")}}},
			SQL:       "SELECT * FROM read_csv_auto('" + req.URI + "') LIMIT 5",
		}, nil
	}})

	res, err := svc.QuickLoad(context.Background(), backend.QuickRequest{URI: "s3://b/x.csv", Format: backend.FormatCSV, Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM read_csv_auto('s3://b/x.csv') LIMIT 5", res.SQL)
	assert.Equal(t, []string{"a"}, res.Result.Columns)
	assert.GreaterOrEqual(t, res.Duration.Nanoseconds(), int64(0))
}

func TestRunQueryPassesErrorsThrough(t *testing.T) {
	want := &backend.RequestFailed{Message: "Parser Error: syntax error"}
	svc := NewService(&fakeBackend{queryFunc: func(backend.QueryRequest) (*backend.ResultSet, error) {
		return nil, want
	}})

	_, err := svc.RunQuery(context.Background(), "SELEC 1")

	assert.Same(t, want, err)
	assert.Equal(t, "Parser Error: syntax error", backend.Message(err))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("x", 12)
	assert.Equal(t, "xxxxx... (12)", truncate(long, 5))

	sql := "SELECT '日本語のログ' AS msg"
	got := truncate(sql, 10)
	assert.Equal(t, "SELECT '日本... (22)", got)
	assert.True(t, utf8.ValidString(got))
}
