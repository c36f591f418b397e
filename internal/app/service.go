package app

import (
	"context"
	"strconv"
	"time"

	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/sirupsen/logrus"
)

// QueryResult is a result set together with the SQL that produced it and the
// client-side round trip time.
type QueryResult struct {
	Result   *backend.ResultSet
	SQL      string
	Duration time.Duration
}

// Service coordinates application-level operations between the TUI and the
// log-query service.
type Service struct {
	backend backend.Backend
}

// NewService creates a new application service.
func NewService(b backend.Backend) *Service {
	return &Service{backend: b}
}

// Connect applies the S3 connection settings.
func (s *Service) Connect(ctx context.Context, cfg backend.ConnectionConfig) (*backend.ConnectResult, error) {
	res, err := s.backend.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"region":   cfg.Region,
		"endpoint": cfg.Endpoint,
	}).Infof("connect acknowledged: %s", res.Message)
	return res, nil
}

// QuickLoad reads a URI with the given format and row limit.
func (s *Service) QuickLoad(ctx context.Context, req backend.QuickRequest) (*QueryResult, error) {
	start := time.Now()
	res, err := s.backend.QuickLoad(ctx, req)
	if err != nil {
		return nil, err
	}
	out := &QueryResult{Result: &res.ResultSet, SQL: res.SQL, Duration: time.Since(start)}
	logrus.WithFields(logrus.Fields{
		"uri":    req.URI,
		"format": req.Format,
		"limit":  req.Limit,
		"rows":   len(res.Rows),
	}).Infof("quick load took %s: %s", out.Duration, truncate(res.SQL, 200))
	return out, nil
}

// RunQuery executes a SQL statement and returns the results.
func (s *Service) RunQuery(ctx context.Context, sql string) (*QueryResult, error) {
	start := time.Now()
	res, err := s.backend.RunQuery(ctx, backend.QueryRequest{SQL: sql})
	if err != nil {
		return nil, err
	}
	out := &QueryResult{Result: res, Duration: time.Since(start)}
	logrus.WithField("rows", len(res.Rows)).
		Infof("query took %s: %s", out.Duration, truncate(sql, 200))
	return out, nil
}

// Address returns the service's base address.
func (s *Service) Address() string {
	return s.backend.Address()
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "... (" + strconv.Itoa(len(runes)) + ")"
}
