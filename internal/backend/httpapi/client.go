package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/google/uuid"
	"github.com/joacominatel/ducklogs/internal/backend"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Endpoint paths of the log-query service.
const (
	PathConnect = "/connect"
	PathQuick   = "/quick"
	PathQuery   = "/query"
)

const (
	DefaultTimeout   = 60 * time.Second
	defaultUserAgent = "ducklogs"
)

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client implements backend.Backend over the service's JSON HTTP API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New creates a client for the service at opts.BaseURL.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  ua,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Address returns the base address requests are sent to.
func (c *Client) Address() string {
	return c.baseURL
}

// Connect sends the S3 region/endpoint preference.
func (c *Client) Connect(ctx context.Context, cfg backend.ConnectionConfig) (*backend.ConnectResult, error) {
	var res backend.ConnectResult
	if err := c.post(ctx, PathConnect, cfg, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// QuickLoad reads req.URI through the service's format-specific reader.
func (c *Client) QuickLoad(ctx context.Context, req backend.QuickRequest) (*backend.QuickResult, error) {
	var res backend.QuickResult
	if err := c.post(ctx, PathQuick, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RunQuery executes raw SQL.
func (c *Client) RunQuery(ctx context.Context, req backend.QueryRequest) (*backend.ResultSet, error) {
	var res backend.ResultSet
	if err := c.post(ctx, PathQuery, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// post sends body as JSON to path and decodes a 2xx answer into out.
// Every failure is reported as *backend.RequestFailed.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	reqID := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{
		"request_id": reqID,
		"path":       path,
	})
	start := time.Now()

	var (
		buf        bytes.Buffer
		errBody    string
		status     int
		statusFail bool
	)
	onStatusError := func(res *http.Response) error {
		statusFail = true
		return requests.ToString(&errBody)(res)
	}
	captureStatus := func(res *http.Response) error {
		status = res.StatusCode
		return nil
	}

	err := requests.
		URL(c.baseURL + path).
		Client(c.httpClient).
		Post().
		Header("Accept", "application/json").
		Header("X-Request-ID", reqID).
		UserAgent(c.userAgent).
		BodyJSON(body).
		AddValidator(captureStatus).
		AddValidator(requests.ValidatorHandler(requests.DefaultValidator, onStatusError)).
		ToBytesBuffer(&buf).
		Fetch(ctx)

	elapsed := time.Since(start)
	if err != nil {
		if statusFail {
			msg := errorMessage(errBody)
			if msg == "" {
				msg = fmt.Sprintf("%d %s", status, http.StatusText(status))
			}
			log.WithFields(logrus.Fields{"status": status, "elapsed": elapsed}).Warnf("request rejected: %s", msg)
			return &backend.RequestFailed{Message: msg, Cause: err}
		}
		log.WithField("elapsed", elapsed).Errorf("request failed: %v", err)
		return &backend.RequestFailed{Message: err.Error(), Cause: err}
	}

	if err := backend.JSON.Unmarshal(buf.Bytes(), out); err != nil {
		log.WithField("status", status).Errorf("decode response: %v", err)
		return &backend.RequestFailed{
			Message: fmt.Sprintf("decode %s response: %v", path, err),
			Cause:   err,
		}
	}

	log.WithFields(logrus.Fields{"status": status, "elapsed": elapsed}).Debug("request completed")
	return nil
}

// errorMessage prefers a non-empty "error" field of a JSON body and falls
// back to the raw text. Non-string values are shown as their JSON text;
// false, 0 and null count as empty.
func errorMessage(body string) string {
	if gjson.Valid(body) {
		v := gjson.Get(body, "error")
		switch v.Type {
		case gjson.String:
			if v.Str != "" {
				return v.Str
			}
		case gjson.Number:
			if v.Num != 0 {
				return v.Raw
			}
		case gjson.True, gjson.JSON:
			return v.Raw
		}
	}
	return strings.TrimSpace(body)
}
