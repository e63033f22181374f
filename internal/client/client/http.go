package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/mailtriage/internal/common"
	"github.com/dmitrijs2005/mailtriage/internal/logging"
	"github.com/google/uuid"
)

const (
	callQuery = "query"
	callTask  = "task"
)

// Endpoints locates the two backend surfaces.
type Endpoints struct {
	// BaseURL is scheme://host[:port] of the backend.
	BaseURL string
	// GraphQLPath is the query/mutation endpoint path, e.g. "/graphql".
	GraphQLPath string
	// TaskPrefix is prepended to task paths; empty means the server root.
	TaskPrefix string
}

type HTTPClient struct {
	graphqlURL string
	taskBase   string
	http       *http.Client
	creds      CredentialSource
	logger     logging.Logger
	metrics    *Metrics
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every call. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

func WithMetrics(m *Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

// NewHTTPClient builds a client for the given endpoints. creds may be nil,
// in which case every call is unauthenticated.
func NewHTTPClient(ep Endpoints, creds CredentialSource, opts ...Option) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(ep.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", ep.BaseURL)
	}

	c := &HTTPClient{
		graphqlURL: base.String() + ensureSlash(ep.GraphQLPath),
		taskBase:   base.String() + strings.TrimRight(ensureSlash(ep.TaskPrefix), "/"),
		http:       &http.Client{},
		creds:      creds,
		logger:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func ensureSlash(p string) string {
	if p == "" || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type taskError struct {
	Error string `json:"error"`
}

// Query posts a query or mutation and decodes its "data" member into out.
// A non-empty "errors" list fails with KindRemoteRejected carrying the first
// message.
func (c *HTTPClient) Query(ctx context.Context, op, query string, vars map[string]any, out any) (err error) {
	if vars == nil {
		vars = map[string]any{}
	}
	start := time.Now()
	defer func() { c.metrics.observe(op, callQuery, err, time.Since(start)) }()

	status, raw, err := c.do(ctx, op, http.MethodPost, c.graphqlURL, graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	var resp graphQLResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return malformed(op, status, err)
	}
	if len(resp.Errors) > 0 {
		return rejected(op, status, resp.Errors[0].Message)
	}
	if !isSuccess(status) {
		return rejected(op, status, http.StatusText(status))
	}
	if out == nil {
		return nil
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return malformed(op, status, errors.New("response has no data"))
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return malformed(op, status, err)
	}
	return nil
}

// Task calls a path-addressed task endpoint. body is JSON-encoded when non-nil;
// out receives the decoded response when non-nil.
func (c *HTTPClient) Task(ctx context.Context, method, path string, body, out any) (err error) {
	op := method + " " + path
	start := time.Now()
	defer func() { c.metrics.observe(op, callTask, err, time.Since(start)) }()

	status, raw, err := c.do(ctx, op, method, c.taskBase+ensureSlash(path), body)
	if err != nil {
		return err
	}

	if !isSuccess(status) {
		var te taskError
		if json.Unmarshal(raw, &te) == nil && te.Error != "" {
			return rejected(op, status, te.Error)
		}
		return rejected(op, status, http.StatusText(status))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return malformed(op, status, err)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, op, method, target string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: build request: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token := c.creds.Credential(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	log := c.logger.With(logging.KeyOperation, op, logging.KeyRequestID, requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "backend unreachable", logging.KeyError, err)
		return 0, nil, unreachable(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading response failed", logging.KeyError, err)
		return resp.StatusCode, nil, unreachable(op, err)
	}

	log.Debug(ctx, "backend call", "status", resp.StatusCode, logging.KeyDuration, time.Since(start))
	return resp.StatusCode, raw, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
