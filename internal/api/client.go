// Package api is the REST client for the candidate registration service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/talentdb/internal/candidate"
	"github.com/zjrosen/talentdb/internal/log"
	"github.com/zjrosen/talentdb/internal/tracing"
)

const (
	candidatesPath = "/api/candidates"
	searchPath     = "/api/candidates/search"

	// RequestIDHeader carries a per-request UUID for server-side correlation.
	RequestIDHeader = "X-Request-ID"

	defaultUserAgent = "talentdb"
)

// Service is the set of calls the controller needs from the server.
type Service interface {
	List(ctx context.Context) ([]candidate.Record, error)
	Create(ctx context.Context, c candidate.Candidate) error
	Search(ctx context.Context, keyword string) ([]candidate.Record, error)
	Delete(ctx context.Context, id candidate.ID) (bool, error)
}

// Client talks to the candidate REST endpoints.
type Client struct {
	baseURL   string
	http      *http.Client
	tracer    trace.Tracer
	userAgent string
	newID     func() string
}

var _ Service = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (e.g. to set a timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTracer records a span around each request.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      http.DefaultClient,
		tracer:    noop.NewTracerProvider().Tracer("noop"),
		userAgent: defaultUserAgent,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every candidate in server order.
func (c *Client) List(ctx context.Context) ([]candidate.Record, error) {
	ctx, span := c.startSpan(ctx, "list")
	defer span.End()

	resp, err := c.send(ctx, span, "list", http.MethodGet, candidatesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecords(span, "list", resp)
}

// Create registers a new candidate. A rejected registration returns an
// *ApplicationError carrying the server's message.
func (c *Client) Create(ctx context.Context, cand candidate.Candidate) error {
	ctx, span := c.startSpan(ctx, "create")
	defer span.End()

	body, err := json.Marshal(cand)
	if err != nil {
		return &TransportError{Op: "create", Err: fmt.Errorf("encoding request: %w", err)}
	}

	resp, err := c.send(ctx, span, "create", http.MethodPost, candidatesPath, nil, body)
	if err != nil {
		return err
	}
	if resp.ok() {
		return nil
	}

	msg := DefaultCreateFailure
	var eb errorBody
	if json.Unmarshal(resp.body, &eb) == nil && eb.Error != "" {
		msg = eb.Error
	}
	span.SetStatus(codes.Error, msg)
	log.Warn(log.CatAPI, "Create rejected", "status", resp.status, "message", msg)
	return &ApplicationError{Op: "create", Status: resp.status, Message: msg}
}

// Search fetches candidates matching keyword. The keyword is URL-encoded.
func (c *Client) Search(ctx context.Context, keyword string) ([]candidate.Record, error) {
	ctx, span := c.startSpan(ctx, "search")
	defer span.End()
	span.SetAttributes(attribute.String(tracing.AttrSearchKeyword, keyword))

	q := url.Values{}
	q.Set("keyword", keyword)

	resp, err := c.send(ctx, span, "search", http.MethodGet, searchPath, q, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecords(span, "search", resp)
}

// Delete removes the candidate with the given id. It reports false when the
// server answers with a non-2xx status.
func (c *Client) Delete(ctx context.Context, id candidate.ID) (bool, error) {
	ctx, span := c.startSpan(ctx, "delete")
	defer span.End()
	span.SetAttributes(attribute.String(tracing.AttrCandidateID, id.String()))

	path := candidatesPath + "/" + url.PathEscape(id.String())
	resp, err := c.send(ctx, span, "delete", http.MethodDelete, path, nil, nil)
	if err != nil {
		return false, err
	}
	if !resp.ok() {
		log.Warn(log.CatAPI, "Delete rejected", "id", id, "status", resp.status)
	}
	return resp.ok(), nil
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (c *Client) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, tracing.SpanPrefixCandidates+op,
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// send performs one request. Only transport failures are returned as
// errors; HTTP status interpretation is left to the caller.
func (c *Client) send(
	ctx context.Context,
	span trace.Span,
	op, method, path string,
	query url.Values,
	body []byte,
) (response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	requestID := c.newID()

	span.SetAttributes(
		attribute.String(tracing.AttrHTTPMethod, method),
		attribute.String(tracing.AttrHTTPURL, target),
		attribute.String(tracing.AttrRequestID, requestID),
	)

	fail := func(err error) (response, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatAPI, "Request failed", err, "op", op, "url", target, "request_id", requestID)
		return response{}, &TransportError{Op: op, Err: err}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fail(fmt.Errorf("building request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	log.Debug(log.CatAPI, "Sending request", "op", op, "method", method, "url", target, "request_id", requestID)

	httpResp, err := c.http.Do(req)
	if err != nil {
		return fail(err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	payload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fail(fmt.Errorf("reading response: %w", err))
	}

	resp := response{status: httpResp.StatusCode, body: payload}
	span.SetAttributes(attribute.Int(tracing.AttrHTTPStatusCode, resp.status))
	if resp.ok() {
		span.SetStatus(codes.Ok, "")
	} else {
		span.SetStatus(codes.Error, http.StatusText(resp.status))
	}

	log.Debug(log.CatAPI, "Received response", "op", op, "status", resp.status, "bytes", len(payload), "request_id", requestID)
	return resp, nil
}

// decodeRecords parses a JSON array of records. The status code is not
// consulted: a body that is not an array is a failure regardless.
func decodeRecords(span trace.Span, op string, resp response) ([]candidate.Record, error) {
	var records []candidate.Record
	if err := json.Unmarshal(resp.body, &records); err != nil {
		err = fmt.Errorf("decoding response (status %d): %w", resp.status, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatAPI, "Decode failed", err, "op", op)
		return nil, &TransportError{Op: op, Err: err}
	}
	if records == nil {
		records = []candidate.Record{}
	}
	span.SetAttributes(attribute.Int(tracing.AttrResultCount, len(records)))
	log.Debug(log.CatAPI, "Decoded records", "op", op, "count", len(records))
	return records, nil
}
