// Package backend talks to the banking-support HTTP API. Every call is a single
// GET whose body is returned verbatim as text, whatever the status code.
package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/roivaz/bank-support-mcp/internal/telemetry"
)

const (
	customerNamePath      = "/account/customername"
	humanWaitTimePath     = "/contactcenter/current-human-wait"
	transactionSearchPath = "/card/transactionsearch"
	transactionDetailPath = "/card/transactiondetail"
)

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	tracer  trace.Tracer
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTimeout bounds each request. Zero keeps requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.timeout = d }
}

func WithTracer(t trace.Tracer) Option {
	return func(cl *Client) { cl.tracer = t }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{},
		tracer:  telemetry.Tracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		bounded := *c.http
		bounded.Timeout = c.timeout
		c.http = &bounded
	}
	return c
}

// CustomerName looks up a customer by document id. The id is sent as given,
// without escaping.
func (c *Client) CustomerName(ctx context.Context, documentID string) (string, error) {
	return c.get(ctx, customerNamePath, "customer-document-id="+documentID)
}

func (c *Client) HumanWaitTime(ctx context.Context) (string, error) {
	return c.get(ctx, humanWaitTimePath, "")
}

// SearchTransactions runs a natural language transaction search. Unlike the
// id lookups the query is percent-encoded.
func (c *Client) SearchTransactions(ctx context.Context, query string) (string, error) {
	return c.get(ctx, transactionSearchPath, "query="+EncodeComponent(query))
}

// TransactionDetail fetches one transaction. The id is sent as given, without
// escaping.
func (c *Client) TransactionDetail(ctx context.Context, transactionID string) (string, error) {
	return c.get(ctx, transactionDetailPath, "transactionid="+transactionID)
}

// componentUnescaper undoes the QueryEscape choices that differ from URI
// component encoding: spaces are %20, and ! * ' ( ) stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%2A", "*",
	"%27", "'",
	"%28", "(",
	"%29", ")",
)

// EncodeComponent percent-encodes s for use as a single query value. Only
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ) are left as is.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

func (c *Client) get(ctx context.Context, path, rawQuery string) (string, error) {
	target := c.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	ctx, span := c.tracer.Start(ctx, "backend.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("backend.path", path)),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", recordFailure(span, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", recordFailure(span, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", recordFailure(span, fmt.Errorf("read response body: %w", err))
	}
	span.SetStatus(codes.Ok, "")
	return string(body), nil
}

func recordFailure(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
