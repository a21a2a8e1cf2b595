/*
Copyright 2026 the Item Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package itemapi

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

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public provider.
	DefaultBaseURL = "https://qa-internship.avito.com"

	// RequestIDHeader carries a per request ULID.
	RequestIDHeader = "X-Request-Id"

	tracerName = "github.com/listing-qa/item-conformance/pkg/itemapi"
)

var (
	// ErrInvalidBaseURL is raised when the base URL is not an absolute
	// http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// Options configure a Client.
type Options struct {
	// BaseURL is the provider origin, defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request, zero means no client imposed limit.
	Timeout time.Duration

	// Transport is the underlying round tripper, defaults to a clone of
	// http.DefaultTransport.
	Transport http.RoundTripper

	// TracerProvider creates client spans.  When nil the client owns a
	// provider without exporters, so trace ids are still generated.
	TracerProvider trace.TracerProvider

	// Logger receives request logs, defaults to the logrus standard logger.
	Logger logrus.FieldLogger

	// LogRequests logs every request body.
	LogRequests bool

	// LogResponses logs every response body.
	LogResponses bool
}

// Client talks to the item listing API.  It doesn't interpret status codes,
// it's up to callers to decide what is acceptable, errors are only returned
// when no response could be had.
type Client struct {
	baseURL   string
	client    *http.Client
	tracer    trace.Tracer
	owned     *sdktrace.TracerProvider
	logger    logrus.FieldLogger
	endpoints *Endpoints
	options   Options
}

// New creates a client.  One client holds one connection pool, so it should
// be shared for the duration of a run.
func New(options Options) (*Client, error) {
	baseURL, err := normalizeBaseURL(options.BaseURL)
	if err != nil {
		return nil, err
	}

	transport := options.Transport
	if transport == nil {
		//nolint:forcetypeassert
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}

	var owned *sdktrace.TracerProvider

	provider := options.TracerProvider
	if provider == nil {
		owned = sdktrace.NewTracerProvider()
		provider = owned
	}

	logger := options.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	client := &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: otelhttp.NewTransport(transport,
				otelhttp.WithTracerProvider(provider),
				otelhttp.WithPropagators(propagation.TraceContext{}),
			),
		},
		tracer:    provider.Tracer(tracerName),
		owned:     owned,
		logger:    logger,
		endpoints: NewEndpoints(),
		options:   options,
	}

	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	if raw == "" {
		raw = DefaultBaseURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q has no http(s) scheme", ErrInvalidBaseURL, raw)
	}

	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidBaseURL, raw)
	}

	return strings.TrimSuffix(raw, "/"), nil
}

// BaseURL returns the provider origin without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoints returns the path builder used by the client.
func (c *Client) Endpoints() *Endpoints {
	return c.endpoints
}

// Close releases resources owned by the client.
func (c *Client) Close(ctx context.Context) error {
	c.client.CloseIdleConnections()

	if c.owned != nil {
		if err := c.owned.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutting down tracer provider: %w", err)
		}
	}

	return nil
}

// encodeBody turns a request body into bytes.  A nil body sends nothing and a
// byte slice is sent verbatim, anything else is JSON encoded.
func encodeBody(body any) ([]byte, error) {
	switch t := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return t, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}

// Do sends an arbitrary request, the path is used verbatim.
//
//nolint:cyclop
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	data, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, method+" "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	requestID := ulid.Make().String()
	traceID := span.SpanContext().TraceID().String()

	span.SetAttributes(attribute.String("item.request_id", requestID))

	log := c.logger.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"trace_id":   traceID,
		"request_id": requestID,
	})

	var reader io.Reader
	if data != nil {
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "creating request")

		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.options.LogRequests && data != nil {
		log.WithField("body", string(data)).Info("request")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "http request failed")
		log.WithError(err).WithField("duration", duration).Error("http request failed")

		return nil, fmt.Errorf("http request failed (trace ID: %s): %w", traceID, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reading response body")
		log.WithError(err).WithField("status", resp.StatusCode).Error("reading response body")

		return nil, fmt.Errorf("reading response body (trace ID: %s): %w", traceID, err)
	}

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": duration,
	})

	log.Debug("request complete")

	if c.options.LogResponses && len(respBody) > 0 {
		log.WithField("body", string(respBody)).Info("response")
	}

	return &Response{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    traceID,
		RequestID:  requestID,
		Duration:   duration,
	}, nil
}

// CreateItem posts a create item payload.  The body may be an ItemRequest, a
// raw map from ItemPayloadBuilder.BuildRaw, raw bytes or nil for no body.
func (c *Client) CreateItem(ctx context.Context, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, c.endpoints.CreateItem(), body)
}

// GetItem reads a single item.
func (c *Client) GetItem(ctx context.Context, itemID string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.GetItem(itemID), nil)
}

// GetSellerItems lists all items of a seller.
func (c *Client) GetSellerItems(ctx context.Context, sellerID int64) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.SellerItems(sellerID), nil)
}

// GetStatistic reads an item's counters.
func (c *Client) GetStatistic(ctx context.Context, itemID string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.GetStatistic(itemID), nil)
}

// DeleteItem deletes an item.
func (c *Client) DeleteItem(ctx context.Context, itemID string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, c.endpoints.DeleteItem(itemID), nil)
}
