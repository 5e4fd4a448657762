package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const defaultUserAgent = "wordpress-content-adapter/1.0"

type HTTPFetcher struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
}

// NewHTTPFetcher validates endpoint and returns a fetcher whose base URL
// always ends in "/" so resource paths can be appended directly.
func NewHTTPFetcher(endpoint string, timeout time.Duration) (*HTTPFetcher, error) {
	base, err := NormalizeEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &HTTPFetcher{
		BaseURL:   base,
		UserAgent: defaultUserAgent,
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

func NormalizeEndpoint(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("content: endpoint required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("content: invalid endpoint: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("content: endpoint missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("content: endpoint missing host")
	}
	if !strings.HasSuffix(trimmed, "/") {
		trimmed += "/"
	}
	return trimmed, nil
}

func (f *HTTPFetcher) Endpoint() string { return f.BaseURL }

func (f *HTTPFetcher) Get(ctx context.Context, op, path string, v any) error {
	target := f.BaseURL + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &FetchError{Kind: KindNetwork, Op: op, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	injectTraceparent(ctx, req)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return &FetchError{Kind: KindNetwork, Op: op, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &FetchError{
			Kind:   KindStatus,
			Op:     op,
			URL:    target,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("failed to fetch data from %s", target),
		}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Kind: KindNetwork, Op: op, URL: target, Err: err}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &FetchError{Kind: KindMalformed, Op: op, URL: target, Err: err}
	}
	return nil
}

func injectTraceparent(ctx context.Context, req *http.Request) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return
	}
	req.Header.Set("Traceparent", fmt.Sprintf("00-%s-%s-%s", sc.TraceID(), sc.SpanID(), sc.TraceFlags()))
}
