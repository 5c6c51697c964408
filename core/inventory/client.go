package inventory

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"inventory-seeder/core/catalog"
)

// Filter holds exact-match query parameters, e.g. {"slug": "china"}.
type Filter map[string]string

// Encode renders the filter as a query string with sorted keys.
func (f Filter) Encode() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		values.Set(k, f[k])
	}
	return values.Encode()
}

// Client defines the operations the reconciler needs from the inventory API.
type Client interface {
	// Find returns the first record of kind matching filter.
	// found is false when the result set is empty.
	Find(ctx context.Context, kind catalog.Kind, filter Filter) (rec Record, found bool, err error)
	// Create posts a new record of kind.
	Create(ctx context.Context, kind catalog.Kind, payload map[string]any) (Record, error)
	// Patch partially updates the record id of kind.
	Patch(ctx context.Context, kind catalog.Kind, id int, fields map[string]any) (Record, error)
}

// httpClient implements Client over HTTP. It is read-only after construction.
type httpClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates an inventory API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	base, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
		TLSClientConfig: &tls.Config{
			// Deliberate relaxation for self-signed internal endpoints.
			InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
		},
	}

	return &httpClient{
		baseURL: base,
		token:   cfg.Token,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}, nil
}

// normalizeBaseURL returns the API root with a trailing "/api/".
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("inventory url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid inventory url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid inventory url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid inventory url %q: missing host", raw)
	}

	path := strings.TrimRight(u.Path, "/")
	if !strings.HasSuffix(path, "/api") {
		path += "/api"
	}
	u.Path = path + "/"
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

func (c *httpClient) collectionURL(kind catalog.Kind) string {
	return c.baseURL + kind.Collection() + "/"
}

// Find performs an exact-match query and returns the first result.
func (c *httpClient) Find(ctx context.Context, kind catalog.Kind, filter Filter) (Record, bool, error) {
	u := c.collectionURL(kind)
	if q := filter.Encode(); q != "" {
		u += "?" + q
	}

	var list listResponse
	if err := c.do(ctx, http.MethodGet, u, nil, &list); err != nil {
		return nil, false, err
	}
	if len(list.Results) == 0 {
		return nil, false, nil
	}
	return list.Results[0], true, nil
}

// Create posts payload to the kind's collection.
func (c *httpClient) Create(ctx context.Context, kind catalog.Kind, payload map[string]any) (Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodPost, c.collectionURL(kind), payload, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Patch sends a partial update for record id.
func (c *httpClient) Patch(ctx context.Context, kind catalog.Kind, id int, fields map[string]any) (Record, error) {
	u := fmt.Sprintf("%s%d/", c.collectionURL(kind), id)
	var rec Record
	if err := c.do(ctx, http.MethodPatch, u, fields, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// do executes a single request. Non-2xx answers become *APIError.
func (c *httpClient) do(ctx context.Context, method, u string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, u, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, u, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Method: method, URL: u, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, URL: u, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Method: method, URL: u, Status: resp.StatusCode, Body: string(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{
			Method: method,
			URL:    u,
			Status: resp.StatusCode,
			Body:   fmt.Sprintf("invalid json response: %v", err),
		}
	}
	return nil
}
