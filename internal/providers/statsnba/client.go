package statsnba

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	UserAgent  string
	Referer    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client issues GET requests against the stats.nba.com JSON API.
type Client struct {
	baseURL    string
	userAgent  string
	referer    string
	httpClient httpDoer
}

var _ providers.Fetcher = (*Client)(nil)

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  orDefault(cfg.UserAgent, defaultUserAgent),
		referer:    orDefault(cfg.Referer, defaultReferer),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchJSON requests one resource and decodes the result-set envelope.
// Every failure comes back as a *providers.FetchError.
func (c *Client) FetchJSON(ctx context.Context, endpoint providers.Endpoint) (providers.Response, error) {
	req, err := c.buildRequest(ctx, endpoint)
	if err != nil {
		return providers.Response{}, &providers.FetchError{Resource: endpoint.Resource, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Response{}, &providers.FetchError{Resource: endpoint.Resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return providers.Response{}, &providers.FetchError{
			Resource:   endpoint.Resource,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return providers.Response{}, &providers.FetchError{Resource: endpoint.Resource, StatusCode: resp.StatusCode, Err: err}
	}

	var payload providers.Response
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return providers.Response{}, &providers.FetchError{
			Resource:   endpoint.Resource,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode: %w", err),
		}
	}
	if payload.Resource == "" {
		payload.Resource = endpoint.Resource
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint providers.Endpoint) (*http.Request, error) {
	if endpoint.Resource == "" {
		return nil, fmt.Errorf("endpoint resource is required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint.Resource, nil)
	if err != nil {
		return nil, err
	}
	if len(endpoint.Params) > 0 {
		req.URL.RawQuery = endpoint.Params.Encode()
	}
	setHeaders(req, c.userAgent, c.referer)
	return req, nil
}
