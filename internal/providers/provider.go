package providers

import (
	"context"
	"net/url"
)

// Fetcher issues one upstream request and returns the decoded JSON envelope.
// Implementations surface transport, status, and decode failures as *FetchError.
type Fetcher interface {
	FetchJSON(ctx context.Context, endpoint Endpoint) (Response, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, endpoint Endpoint) (Response, error)

// FetchJSON calls f.
func (f FetcherFunc) FetchJSON(ctx context.Context, endpoint Endpoint) (Response, error) {
	return f(ctx, endpoint)
}

// Endpoint describes one upstream request: the resource path and its query parameters.
type Endpoint struct {
	Resource string
	Params   url.Values
}

// Param returns a single query parameter value.
func (e Endpoint) Param(key string) string {
	if e.Params == nil {
		return ""
	}
	return e.Params.Get(key)
}

// Response is the stats.nba.com envelope shared by every resource.
type Response struct {
	Resource   string         `json:"resource"`
	Parameters map[string]any `json:"parameters"`
	ResultSets []ResultSet    `json:"resultSets"`
}

// ResultSet is one tabular block: a header row plus positional data rows.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// ResultSetByName returns the first result set with the given name.
func (r Response) ResultSetByName(name string) (ResultSet, bool) {
	for _, rs := range r.ResultSets {
		if rs.Name == name {
			return rs, true
		}
	}
	return ResultSet{}, false
}

// Param returns a request parameter echoed by upstream, as a string when it is one.
func (r Response) Param(key string) string {
	if r.Parameters == nil {
		return ""
	}
	if s, ok := r.Parameters[key].(string); ok {
		return s
	}
	return ""
}
