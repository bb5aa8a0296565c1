package teststubs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// StubFetcher is a test double for providers.Fetcher. It answers from
// Responses keyed by resource (dashboards by "resource/MeasureType"), counts
// calls per resource, and can hold every call until Release is closed.
type StubFetcher struct {
	Responses map[string]providers.Response
	Errs      map[string]error
	Release   chan struct{}
	Calls     atomic.Int32

	mu        sync.Mutex
	endpoints []providers.Endpoint
	started   chan struct{}
	once      sync.Once
}

// NewStubFetcher returns a stub serving the standard roster, profile and dashboards.
func NewStubFetcher() *StubFetcher {
	return &StubFetcher{
		Responses: map[string]providers.Response{
			providers.ResourceRoster:                                   RosterResponse(),
			providers.ResourceProfile:                                  ProfileResponse(),
			Key(providers.ResourceDashboard, providers.MeasureBase):     DashboardResponse(providers.MeasureBase),
			Key(providers.ResourceDashboard, providers.MeasureAdvanced): DashboardResponse(providers.MeasureAdvanced),
		},
		Errs: map[string]error{},
	}
}

// Key builds the lookup key for an endpoint.
func Key(resource, measure string) string {
	if measure == "" {
		return resource
	}
	return resource + "/" + measure
}

// Started is closed once the first call has arrived.
func (s *StubFetcher) Started() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started == nil {
		s.started = make(chan struct{})
	}
	return s.started
}

// FetchJSON returns the configured response or error for the endpoint.
func (s *StubFetcher) FetchJSON(ctx context.Context, endpoint providers.Endpoint) (providers.Response, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.endpoints = append(s.endpoints, endpoint)
	if s.started == nil {
		s.started = make(chan struct{})
	}
	started := s.started
	s.mu.Unlock()
	s.once.Do(func() { close(started) })

	if s.Release != nil {
		select {
		case <-s.Release:
		case <-ctx.Done():
			return providers.Response{}, ctx.Err()
		}
	}

	key := Key(endpoint.Resource, endpoint.Param("MeasureType"))
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.Errs[key]; ok && err != nil {
		return providers.Response{}, err
	}
	resp, ok := s.Responses[key]
	if !ok {
		return providers.Response{}, &providers.FetchError{Resource: endpoint.Resource, StatusCode: 404, Err: fmt.Errorf("no stub for %s", key)}
	}
	return resp, nil
}

// SetErr makes calls for key fail with err.
func (s *StubFetcher) SetErr(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Errs == nil {
		s.Errs = map[string]error{}
	}
	s.Errs[key] = err
}

// ClearErr removes a configured failure.
func (s *StubFetcher) ClearErr(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Errs, key)
}

// Endpoints returns the endpoints requested so far.
func (s *StubFetcher) Endpoints() []providers.Endpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]providers.Endpoint, len(s.endpoints))
	copy(out, s.endpoints)
	return out
}

// CallsFor counts requests made for a resource.
func (s *StubFetcher) CallsFor(resource string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ep := range s.endpoints {
		if ep.Resource == resource {
			n++
		}
	}
	return n
}

// StaticSeason is a fixed season source.
type StaticSeason string

// Current returns the fixed label.
func (s StaticSeason) Current() string { return string(s) }
