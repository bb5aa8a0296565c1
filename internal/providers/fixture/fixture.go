package fixture

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

//go:embed data/*.json
var payloads embed.FS

// Provider serves recorded stats.nba.com payloads for local runs and tests.
// Only the players with recorded files have profiles and dashboards.
type Provider struct {
	files fs.FS
}

var _ providers.Fetcher = (*Provider)(nil)

// New creates a fixture provider over the embedded payloads.
func New() *Provider {
	return &Provider{files: payloads}
}

// FetchJSON returns the recorded payload for the endpoint, or a 404
// FetchError when none was recorded.
func (p *Provider) FetchJSON(ctx context.Context, endpoint providers.Endpoint) (providers.Response, error) {
	if err := ctx.Err(); err != nil {
		return providers.Response{}, &providers.FetchError{Resource: endpoint.Resource, Err: err}
	}

	name, err := fileFor(endpoint)
	if err != nil {
		return providers.Response{}, &providers.FetchError{Resource: endpoint.Resource, StatusCode: http.StatusBadRequest, Err: err}
	}

	raw, err := fs.ReadFile(p.files, name)
	if errors.Is(err, fs.ErrNotExist) {
		return providers.Response{}, &providers.FetchError{
			Resource:   endpoint.Resource,
			StatusCode: http.StatusNotFound,
			Err:        fmt.Errorf("no fixture %s", name),
		}
	}
	if err != nil {
		return providers.Response{}, &providers.FetchError{Resource: endpoint.Resource, Err: err}
	}

	var resp providers.Response
	if err := sonic.Unmarshal(raw, &resp); err != nil {
		return providers.Response{}, &providers.FetchError{Resource: endpoint.Resource, Err: fmt.Errorf("decode %s: %w", name, err)}
	}
	return resp, nil
}

func fileFor(endpoint providers.Endpoint) (string, error) {
	switch endpoint.Resource {
	case providers.ResourceRoster:
		return "data/roster.json", nil
	case providers.ResourceProfile:
		return fmt.Sprintf("data/profile_%s.json", endpoint.Param("PlayerID")), nil
	case providers.ResourceDashboard:
		measure := strings.ToLower(endpoint.Param("MeasureType"))
		return fmt.Sprintf("data/dashboard_%s_%s.json", endpoint.Param("PlayerID"), measure), nil
	default:
		return "", fmt.Errorf("unsupported resource %q", endpoint.Resource)
	}
}
