package normalize

import (
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// FilterSubset applies a selection to a stat line. The bool is false when the
// line must be omitted. Subsets build a fresh line holding the chosen codes
// plus season; the input is never modified.
func FilterSubset(line stats.Line, sel stats.Selection) (stats.Line, bool) {
	if !sel.Enabled() {
		return nil, false
	}
	if sel.IsAll() {
		return line, true
	}
	out := make(stats.Line)
	for code, v := range line {
		if sel.Allows(code) {
			out[code] = v
		}
	}
	return out, true
}

// Merge normalizes a profile response plus any dashboard responses into one
// result, filtering each stat line by its selection.
func Merge(responses []providers.Response, basic, advanced stats.Selection) (stats.Result, error) {
	var (
		result      stats.Result
		haveProfile bool
	)
	for _, resp := range responses {
		switch resp.Resource {
		case providers.ResourceProfile:
			profile, err := Profile(resp)
			if err != nil {
				return stats.Result{}, err
			}
			result.Profile = profile
			haveProfile = true
		case providers.ResourceDashboard:
			kind, line, err := Dashboard(resp)
			if err != nil {
				return stats.Result{}, err
			}
			sel := basic
			if kind == DashboardAdvanced {
				sel = advanced
			}
			filtered, ok := FilterSubset(line, sel)
			if !ok {
				continue
			}
			if kind == DashboardAdvanced {
				result.Advanced = filtered
			} else {
				result.Basic = filtered
			}
		default:
			return stats.Result{}, providers.Malformed(resp.Resource, "unexpected resource in stats merge")
		}
	}
	if !haveProfile {
		return stats.Result{}, providers.Malformed(providers.ResourceProfile, "missing player info response")
	}
	return result, nil
}
