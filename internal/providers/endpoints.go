package providers

import (
	"net/url"
	"strconv"
)

// Upstream resources consumed by the service.
const (
	ResourceRoster    = "commonallplayers"
	ResourceProfile   = "commonplayerinfo"
	ResourceDashboard = "playerdashboardbygeneralsplits"
)

// Dashboard measure types.
const (
	MeasureBase     = "Base"
	MeasureAdvanced = "Advanced"
)

const leagueNBA = "00"

// dashboardDefaults are sent on every dashboard request unless overridden.
// Season, PlayerID and MeasureType are filled per call.
var dashboardDefaults = [][2]string{
	{"SeasonType", "Regular Season"},
	{"LeagueID", leagueNBA},
	{"PerMode", "PerGame"},
	{"PlusMinus", "N"},
	{"PaceAdjust", "N"},
	{"Rank", "N"},
	{"Outcome", ""},
	{"Location", ""},
	{"Month", "0"},
	{"SeasonSegment", ""},
	{"DateFrom", ""},
	{"DateTo", ""},
	{"OpponentTeamID", "0"},
	{"VsConference", ""},
	{"VsDivision", ""},
	{"GameSegment", ""},
	{"Period", "0"},
	{"LastNGames", "0"},
}

// RosterEndpoint lists every player known for the season, historical ones included.
func RosterEndpoint(season string) Endpoint {
	params := url.Values{}
	params.Set("LeagueID", leagueNBA)
	params.Set("Season", season)
	params.Set("IsOnlyCurrentSeason", "0")
	return Endpoint{Resource: ResourceRoster, Params: params}
}

// ProfileEndpoint fetches the common player info for one player.
func ProfileEndpoint(playerID int) Endpoint {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	return Endpoint{Resource: ResourceProfile, Params: params}
}

// DashboardEndpoint fetches the general-splits dashboard for one player and
// measure type. Overrides replace any default except PlayerID and MeasureType.
func DashboardEndpoint(season string, playerID int, measure string, overrides map[string]string) Endpoint {
	params := url.Values{}
	params.Set("Season", season)
	for _, kv := range dashboardDefaults {
		params.Set(kv[0], kv[1])
	}
	for k, v := range overrides {
		if k == "PlayerID" || k == "MeasureType" {
			continue
		}
		params.Set(k, v)
	}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("MeasureType", measure)
	return Endpoint{Resource: ResourceDashboard, Params: params}
}

// IsDashboardParam reports whether key is an outbound dashboard parameter.
func IsDashboardParam(key string) bool {
	if key == "Season" || key == "PlayerID" || key == "MeasureType" {
		return true
	}
	for _, kv := range dashboardDefaults {
		if kv[0] == key {
			return true
		}
	}
	return false
}
