package normalize

import (
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/timeutil"
)

var profileHeaderNames = map[string]string{
	"PERSON_ID":          "playerId",
	"DISPLAY_FIRST_LAST": "fullName",
	"DISPLAY_FI_LAST":    "abbreviatedName",
	"BIRTHDATE":          "birthdate",
	"SCHOOL":             "school",
	"COUNTRY":            "country",
	"JERSEY":             "jerseyNumber",
	"ROSTERSTATUS":       "active",
	"POSITION":           "position",
	"TEAM_ID":            "teamId",
	"TEAM_NAME":          "teamName",
	"TEAM_ABBREVIATION":  "teamAbbreviation",
	"TEAM_CITY":          "teamCity",
}

// Profile shapes the single row of a common-player-info payload.
func Profile(resp providers.Response) (players.Profile, error) {
	if len(resp.ResultSets) == 0 || len(resp.ResultSets[0].RowSet) == 0 {
		return players.Profile{}, providers.Malformed(providers.ResourceProfile, "no player info row")
	}
	rs := resp.ResultSets[0]
	obj := Zip(renameHeaders(rs.Headers, profileHeaderNames), rs.RowSet[0])

	id, ok := asInt(obj["playerId"])
	if !ok {
		return players.Profile{}, providers.Malformed(providers.ResourceProfile, "invalid player id %v", obj["playerId"])
	}

	profile := players.Profile{
		ID:              id,
		FullName:        asString(obj["fullName"]),
		AbbreviatedName: asString(obj["abbreviatedName"]),
		School:          asString(obj["school"]),
		Country:         asString(obj["country"]),
		Active:          profileActive(obj["active"]),
		Position:        asString(obj["position"]),
		Team: teams.Team{
			Name:         asString(obj["teamName"]),
			Abbreviation: asString(obj["teamAbbreviation"]),
			City:         asString(obj["teamCity"]),
		},
	}
	profile.JerseyNumber, _ = asInt(obj["jerseyNumber"])
	profile.Team.ID, _ = asInt(obj["teamId"])

	if raw := asString(obj["birthdate"]); raw != "" {
		birthdate, err := timeutil.ParseUpstreamDate(raw)
		if err != nil {
			return players.Profile{}, providers.Malformed(providers.ResourceProfile, "invalid birthdate %q", raw)
		}
		profile.Birthdate = birthdate
	}
	return profile, nil
}

// profileActive accepts the textual "Active"/"Inactive" status as well as numeric flags.
func profileActive(v any) bool {
	if s, ok := v.(string); ok {
		return strings.EqualFold(strings.TrimSpace(s), "active")
	}
	return truthy(v)
}
