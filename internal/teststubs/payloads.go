package teststubs

import (
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// RosterHeaders is the header row of the roster payload.
var RosterHeaders = []string{"PERSON_ID", "DISPLAY_LAST_COMMA_FIRST", "ROSTERSTATUS", "FROM_YEAR", "TO_YEAR", "PLAYERCODE"}

// RosterRows mirrors a 2013-14 commonallplayers snapshot, trimmed to a few players.
var RosterRows = [][]any{
	{float64(165), "Olajuwon, Hakeem", float64(0), "1984", "2002", "HISTADD_hakeem_olajuwon"},
	{float64(787), "Barkley, Charles", float64(0), "1984", "1999", "HISTADD_charles_barkley"},
	{float64(893), "Jordan, Michael", float64(0), "1984", "2002", "HISTADD_michael_jordan"},
	{float64(2544), "James, LeBron", float64(1), "2003", "2013", "lebron_james"},
	{float64(201149), "Noah, Joakim", float64(1), "2007", "2013", "joakim_noah"},
	{float64(201609), "Dragic, Goran", float64(1), "2008", "2013", "goran_dragic"},
}

// RosterResponse returns a roster payload with headers.
func RosterResponse() providers.Response {
	return providers.Response{
		Resource: providers.ResourceRoster,
		Parameters: map[string]any{
			"LeagueID":            "00",
			"Season":              "2013-14",
			"IsOnlyCurrentSeason": float64(0),
		},
		ResultSets: []providers.ResultSet{{
			Name:    "CommonAllPlayers",
			Headers: RosterHeaders,
			RowSet:  RosterRows,
		}},
	}
}

// ProfileHeaders is the header row of the common player info payload.
var ProfileHeaders = []string{
	"PERSON_ID", "FIRST_NAME", "LAST_NAME", "DISPLAY_FIRST_LAST", "DISPLAY_LAST_COMMA_FIRST",
	"DISPLAY_FI_LAST", "BIRTHDATE", "SCHOOL", "COUNTRY", "LAST_AFFILIATION", "HEIGHT", "WEIGHT",
	"SEASON_EXP", "JERSEY", "POSITION", "ROSTERSTATUS", "TEAM_ID", "TEAM_NAME",
	"TEAM_ABBREVIATION", "TEAM_CODE", "TEAM_CITY", "PLAYERCODE", "FROM_YEAR", "TO_YEAR",
}

// ProfileResponse returns LeBron James' player info payload.
func ProfileResponse() providers.Response {
	return providers.Response{
		Resource:   providers.ResourceProfile,
		Parameters: map[string]any{"PlayerID": float64(2544)},
		ResultSets: []providers.ResultSet{{
			Name:    "CommonPlayerInfo",
			Headers: ProfileHeaders,
			RowSet: [][]any{{
				float64(2544), "LeBron", "James", "LeBron James", "James, LeBron",
				"L. James", "1984-12-30T00:00:00", "St. Vincent-St. Mary HS (OH)", "USA",
				"St. Vincent-St. Mary HS (OH)/USA", "6-8", "250",
				float64(10), "6", "Forward", "Active", float64(1610612748), "Heat",
				"MIA", "heat", "Miami", "lebron_james", float64(2003), float64(2013),
			}},
		}},
	}
}

// BaseDashboardHeaders is the header row of a Base measure dashboard.
var BaseDashboardHeaders = []string{
	"GROUP_SET", "GROUP_VALUE", "GP", "W", "L", "W_PCT", "MIN", "FGM", "FGA", "FG_PCT",
	"FG3M", "FG3A", "FG3_PCT", "FTM", "FTA", "FT_PCT", "OREB", "DREB", "REB", "AST",
	"TOV", "STL", "BLK", "BLKA", "PF", "PFD", "PTS", "PLUS_MINUS",
}

// BaseOverallRow is LeBron James' 2013-14 per-game line.
var BaseOverallRow = []any{
	"Overall", "2013-14", float64(77), float64(54), float64(23), 0.701, 37.7, 10.0, 17.6, 0.567,
	1.5, 4.0, 0.379, 5.7, 7.6, 0.75, 1.1, 5.9, 6.9, 6.3,
	3.5, 1.6, 0.3, 0.4, 1.6, 5.9, 27.1, 6.3,
}

// AdvancedDashboardHeaders is the header row of an Advanced measure dashboard.
var AdvancedDashboardHeaders = []string{
	"GROUP_SET", "GROUP_VALUE", "GP", "W", "L", "W_PCT", "MIN", "OFF_RATING", "DEF_RATING",
	"NET_RATING", "AST_PCT", "AST_TO", "AST_RATIO", "OREB_PCT", "DREB_PCT", "REB_PCT",
	"TM_TOV_PCT", "EFG_PCT", "TS_PCT", "USG_PCT", "PACE", "PIE",
}

// AdvancedOverallRow is LeBron James' 2013-14 advanced line.
var AdvancedOverallRow = []any{
	"Overall", "2013-14", float64(77), float64(54), float64(23), 0.701, 37.7, 112.5, 104.5,
	8.0, 0.315, 1.83, 22.0, 0.035, 0.193, 0.114,
	12.0, 0.61, 0.649, 0.313, 93.29, 0.186,
}

// DashboardResponse returns a general-splits dashboard for the given measure
// type, with a location split ahead of the overall set.
func DashboardResponse(measure string) providers.Response {
	headers, row := BaseDashboardHeaders, BaseOverallRow
	if measure == providers.MeasureAdvanced {
		headers, row = AdvancedDashboardHeaders, AdvancedOverallRow
	}
	return providers.Response{
		Resource: providers.ResourceDashboard,
		Parameters: map[string]any{
			"MeasureType": measure,
			"PerMode":     "PerGame",
			"Season":      "2013-14",
			"SeasonType":  "Regular Season",
			"PlayerID":    float64(2544),
		},
		ResultSets: []providers.ResultSet{
			{Name: "LocationPlayerDashboard", Headers: headers, RowSet: [][]any{row, row}},
			{Name: "OverallPlayerDashboard", Headers: headers, RowSet: [][]any{row}},
		},
	}
}

// LeBron returns the roster record for LeBron James.
func LeBron() players.Player {
	return players.Player{ID: 2544, FullName: "LeBron James", Code: "lebron_james", FromSeason: 2003, ToSeason: 2013, Active: true}
}
