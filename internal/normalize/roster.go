package normalize

import (
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// rosterFields is the positional layout of a roster row when upstream omits headers.
var rosterFields = []string{"playerId", "displayName", "rosterStatus", "fromSeason", "toSeason", "playerCode"}

var rosterHeaderNames = map[string]string{
	"PERSON_ID":                "playerId",
	"DISPLAY_LAST_COMMA_FIRST": "displayName",
	"ROSTERSTATUS":             "rosterStatus",
	"FROM_YEAR":                "fromSeason",
	"TO_YEAR":                  "toSeason",
	"PLAYERCODE":               "playerCode",
}

// Roster shapes the first result set of a roster payload into players, in upstream order.
func Roster(resp providers.Response) ([]players.Player, error) {
	if len(resp.ResultSets) == 0 {
		return nil, providers.Malformed(providers.ResourceRoster, "no result sets")
	}
	rs := resp.ResultSets[0]
	fields := rosterFieldsFor(rs.Headers)

	out := make([]players.Player, 0, len(rs.RowSet))
	for i, row := range rs.RowSet {
		obj := Zip(fields, row)
		id, ok := asInt(obj["playerId"])
		if !ok {
			return nil, providers.Malformed(providers.ResourceRoster, "row %d: invalid player id %v", i, obj["playerId"])
		}
		from, _ := asInt(obj["fromSeason"])
		to, _ := asInt(obj["toSeason"])
		out = append(out, players.Player{
			ID:         id,
			FullName:   FirstLast(asString(obj["displayName"])),
			Code:       asString(obj["playerCode"]),
			FromSeason: from,
			ToSeason:   to,
			Active:     truthy(obj["rosterStatus"]),
		})
	}
	return out, nil
}

// FirstLast turns an upstream "Last, First" display name into "First Last".
func FirstLast(display string) string {
	parts := strings.Split(display, ", ")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// rosterFieldsFor names row positions from upstream headers when they are
// recognizable, otherwise assumes the fixed positional layout.
func rosterFieldsFor(headers []string) []string {
	if len(headers) == 0 {
		return rosterFields
	}
	fields := renameHeaders(headers, rosterHeaderNames)
	for _, f := range fields {
		if f == "playerId" {
			return fields
		}
	}
	return rosterFields
}
