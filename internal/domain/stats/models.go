package stats

import (
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

// CodeSeason is carried on every stat line regardless of selection.
const CodeSeason = "season"

// BasicCodes lists the metric codes of a basic stat line, in display order.
var BasicCodes = []string{
	"GP", "W", "L", "MIN", "FGM", "FGA", "FG3M", "FG3A", "FTM", "FTA",
	"OREB", "DREB", "REB", "AST", "TOV", "STL", "BLK", "PF", "PTS", "PM",
}

// AdvancedCodes lists the metric codes of an advanced stat line, in display order.
var AdvancedCodes = []string{
	"GP", "W", "L", "MIN", "ORtg", "DRtg", "eFG", "TS", "USG",
	"AstTO", "AstPct", "ORebPct", "DRebPct", "RebPct",
}

// Line maps a metric code to its value for one season aggregate.
type Line map[string]any

// Clone returns a shallow copy of the line.
func (l Line) Clone() Line {
	if l == nil {
		return nil
	}
	out := make(Line, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Result is the merged outcome of a stats request. Basic and Advanced are nil
// when they were not requested.
type Result struct {
	Profile  players.Profile `json:"profile"`
	Basic    Line            `json:"basicStats,omitempty"`
	Advanced Line            `json:"advancedStats,omitempty"`
}
