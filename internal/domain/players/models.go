package players

import (
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
)

// Player is one roster entry. FullName is always in "First Last" order.
type Player struct {
	ID         int    `json:"playerId"`
	FullName   string `json:"fullName"`
	Code       string `json:"playerCode"`
	FromSeason int    `json:"fromSeason"`
	ToSeason   int    `json:"toSeason"`
	Active     bool   `json:"active"`
}

// Profile is the extended per-player identity fetched alongside stats.
type Profile struct {
	ID              int        `json:"playerId"`
	FullName        string     `json:"fullName"`
	AbbreviatedName string     `json:"abbreviatedName"`
	Birthdate       time.Time  `json:"birthdate"`
	School          string     `json:"school"`
	Country         string     `json:"country"`
	JerseyNumber    int        `json:"jerseyNumber"`
	Active          bool       `json:"active"`
	Position        string     `json:"position"`
	Team            teams.Team `json:"team"`
}

// FilterActive returns the active players, preserving order.
func FilterActive(items []Player) []Player {
	out := make([]Player, 0, len(items))
	for _, p := range items {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// RosterResponse is the payload served for roster listings.
type RosterResponse struct {
	Count   int      `json:"count"`
	Players []Player `json:"players"`
}

// NewRosterResponse wraps a roster, never serializing a nil slice.
func NewRosterResponse(items []Player) RosterResponse {
	if items == nil {
		items = []Player{}
	}
	return RosterResponse{Count: len(items), Players: items}
}
