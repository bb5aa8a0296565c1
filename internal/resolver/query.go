package resolver

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

type queryKind int

const (
	queryName queryKind = iota
	queryID
	queryPlayer
)

// Query identifies a player by name, numeric id, or an already resolved record.
type Query struct {
	kind   queryKind
	name   string
	id     int
	player players.Player
}

// ByName queries by "First Last" or "Last, First" with fuzzy matching.
func ByName(name string) Query { return Query{kind: queryName, name: name} }

// ByID queries by exact player id.
func ByID(id int) Query { return Query{kind: queryID, id: id} }

// ByPlayer passes a resolved record through untouched.
func ByPlayer(p players.Player) Query { return Query{kind: queryPlayer, player: p} }

// ParseQuery reads free-form input: all digits means an id, anything else a name.
func ParseQuery(raw string) Query {
	raw = strings.TrimSpace(raw)
	if raw != "" && strings.Trim(raw, "0123456789") == "" {
		if id, err := strconv.Atoi(raw); err == nil {
			return ByID(id)
		}
	}
	return ByName(raw)
}

// Name returns the name of a ByName query.
func (q Query) Name() (string, bool) { return q.name, q.kind == queryName }

// ID returns the id of a ByID query.
func (q Query) ID() (int, bool) { return q.id, q.kind == queryID }

// Player returns the record of a ByPlayer query.
func (q Query) Player() (players.Player, bool) { return q.player, q.kind == queryPlayer }

func (q Query) String() string {
	switch q.kind {
	case queryID:
		return strconv.Itoa(q.id)
	case queryPlayer:
		return q.player.FullName
	default:
		return q.name
	}
}
