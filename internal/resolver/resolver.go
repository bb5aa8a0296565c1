package resolver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// Roster is the roster view the resolver searches.
type Roster interface {
	List(ctx context.Context, onlyActive bool) ([]players.Player, error)
	Player(ctx context.Context, id int) (players.Player, bool, error)
}

// Resolver maps a Query onto a single roster entry.
type Resolver struct {
	roster Roster
	logger *slog.Logger
}

// New builds a Resolver over a roster.
func New(roster Roster, logger *slog.Logger) *Resolver {
	return &Resolver{roster: roster, logger: logger}
}

// Resolve finds the player for q. A false result with a nil error means no
// player matched. Retired players are only considered when includeInactive
// is set. Among several name matches the last one in roster order wins.
func (r *Resolver) Resolve(ctx context.Context, q Query, includeInactive bool) (players.Player, bool, error) {
	if p, ok := q.Player(); ok {
		return p, true, nil
	}

	if id, ok := q.ID(); ok {
		p, found, err := r.roster.Player(ctx, id)
		if err != nil || !found {
			return players.Player{}, false, err
		}
		if !includeInactive && !p.Active {
			r.notFound(ctx, q)
			return players.Player{}, false, nil
		}
		return p, true, nil
	}

	name, _ := q.Name()
	candidates, err := r.roster.List(ctx, !includeInactive)
	if err != nil {
		return players.Player{}, false, err
	}
	needle := NormalizeName(name)

	var (
		match players.Player
		found bool
	)
	for _, p := range candidates {
		if Matches(needle, p.FullName) {
			match, found = p, true
		}
	}
	if !found {
		r.notFound(ctx, q)
	}
	return match, found, nil
}

func (r *Resolver) notFound(ctx context.Context, q Query) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Debug("player not resolved", logging.FieldQuery, q.String())
	}
}

// NormalizeName lower-cases a name query and turns "Last, First" into
// "first last". Every comma-separated segment is reversed.
func NormalizeName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if !strings.Contains(name, ",") {
		return name
	}
	parts := strings.Split(name, ",")
	out := make([]string, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		if seg := strings.TrimSpace(parts[i]); seg != "" {
			out = append(out, seg)
		}
	}
	return strings.Join(out, " ")
}

// Matches reports whether query is a case-insensitive subsequence of fullName.
func Matches(query, fullName string) bool {
	return fuzzy.MatchFold(query, fullName)
}
