package resolver

import (
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

func TestParseQuery(t *testing.T) {
	if id, ok := ParseQuery(" 2544 ").ID(); !ok || id != 2544 {
		t.Fatalf("expected id query, got %v %v", id, ok)
	}
	if name, ok := ParseQuery("LeBron James").Name(); !ok || name != "LeBron James" {
		t.Fatalf("expected name query, got %q %v", name, ok)
	}
	for _, raw := range []string{"", "23a", "-5", "99999999999999999999999"} {
		if _, ok := ParseQuery(raw).Name(); !ok {
			t.Fatalf("expected %q to parse as a name", raw)
		}
	}
}

func TestQueryAccessorsAreExclusive(t *testing.T) {
	q := ByPlayer(players.Player{ID: 1, FullName: "Test Player"})
	if _, ok := q.Name(); ok {
		t.Fatalf("player query should not be a name")
	}
	if _, ok := q.ID(); ok {
		t.Fatalf("player query should not be an id")
	}
	if q.String() != "Test Player" {
		t.Fatalf("unexpected string %q", q.String())
	}
	if ByID(7).String() != "7" {
		t.Fatalf("unexpected id string")
	}
}
