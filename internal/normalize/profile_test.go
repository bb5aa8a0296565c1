package normalize

import (
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/teststubs"
)

func TestProfileShapesRow(t *testing.T) {
	got, err := Profile(teststubs.ProfileResponse())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.ID != 2544 || got.FullName != "LeBron James" || got.AbbreviatedName != "L. James" {
		t.Fatalf("unexpected identity %+v", got)
	}
	if !got.Birthdate.Equal(time.Date(1984, 12, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected birthdate %v", got.Birthdate)
	}
	if got.School != "St. Vincent-St. Mary HS (OH)" || got.Country != "USA" || got.Position != "Forward" {
		t.Fatalf("unexpected bio %+v", got)
	}
	if got.JerseyNumber != 6 || !got.Active {
		t.Fatalf("unexpected jersey/active %+v", got)
	}
	want := teams.Team{ID: 1610612748, Name: "Heat", Abbreviation: "MIA", City: "Miami"}
	if got.Team != want {
		t.Fatalf("unexpected team %+v", got.Team)
	}
}

func TestProfileInactiveAndLenientFields(t *testing.T) {
	resp := teststubs.ProfileResponse()
	row := append([]any(nil), resp.ResultSets[0].RowSet[0]...)
	row[13] = ""
	row[15] = "Inactive"
	row[16] = nil
	resp.ResultSets[0].RowSet = [][]any{row}

	got, err := Profile(resp)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Active || got.JerseyNumber != 0 || got.Team.ID != 0 {
		t.Fatalf("expected inactive profile without jersey or team id, got %+v", got)
	}
}

func TestProfileMalformed(t *testing.T) {
	if _, err := Profile(providers.Response{}); !errors.Is(err, providers.ErrMalformedPayload) {
		t.Fatalf("expected malformed for empty payload, got %v", err)
	}

	resp := teststubs.ProfileResponse()
	row := append([]any(nil), resp.ResultSets[0].RowSet[0]...)
	row[6] = "December 30th"
	resp.ResultSets[0].RowSet = [][]any{row}
	if _, err := Profile(resp); !errors.Is(err, providers.ErrMalformedPayload) {
		t.Fatalf("expected malformed for bad birthdate, got %v", err)
	}
}
