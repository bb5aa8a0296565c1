package players

import (
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "playerId"},
		{"FullName", "fullName"},
		{"Code", "playerCode"},
		{"FromSeason", "fromSeason"},
		{"ToSeason", "toSeason"},
		{"Active", "active"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestFilterActivePreservesOrder(t *testing.T) {
	items := []Player{
		{ID: 1, Active: true},
		{ID: 2, Active: false},
		{ID: 3, Active: true},
	}

	got := FilterActive(items)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected active players %+v", got)
	}
}

func TestFilterActiveEmpty(t *testing.T) {
	if got := FilterActive(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestNewRosterResponse(t *testing.T) {
	empty := NewRosterResponse(nil)
	if empty.Players == nil || empty.Count != 0 {
		t.Fatalf("expected empty non-nil roster, got %+v", empty)
	}
	resp := NewRosterResponse([]Player{{ID: 1}, {ID: 2}})
	if resp.Count != 2 || len(resp.Players) != 2 {
		t.Fatalf("unexpected roster response %+v", resp)
	}
}
