package stats

import (
	"sort"
	"strings"
)

type selectionKind int

const (
	selectNone selectionKind = iota
	selectAll
	selectSubset
)

// Selection chooses which codes of a stat line to return: every code, none
// (the line is omitted), or a subset. The zero value selects none.
type Selection struct {
	kind  selectionKind
	codes map[string]struct{}
}

// All selects the full line.
func All() Selection { return Selection{kind: selectAll} }

// None omits the line entirely.
func None() Selection { return Selection{kind: selectNone} }

// Subset keeps only the given codes (plus season). An empty subset still
// requests the line and yields only its season.
func Subset(codes ...string) Selection {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		set[c] = struct{}{}
	}
	return Selection{kind: selectSubset, codes: set}
}

// ParseSelection reads "true"/"all", "false"/"none", or a comma-separated code list.
// An empty value returns def.
func ParseSelection(raw string, def Selection) Selection {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "":
		return def
	case "true", "all", "1", "yes":
		return All()
	case "false", "none", "0", "no":
		return None()
	}
	return Subset(strings.Split(raw, ",")...)
}

// Enabled reports whether the line should be fetched at all.
func (s Selection) Enabled() bool { return s.kind != selectNone }

// IsAll reports whether the full line is selected.
func (s Selection) IsAll() bool { return s.kind == selectAll }

// Allows reports whether code survives the selection. Season always does.
func (s Selection) Allows(code string) bool {
	switch s.kind {
	case selectAll:
		return true
	case selectSubset:
		if code == CodeSeason {
			return true
		}
		_, ok := s.codes[code]
		return ok
	default:
		return false
	}
}

// Codes returns the sorted subset codes; nil for All and None.
func (s Selection) Codes() []string {
	if s.kind != selectSubset {
		return nil
	}
	out := make([]string, 0, len(s.codes))
	for c := range s.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (s Selection) String() string {
	switch s.kind {
	case selectAll:
		return "all"
	case selectSubset:
		return strings.Join(s.Codes(), ",")
	default:
		return "none"
	}
}
