package normalize

import (
	"strconv"
	"strings"
)

// Zip pairs each field name with the value at the same position. Empty field
// names are dropped, as are fields past the end of values.
func Zip(fields []string, values []any) map[string]any {
	out := make(map[string]any, len(fields))
	for i, key := range fields {
		if i >= len(values) {
			break
		}
		if key == "" {
			continue
		}
		out[key] = values[i]
	}
	return out
}

// renameHeaders maps upstream headers through names; unknown headers become "" so Zip drops them.
func renameHeaders(headers []string, names map[string]string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = names[h]
	}
	return out
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// truthy follows loose JSON truthiness: null, false, 0 and "" are false.
func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case float64:
		return b != 0
	case int:
		return b != 0
	case int64:
		return b != 0
	case string:
		return b != ""
	default:
		return true
	}
}
