package normalizer

import (
	"encoding/json"
	"strings"
)

// ParseNamedList extracts the "name" of every object in a list-of-objects value.
//
// The value is either an already decoded array or a string holding one. Exports
// often write such strings with single-quoted keys and values, e.g.
// "[{'id': 18, 'name': 'Drama'}]", so a string that is not valid JSON is retried
// with single quotes replaced by double quotes. Objects without a string name are
// skipped. Anything that cannot be read as an array of objects yields an empty,
// non-nil list.
func ParseNamedList(v any) []string {
	switch val := v.(type) {
	case string:
		items, ok := decodeObjectArray(val)
		if !ok {
			return []string{}
		}

		return collectNames(items)
	case []any:
		items := make([]map[string]any, 0, len(val))

		for _, item := range val {
			obj, isObj := item.(map[string]any)
			if !isObj {
				return []string{}
			}

			items = append(items, obj)
		}

		return collectNames(items)
	default:
		return []string{}
	}
}

func decodeObjectArray(s string) ([]map[string]any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return items, true
	}

	if !strings.Contains(s, "'") {
		return nil, false
	}

	items = nil
	if err := json.Unmarshal([]byte(strings.ReplaceAll(s, "'", `"`)), &items); err != nil {
		return nil, false
	}

	return items, true
}

func collectNames(items []map[string]any) []string {
	names := make([]string, 0, len(items))

	for _, item := range items {
		if name, ok := item["name"].(string); ok {
			names = append(names, name)
		}
	}

	return names
}
