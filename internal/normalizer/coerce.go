package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// toFloat coerces a loosely typed value to a finite float64.
func toFloat(v any) (float64, bool) {
	var f float64

	switch val := v.(type) {
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}

		f = parsed
	case float64:
		f = val
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case bool:
		if val {
			f = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}

		f = parsed
	default:
		return 0, false
	}

	// NaN and Inf cannot be represented in the JSON output.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// toInt coerces a loosely typed value to an int.
// Numbers are truncated toward zero; strings must hold a base-10 integer.
func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case json.Number:
		if n, err := strconv.Atoi(val.String()); err == nil {
			return n, true
		}

		f, err := val.Float64()
		if err != nil {
			return 0, false
		}

		return truncate(f)
	case float64:
		return truncate(val)
	case int:
		return val, true
	case int64:
		return int(val), true
	case bool:
		if val {
			return 1, true
		}

		return 0, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

func truncate(f float64) (int, bool) {
	if math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}

	return int(f), true
}

// toText renders strings and numbers as text. Other values are not text.
func toText(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	default:
		return "", false
	}
}
