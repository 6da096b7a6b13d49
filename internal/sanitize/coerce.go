// Package sanitize turns the loosely-structured JSON the upstream generator
// returns into a strictly validated, mutually consistent worksheet pair.
// Every function here is a pure transformation over decoded JSON values and
// never fails: malformed input degrades to an inferred or synthetic default.
package sanitize

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// ToList coerces any decoded JSON value into a list. Precedence: an array is
// used as-is; an object contributes its values in key order; a string is
// parsed as a JSON array if possible, else split into non-empty trimmed
// lines. Anything else yields an empty list.
func ToList(v any) []any {
	switch val := v.(type) {
	case []any:
		return val
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]any, 0, len(val))
		for _, k := range keys {
			out = append(out, val[k])
		}
		return out
	case string:
		var arr []any
		if err := json.Unmarshal([]byte(val), &arr); err == nil {
			return arr
		}
		var lines []any
		for _, line := range strings.Split(val, "\n") {
			line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
			if line != "" {
				lines = append(lines, line)
			}
		}
		return lines
	}
	return nil
}

// ToString renders any decoded JSON scalar as a string. nil becomes "";
// numbers drop trailing zeros; composites are re-encoded as JSON.
func ToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// ToInt extracts an integer from a decoded JSON value, reporting whether one
// was present. JSON numbers arrive as float64; fractional values count as
// present and truncate.
func ToInt(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(val), true
	case json.Number:
		i, err := val.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case int:
		return val, true
	}
	return 0, false
}

// StringList coerces a value into a list of non-empty strings. Scalars
// become single-element lists, matching how the upstream generator sometimes
// sends one goal instead of an array of them.
func StringList(v any) []string {
	var raw []any
	switch val := v.(type) {
	case []any:
		raw = val
	case nil:
		return nil
	default:
		raw = []any{val}
	}
	var out []string
	for _, item := range raw {
		if s := strings.TrimSpace(ToString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitOptions coerces an options value into a clean []string. String input
// splits on newline, ";", "|", "," or tab.
func SplitOptions(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		var out []string
		for _, item := range val {
			if s := strings.TrimSpace(ToString(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		var out []string
		for _, piece := range strings.FieldsFunc(ToString(val), isOptionSeparator) {
			if s := strings.TrimSpace(piece); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
}

func isOptionSeparator(r rune) bool {
	switch r {
	case '\n', '\r', ';', '|', ',', '\t':
		return true
	}
	return false
}
