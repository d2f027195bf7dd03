// Package normalize converts raw, loosely-shaped backend payloads into the
// canonical records in model. The backend mixes camelCase and snake_case
// keys and ships images and string lists in several shapes; every function
// here probes candidate keys in priority order (camelCase first) and
// defaults to a safe zero value when nothing matches.
//
// Functions are pure: no logging, no I/O. Envelope unwrapping lives in the
// envelope package so new response shapes never touch this code.
package normalize

import (
	"fmt"
	"strings"
)

// NormalizationError reports a payload that cannot be treated as a record
// at all (nil or a non-object where an object is required). Field-level
// problems never produce one; missing fields become zero values.
type NormalizationError struct {
	Reason string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalization failed: %s", e.Reason)
}

// stringAt returns the first candidate key holding a string value.
func stringAt(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// intAt returns the first candidate key holding a numeric value, truncated
// to int. JSON numbers decode as float64; string digits are also accepted
// because some backend rows ship numbers as text.
func intAt(raw map[string]any, keys ...string) int {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case string:
			var parsed int
			if _, err := fmt.Sscanf(strings.TrimSpace(n), "%d", &parsed); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// floatAt returns the first candidate key holding a numeric value.
func floatAt(raw map[string]any, keys ...string) float64 {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case string:
			var parsed float64
			if _, err := fmt.Sscanf(strings.TrimSpace(n), "%f", &parsed); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// boolAt returns the first candidate key holding a boolean value.
func boolAt(raw map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}

// stringList coerces any of the backend's list shapes into a string slice:
// an array of strings, an array of objects carrying a "name" field, or a
// single space-delimited string. The result is never nil.
func stringList(v any) []string {
	out := []string{}
	switch list := v.(type) {
	case []any:
		for _, item := range list {
			switch entry := item.(type) {
			case string:
				if s := strings.TrimSpace(entry); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				if s := strings.TrimSpace(stringAt(entry, "name")); s != "" {
					out = append(out, s)
				}
			}
		}
	case []string:
		for _, entry := range list {
			if s := strings.TrimSpace(entry); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, token := range strings.Fields(list) {
			out = append(out, token)
		}
	}
	return out
}

// listAt probes candidate keys and coerces the first present value with
// stringList.
func listAt(raw map[string]any, keys ...string) []string {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return stringList(v)
		}
	}
	return []string{}
}

// splitCSV splits comma-joined text into trimmed non-empty tokens.
// "Good food, Great library,, " becomes ["Good food", "Great library"].
func splitCSV(s string) []string {
	out := []string{}
	for _, token := range strings.Split(s, ",") {
		if t := strings.TrimSpace(token); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// tokens coerces a pros/cons value: already a list, or comma-joined text.
func tokens(v any) []string {
	switch val := v.(type) {
	case []any:
		out := []string{}
		for _, item := range val {
			if s, ok := item.(string); ok {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
		}
		return out
	case []string:
		out := []string{}
		for _, s := range val {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
		return out
	case string:
		return splitCSV(val)
	}
	return []string{}
}
