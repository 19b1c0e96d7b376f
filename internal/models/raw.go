package models

import (
	"strconv"
	"strings"
)

// RawRecord is one dataset entry exactly as decoded from the source.
// Records are schema-free; consumers read the keys they know about and
// fall back when a key is missing or unusable.
type RawRecord map[string]interface{}

// FieldString returns the first non-empty string among the given keys.
func (r RawRecord) FieldString(keys ...string) (string, bool) {
	for _, key := range keys {
		value, ok := r[key]
		if !ok {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" {
			return s, true
		}
	}
	return "", false
}

// FieldNumber returns the first numeric value among the given keys.
// JSON numbers, integers, and numeric strings all count.
func (r RawRecord) FieldNumber(keys ...string) (float64, bool) {
	for _, key := range keys {
		value, ok := r[key]
		if !ok || value == nil {
			continue
		}
		switch n := value.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}
