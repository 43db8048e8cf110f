package model

import "fmt"

// fieldStr reads a string field from a decoded row. Null markers and
// missing keys read as the empty string.
func fieldStr(r map[string]any, key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// fieldNum reads a numeric field from a decoded row, defaulting to 0.
func fieldNum(r map[string]any, key string) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
