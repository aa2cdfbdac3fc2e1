package utils

import (
	"strconv"
	"strings"
)

// ToInt converts integer, float and numeric string values to int.
// Anything else yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	default:
		return 0
	}
}

// ToBool converts flag-like values to bool.
// Numbers are true when 1; strings accept the HTML form spellings
// "1", "true", "on" and "yes" in any case.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, uint, uint64, uint32:
		return ToInt(v) == 1
	case string:
		return truthy(v)
	case []byte:
		return truthy(string(v))
	default:
		return false
	}
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
