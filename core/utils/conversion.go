package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, JSON numbers, strings, and byte slices.
// Anything that cannot be read as a number yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int8:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint16:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return floatToInt(v)
	case float32:
		return floatToInt(float64(v))
	case json.Number:
		return parseNumber(string(v))
	case string:
		return parseNumber(v)
	case []byte:
		return parseNumber(string(v))
	case bool:
		return 0
	default:
		return parseNumber(fmt.Sprintf("%v", v))
	}
}

// ToVotes converts a raw vote count to a non-negative integer.
// Missing, non-numeric and negative values all become 0.
func ToVotes(val any) int {
	n := ToInt(val)
	if n < 0 {
		return 0
	}
	return n
}

func parseNumber(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return floatToInt(f)
}

func floatToInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}
