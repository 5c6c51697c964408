package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts a decoded JSON or config value to int.
// Values that cannot be converted return 0; use ToIntOK to tell them apart.
func ToInt(val any) int {
	i, _ := ToIntOK(val)
	return i
}

// ToIntOK converts val to int and reports whether the conversion succeeded.
// It handles the integer and float kinds produced by encoding/json, yaml and
// toml decoders, json.Number, and numeric strings.
func ToIntOK(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case float32:
		return ToIntOK(float64(v))
	case json.Number:
		i, err := v.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	case []byte:
		return ToIntOK(string(v))
	default:
		return 0, false
	}
}

// ToString converts scalar values to their query-string form.
// Whole floats render without a fraction so 7.0 and 7 compare equal.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
