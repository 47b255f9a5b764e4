package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// StringOr returns *v if the pointer is set, otherwise def. Only
// absence counts as missing: an explicitly configured empty string is
// preserved.
func StringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// BoolOr returns *v if the pointer is set, otherwise def. An explicit
// false is preserved.
func BoolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// DurationOr returns *v if the pointer is set, otherwise def.
func DurationOr(v *time.Duration, def time.Duration) time.Duration {
	if v == nil {
		return def
	}
	return *v
}

// CoerceInt normalizes a loosely typed config value to an integer.
//
// A nil value yields the default. Integers, integral floats, and
// numeric strings are accepted; booleans and non-numeric input are
// rejected. The result must fall within the inclusive [min, max]
// range. The name is used in error messages so callers get a message
// pointing at the offending option.
func CoerceInt(name string, v any, def, min, max int) (int, error) {
	n := def

	switch val := v.(type) {
	case nil:
		// keep default
	case bool:
		return 0, fmt.Errorf("option %q: expected an integer, got boolean %v", name, val)
	case int:
		n = val
	case int64:
		n = int(val)
	case float64:
		if val != math.Trunc(val) {
			return 0, fmt.Errorf("option %q: expected an integer, got fractional number %v", name, val)
		}
		n = int(val)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("option %q: expected an integer, got %q", name, val)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("option %q: expected an integer, got %T", name, v)
	}

	if n < min || n > max {
		return 0, fmt.Errorf("option %q: value %d out of range [%d, %d]", name, n, min, max)
	}

	return n, nil
}
