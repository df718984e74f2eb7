package internal

import (
	"math"
	"strconv"
)

// IsIndexSegment reports whether a path segment is an optional '-' followed
// by one or more ASCII digits
func IsIndexSegment(segment string) bool {
	digits := segment
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// ParseArrayIndex parses an index segment, supporting negative indices.
// Values beyond the int range saturate so that limit checks still reject them.
func ParseArrayIndex(segment string) (int, bool) {
	// Fast path for single digit
	if len(segment) == 1 && segment[0] >= '0' && segment[0] <= '9' {
		return int(segment[0] - '0'), true
	}
	if !IsIndexSegment(segment) {
		return 0, false
	}
	index, err := strconv.Atoi(segment)
	if err != nil {
		if segment[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return index, true
}

// NormalizeIndex normalizes array index, handling negative indices
func NormalizeIndex(index, length int) int {
	if index < 0 {
		return length + index
	}
	return index
}

// ExceedsLimit reports whether abs(index) is above limit without overflowing
func ExceedsLimit(index, limit int) bool {
	if index < 0 {
		return index < -limit
	}
	return index > limit
}

// ToInt converts Go integer kinds to int, saturating on overflow
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt {
			return math.MaxInt, true
		}
		if n < math.MinInt {
			return math.MinInt, true
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return math.MaxInt, true
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if uint64(n) > math.MaxInt {
			return math.MaxInt, true
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return math.MaxInt, true
		}
		return int(n), true
	default:
		return 0, false
	}
}
