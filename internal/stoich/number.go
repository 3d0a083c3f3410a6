package stoich

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber returns the value of the longest numeric prefix of s, or 0.
// NaN and infinities are 0 as well.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	n := numericPrefix(s)
	if n == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// numericPrefix returns length of [+-]digits[.digits][e[+-]digits] at the start of s.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
