package css

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Precision is the number of decimal places computed values are rounded to.
const Precision = 4

// IsEmpty checks wether a value counts as unset: nil, a numeric zero,
// the empty string or the string "0".
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == "" || x == "0"
	case int:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint:
		return x == 0
	case float32:
		return x == 0
	case float64:
		return x == 0
	}
	return false
}

// IsEmptyStrict is like IsEmpty, but additionally treats false and
// "false" as unset.
func IsEmptyStrict(v any) bool {
	switch x := v.(type) {
	case bool:
		return !x
	case string:
		if x == "false" {
			return true
		}
	}
	return IsEmpty(v)
}

var symbolicPattern = regexp.MustCompile(`^var\(\s*--[A-Za-z0-9_-]+\s*(,.*)?\)$`)

// IsSymbolic is a predicate wether s is a custom property reference, e.g.
//
//     var(--columns)
//     var(--gap, 1rem)
//
// Symbolic values cannot be evaluated and have to be preserved verbatim.
// The parenthesis opened by var( has to close at the end of s, so that
// "var(--a, 1px) + var(--b)" is not symbolic.
func IsSymbolic(s string) bool {
	s = strings.TrimSpace(s)
	return symbolicPattern.MatchString(s) && closingParen(s, len("var")) == len(s)-1
}

// closingParen returns the position of the parenthesis closing the one at
// position open, or -1.
func closingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

var lengthPattern = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+))([A-Za-z%]*)$`)

// SplitLength splits a CSS length value into its numeric part and its unit.
//
//     SplitLength("0.625rem")  =>  0.625, "rem"
//     SplitLength("12")        =>  12, ""
//
func SplitLength(s string) (float64, string, error) {
	m := lengthPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, "", fmt.Errorf("not a length value: %q", s)
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", fmt.Errorf("not a length value: %q: %w", s, err)
	}
	return x, strings.ToLower(m[2]), nil
}

// Round rounds x to a number of decimal places, with halves rounded away
// from zero. A zero result is always returned as positive 0.
func Round(x float64, places int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x + 0 // normalizes -0
	}
	if places < 0 {
		places = 0
	}
	p := math.Pow10(places)
	r := math.Round(x*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// FormatNumber returns the shortest decimal text for x after rounding it
// to Precision places, e.g. "0.5859" or "-3".
func FormatNumber(x float64) string {
	return strconv.FormatFloat(Round(x, Precision), 'f', -1, 64)
}
