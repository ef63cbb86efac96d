package graph

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Weight is an edge weight. It may be NaN when the user typed text that does
// not start with a number; such edges are kept.
type Weight float64

// NaN returns the weight stored for unparsable input.
func NaN() Weight { return Weight(math.NaN()) }

// IsNaN reports whether the weight could not be parsed.
func (w Weight) IsNaN() bool { return math.IsNaN(float64(w)) }

// String formats the weight the way it is shown to the user: shortest
// round-trip form, "NaN", "Infinity" or "-Infinity". Magnitudes of at least
// 1e21 or below 1e-6 use exponent form such as "1e+21" or "1.5e-7".
func (w Weight) String() string {
	f := float64(w)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if a := math.Abs(f); a >= 1e21 || a < 1e-6 {
		return exponentForm(f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// exponentForm drops the zero padding Go adds to short exponents.
func exponentForm(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// MarshalJSON encodes finite weights as numbers and NaN or infinities as null.
func (w Weight) MarshalJSON() ([]byte, error) {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON decodes null as NaN.
func (w *Weight) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*w = NaN()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*w = Weight(f)
	return nil
}

// weightPrefix matches the longest numeric prefix accepted by ParseWeight.
var weightPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseWeight converts prompt text into a weight. Leading whitespace is
// skipped and the longest numeric prefix is used, so "5kg" is 5 and "1e3" is
// 1000. Text without a numeric prefix, including the empty string, yields NaN.
func ParseWeight(text string) Weight {
	m := weightPrefix.FindString(strings.TrimLeftFunc(text, isSpace))
	if m == "" {
		return NaN()
	}
	switch m {
	case "Infinity", "+Infinity":
		return Weight(math.Inf(1))
	case "-Infinity":
		return Weight(math.Inf(-1))
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Out-of-range exponents come back as ±Inf together with ErrRange.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return Weight(f)
		}
		return NaN()
	}
	return Weight(f)
}

// isSpace reports the characters skipped before a number: Unicode spaces
// and line separators plus the byte order mark, but not U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
