package allocation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var maxUnits = decimal.NewFromInt(math.MaxInt64)

// ParseUnits converts user-typed text into whole currency units.
//
// Blank text is the unset value and parses as 0. Trailing zero decimals are
// accepted ("30.00" is 30). Exponents, a dot without digits on both sides, a
// sign, a fractional part, or a value that does not fit in an int64 is
// rejected with ErrMalformedAmount.
func ParseUnits(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	if !plainNumber(text) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, text)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, text)
	}
	if !d.IsInteger() || d.IsNegative() || d.GreaterThan(maxUnits) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, text)
	}

	return d.IntPart(), nil
}

// plainNumber reports whether text is digits with an optional single dot
// between digits.
func plainNumber(text string) bool {
	whole, frac, hasDot := strings.Cut(text, ".")
	if whole == "" || (hasDot && frac == "") {
		return false
	}
	return allDigits(whole) && allDigits(frac)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatUnits renders units the way shares are stored on the roster.
func FormatUnits(units int64) string {
	return strconv.FormatInt(units, 10)
}
