// Package validator turns raw text typed by the user into a bounded
// positive integer or a classified rejection.
package validator

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"divgrid/internal/domain"
)

// Validate classifies raw against the inclusive range [1, maximum].
// Blank input is not an error; it yields an empty outcome with no bound.
func Validate(raw string, maximum int) domain.Outcome {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.Empty(maximum)
	}

	n, ok := parseInteger(text)
	if !ok {
		return domain.Invalid(domain.ReasonNotAnInteger, maximum)
	}
	if n < 1 {
		return domain.Invalid(domain.ReasonNotPositive, maximum)
	}
	if n > float64(maximum) {
		return domain.Invalid(domain.ReasonExceedsMaximum, maximum)
	}
	return domain.Valid(int(n), maximum)
}

// decimalRe is plain decimal notation with an optional exponent. Go literal
// forms that ParseFloat also takes (underscores, hex, Inf, NaN) do not match.
var decimalRe = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// parseInteger accepts decimal notation ("42", "4.2e1", "42.0") as long as
// the value is finite and integral.
func parseInteger(text string) (float64, bool) {
	if !decimalRe.MatchString(text) {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ParseFloat reports overflow as ErrRange with ±Inf, still not usable
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}
