package recipe

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangePattern    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)$`)
	mixedPattern    = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)$`)
	fractionPattern = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)$`)
	leadingFloat    = regexp.MustCompile(`^\d+(?:\.\d+)?`)
)

// ParseQuantity converts a numeric-ish substring into a quantity. Resolution
// order: range ("2-3" averages to 2.5), mixed fraction ("1 1/2"), simple
// fraction ("3/4"), plain number. Nil means the text carries no parseable
// amount. No unit conversion happens here.
func ParseQuantity(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		lo, errLo := strconv.ParseFloat(m[1], 64)
		hi, errHi := strconv.ParseFloat(m[2], 64)
		if errLo == nil && errHi == nil {
			return QuantityOf((lo + hi) / 2)
		}
	}

	if m := mixedPattern.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den != 0 {
			return QuantityOf(whole + num/den)
		}
		return nil
	}

	if m := fractionPattern.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			return QuantityOf(num / den)
		}
		return nil
	}

	// Plain number, accepting a numeric prefix the way parseFloat does.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return QuantityOf(f)
	}
	if prefix := leadingFloat.FindString(s); prefix != "" {
		if f, err := strconv.ParseFloat(prefix, 64); err == nil {
			return QuantityOf(f)
		}
	}

	return nil
}
