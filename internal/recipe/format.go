package recipe

import (
	"fmt"
	"math"
	"strconv"
)

const (
	maxDenominator = 16
	// Beyond 2^53 a float64 no longer holds every integer.
	maxExactWhole = 1 << 53
)

// FormatCount renders a count the way a cook reads it: "4 1/2", "1/3",
// "2". Values with no close small fraction fall back to two decimals.
// A nil count renders as "?".
func FormatCount(count *float64) string {
	if count == nil {
		return "?"
	}
	if math.Abs(*count) >= maxExactWhole {
		return strconv.FormatFloat(*count, 'g', -1, 64)
	}
	v := math.Round(*count*10000) / 10000
	if v < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	whole, frac := math.Modf(v)
	if frac < 1e-4 {
		return formatWhole(whole)
	}

	num, den, ok := approxFraction(frac)
	if !ok {
		return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	}
	if num == den {
		return formatWhole(whole + 1)
	}
	if whole == 0 {
		return fmt.Sprintf("%d/%d", num, den)
	}
	return fmt.Sprintf("%s %d/%d", formatWhole(whole), num, den)
}

func formatWhole(w float64) string {
	return strconv.FormatFloat(w, 'f', 0, 64)
}

// approxFraction finds the smallest denominator n/d within 0.01 of f.
func approxFraction(f float64) (int, int, bool) {
	for den := 2; den <= maxDenominator; den++ {
		num := int(math.Round(f * float64(den)))
		if num == 0 {
			continue
		}
		if math.Abs(float64(num)/float64(den)-f) < 0.01 {
			return num, den, true
		}
	}
	return 0, 0, false
}
