package recipe

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hammamikhairi/forkify/internal/domain"
)

// Ingredient line grammar:
//
//	line     = [quantity...] [unit] name
//	quantity = integer | decimal | a/b | vulgar fraction | integer+vulgar | q-q
//	unit     = one of Units (after long-form normalisation)
//
// A line whose leading tokens are not quantities keeps a nil count and
// becomes the name as a whole.

// longUnits maps spelled-out unit words to their canonical short form.
var longUnits = map[string]string{
	"tablespoons": "tbsp",
	"tablespoon":  "tbsp",
	"ounces":      "oz",
	"ounce":       "oz",
	"teaspoons":   "tsp",
	"teaspoon":    "tsp",
	"cups":        "cup",
	"pounds":      "pound",
}

// Units is the fixed vocabulary of recognised short unit tokens.
var Units = []string{"tbsp", "oz", "tsp", "cup", "pound", "kg", "g"}

var vulgarFractions = map[rune]float64{
	'½': 1.0 / 2, '⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'¼': 1.0 / 4, '¾': 3.0 / 4,
	'⅕': 1.0 / 5, '⅖': 2.0 / 5, '⅗': 3.0 / 5, '⅘': 4.0 / 5,
	'⅙': 1.0 / 6, '⅚': 5.0 / 6, '⅐': 1.0 / 7,
	'⅛': 1.0 / 8, '⅜': 3.0 / 8, '⅝': 5.0 / 8, '⅞': 7.0 / 8,
	'⅑': 1.0 / 9, '⅒': 1.0 / 10,
}

var (
	parensRe  = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	decimalRe = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)$`)
)

// ParseIngredient turns one free-text ingredient line into count, unit
// and name. It never fails; see the grammar above for the fallback.
func ParseIngredient(line string) domain.Ingredient {
	tokens := normalize(line)
	if len(tokens) == 0 {
		return domain.Ingredient{}
	}

	// Quantity tokens followed by a unit.
	if i := unitIndex(tokens); i > 0 {
		if count, ok := sumQuantities(tokens[:i]); ok {
			return domain.Ingredient{
				Count: &count,
				Unit:  trimPunct(tokens[i]),
				Name:  strings.Join(tokens[i+1:], " "),
			}
		}
	}

	// Leading quantity tokens without a unit.
	n := 0
	for n < len(tokens) {
		if _, ok := parseQuantity(tokens[n]); !ok {
			break
		}
		n++
	}
	if n > 0 {
		count, _ := sumQuantities(tokens[:n])
		return domain.Ingredient{
			Count: &count,
			Name:  strings.Join(tokens[n:], " "),
		}
	}

	return domain.Ingredient{Name: strings.Join(tokens, " ")}
}

// normalize lower-cases the line, drops parenthesised asides, maps long
// unit words to short ones and splits on whitespace.
func normalize(line string) []string {
	s := strings.ToLower(strings.TrimSpace(line))
	s = parensRe.ReplaceAllString(s, " ")

	tokens := strings.Fields(s)
	for i, tok := range tokens {
		if short, ok := longUnits[trimPunct(tok)]; ok {
			tokens[i] = short
		}
	}
	return tokens
}

func unitIndex(tokens []string) int {
	for i, tok := range tokens {
		if IsUnit(trimPunct(tok)) {
			return i
		}
	}
	return -1
}

// IsUnit reports whether tok is in the short unit vocabulary.
func IsUnit(tok string) bool {
	for _, u := range Units {
		if tok == u {
			return true
		}
	}
	return false
}

func sumQuantities(tokens []string) (float64, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	var total float64
	for _, tok := range tokens {
		v, ok := parseQuantity(tok)
		if !ok {
			return 0, false
		}
		total += v
	}
	return total, true
}

// parseQuantity parses a single quantity token. Ranges ("4-6") are
// approximated by their midpoint.
func parseQuantity(tok string) (float64, bool) {
	tok = trimPunct(tok)
	if tok == "" {
		return 0, false
	}

	for _, sep := range []string{"-", "–", "—"} {
		if lo, hi, found := strings.Cut(tok, sep); found {
			a, okA := parseSimple(lo)
			b, okB := parseSimple(hi)
			if !okA || !okB {
				return 0, false
			}
			return (a + b) / 2, true
		}
	}
	return parseSimple(tok)
}

func parseSimple(tok string) (float64, bool) {
	if tok == "" {
		return 0, false
	}

	// Vulgar fraction, optionally glued to an integer ("1½").
	last, size := utf8.DecodeLastRuneInString(tok)
	if frac, ok := vulgarFractions[last]; ok {
		whole := tok[:len(tok)-size]
		if whole == "" {
			return frac, true
		}
		w, ok := parseDecimal(whole)
		if !ok {
			return 0, false
		}
		return w + frac, true
	}

	if num, den, found := strings.Cut(tok, "/"); found {
		n, okN := parseDecimal(num)
		d, okD := parseDecimal(den)
		if !okN || !okD || d == 0 {
			return 0, false
		}
		return n / d, true
	}

	return parseDecimal(tok)
}

func parseDecimal(s string) (float64, bool) {
	if !decimalRe.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func trimPunct(tok string) string {
	return strings.TrimRight(tok, ",.;:")
}
