package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"statement-engine/internal/model"
)

// amountPattern pairs a regexp with the submatch index holding the numeric
// part. Patterns are evaluated in order; within a pattern every match is
// tried and the first positive value wins.
type amountPattern struct {
	re    *regexp.Regexp
	group int
}

// amountPatterns is the ordered cascade of amount shapes: "₹1,234.56",
// "Rs.1234.56", a bare decimal like "1234.56", and finally a bare number
// directly before a Dr/Cr token. Explicit currency markers rank above bare
// decimals; the number-before-marker form comes last because it is the least
// selective and can pick up reference numbers next to a Dr/Cr token.
var amountPatterns = []amountPattern{
	{regexp.MustCompile(`₹\s*[\d,]+\.?\d*`), 0},
	{regexp.MustCompile(`(?i)Rs\.?\s*[\d,]+\.?\d*`), 0},
	{regexp.MustCompile(`\b[\d,]+\.\d{2}\b`), 0},
	{regexp.MustCompile(`(?i)\b([\d,]+)\s*(?:Dr|Cr|debit|credit)\b`), 1},
}

// currencyMarkers strips rupee symbols and Rs prefixes before numeric cleanup.
var currencyMarkers = regexp.MustCompile(`(?i)₹|rs\.?`)

// nonNumeric removes everything but digits and the decimal point.
var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// CleanAmount normalises an amount string (currency symbols, thousands
// separators, surrounding text) to a non-negative float. Malformed or empty
// input yields 0, which callers treat as "no amount present".
func CleanAmount(raw string) float64 {
	s := currencyMarkers.ReplaceAllString(raw, "")
	s = nonNumeric.ReplaceAllString(s, "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// FindAmount scans a line for the first positive amount using the pattern
// cascade. The returned hint is Debit when the line carries a dr/debit token
// and Credit otherwise; explicit keyword classification downstream overrides
// it.
func FindAmount(line string) (float64, model.TransactionType, bool) {
	for _, p := range amountPatterns {
		for _, m := range p.re.FindAllStringSubmatch(line, -1) {
			if amount := CleanAmount(m[p.group]); amount > 0 {
				lower := strings.ToLower(line)
				hint := model.Credit
				if strings.Contains(lower, "dr") || strings.Contains(lower, "debit") {
					hint = model.Debit
				}
				return amount, hint, true
			}
		}
	}
	return 0, "", false
}

// stripAmountPatterns removes every recognised amount substring from a line.
func stripAmountPatterns(line string) string {
	for _, p := range amountPatterns {
		line = p.re.ReplaceAllString(line, "")
	}
	return line
}
