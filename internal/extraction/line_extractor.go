package extraction

import (
	"regexp"
	"strings"

	"statement-engine/internal/model"
)

const (
	minLineLength  = 10
	maxDescription = 200
)

// descriptionPlaceholder is used when stripping dates, amounts and noise
// words leaves nothing of the line.
const descriptionPlaceholder = "Transaction"

// headerKeywords is the column-name vocabulary used to spot header lines.
// A line is a header only when at least two of these appear: genuine
// transaction lines routinely mention one such word (e.g. "ATM withdrawal
// debit"), and a single hit must not discard them.
var headerKeywords = []string{"date", "description", "debit", "credit", "balance", "transaction", "particulars"}

var (
	noiseWordsRe = regexp.MustCompile(`(?i)\b(Dr|Cr|debit|credit)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	balanceRe    = regexp.MustCompile(`(?i)balance[:\s]*₹?\s*[\d,]+\.?\d*`)
)

// LineExtractor builds candidate transactions from free-text statement lines.
type LineExtractor struct{}

// Extract attempts to recover a transaction from one line of page text.
// A line that lacks a resolvable date or positive amount yields nil; a
// broken line never aborts the batch. The index is diagnostic only and does
// not feed the identity hash.
func (LineExtractor) Extract(line, userID string, index int) *model.Transaction {
	if len(line) < minLineLength || isHeaderLine(line) {
		return nil
	}

	date, ok := FindDate(line)
	if !ok {
		return nil
	}

	amount, hint, ok := FindAmount(line)
	if !ok {
		return nil
	}

	description := extractDescription(line)
	txType := ClassifyType(line, hint)
	balance := extractBalance(line)

	return &model.Transaction{
		ID:          TransactionID(userID, date, amount, description),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Balance:     balance,
		RawLine:     line,
	}
}

// isHeaderLine reports whether a line is column labelling rather than data.
func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	count := 0
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count >= 2
}

// extractDescription derives the free-text description by deleting every
// date and amount match, dropping standalone Dr/Cr noise words and collapsing
// whitespace. Capped at 200 characters; never empty.
func extractDescription(line string) string {
	desc := stripDatePatterns(line)
	desc = stripAmountPatterns(desc)
	desc = noiseWordsRe.ReplaceAllString(desc, "")
	desc = strings.TrimSpace(whitespaceRe.ReplaceAllString(desc, " "))
	if r := []rune(desc); len(r) > maxDescription {
		desc = string(r[:maxDescription])
	}
	if desc == "" {
		return descriptionPlaceholder
	}
	return desc
}

// extractBalance pulls an explicit running-balance figure from the line,
// or nil when none is present.
func extractBalance(line string) *float64 {
	m := balanceRe.FindString(line)
	if m == "" {
		return nil
	}
	if v := CleanAmount(m); v > 0 {
		return &v
	}
	return nil
}
