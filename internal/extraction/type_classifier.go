package extraction

import (
	"strings"

	"statement-engine/internal/model"
)

// Keyword evidence for transaction direction. An explicit debit keyword wins
// outright, then an explicit credit keyword; only when neither appears does
// the amount-pattern hint decide. Explicit wording is more reliable evidence
// than amount-pattern proximity.
var (
	debitKeywords  = []string{"debit", "withdrawal", "payment", "paid", "purchase", "transfer to", "atm"}
	creditKeywords = []string{"credit", "deposit", "received", "transfer from", "salary", "refund"}
)

// ClassifyType resolves the final Debit/Credit direction for a candidate from
// its full source text, falling back to the supplied hint.
func ClassifyType(text string, hint model.TransactionType) model.TransactionType {
	lower := strings.ToLower(text)
	for _, kw := range debitKeywords {
		if strings.Contains(lower, kw) {
			return model.Debit
		}
	}
	for _, kw := range creditKeywords {
		if strings.Contains(lower, kw) {
			return model.Credit
		}
	}
	return hint
}
