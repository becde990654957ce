package classify

import "statement-engine/internal/model"

// Stats aggregates transactions by category: record count plus debit and
// credit amount sums. Transactions without a category count as Other.
func Stats(txns []model.Transaction) map[model.Category]model.CategoryTotals {
	stats := make(map[model.Category]model.CategoryTotals)
	for _, t := range txns {
		cat := t.Category
		if cat == "" {
			cat = model.CategoryOther
		}
		totals := stats[cat]
		totals.Count++
		if t.Type == model.Debit {
			totals.TotalDebit += t.Amount
		} else {
			totals.TotalCredit += t.Amount
		}
		stats[cat] = totals
	}
	return stats
}
