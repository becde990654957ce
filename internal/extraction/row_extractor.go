package extraction

import (
	"statement-engine/internal/model"
)

// Column header aliases, checked in priority order. The first present,
// non-empty cell wins.
var (
	dateAliases        = []string{"date", "transaction date", "txn date", "value date"}
	descriptionAliases = []string{"description", "particulars", "narration", "details", "remarks"}
	debitAliases       = []string{"debit", "withdrawal", "debit amount"}
	creditAliases      = []string{"credit", "deposit", "credit amount"}
	balanceAliases     = []string{"balance", "closing balance", "available balance"}
)

// RowExtractor builds candidate transactions from header-mapped table rows.
// Rows arrive with named fields rather than requiring pattern inference, so
// the pipeline treats them as higher-confidence than text lines and runs
// them first to seed the dedup set.
type RowExtractor struct{}

// Extract attempts to recover a transaction from one table row, keyed by
// lower-cased column header. Rows without a resolvable date or a positive
// amount on either side yield nil.
func (RowExtractor) Extract(row map[string]string, userID string, index int) *model.Transaction {
	rawDate := firstCell(row, dateAliases)
	if rawDate == "" {
		return nil
	}
	date, ok := ParseDate(rawDate)
	if !ok {
		return nil
	}

	description := firstCell(row, descriptionAliases)
	if description == "" {
		description = descriptionPlaceholder
	}

	// Debit columns take priority: only a row with no debit amount is
	// considered for the credit side.
	amount := 0.0
	txType := model.Debit
	if cell := firstCell(row, debitAliases); cell != "" {
		amount = CleanAmount(cell)
	}
	if amount == 0 {
		if cell := firstCell(row, creditAliases); cell != "" {
			amount = CleanAmount(cell)
			txType = model.Credit
		}
	}
	if amount == 0 {
		return nil
	}

	var balance *float64
	if cell := firstCell(row, balanceAliases); cell != "" {
		if v := CleanAmount(cell); v > 0 {
			balance = &v
		}
	}

	return &model.Transaction{
		ID:          TransactionID(userID, date, amount, description),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Balance:     balance,
	}
}

// firstCell returns the first non-empty cell among the aliased headers.
func firstCell(row map[string]string, aliases []string) string {
	for _, key := range aliases {
		if v, ok := row[key]; ok && v != "" {
			return v
		}
	}
	return ""
}
