// Package model defines the canonical transaction records produced by the
// extraction engine and shared by the classifier, pipeline and stores.
package model

// TransactionType indicates the direction of money movement.
type TransactionType string

const (
	Debit  TransactionType = "Debit"
	Credit TransactionType = "Credit"
)

// Category is a fixed spending/income category assigned to every transaction.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryShopping       Category = "Shopping"
	CategoryBills          Category = "Bills"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryInvestment     Category = "Investment"
	CategoryTransfer       Category = "Transfer"
	CategoryATM            Category = "ATM"
	CategorySalary         Category = "Salary"
	CategoryOther          Category = "Other"
)

// Transaction is the canonical output record for one observed bank movement.
// The id is a content hash over (userId, date, amount, description prefix) and
// serves as the sole deduplication key across extraction paths and documents.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Date        string          `json:"date"` // ISO YYYY-MM-DD, always parseable
	Description string          `json:"description"`
	Amount      float64         `json:"amount"` // magnitude, always > 0
	Type        TransactionType `json:"type"`
	Balance     *float64        `json:"balance,omitempty"`
	Category    Category        `json:"category"`
	RawLine     string          `json:"rawLine,omitempty"` // only for text-line candidates
}

// CategoryTotals aggregates per-category counts and debit/credit sums.
type CategoryTotals struct {
	Count       int     `json:"count"`
	TotalDebit  float64 `json:"totalDebit"`
	TotalCredit float64 `json:"totalCredit"`
}
