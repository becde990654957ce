package extraction

import (
	"strings"
	"testing"
)

func TestTransactionID(t *testing.T) {
	a := TransactionID("u1", "2024-04-03", 450, "SWIGGY ORDER")
	b := TransactionID("u1", "2024-04-03", 450, "SWIGGY ORDER")
	if a != b {
		t.Errorf("identical tuples produced different IDs: %s vs %s", a, b)
	}
	if len(a) != 32 {
		t.Errorf("ID length = %d, want 32 hex chars", len(a))
	}

	variants := []string{
		TransactionID("u2", "2024-04-03", 450, "SWIGGY ORDER"),
		TransactionID("u1", "2024-04-04", 450, "SWIGGY ORDER"),
		TransactionID("u1", "2024-04-03", 451, "SWIGGY ORDER"),
		TransactionID("u1", "2024-04-03", 450, "ZOMATO ORDER"),
	}
	for i, v := range variants {
		if v == a {
			t.Errorf("variant %d collided with base ID", i)
		}
	}
}

// Only the first 50 characters of the description participate, so records
// that differ past that point intentionally collapse to one identity.
func TestTransactionIDDescriptionPrefix(t *testing.T) {
	prefix := strings.Repeat("A", 50)
	a := TransactionID("u1", "2024-04-03", 100, prefix+" TRAILING REF 123")
	b := TransactionID("u1", "2024-04-03", 100, prefix+" OTHER SUFFIX")
	if a != b {
		t.Errorf("IDs differ despite identical 50-char prefix")
	}

	c := TransactionID("u1", "2024-04-03", 100, "B"+prefix[1:])
	if c == a {
		t.Errorf("IDs collided despite differing prefix")
	}
}

// The same underlying transaction seen as a table row and as a text line must
// hash identically, otherwise the merge step cannot deduplicate across paths.
func TestTransactionIDCrossPath(t *testing.T) {
	var lines LineExtractor
	var rows RowExtractor

	fromLine := lines.Extract("05/04/2024 UPI PAYMENT AMAZON 999.00 Dr", "u1", 0)
	fromRow := rows.Extract(map[string]string{
		"date":        "05/04/2024",
		"particulars": "UPI PAYMENT AMAZON",
		"debit":       "999.00",
	}, "u1", 0)

	if fromLine == nil || fromRow == nil {
		t.Fatalf("extraction failed: line=%v row=%v", fromLine, fromRow)
	}
	if fromLine.ID != fromRow.ID {
		t.Errorf("cross-path IDs differ: line %s vs row %s (descriptions %q vs %q)",
			fromLine.ID, fromRow.ID, fromLine.Description, fromRow.Description)
	}
}
