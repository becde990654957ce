package extraction

import (
	"strconv"
	"testing"

	"statement-engine/internal/model"
)

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1234.56", 1234.56},
		{"₹1,234.56", 1234.56},
		{"₹ 500", 500},
		{"Rs.450.00", 450},
		{"Rs 450", 450},
		{"rs. 1,00,000.00", 100000},
		{"0.00", 0},
		{"", 0},
		{"abc", 0},
		{"12.34.56", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := CleanAmount(tt.raw); got != tt.want {
				t.Errorf("CleanAmount(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// Cleaning an already-clean value must not change it.
func TestCleanAmountIdempotent(t *testing.T) {
	for _, raw := range []string{"₹1,234.56", "Rs.450.00", "999.99"} {
		once := CleanAmount(raw)
		again := CleanAmount(strconv.FormatFloat(once, 'f', -1, 64))
		if once != again {
			t.Errorf("CleanAmount(%q) = %v, re-cleaned to %v", raw, once, again)
		}
	}
}

func TestFindAmount(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		want     float64
		wantType model.TransactionType
		ok       bool
	}{
		{"rupee symbol", "UPI ₹1,234.56 transfer", 1234.56, model.Credit, true},
		{"rs prefix debit", "SWIGGY ORDER Rs.450.00 Dr", 450, model.Debit, true},
		{"bare decimal", "NEFT INWARD 1234.56", 1234.56, model.Credit, true},
		{"amount before cr", "REFUND 500 Cr", 500, model.Credit, true},
		{"amount before dr", "CHARGES 120 Dr", 120, model.Debit, true},
		{"debit word hint", "POS debit 350.00", 350, model.Debit, true},
		{"no amount", "OPENING ENTRY", 0, "", false},
		{"date is not an amount", "03/04/2024 PENDING", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, typ, ok := FindAmount(tt.line)
			if ok != tt.ok {
				t.Fatalf("FindAmount(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want || typ != tt.wantType {
				t.Errorf("FindAmount(%q) = (%v, %s), want (%v, %s)", tt.line, got, typ, tt.want, tt.wantType)
			}
		})
	}
}
