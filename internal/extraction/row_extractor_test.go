package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statement-engine/internal/model"
)

func TestRowExtractorExtract(t *testing.T) {
	var ex RowExtractor

	t.Run("credit row", func(t *testing.T) {
		row := map[string]string{
			"date":        "2024-04-05",
			"particulars": "SALARY CREDIT ACME CORP",
			"credit":      "50000.00",
			"balance":     "65000.00",
		}
		txn := ex.Extract(row, "u1", 0)
		require.NotNil(t, txn)

		assert.Equal(t, "2024-04-05", txn.Date)
		assert.Equal(t, "SALARY CREDIT ACME CORP", txn.Description)
		assert.Equal(t, 50000.0, txn.Amount)
		assert.Equal(t, model.Credit, txn.Type)
		require.NotNil(t, txn.Balance)
		assert.Equal(t, 65000.0, *txn.Balance)
	})

	t.Run("debit side wins over credit", func(t *testing.T) {
		row := map[string]string{
			"date":        "05/04/2024",
			"description": "POS PURCHASE",
			"debit":       "100.00",
			"credit":      "50.00",
		}
		txn := ex.Extract(row, "u1", 0)
		require.NotNil(t, txn)
		assert.Equal(t, model.Debit, txn.Type)
		assert.Equal(t, 100.0, txn.Amount)
	})

	t.Run("alias columns", func(t *testing.T) {
		row := map[string]string{
			"txn date":   "03/04/2024",
			"narration":  "UPI PAYMENT",
			"withdrawal": "₹450.00",
		}
		txn := ex.Extract(row, "u1", 0)
		require.NotNil(t, txn)
		assert.Equal(t, "2024-04-03", txn.Date)
		assert.Equal(t, "UPI PAYMENT", txn.Description)
		assert.Equal(t, 450.0, txn.Amount)
		assert.Equal(t, model.Debit, txn.Type)
	})

	t.Run("empty description uses placeholder", func(t *testing.T) {
		row := map[string]string{"date": "2024-04-05", "credit": "10.00"}
		txn := ex.Extract(row, "u1", 0)
		require.NotNil(t, txn)
		assert.Equal(t, "Transaction", txn.Description)
	})

	t.Run("rejections", func(t *testing.T) {
		rejected := []map[string]string{
			{"particulars": "NO DATE", "debit": "10.00"},
			{"date": "junk", "debit": "10.00"},
			{"date": "2024-04-05", "particulars": "NO AMOUNT"},
			{"date": "2024-04-05", "debit": "0.00", "credit": ""},
			{},
		}
		for i, row := range rejected {
			assert.Nil(t, ex.Extract(row, "u1", i), "row %d should be rejected", i)
		}
	})
}
