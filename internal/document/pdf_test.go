package document

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentLines(t *testing.T) {
	c := &Content{Text: "  first line  \n\n\t\nsecond line\n"}
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "first line", lines[0])
	assert.Equal(t, "second line", lines[1])

	assert.Empty(t, (&Content{}).Lines())
}

func TestContentRowMaps(t *testing.T) {
	c := &Content{
		Tables: [][][]string{
			{
				{" Date ", "Particulars", "Debit", ""},
				{"03/04/2024", "SWIGGY ORDER", "450.00", "ignored"},
				{"", "  ", "", ""}, // blank row skipped
				{"05/04/2024", "SALARY"},
			},
			{
				{"only a header"},
			},
		},
	}

	rows := c.RowMaps()
	require.Len(t, rows, 2)

	assert.Equal(t, "03/04/2024", rows[0]["date"])
	assert.Equal(t, "SWIGGY ORDER", rows[0]["particulars"])
	assert.Equal(t, "450.00", rows[0]["debit"])
	_, hasBlankHeader := rows[0][""]
	assert.False(t, hasBlankHeader)

	// Short rows map only the columns they have.
	assert.Equal(t, "05/04/2024", rows[1]["date"])
	assert.Equal(t, "SALARY", rows[1]["particulars"])
	_, hasDebit := rows[1]["debit"]
	assert.False(t, hasDebit)
}

func TestContentEmpty(t *testing.T) {
	assert.True(t, (&Content{}).Empty())
	assert.True(t, (&Content{Text: "   \n  "}).Empty())
	assert.False(t, (&Content{Text: "some text"}).Empty())
	assert.False(t, (&Content{Tables: [][][]string{{{"h"}, {"v"}}}}).Empty())
}

func TestContentIsLikelyScanned(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}

	assert.True(t, (&Content{Pages: 1, Text: "tiny"}).IsLikelyScanned())
	assert.True(t, (&Content{Pages: 20, Text: string(long)}).IsLikelyScanned())
	assert.False(t, (&Content{Pages: 2, Text: string(long)}).IsLikelyScanned())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not a pdf at all"), []byte("%PDF-1.4 truncated")} {
		c, err := Decode(data)
		assert.Error(t, err)
		assert.Nil(t, c)
	}
}

func TestRowCells(t *testing.T) {
	texts := []pdf.Text{
		{S: "03/04/", X: 10, W: 30},
		{S: "2024", X: 41, W: 20}, // 1pt gap, same cell
		{S: "SWIGGY ORDER", X: 120, W: 80},
		{S: "450.00", X: 300, W: 40},
	}
	cells := rowCells(texts)
	require.Len(t, cells, 3)
	assert.Equal(t, "03/04/2024", cells[0])
	assert.Equal(t, "SWIGGY ORDER", cells[1])
	assert.Equal(t, "450.00", cells[2])

	assert.Empty(t, rowCells(nil))
}
