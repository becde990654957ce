// Package document decodes source PDFs into the raw material the extraction
// engine consumes: concatenated page text and table grids. It is the only
// package that touches the PDF library; everything downstream sees plain
// strings.
package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	maxTextBytes     = 100 * 1024 // cap on extracted plain text
	scannedThreshold = 50         // chars per page below which the PDF is likely scanned
	columnGap        = 14.0       // horizontal gap (points) that separates table cells
)

// Content is the decoded document: newline-joined page text plus zero or
// more tables, each a grid of cell strings whose first row is the header.
type Content struct {
	Text   string
	Pages  int
	Tables [][][]string
}

// Decode parses PDF bytes into Content. The PDF library is known to panic on
// malformed files, so decoding is wrapped in recover and reported as an
// ordinary error.
func Decode(data []byte) (content *Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("panic decoding PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open PDF reader: %w", err)
	}

	c := &Content{Pages: reader.NumPage()}
	if c.Pages < 1 {
		c.Pages = 1
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract plain text: %w", err)
	}
	textBytes, err := io.ReadAll(io.LimitReader(plain, maxTextBytes))
	if err != nil {
		return nil, fmt.Errorf("read plain text: %w", err)
	}
	c.Text = string(textBytes)

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if table := pageTable(page); len(table) > 1 {
			c.Tables = append(c.Tables, table)
		}
	}

	return c, nil
}

// Lines returns the trimmed, non-empty text lines of the document.
func (c *Content) Lines() []string {
	var lines []string
	for _, line := range strings.Split(c.Text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// RowMaps converts every table into header-keyed row maps. The first row of
// each table is treated as the header; header names are trimmed and
// lower-cased, blank rows and rows with only empty cells are skipped.
func (c *Content) RowMaps() []map[string]string {
	var rows []map[string]string
	for _, table := range c.Tables {
		if len(table) < 2 {
			continue
		}
		headers := make([]string, len(table[0]))
		for i, h := range table[0] {
			headers[i] = strings.ToLower(strings.TrimSpace(h))
		}
		for _, raw := range table[1:] {
			if allEmpty(raw) {
				continue
			}
			row := make(map[string]string)
			for i, cell := range raw {
				if i < len(headers) && headers[i] != "" {
					row[headers[i]] = strings.TrimSpace(cell)
				}
			}
			if len(row) > 0 {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// Empty reports whether the document yielded neither text nor tables.
func (c *Content) Empty() bool {
	return strings.TrimSpace(c.Text) == "" && len(c.Tables) == 0
}

// IsLikelyScanned reports whether the PDF appears to be a scanned image
// (very little extractable text per page).
func (c *Content) IsLikelyScanned() bool {
	pages := c.Pages
	if pages <= 0 {
		pages = 1
	}
	return len(c.Text)/pages < scannedThreshold
}

// pageTable reconstructs a cell grid from the positioned text rows of one
// page. Consecutive fragments separated by more than columnGap points are
// treated as distinct cells. Best-effort: statements rendered without a
// grid layout simply produce rows the row extractor will discard.
func pageTable(page pdf.Page) [][]string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return nil
	}
	var table [][]string
	for _, row := range rows {
		cells := rowCells(row.Content)
		if len(cells) > 1 {
			table = append(table, cells)
		}
	}
	return table
}

// rowCells groups horizontally-ordered text fragments into cells.
func rowCells(texts []pdf.Text) []string {
	var cells []string
	var cell strings.Builder
	var prev *pdf.Text

	flush := func() {
		if s := strings.TrimSpace(cell.String()); s != "" {
			cells = append(cells, s)
		}
		cell.Reset()
	}

	for i := range texts {
		t := texts[i]
		if prev != nil && t.X-(prev.X+prev.W) > columnGap {
			flush()
		}
		cell.WriteString(t.S)
		prev = &texts[i]
	}
	flush()
	return cells
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
