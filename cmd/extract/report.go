package main

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"statement-engine/internal/extraction"
	"statement-engine/internal/model"
)

var (
	longNumbersRe  = regexp.MustCompile(`\d{6,}`)
	specialCharsRe = regexp.MustCompile(`[*#]+`)
	titleCaser     = cases.Title(language.English)
)

// printReport writes the extraction summary for one document to stdout.
func printReport(path string, res *extraction.Result) {
	fmt.Printf("Processed %s: %d pages, %d tables\n", path, res.Pages, res.TableCount)
	fmt.Printf("  %d from tables, %d from text, %d unique\n",
		res.FromTables, res.FromText, len(res.Transactions))

	s := res.Summary
	fmt.Printf("\nFinancial summary\n")
	if s.DateFrom != "" {
		fmt.Printf("  Date range:    %s to %s\n", s.DateFrom, s.DateTo)
	}
	fmt.Printf("  Total debits:  %.2f\n", s.TotalDebit)
	fmt.Printf("  Total credits: %.2f\n", s.TotalCredit)
	fmt.Printf("  Net amount:    %.2f\n", s.NetAmount)

	printCategoryBreakdown(res.CategoryStats)

	if len(res.Transactions) > 0 {
		fmt.Printf("\nMost recent transactions\n")
		for i, t := range res.Transactions {
			if i == 5 {
				break
			}
			fmt.Printf("  %s  %-6s %10.2f  %s\n", t.Date, t.Type, t.Amount, displayName(t.Description))
		}
	}
	fmt.Println()
}

// printBatchSummary writes the combined summary after a directory run.
func printBatchSummary(txns []model.Transaction) {
	s := extraction.Summarize(txns)
	fmt.Printf("Total unique transactions: %d\n", s.TotalTransactions)
	if s.DateFrom != "" {
		fmt.Printf("Date range: %s to %s\n", s.DateFrom, s.DateTo)
	}
	fmt.Printf("Total debits: %.2f, total credits: %.2f, net: %.2f\n",
		s.TotalDebit, s.TotalCredit, s.NetAmount)
}

// printEmptyResult explains a no-transactions outcome and shows the first
// raw lines to help diagnose unrecognised statement layouts.
func printEmptyResult(path string, res *extraction.Result) {
	fmt.Printf("No transactions found in %s\n", path)
	fmt.Println("The statement layout may not be recognised, or the PDF may be scanned.")
	if res == nil || len(res.Preview) == 0 {
		return
	}
	fmt.Println("First lines of extracted text:")
	for i, line := range res.Preview {
		fmt.Printf("  %2d. %s\n", i+1, line)
	}
}

func printCategoryBreakdown(stats map[model.Category]model.CategoryTotals) {
	if len(stats) == 0 {
		return
	}
	type entry struct {
		cat    model.Category
		totals model.CategoryTotals
	}
	entries := make([]entry, 0, len(stats))
	for cat, totals := range stats {
		entries = append(entries, entry{cat, totals})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].totals.Count != entries[j].totals.Count {
			return entries[i].totals.Count > entries[j].totals.Count
		}
		return entries[i].cat < entries[j].cat
	})

	fmt.Printf("\nCategory breakdown\n")
	for _, e := range entries {
		fmt.Printf("  %-15s %3d transactions | debit %10.2f | credit %10.2f\n",
			e.cat, e.totals.Count, e.totals.TotalDebit, e.totals.TotalCredit)
	}
}

// displayName tidies a raw description for terminal output: long reference
// numbers and decorations dropped, words title-cased.
func displayName(raw string) string {
	cleaned := longNumbersRe.ReplaceAllString(raw, "")
	cleaned = specialCharsRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return raw
	}

	words := strings.Fields(cleaned)
	for i, w := range words {
		if len(w) > 2 {
			words[i] = titleCaser.String(strings.ToLower(w))
		} else {
			words[i] = strings.ToUpper(w)
		}
	}
	out := strings.Join(words, " ")
	if len(out) > 50 {
		out = out[:50]
	}
	return out
}
