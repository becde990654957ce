// Command extract processes bank statement PDFs into categorised transaction
// JSON files. It handles a single file or, with -dir, every PDF in a
// directory, deduplicating across documents by transaction identity.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"statement-engine/internal/classify"
	"statement-engine/internal/document"
	"statement-engine/internal/extraction"
	"statement-engine/internal/logger"
	"statement-engine/internal/model"
	"statement-engine/internal/store"
)

const batchWorkers = 4

func main() {
	var (
		user      = flag.String("user", "user123", "user identifier attached to extracted transactions")
		dir       = flag.Bool("dir", false, "treat the path argument as a directory of PDFs")
		outDir    = flag.String("out", "extracted", "directory for JSON output")
		modelPath = flag.String("model", "", "optional trained classifier model (JSON); rules are used when unset")
		dbPath    = flag.String("db", "", "optional SQLite database to also persist transactions")
		logLevel  = flag.String("log-level", "warn", "log level: debug, info, warn, error")
	)
	flag.Parse()
	logger.Init(*logLevel)

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <pdf-file-or-directory>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal("create output directory: %v", err)
	}

	var st store.Store
	if *dbPath != "" {
		var err error
		st, err = store.NewSQLiteStore(*dbPath)
		if err != nil {
			fatal("open database: %v", err)
		}
		defer st.Close()
	}

	pipe := extraction.NewPipeline(classify.New(*modelPath))

	var err error
	if *dir {
		err = runBatch(pipe, st, path, *user, *outDir)
	} else {
		err = runSingle(pipe, st, path, *user, *outDir)
	}
	if err != nil {
		fatal("%v", err)
	}
}

func runSingle(pipe *extraction.Pipeline, st store.Store, path, user, outDir string) error {
	res, err := processFile(pipe, path, user)
	if err != nil {
		if extraction.CodeOf(err) == extraction.ErrNoTransactionsFound {
			printEmptyResult(path, res)
			return err
		}
		return fmt.Errorf("process %s: %w", path, err)
	}

	outFile, err := writeResult(outDir, user, path, res.Transactions)
	if err != nil {
		return err
	}
	if err := persist(st, res.Transactions); err != nil {
		return err
	}

	printReport(path, res)
	fmt.Printf("Transactions saved to %s\n", outFile)
	return nil
}

func runBatch(pipe *extraction.Pipeline, st store.Store, dir, user, outDir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found in %s", dir)
	}
	sort.Strings(files)
	fmt.Printf("Processing %d PDF file(s) from %s\n", len(files), dir)

	var (
		mu        sync.Mutex
		all       []model.Transaction
		succeeded int
		failed    int
	)

	g := new(errgroup.Group)
	g.SetLimit(batchWorkers)
	for _, file := range files {
		g.Go(func() error {
			res, err := processFile(pipe, file, user)
			if err != nil {
				slog.Warn("document failed", "file", file, "err", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil // one bad document never aborts the batch
			}
			if _, err := writeResult(outDir, user, file, res.Transactions); err != nil {
				return err
			}
			mu.Lock()
			all = append(all, res.Transactions...)
			succeeded++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Cross-document dedup by identity, then one global sort.
	unique := dedupe(all)
	extraction.SortByDateDesc(unique)

	if err := persist(st, unique); err != nil {
		return err
	}

	combined := filepath.Join(outDir,
		fmt.Sprintf("transactions_all_%s_%s.json", user, time.Now().Format("20060102_150405")))
	if err := writeJSON(combined, unique); err != nil {
		return err
	}

	fmt.Printf("\nFiles processed: %d ok, %d failed\n", succeeded, failed)
	fmt.Printf("Duplicates removed: %d\n", len(all)-len(unique))
	printBatchSummary(unique)
	fmt.Printf("Combined transactions saved to %s\n", combined)
	if succeeded == 0 {
		return fmt.Errorf("all %d documents failed", len(files))
	}
	return nil
}

func processFile(pipe *extraction.Pipeline, path, user string) (*extraction.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content, err := document.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode PDF: %w", err)
	}
	return pipe.Process(content, user)
}

func dedupe(txns []model.Transaction) []model.Transaction {
	seen := make(map[string]struct{}, len(txns))
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}

func persist(st store.Store, txns []model.Transaction) error {
	if st == nil {
		return nil
	}
	inserted, err := st.SaveTransactions(context.Background(), txns)
	if err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}
	fmt.Printf("Stored %d new transaction(s) in database\n", inserted)
	return nil
}

func writeResult(outDir, user, pdfPath string, txns []model.Transaction) (string, error) {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	name := fmt.Sprintf("transactions_%s_%s_%s.json", user, base, time.Now().Format("20060102_150405"))
	path := filepath.Join(outDir, name)
	return path, writeJSON(path, txns)
}

func writeJSON(path string, txns []model.Transaction) error {
	data, err := json.MarshalIndent(txns, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
