package extraction

import (
	"log/slog"
	"sort"

	"statement-engine/internal/classify"
	"statement-engine/internal/document"
	"statement-engine/internal/model"
)

// Stage identifies a step of the per-document pipeline. Documents advance
// from init through table extraction, text extraction, merge, classify,
// sort and summarize to done; Failed is reached from any step on
// unrecoverable input, Empty is the distinct "ran fine, found nothing"
// terminal outcome.
type Stage string

const (
	StageInit            Stage = "init"
	StageTableExtraction Stage = "table_extraction"
	StageTextExtraction  Stage = "text_extraction"
	StageMerge           Stage = "merge"
	StageClassify        Stage = "classify"
	StageSort            Stage = "sort"
	StageSummarize       Stage = "summarize"
	StageDone            Stage = "done"
	StageEmpty           Stage = "empty"
	StageFailed          Stage = "failed"
)

// previewLines is how many raw text lines are kept for diagnostics when a
// document yields no transactions.
const previewLines = 10

// Summary holds the overall financial totals for one processed document.
type Summary struct {
	TotalTransactions int     `json:"totalTransactions"`
	TotalDebit        float64 `json:"totalDebit"`
	TotalCredit       float64 `json:"totalCredit"`
	NetAmount         float64 `json:"netAmount"`
	DateFrom          string  `json:"dateFrom,omitempty"`
	DateTo            string  `json:"dateTo,omitempty"`
}

// Result is the outcome of processing one document.
type Result struct {
	Transactions  []model.Transaction                     `json:"transactions"`
	Summary       Summary                                 `json:"summary"`
	CategoryStats map[model.Category]model.CategoryTotals `json:"categoryStats"`
	Pages         int                                     `json:"pages"`
	TableCount    int                                     `json:"tableCount"`
	FromTables    int                                     `json:"fromTables"`
	FromText      int                                     `json:"fromText"`
	Stage         Stage                                   `json:"stage"`
	Preview       []string                                `json:"preview,omitempty"` // first raw lines, set on empty result
}

// Pipeline merges both extraction paths into one consistent, categorised,
// date-sorted result set for a single document. It holds no per-document
// state, so one Pipeline may serve many documents concurrently.
type Pipeline struct {
	classifier classify.Classifier
	lines      LineExtractor
	rows       RowExtractor
	log        *slog.Logger
}

// NewPipeline builds a pipeline around the given classifier.
func NewPipeline(classifier classify.Classifier) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		log:        slog.Default(),
	}
}

// Process runs the full per-document pipeline. Table rows are extracted
// first and seed the dedup set; text-line candidates are added only when
// their identity is novel. Per-candidate failures are silent; only a
// document with no usable content or zero resulting transactions surfaces
// an error.
func (p *Pipeline) Process(content *document.Content, userID string) (*Result, error) {
	res := &Result{Stage: StageInit}

	if content == nil || content.Empty() {
		res.Stage = StageFailed
		return res, &Error{Code: ErrNoContent, Message: "document has no text or tables"}
	}
	res.Pages = content.Pages
	res.TableCount = len(content.Tables)

	if content.IsLikelyScanned() {
		p.log.Warn("document looks scanned, text extraction will be unreliable", "pages", content.Pages)
	}

	// Structured rows first: they carry named fields and are the
	// higher-confidence source.
	res.Stage = StageTableExtraction
	var merged []model.Transaction
	for i, row := range content.RowMaps() {
		if tx := p.rows.Extract(row, userID, i); tx != nil {
			merged = append(merged, *tx)
		}
	}
	res.FromTables = len(merged)

	res.Stage = StageTextExtraction
	rawLines := content.Lines()
	var fromText []model.Transaction
	for i, line := range rawLines {
		if tx := p.lines.Extract(line, userID, i); tx != nil {
			fromText = append(fromText, *tx)
		}
	}
	res.FromText = len(fromText)

	res.Stage = StageMerge
	seen := make(map[string]struct{}, len(merged))
	for _, tx := range merged {
		seen[tx.ID] = struct{}{}
	}
	for _, tx := range fromText {
		if _, dup := seen[tx.ID]; dup {
			continue
		}
		seen[tx.ID] = struct{}{}
		merged = append(merged, tx)
	}

	if len(merged) == 0 {
		res.Stage = StageEmpty
		res.Preview = linePreview(rawLines)
		return res, &Error{Code: ErrNoTransactionsFound, Message: "no transactions recognised in document"}
	}

	res.Stage = StageClassify
	classify.Apply(p.classifier, merged)

	res.Stage = StageSort
	SortByDateDesc(merged)

	res.Stage = StageSummarize
	res.Transactions = merged
	res.Summary = Summarize(merged)
	res.CategoryStats = classify.Stats(merged)

	res.Stage = StageDone
	p.log.Info("document processed",
		"user", userID,
		"transactions", len(merged),
		"fromTables", res.FromTables,
		"fromText", res.FromText,
		"pages", res.Pages)
	return res, nil
}

// SortByDateDesc orders transactions most-recent-first. The sort is stable:
// ties keep their merge-step relative order. ISO dates compare correctly as
// strings.
func SortByDateDesc(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date > txns[j].Date
	})
}

// Summarize computes overall totals for a date-descending transaction list.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{TotalTransactions: len(txns)}
	for _, t := range txns {
		if t.Type == model.Debit {
			s.TotalDebit += t.Amount
		} else {
			s.TotalCredit += t.Amount
		}
	}
	s.NetAmount = s.TotalCredit - s.TotalDebit
	if len(txns) > 0 {
		s.DateTo = txns[0].Date
		s.DateFrom = txns[len(txns)-1].Date
	}
	return s
}

// linePreview caps the raw-line diagnostic preview at previewLines lines of
// at most 80 characters each.
func linePreview(lines []string) []string {
	if len(lines) > previewLines {
		lines = lines[:previewLines]
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if r := []rune(l); len(r) > 80 {
			l = string(r[:80])
		}
		out = append(out, l)
	}
	return out
}
