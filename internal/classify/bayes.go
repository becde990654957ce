package classify

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	"statement-engine/internal/model"
)

// Model is a trained multinomial naive Bayes classifier over bag-of-words
// description features, exported to JSON by an offline training step.
// It is read-only after load and safe for concurrent use.
type Model struct {
	Categories []string       `json:"categories"`
	Vocabulary map[string]int `json:"vocabulary"`
	ClassPrior []float64      `json:"classLogPrior"`
	FeatureLog [][]float64    `json:"featureLogProb"`
}

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// LoadModel reads a JSON model file and validates its dimensions.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if len(m.Categories) == 0 || len(m.Categories) != len(m.ClassPrior) || len(m.Categories) != len(m.FeatureLog) {
		return nil, fmt.Errorf("model dimensions inconsistent: %d categories, %d priors, %d feature rows",
			len(m.Categories), len(m.ClassPrior), len(m.FeatureLog))
	}
	for i, row := range m.FeatureLog {
		if len(row) != len(m.Vocabulary) {
			return nil, fmt.Errorf("feature row %d has %d entries, vocabulary has %d", i, len(row), len(m.Vocabulary))
		}
	}
	return &m, nil
}

// Predict scores the description against every class and returns the best
// one. An error means the caller should fall back to the rule classifier:
// no known tokens, or a predicted label outside the fixed category set.
func (m *Model) Predict(description string) (model.Category, error) {
	tokens := tokenRe.FindAllString(strings.ToLower(description), -1)

	counts := make(map[int]int)
	for _, tok := range tokens {
		if idx, ok := m.Vocabulary[tok]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return "", fmt.Errorf("no known tokens in %q", description)
	}

	best := -1
	bestScore := math.Inf(-1)
	for c := range m.Categories {
		score := m.ClassPrior[c]
		for idx, n := range counts {
			score += float64(n) * m.FeatureLog[c][idx]
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	cat := model.Category(m.Categories[best])
	if _, ok := categoryKeywords[cat]; !ok && cat != model.CategoryOther {
		return "", fmt.Errorf("model predicted unknown category %q", cat)
	}
	return cat, nil
}
