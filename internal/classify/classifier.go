// Package classify assigns spending/income categories to extracted
// transactions and aggregates per-category statistics.
package classify

import (
	"strings"

	"statement-engine/internal/model"
)

// Classifier maps a transaction description to a category. Implementations
// must be pure functions of the description text so that classifying the
// same description twice always yields the same category.
type Classifier interface {
	Classify(description string) model.Category
}

// categoryOrder fixes the evaluation order across categories. Descriptions
// can match several categories' keywords; the first category in this order
// wins, so the order is part of the contract.
var categoryOrder = []model.Category{
	model.CategoryFood,
	model.CategoryShopping,
	model.CategoryBills,
	model.CategoryTransportation,
	model.CategoryEntertainment,
	model.CategoryHealthcare,
	model.CategoryEducation,
	model.CategoryInvestment,
	model.CategoryTransfer,
	model.CategoryATM,
	model.CategorySalary,
}

// categoryKeywords maps each category to its lowercase match substrings.
var categoryKeywords = map[model.Category][]string{
	model.CategoryFood:           {"swiggy", "zomato", "restaurant", "cafe", "food", "pizza", "burger", "dominos", "mcdonalds", "kfc"},
	model.CategoryShopping:       {"amazon", "flipkart", "myntra", "ajio", "shopping", "mall", "store", "retail", "market"},
	model.CategoryBills:          {"electricity", "water", "gas", "bill", "utility", "recharge", "mobile", "broadband", "internet"},
	model.CategoryTransportation: {"uber", "ola", "rapido", "petrol", "fuel", "parking", "toll", "metro", "bus", "train"},
	model.CategoryEntertainment:  {"netflix", "spotify", "hotstar", "prime", "movie", "cinema", "theatre", "gaming", "game"},
	model.CategoryHealthcare:     {"hospital", "pharmacy", "medical", "doctor", "clinic", "medicine", "health", "apollo", "medplus"},
	model.CategoryEducation:      {"school", "college", "university", "course", "tuition", "education", "book", "fees"},
	model.CategoryInvestment:     {"mutual fund", "sip", "stock", "equity", "investment", "trading", "zerodha", "groww"},
	model.CategoryTransfer:       {"transfer", "upi", "imps", "neft", "rtgs", "sent to", "received from"},
	model.CategoryATM:            {"atm", "cash withdrawal", "withdrawal"},
	model.CategorySalary:         {"salary", "wage", "income", "payroll"},
}

// RuleClassifier is the deterministic keyword-table classifier.
type RuleClassifier struct{}

// Classify returns the first category (in fixed order) with a keyword
// substring match against the lowercased description, or Other.
func (RuleClassifier) Classify(description string) model.Category {
	lower := strings.ToLower(description)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return model.CategoryOther
}

// New returns the classifier for the given model path. With an empty path,
// or when the model cannot be loaded, the rule classifier is returned; the
// trained model is strictly an optional enhancement and its absence is not
// an error.
func New(modelPath string) Classifier {
	if modelPath == "" {
		return RuleClassifier{}
	}
	m, err := LoadModel(modelPath)
	if err != nil {
		return RuleClassifier{}
	}
	return &ModelClassifier{model: m}
}

// ModelClassifier tries a trained statistical model first and falls back to
// the rule table on any prediction failure. The fallback is silent so the
// caller never needs to know which strategy answered.
type ModelClassifier struct {
	model    *Model
	fallback RuleClassifier
}

func (c *ModelClassifier) Classify(description string) model.Category {
	if cat, err := c.model.Predict(description); err == nil {
		return cat
	}
	return c.fallback.Classify(description)
}

// Apply assigns a category to every transaction in place.
func Apply(c Classifier, txns []model.Transaction) {
	for i := range txns {
		txns[i].Category = c.Classify(txns[i].Description)
	}
}
