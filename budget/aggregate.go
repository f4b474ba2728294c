// Package budget holds the aggregation rules for monthly budget documents:
// category matching, expense application and bucket totals.
package budget

import (
	"regexp"
	"strings"
	"time"

	"github.com/vedant-kerulkar07/Fin-View/models"
)

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeName lowercases and trims a category name for case-insensitive
// matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SlugKey derives a category key from its name: lowercased, surrounding
// whitespace trimmed, inner whitespace replaced with hyphens.
func SlugKey(name string) string {
	return whitespace.ReplaceAllString(NormalizeName(name), "-")
}

// DefaultCategories is the 50/30/20 plan every fresh budget starts with.
func DefaultCategories() []models.Category {
	return []models.Category{
		{Key: "needs", Name: "Needs", Pct: 50, Type: models.CategoryTypeDefault, Expenses: []models.Expense{}},
		{Key: "wants", Name: "Wants", Pct: 30, Type: models.CategoryTypeDefault, Expenses: []models.Expense{}},
		{Key: "savings", Name: "Savings", Pct: 20, Type: models.CategoryTypeDefault, Expenses: []models.Expense{}},
	}
}

// NewEmptyBudget builds a zero-income budget for the period, used when an
// expense arrives before the user has saved a plan.
func NewEmptyBudget(userID string, month, year int) *models.Budget {
	return &models.Budget{
		User:         userID,
		Income:       0,
		CustomSplits: map[string]float64{},
		Totals:       models.Totals{},
		Categories:   DefaultCategories(),
		Title:        "My Budget",
		Period:       models.Period{Month: month, Year: year},
	}
}

// ApplyExpense records one expense against the budget in place. The
// category is matched case-insensitively on display name; a miss creates a
// custom category with a zero allocation. When the resolved category key is
// one of the three canonical buckets the matching bucket total is bumped,
// and totals.total is recomputed as the sum of the buckets. Spend on other
// custom categories accumulates on the category only, never in the bucket
// totals.
func ApplyExpense(b *models.Budget, category string, amount float64, date time.Time, title string) *models.Category {
	if title == "" {
		title = "Expense"
	}
	normalized := NormalizeName(category)

	// Match on the normalized stored name too, so padded input can neither
	// miss an existing category nor mint a duplicate key.
	var cat *models.Category
	for i := range b.Categories {
		if NormalizeName(b.Categories[i].Name) == normalized {
			cat = &b.Categories[i]
			break
		}
	}

	if cat == nil {
		b.Categories = append(b.Categories, models.Category{
			Key:      SlugKey(category),
			Name:     strings.TrimSpace(category),
			Pct:      0,
			Amount:   0,
			Type:     models.CategoryTypeCustom,
			Expenses: []models.Expense{},
		})
		cat = &b.Categories[len(b.Categories)-1]
	}

	cat.Expenses = append(cat.Expenses, models.Expense{
		Title:  title,
		Amount: amount,
		Date:   date,
	})
	cat.Amount += amount

	switch strings.ToLower(cat.Key) {
	case "needs":
		b.Totals.Needs += amount
	case "wants":
		b.Totals.Wants += amount
	case "savings":
		b.Totals.Savings += amount
	}
	b.Totals.Total = b.Totals.Needs + b.Totals.Wants + b.Totals.Savings

	return cat
}

// CategoryKeys returns the key of every category in the budget, used to
// report which categories a save introduced.
func CategoryKeys(b *models.Budget) []string {
	keys := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		keys = append(keys, c.Key)
	}
	return keys
}
