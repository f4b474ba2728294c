package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	CategoryTypeDefault = "default"
	CategoryTypeCustom  = "custom"
)

// Expense is a single spend recorded against a category.
type Expense struct {
	Title  string    `json:"title" bson:"title"`
	Amount float64   `json:"amount" bson:"amount"`
	Date   time.Time `json:"date" bson:"date"`
}

// Category is one named bucket inside a budget. Key is the slug form of
// Name (lowercased, whitespace replaced with hyphens) and is unique within
// the budget's category list.
type Category struct {
	Key      string    `json:"key" bson:"key"`
	Name     string    `json:"name" bson:"name"`
	Pct      float64   `json:"pct" bson:"pct"`
	Amount   float64   `json:"amount" bson:"amount"`
	Type     string    `json:"type" bson:"type"`
	Expenses []Expense `json:"expenses" bson:"expenses"`
}

// Totals holds the three canonical bucket amounts. Total is always the sum
// of needs, wants and savings; spend recorded against custom categories is
// tracked on the category itself and intentionally excluded.
type Totals struct {
	Needs   float64 `json:"needs" bson:"needs"`
	Wants   float64 `json:"wants" bson:"wants"`
	Savings float64 `json:"savings" bson:"savings"`
	Total   float64 `json:"total" bson:"total"`
}

// Period identifies the month a budget belongs to.
type Period struct {
	Month int `json:"month" bson:"month"`
	Year  int `json:"year" bson:"year"`
}

// Budget is the per-user monthly plan. At most one exists per
// (user, period.month, period.year); a unique index enforces this.
type Budget struct {
	ID           bson.ObjectID      `json:"id,omitempty" bson:"_id,omitempty"`
	User         string             `json:"user" bson:"user"`
	Income       float64            `json:"income" bson:"income"`
	Rule         string             `json:"rule" bson:"rule"`
	CustomSplits map[string]float64 `json:"customSplits" bson:"customSplits"`
	Totals       Totals             `json:"totals" bson:"totals"`
	Categories   []Category         `json:"categories" bson:"categories"`
	Title        string             `json:"title" bson:"title"`
	Period       Period             `json:"period" bson:"period"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
