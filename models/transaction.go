package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// CsvTransaction is one validated row from an uploaded statement. Type is
// derived from the sign of Amount: negative means expense.
type CsvTransaction struct {
	Date     time.Time `json:"date" bson:"date"`
	Title    string    `json:"title" bson:"title"`
	Category string    `json:"category" bson:"category"`
	Amount   float64   `json:"amount" bson:"amount"`
	Type     string    `json:"type" bson:"type"`
}

// TransactionBatch holds the full set of rows from one CSV upload. Batches
// are immutable after insert.
type TransactionBatch struct {
	ID           bson.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	UploadedBy   string           `json:"uploadedBy" bson:"uploadedBy"`
	Title        string           `json:"title" bson:"title"`
	Transactions []CsvTransaction `json:"transactions" bson:"transactions"`
	CreatedAt    time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt" bson:"updatedAt"`
}
