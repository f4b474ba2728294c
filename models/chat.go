package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ChatExchange is one question/answer pair in a user's chat history.
// NormalizedMessage is the memory-cache key: the message lowercased,
// stripped of punctuation and whitespace-collapsed.
type ChatExchange struct {
	Message           string    `json:"message" bson:"message"`
	NormalizedMessage string    `json:"normalizedMessage" bson:"normalizedMessage"`
	Response          string    `json:"response" bson:"response"`
	IsFinancial       bool      `json:"isFinancial" bson:"isFinancial"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
}

// Chat is the single per-user transcript document, created lazily on the
// first message and appended to on every exchange.
type Chat struct {
	ID        bson.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	User      string         `json:"user" bson:"user"`
	Messages  []ChatExchange `json:"messages" bson:"messages"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}
