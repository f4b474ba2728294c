package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vedant-kerulkar07/Fin-View/models"
)

// UpsertBudget atomically replaces the user's budget for the given period,
// creating it when absent. One round trip, so two concurrent saves for the
// same period cannot race into duplicate documents.
func UpsertBudget(ctx context.Context, userID string, b *models.Budget) (*models.Budget, error) {
	filter := bson.M{
		"user":         userID,
		"period.month": b.Period.Month,
		"period.year":  b.Period.Year,
	}
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"income":       b.Income,
			"rule":         b.Rule,
			"customSplits": b.CustomSplits,
			"totals":       b.Totals,
			"categories":   b.Categories,
			"title":        b.Title,
			"period":       b.Period,
			"user":         userID,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.Budget
	err := collection(BudgetCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if err != nil {
		return nil, fmt.Errorf("error upserting budget: %w", err)
	}
	return &saved, nil
}

// GetBudget returns the user's budget for the period, or nil (no error)
// when none exists.
func GetBudget(ctx context.Context, userID string, month, year int) (*models.Budget, error) {
	filter := bson.M{
		"user":         userID,
		"period.month": month,
		"period.year":  year,
	}

	var budget models.Budget
	err := collection(BudgetCollection).FindOne(ctx, filter).Decode(&budget)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching budget: %w", err)
	}
	return &budget, nil
}

// ListBudgets returns all of the user's budgets, newest period first.
func ListBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	filter := bson.M{"user": userID}
	opts := options.Find().SetSort(bson.D{
		{Key: "period.year", Value: -1},
		{Key: "period.month", Value: -1},
	})

	cursor, err := collection(BudgetCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching budgets: %w", err)
	}
	defer cursor.Close(ctx)

	budgets := []models.Budget{}
	if err := cursor.All(ctx, &budgets); err != nil {
		return nil, fmt.Errorf("error decoding budgets: %w", err)
	}
	return budgets, nil
}

// ReplaceBudget writes back a budget previously loaded with GetBudget.
// Callers must hold the per-user budget lock for the whole
// read-modify-write; the write itself is a plain whole-document replace.
func ReplaceBudget(ctx context.Context, b *models.Budget) error {
	b.UpdatedAt = time.Now()
	filter := bson.M{"_id": b.ID}
	_, err := collection(BudgetCollection).ReplaceOne(ctx, filter, b)
	if err != nil {
		return fmt.Errorf("error replacing budget: %w", err)
	}
	return nil
}

// CreateBudget inserts a fresh budget document and fills in its ID.
func CreateBudget(ctx context.Context, b *models.Budget) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	res, err := collection(BudgetCollection).InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("error creating budget: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		b.ID = id
	}
	return nil
}
