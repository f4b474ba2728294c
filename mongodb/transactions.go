package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vedant-kerulkar07/Fin-View/models"
)

// CreateTransactionBatch inserts one upload's worth of validated rows as a
// single document.
func CreateTransactionBatch(ctx context.Context, batch *models.TransactionBatch) error {
	now := time.Now()
	batch.CreatedAt = now
	batch.UpdatedAt = now

	res, err := collection(TransactionCollection).InsertOne(ctx, batch)
	if err != nil {
		return fmt.Errorf("error creating transaction batch: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		batch.ID = id
	}
	return nil
}

// ListTransactionBatches returns the user's uploads, newest first.
func ListTransactionBatches(ctx context.Context, userID string) ([]models.TransactionBatch, error) {
	filter := bson.M{"uploadedBy": userID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection(TransactionCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching transaction batches: %w", err)
	}
	defer cursor.Close(ctx)

	batches := []models.TransactionBatch{}
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, fmt.Errorf("error decoding transaction batches: %w", err)
	}
	return batches, nil
}
