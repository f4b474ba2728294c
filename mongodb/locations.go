package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vedant-kerulkar07/Fin-View/models"
)

// ListLocations returns the country/state reference list, name and states
// only.
func ListLocations(ctx context.Context) ([]models.Location, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1, "states": 1, "_id": 0})

	cursor, err := collection(LocationCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching locations: %w", err)
	}
	defer cursor.Close(ctx)

	locations := []models.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("error decoding locations: %w", err)
	}
	return locations, nil
}
