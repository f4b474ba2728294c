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

// GetUser returns the profile for the given subject id, or nil when no
// profile exists yet.
func GetUser(ctx context.Context, userID string) (*models.User, error) {
	filter := bson.M{"user_id": userID}

	var user models.User
	err := collection(UserCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return &user, nil
}

// UpdateUser applies the given field updates to the user's profile and
// returns the updated document.
func UpdateUser(ctx context.Context, userID string, fields bson.M) (*models.User, error) {
	filter := bson.M{"user_id": userID}
	fields["updatedAt"] = time.Now()
	update := bson.M{"$set": fields}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := collection(UserCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return &user, nil
}
