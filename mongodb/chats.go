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

// GetChat returns the user's transcript document, or nil when the user has
// never chatted.
func GetChat(ctx context.Context, userID string) (*models.Chat, error) {
	filter := bson.M{"user": userID}

	var chat models.Chat
	err := collection(ChatCollection).FindOne(ctx, filter).Decode(&chat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching chat: %w", err)
	}
	return &chat, nil
}

// AppendChatExchange pushes one exchange onto the user's transcript,
// creating the document on first use. The push is a single atomic update,
// so concurrent messages from the same user interleave instead of
// clobbering each other.
func AppendChatExchange(ctx context.Context, userID string, exchange models.ChatExchange) error {
	filter := bson.M{"user": userID}
	now := time.Now()
	update := bson.M{
		"$push":        bson.M{"messages": exchange},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"user": userID, "createdAt": now},
	}

	_, err := collection(ChatCollection).UpdateOne(ctx, filter, update,
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error appending chat exchange: %w", err)
	}
	return nil
}
