package mongodb

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/vedant-kerulkar07/Fin-View/logger"
)

var (
	UserCollection        = "users"
	BudgetCollection      = "budgets"
	TransactionCollection = "csv_transactions"
	ChatCollection        = "chats"
	LocationCollection    = "locations"
	MongoDatabase         = "fine-view"
	MongoClient           *mongo.Client
)

// InitMongoDB connects the process-wide client and creates the indexes the
// handlers rely on. MONGO_URI must be set; MONGO_DATABASE overrides the
// default database name.
func InitMongoDB() error {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return fmt.Errorf("MONGO_URI environment variable not set")
	}
	if db := os.Getenv("MONGO_DATABASE"); db != "" {
		MongoDatabase = db
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(mongoURI).
		SetServerAPIOptions(serverAPI).
		SetTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Get().Error("failed to connect to MongoDB", zap.Error(err))
		return fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	MongoClient = client
	if err := ensureIndexes(context.Background()); err != nil {
		return err
	}

	logger.Get().Info("successfully connected to MongoDB",
		zap.String("database", MongoDatabase))
	return nil
}

// ensureIndexes backstops the one-budget-per-period invariant: the upsert
// in UpsertBudget is keyed on the same fields, so concurrent saves cannot
// create duplicates even if one slips past the atomic update.
func ensureIndexes(ctx context.Context) error {
	budgets := MongoClient.Database(MongoDatabase).Collection(BudgetCollection)
	_, err := budgets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user", Value: 1},
			{Key: "period.month", Value: 1},
			{Key: "period.year", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating budget period index: %w", err)
	}

	chats := MongoClient.Database(MongoDatabase).Collection(ChatCollection)
	_, err = chats.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating chat user index: %w", err)
	}

	return nil
}

func CloseMongoDB() {
	if MongoClient != nil {
		if err := MongoClient.Disconnect(context.TODO()); err != nil {
			logger.Get().Error("failed to disconnect from MongoDB", zap.Error(err))
			return
		}
		logger.Get().Info("successfully disconnected from MongoDB")
	}
}

func collection(name string) *mongo.Collection {
	return MongoClient.Database(MongoDatabase).Collection(name)
}
