//go:build integration

package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vedant-kerulkar07/Fin-View/budget"
	"github.com/vedant-kerulkar07/Fin-View/logger"
	"github.com/vedant-kerulkar07/Fin-View/models"
)

// Requires a reachable MongoDB.
// Run with: MONGO_TEST_URI=mongodb://localhost:27017 go test -tags=integration ./mongodb

func setupTestDB(t *testing.T) {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping integration test")
	}

	require.NoError(t, logger.Init(true, "error"))

	t.Setenv("MONGO_URI", uri)
	t.Setenv("MONGO_DATABASE", fmt.Sprintf("fine-view-test-%d", time.Now().UnixNano()))
	require.NoError(t, InitMongoDB())

	t.Cleanup(func() {
		_ = MongoClient.Database(MongoDatabase).Drop(context.Background())
		CloseMongoDB()
	})
}

func TestIntegration_UpsertBudgetIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	period := models.Period{Month: 3, Year: 2024}

	first := budget.NewEmptyBudget("u1", period.Month, period.Year)
	first.Income = 1000
	first.Title = "First"
	_, err := UpsertBudget(ctx, "u1", first)
	require.NoError(t, err)

	second := budget.NewEmptyBudget("u1", period.Month, period.Year)
	second.Income = 2000
	second.Title = "Second"
	saved, err := UpsertBudget(ctx, "u1", second)
	require.NoError(t, err)

	// Exactly one document for the period, carrying the second payload.
	count, err := collection(BudgetCollection).CountDocuments(ctx, bson.M{
		"user":         "u1",
		"period.month": period.Month,
		"period.year":  period.Year,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 2000.0, saved.Income)
	assert.Equal(t, "Second", saved.Title)
}

func TestIntegration_GetBudgetMissingPeriod(t *testing.T) {
	setupTestDB(t)

	b, err := GetBudget(context.Background(), "u1", 12, 1999)
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestIntegration_ListBudgetsNewestFirst(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	for _, p := range []models.Period{
		{Month: 2, Year: 2024},
		{Month: 11, Year: 2023},
		{Month: 7, Year: 2024},
	} {
		_, err := UpsertBudget(ctx, "u1", budget.NewEmptyBudget("u1", p.Month, p.Year))
		require.NoError(t, err)
	}

	budgets, err := ListBudgets(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, budgets, 3)
	assert.Equal(t, models.Period{Month: 7, Year: 2024}, budgets[0].Period)
	assert.Equal(t, models.Period{Month: 2, Year: 2024}, budgets[1].Period)
	assert.Equal(t, models.Period{Month: 11, Year: 2023}, budgets[2].Period)
}
