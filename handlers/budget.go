package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vedant-kerulkar07/Fin-View/budget"
	"github.com/vedant-kerulkar07/Fin-View/logger"
	"github.com/vedant-kerulkar07/Fin-View/models"
	"github.com/vedant-kerulkar07/Fin-View/mongodb"
)

type SaveBudgetRequest struct {
	Income       float64            `json:"income"`
	Rule         string             `json:"rule"`
	CustomSplits map[string]float64 `json:"customSplits"`
	Totals       models.Totals      `json:"totals"`
	Categories   []models.Category  `json:"categories"`
	Title        string             `json:"title"`
	Period       models.Period      `json:"period"`
}

type AddExpenseRequest struct {
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
	Date     string   `json:"date"`
	Title    string   `json:"title"`
	Month    int      `json:"month"`
	Year     int      `json:"year"`
}

// HandleSaveBudget upserts the user's budget for the submitted period. The
// upsert is one atomic round trip keyed on (user, month, year).
func HandleSaveBudget(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req SaveBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Period.Month < 1 || req.Period.Month > 12 || req.Period.Year == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Month and year are required"})
		return
	}

	existing, err := mongodb.GetBudget(c.Request.Context(), claims.Subject, req.Period.Month, req.Period.Year)
	if err != nil {
		logger.Get().Error("error loading existing budget", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save budget"})
		return
	}

	title := req.Title
	if title == "" {
		title = "My Budget"
	}
	categories := req.Categories
	if categories == nil {
		categories = budget.DefaultCategories()
	}
	splits := req.CustomSplits
	if splits == nil {
		splits = map[string]float64{}
	}

	saved, err := mongodb.UpsertBudget(c.Request.Context(), claims.Subject, &models.Budget{
		Income:       req.Income,
		Rule:         req.Rule,
		CustomSplits: splits,
		Totals:       req.Totals,
		Categories:   categories,
		Title:        title,
		Period:       req.Period,
	})
	if err != nil {
		logger.Get().Error("error upserting budget", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save budget"})
		return
	}

	newCategories := diffCategoryKeys(existing, saved)
	logger.Get().Info("budget saved",
		zap.String("user_id", claims.Subject),
		zap.Int("month", saved.Period.Month),
		zap.Int("year", saved.Period.Year))

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Budget saved successfully",
		"budget":        saved,
		"newCategories": newCategories,
	})
}

func diffCategoryKeys(before, after *models.Budget) []string {
	seen := map[string]bool{}
	if before != nil {
		for _, k := range budget.CategoryKeys(before) {
			seen[k] = true
		}
	}
	added := []string{}
	for _, k := range budget.CategoryKeys(after) {
		if !seen[k] {
			added = append(added, k)
		}
	}
	return added
}

// HandleAddExpense records one expense against the user's budget for the
// given period, defaulting to the current calendar month. The per-user
// lock makes the load-mutate-save safe against a concurrent addition.
func HandleAddExpense(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Category == "" || req.Amount == nil || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category, amount, and date are required"})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, req.Date)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date"})
		return
	}

	if (req.Month == 0) != (req.Year == 0) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Month and year must be provided together"})
		return
	}

	month, year := req.Month, req.Year
	if month == 0 && year == 0 {
		now := time.Now()
		month, year = int(now.Month()), now.Year()
	}
	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid month"})
		return
	}

	unlock := budget.Lock(claims.Subject)
	defer unlock()

	doc, err := mongodb.GetBudget(c.Request.Context(), claims.Subject, month, year)
	if err != nil {
		logger.Get().Error("error loading budget", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add expense"})
		return
	}
	if doc == nil {
		doc = budget.NewEmptyBudget(claims.Subject, month, year)
		if err := mongodb.CreateBudget(c.Request.Context(), doc); err != nil {
			logger.Get().Error("error creating budget", zap.Error(err), zap.String("user_id", claims.Subject))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add expense"})
			return
		}
	}

	budget.ApplyExpense(doc, req.Category, *req.Amount, date, req.Title)

	if err := mongodb.ReplaceBudget(c.Request.Context(), doc); err != nil {
		logger.Get().Error("error saving budget", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense added successfully",
		"budget":  doc,
	})
}

// HandleGetMyBudget returns the budget for the queried period, or a null
// budget when none exists; the client uses the null to drive onboarding.
func HandleGetMyBudget(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	month, errM := strconv.Atoi(c.Query("month"))
	year, errY := strconv.Atoi(c.Query("year"))
	if errM != nil || errY != nil || month < 1 || month > 12 || year == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid month and year are required"})
		return
	}

	doc, err := mongodb.GetBudget(c.Request.Context(), claims.Subject, month, year)
	if err != nil {
		logger.Get().Error("error fetching budget", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch budget"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "budget": doc})
}

// HandleGetAllBudgets lists the user's budgets, newest period first.
func HandleGetAllBudgets(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	budgets, err := mongodb.ListBudgets(c.Request.Context(), claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching budgets", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch budgets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "budgets": budgets})
}
