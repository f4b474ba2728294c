package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vedant-kerulkar07/Fin-View/llm"
	"github.com/vedant-kerulkar07/Fin-View/logger"
	"github.com/vedant-kerulkar07/Fin-View/models"
	"github.com/vedant-kerulkar07/Fin-View/mongodb"
)

type AskRequest struct {
	Message string `json:"message"`
}

const financialPrompt = `You are Fine-View AI Assistant.
Respond professionally and concisely.
Answer ONLY using the database provided.
Rules:
- No casual language
- No long explanations
- If data not found, say: "No data available."

User:
%s

Budgets:
%s

Transactions:
%s`

const conversationalPrompt = `You are Fine-View AI Assistant.
Respond professionally in one or two lines.
No casual conversation.`

// HandleAsk answers one chat message. Repeated questions short-circuit via
// exact normalized-text matching against the user's transcript; everything
// else goes to the external model, with the user's stored data embedded in
// the prompt for financial questions.
func HandleAsk(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Message is required"})
		return
	}

	normalized := llm.NormalizeMessage(req.Message)
	isFinancial := llm.IsFinancial(normalized)

	chat, err := mongodb.GetChat(c.Request.Context(), claims.Subject)
	if err != nil {
		logger.Get().Error("error loading chat history", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	if chat != nil {
		for _, m := range chat.Messages {
			if m.NormalizedMessage == normalized {
				c.JSON(http.StatusOK, gin.H{
					"success":    true,
					"answer":     m.Response,
					"fromMemory": true,
				})
				return
			}
		}
	}

	systemPrompt := conversationalPrompt
	if isFinancial {
		systemPrompt, err = buildFinancialPrompt(c.Request.Context(), claims.Subject)
		if err != nil {
			logger.Get().Error("error assembling chat context", zap.Error(err), zap.String("user_id", claims.Subject))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
	}

	answer, err := llm.Complete(c.Request.Context(), systemPrompt, req.Message)
	if err != nil {
		logger.Get().Error("completions call failed", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Assistant is unavailable"})
		return
	}

	exchange := models.ChatExchange{
		Message:           req.Message,
		NormalizedMessage: normalized,
		Response:          answer,
		IsFinancial:       isFinancial,
		CreatedAt:         time.Now(),
	}
	if err := mongodb.AppendChatExchange(c.Request.Context(), claims.Subject, exchange); err != nil {
		logger.Get().Error("error saving chat exchange", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"answer":     answer,
		"fromMemory": false,
	})
}

func buildFinancialPrompt(ctx context.Context, userID string) (string, error) {
	user, err := mongodb.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	budgets, err := mongodb.ListBudgets(ctx, userID)
	if err != nil {
		return "", err
	}
	batches, err := mongodb.ListTransactionBatches(ctx, userID)
	if err != nil {
		return "", err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	budgetsJSON, err := json.Marshal(budgets)
	if err != nil {
		return "", err
	}
	batchesJSON, err := json.Marshal(batches)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(financialPrompt, userJSON, budgetsJSON, batchesJSON), nil
}

// HandleGetChatHistory returns the user's full transcript, oldest first.
func HandleGetChatHistory(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	chat, err := mongodb.GetChat(c.Request.Context(), claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching chat history", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	messages := []models.ChatExchange{}
	if chat != nil {
		messages = chat.Messages
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "chats": messages})
}
