// Package llm is the gateway to the external chat-completions service and
// the rule-based message classifier in front of it.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	groqURL      = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel = "llama-3.3-70b-versatile"
)

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Choice struct {
	Message Message `json:"message"`
}

type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

var client = &http.Client{Timeout: 30 * time.Second}

// Complete sends one system+user prompt pair to the completions API and
// returns the assistant's answer. The call honors ctx and the client's own
// timeout, whichever fires first. No retries: a failed call surfaces to the
// caller, who may resubmit.
func Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultModel
	}

	reqBody := ChatRequest{
		Model:       model,
		MaxTokens:   150,
		Temperature: 0.2,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv("GROQ_API_KEY"))

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completions API returned status %d", resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("completions API returned no choices")
	}
	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
