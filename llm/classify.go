package llm

import (
	"regexp"
	"strings"
)

var (
	punctuation = regexp.MustCompile(`[^\w\s]`)
	spaces      = regexp.MustCompile(`\s+`)
)

var financialKeywords = []string{
	"budget",
	"income",
	"expense",
	"spent",
	"transaction",
	"rent",
	"saving",
	"money",
	"investment",
	"balance",
	"category",
}

// NormalizeMessage produces the memory-cache key for a chat message:
// lowercased, punctuation stripped, whitespace collapsed and trimmed.
// Repeated questions must normalize identically so the cached answer is
// reused instead of calling the model again.
func NormalizeMessage(text string) string {
	s := strings.ToLower(text)
	s = punctuation.ReplaceAllString(s, "")
	s = spaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsFinancial reports whether a normalized message mentions any financial
// keyword. Financial questions get the user's stored data in the system
// prompt; conversational ones do not.
func IsFinancial(normalized string) bool {
	for _, k := range financialKeywords {
		if strings.Contains(normalized, k) {
			return true
		}
	}
	return false
}
