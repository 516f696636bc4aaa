package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// callLLM sends one prompt to the generation model under a bounded timeout
// and decodes the JSON reply into target. Callers absorb any error into their
// schema's safe default; a model failure never fails a request on its own.
func callLLM(ctx context.Context, gemini GeminiService, prompt string, timeout time.Duration, maxRetries int, target interface{}) error {
	octx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	response, err := gemini.GenerateTextWithRetry(octx, prompt, maxRetries)
	if err != nil {
		return err
	}

	return decodeLLMJSON(response, target)
}

func decodeLLMJSON(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

// clampScore forces a model-supplied score into [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
