package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// DraftClientInterface abstracts the text-generation provider. Draft output
// is an opaque best-effort JSON document; the caller owns parsing and the
// owner edits whatever comes back.
type DraftClientInterface interface {
	GenerateDraftJSON(ctx context.Context, prompt string) (string, error)
	EmbedText(ctx context.Context, text string) (pgvector.Vector, error)
}

// NewDraftClient creates either an OpenAI or Gemini client based on config.
func NewDraftClient(provider, apiKey, model string) (DraftClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIDraftClient(apiKey, model), nil
	case "gemini":
		return NewGeminiDraftClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
