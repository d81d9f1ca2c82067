// File: services/intelligence/geminiClient.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps the Gemini API for schema-constrained JSON generation.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a Gemini client for the given model.
func NewGeminiClient(apiKey, modelName string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = "models/gemini-1.5-pro"
	}
	return &GeminiClient{client: client, modelName: modelName}, nil
}

// GenerateJSON sends the prompt with a declared response schema and decodes
// the model's JSON reply into out. A reply that cannot be decoded into the
// declared shape is an error; there is no retry here.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	model := g.client.GenerativeModel(g.modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	if err := json.Unmarshal([]byte(sb.String()), out); err != nil {
		return fmt.Errorf("gemini response failed schema parse: %w", err)
	}
	return nil
}

// Close releases the underlying API client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}
