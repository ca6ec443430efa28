package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
	"google.golang.org/api/option"
)

const (
	DefaultModel = "gemini-2.0-flash"

	maxConcurrent   = 3
	minRequestDelay = 350 * time.Millisecond
)

// ErrNoCandidates the model returned an empty answer
var ErrNoCandidates = errors.New("no response candidates")

const systemInstruction = `You are the catalog assistant of a food and beverage distribution company.
Answer in the language the customer writes in. Keep answers short.

Rules:
1. Only mention products from the catalog listing you are given. Never invent products, prices or stock levels.
2. Copy product names, SKUs and prices exactly as they appear in the listing.
3. If a product is in the listing, say it is available. If it is not, say so and suggest similar products from the listing.
4. When asked about a category, list the products of that category from the listing.
5. Greetings and thanks get a friendly reply without a product list.`

// Client Gemini backed catalog assistant
type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	limiter *limiter
}

var _ repository.AIRepository = (*Client)(nil)

// NewGeminiClient creates the assistant client
func NewGeminiClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(DefaultModel)
	model.SetTemperature(0.3)
	model.SetTopK(20)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(1024)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &Client{
		client:  client,
		model:   model,
		limiter: newLimiter(maxConcurrent, minRequestDelay),
	}, nil
}

// GenerateResponse answers prompt with the previous exchanges as context
func (g *Client) GenerateResponse(ctx context.Context, prompt string, history []entity.Message) (string, error) {
	release, err := g.limiter.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	resp, err := g.model.GenerateContent(ctx, buildParts(prompt, history)...)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	return extractText(resp), nil
}

// Close releases the underlying connection
func (g *Client) Close() error {
	return g.client.Close()
}

func buildParts(prompt string, history []entity.Message) []genai.Part {
	parts := make([]genai.Part, 0, 2*len(history)+1)
	for _, msg := range history {
		if msg.Text != "" {
			parts = append(parts, genai.Text("Customer: "+msg.Text))
		}
		if msg.Response != "" {
			parts = append(parts, genai.Text("Assistant: "+msg.Response))
		}
	}
	return append(parts, genai.Text(prompt))
}

func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				result.WriteString(string(text))
			}
		}
	}
	return result.String()
}
