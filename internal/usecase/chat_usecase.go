package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

const (
	assistantTimeout = 20 * time.Second
	historyWindow    = 10
)

// ErrAssistantDisabled no AI backend is configured
var ErrAssistantDisabled = errors.New("catalog assistant is not configured")

// ChatUseCase catalog assistant conversations
type ChatUseCase interface {
	ProcessMessage(ctx context.Context, userID int64, username, text string) (string, error)
	ClearHistory(ctx context.Context, userID int64) error
	GetHistory(ctx context.Context, userID int64) ([]entity.Message, error)
}

type chatUseCase struct {
	aiRepo      repository.AIRepository
	chatRepo    repository.ChatRepository
	catalogRepo repository.CatalogRepository
}

// NewChatUseCase creates the assistant use case. aiRepo may be nil, in which
// case ProcessMessage returns ErrAssistantDisabled.
func NewChatUseCase(
	aiRepo repository.AIRepository,
	chatRepo repository.ChatRepository,
	catalogRepo repository.CatalogRepository,
) ChatUseCase {
	return &chatUseCase{
		aiRepo:      aiRepo,
		chatRepo:    chatRepo,
		catalogRepo: catalogRepo,
	}
}

// ProcessMessage answers text with the current catalog as context
func (u *chatUseCase) ProcessMessage(ctx context.Context, userID int64, username, text string) (string, error) {
	if u.aiRepo == nil {
		return "", ErrAssistantDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	history, err := u.chatRepo.GetHistory(ctx, userID, historyWindow)
	if err != nil {
		return "", fmt.Errorf("failed to get history: %w", err)
	}

	products, err := u.catalogRepo.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load catalog: %w", err)
	}

	prompt := BuildAssistantPrompt(text, products)
	slog.Debug("assistant prompt", slog.Int64("user_id", userID), slog.Int("products", len(products)), slog.Int("history", len(history)))

	response, err := u.aiRepo.GenerateResponse(ctx, prompt, history)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	// history keeps the customer's own words, not the enriched prompt
	message := entity.Message{
		UserID:    userID,
		Username:  username,
		Text:      text,
		Response:  response,
		Timestamp: time.Now(),
	}
	if err := u.chatRepo.SaveMessage(ctx, message); err != nil {
		return "", fmt.Errorf("failed to save message: %w", err)
	}

	return response, nil
}

func (u *chatUseCase) ClearHistory(ctx context.Context, userID int64) error {
	return u.chatRepo.ClearHistory(ctx, userID)
}

func (u *chatUseCase) GetHistory(ctx context.Context, userID int64) ([]entity.Message, error) {
	return u.chatRepo.GetHistory(ctx, userID, 0)
}

// BuildAssistantPrompt wraps the customer's question with the catalog listing
func BuildAssistantPrompt(text string, products []entity.Product) string {
	listing := FormatProductsText(products)
	if listing == "" {
		return fmt.Sprintf("Customer: %s\n\nThe catalog is currently empty. Tell the customer no products are available.", text)
	}

	return fmt.Sprintf(`Customer: %s

AVAILABLE PRODUCTS:
%s
Answer using only the products listed above, with their exact names and prices.`, text, listing)
}
