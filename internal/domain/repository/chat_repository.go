package repository

import (
	"context"

	"github.com/yourusername/product-catalog/internal/domain/entity"
)

// ChatRepository assistant conversation history
type ChatRepository interface {
	// SaveMessage stores one exchange
	SaveMessage(ctx context.Context, message entity.Message) error

	// GetHistory the last limit exchanges of a user, oldest first (limit <= 0 means all)
	GetHistory(ctx context.Context, userID int64, limit int) ([]entity.Message, error)

	// ClearHistory forgets a user's conversation
	ClearHistory(ctx context.Context, userID int64) error
}
