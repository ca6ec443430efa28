package repository

import (
	"context"

	"github.com/yourusername/product-catalog/internal/domain/entity"
)

// AIRepository text generation backend of the catalog assistant
type AIRepository interface {
	// GenerateResponse answers prompt given the previous exchanges
	GenerateResponse(ctx context.Context, prompt string, history []entity.Message) (string, error)
}
