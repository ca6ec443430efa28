package repository

import (
	"context"

	"github.com/yourusername/product-catalog/internal/domain/entity"
)

// ActivityRepository catalog activity log
type ActivityRepository interface {
	// LogAction records one action
	LogAction(ctx context.Context, action entity.CatalogAction) error

	// Recent returns up to limit actions, newest first
	Recent(ctx context.Context, limit int) ([]entity.CatalogAction, error)
}
