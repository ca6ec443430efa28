package repository

import (
	"context"

	"github.com/yourusername/product-catalog/internal/domain/entity"
)

// CatalogRepository holds the catalog currently served
type CatalogRepository interface {
	// GetAll all products in catalog order
	GetAll(ctx context.Context) ([]entity.Product, error)

	// GetByCategory products whose category equals categoryID exactly
	GetByCategory(ctx context.Context, categoryID string) ([]entity.Product, error)

	// Search case-insensitive substring match over name, description, category and SKU
	Search(ctx context.Context, query string) ([]entity.Product, error)

	// UpdateCatalog replaces the whole catalog
	UpdateCatalog(ctx context.Context, catalog entity.ProductCatalog) error

	// GetCatalog the current snapshot
	GetCatalog(ctx context.Context) (*entity.ProductCatalog, error)

	// Reset restores the default products
	Reset(ctx context.Context) error

	// Categories the static category list
	Categories(ctx context.Context) ([]entity.Category, error)

	// GetCategory looks up one category by ID
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
}
