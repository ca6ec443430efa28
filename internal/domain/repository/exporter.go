package repository

import "github.com/yourusername/product-catalog/internal/domain/entity"

// CatalogExporter serializes product lists into export documents
type CatalogExporter interface {
	// Export serializes products with explicit options. overrides may be nil.
	Export(products []entity.Product, opts entity.ExportOptions, overrides *entity.MetadataOverrides) (*entity.ExportFile, error)

	// ExportProfile exports with a named option profile
	ExportProfile(products []entity.Product, profile entity.ExportProfile) (*entity.ExportFile, error)

	// ExportByCategory exports products of one category
	ExportByCategory(products []entity.Product, category string) (*entity.ExportFile, error)

	// ExportSummary exports aggregates plus a trimmed projection
	ExportSummary(products []entity.Product) (*entity.ExportFile, error)
}
