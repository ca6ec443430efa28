package repository

import (
	"context"

	"github.com/yourusername/product-catalog/internal/domain/entity"
)

// ExcelParser turns spreadsheet files into catalog products
type ExcelParser interface {
	// ParseProducts reads products from a spreadsheet on disk
	ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error)

	// ParseProductsFromBytes reads products from an in-memory spreadsheet
	ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Product, error)

	// ParseProductsFromSource reads the whole source, then parses it
	ParseProductsFromSource(ctx context.Context, src ByteSource) ([]entity.Product, error)
}

// TemplateGenerator produces the fill-in spreadsheet users start an import from
type TemplateGenerator interface {
	GenerateTemplate() ([]byte, error)
}
