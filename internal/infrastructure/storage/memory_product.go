package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

type memoryCatalogRepository struct {
	mu         sync.RWMutex
	catalog    entity.ProductCatalog
	categories []entity.Category
}

// NewMemoryCatalogRepository in-memory catalog seeded with the default products
func NewMemoryCatalogRepository() repository.CatalogRepository {
	return &memoryCatalogRepository{
		catalog:    defaultCatalog(),
		categories: DefaultCategories(),
	}
}

func defaultCatalog() entity.ProductCatalog {
	return entity.ProductCatalog{
		Products:  DefaultProducts(),
		UpdatedAt: time.Now(),
		Source:    DefaultSource,
	}
}

// GetAll all products in catalog order
func (m *memoryCatalogRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return cloneProducts(m.catalog.Products), nil
}

// GetByCategory exact category match, no case folding
func (m *memoryCatalogRepository) GetByCategory(ctx context.Context, categoryID string) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]entity.Product, 0)
	for _, product := range m.catalog.Products {
		if product.Category == categoryID {
			results = append(results, cloneProduct(product))
		}
	}
	return results, nil
}

// Search finds products by name, description, category or SKU
func (m *memoryCatalogRepository) Search(ctx context.Context, query string) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []entity.Product{}, nil
	}
	compactQuery := normalizeAlphaNum(query)
	tokens := queryTokens(query)

	results := make([]entity.Product, 0)
	for _, product := range m.catalog.Products {
		fields := []string{
			strings.ToLower(product.Name),
			strings.ToLower(product.Description),
			strings.ToLower(product.Category),
			strings.ToLower(product.SKUValue()),
		}

		if containsAny(fields, query) ||
			(compactQuery != "" && strings.Contains(normalizeAlphaNum(product.Name), compactQuery)) ||
			matchAllTokens(tokens, fields) {
			results = append(results, cloneProduct(product))
		}
	}
	return results, nil
}

// UpdateCatalog swaps in a new catalog in one step
func (m *memoryCatalogRepository) UpdateCatalog(ctx context.Context, catalog entity.ProductCatalog) error {
	next := entity.ProductCatalog{
		Products:  cloneProducts(catalog.Products),
		UpdatedAt: catalog.UpdatedAt,
		Source:    catalog.Source,
	}
	if next.UpdatedAt.IsZero() {
		next.UpdatedAt = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.catalog = next
	return nil
}

// GetCatalog copy of the current snapshot
func (m *memoryCatalogRepository) GetCatalog(ctx context.Context) (*entity.ProductCatalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &entity.ProductCatalog{
		Products:  cloneProducts(m.catalog.Products),
		UpdatedAt: m.catalog.UpdatedAt,
		Source:    m.catalog.Source,
	}, nil
}

// Reset restores the default products
func (m *memoryCatalogRepository) Reset(ctx context.Context) error {
	catalog := defaultCatalog()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.catalog = catalog
	return nil
}

// Categories the static category list
func (m *memoryCatalogRepository) Categories(ctx context.Context) ([]entity.Category, error) {
	categories := make([]entity.Category, len(m.categories))
	copy(categories, m.categories)
	return categories, nil
}

// GetCategory category by ID
func (m *memoryCatalogRepository) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	for _, category := range m.categories {
		if category.ID == id {
			c := category
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", repository.ErrCategoryNotFound, id)
}

// cloneProduct deep copy, so callers cannot reach the stored optional values
func cloneProduct(p entity.Product) entity.Product {
	if p.Price != nil {
		p.Price = entity.Float64(*p.Price)
	}
	if p.Stock != nil {
		p.Stock = entity.Int(*p.Stock)
	}
	if p.SKU != nil {
		p.SKU = entity.String(*p.SKU)
	}
	return p
}

func cloneProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}

// Search helpers
func containsAny(fields []string, query string) bool {
	for _, f := range fields {
		if strings.Contains(f, query) {
			return true
		}
	}
	return false
}

func queryTokens(q string) []string {
	separators := []string{",", ".", "?", "!", ";", ":", "/", "\\", "-", "_"}
	for _, sep := range separators {
		q = strings.ReplaceAll(q, sep, " ")
	}

	var tokens []string
	for _, f := range strings.Fields(q) {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// matchAllTokens every token appears in at least one field
func matchAllTokens(tokens []string, fields []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, t := range tokens {
		if !containsAny(fields, t) {
			return false
		}
	}
	return true
}

func normalizeAlphaNum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
