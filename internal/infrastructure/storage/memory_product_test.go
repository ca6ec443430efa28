package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

func TestCatalogDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 13)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.Image)
	}
	assert.Equal(t, "BEV001", products[0].SKUValue())
	assert.Equal(t, "BRK002", products[12].SKUValue())

	catalog, err := repo.GetCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSource, catalog.Source)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "beverages", categories[0].ID)
	assert.Equal(t, "tea-coffee", categories[5].ID)
}

func TestCatalogGetByCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	snacks, err := repo.GetByCategory(ctx, "snacks")
	require.NoError(t, err)
	require.Len(t, snacks, 5)
	assert.Equal(t, "Mars", snacks[0].Name)
	assert.Equal(t, "Nutella", snacks[4].Name)

	upper, err := repo.GetByCategory(ctx, "Snacks")
	require.NoError(t, err)
	assert.Empty(t, upper)

	pasta, err := repo.GetByCategory(ctx, "pasta")
	require.NoError(t, err)
	assert.NotNil(t, pasta)
	assert.Empty(t, pasta)
}

func TestCatalogSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name substring", "nesca", []string{"Nescafé", "Nescafé Gold"}},
		{"case-insensitive", "  TWIX ", []string{"Twix"}},
		{"sku", "brk00", []string{"Quaker Oats", "Coffee mate"}},
		{"description", "hazelnut", []string{"Nutella"}},
		{"punctuation ignored", "cocacola", []string{"Coca-Cola"}},
		{"all tokens must match", "kinder treat", []string{"Kinder Joy"}},
		{"no match", "pizza", []string{}},
		{"empty query", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)

			names := make([]string, 0, len(results))
			for _, p := range results {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCatalogUpdateAndReset(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()
	updated := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	imported := []entity.Product{
		{ID: 1, Name: "Pasta", Category: "pasta", Image: "a.png", Price: entity.Float64(2)},
		{ID: 3, Name: "Olive", Category: "oliveOil", Image: "b.png"},
	}
	require.NoError(t, repo.UpdateCatalog(ctx, entity.ProductCatalog{Products: imported, UpdatedAt: updated, Source: "new.xlsx"}))

	// the store must not alias the caller's slice
	imported[0].Name = "changed"
	*imported[0].Price = 99

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Pasta", products[0].Name)
	assert.Equal(t, 2.0, products[0].PriceValue())
	assert.Equal(t, 3, products[1].ID)

	catalog, err := repo.GetCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new.xlsx", catalog.Source)
	assert.Equal(t, updated, catalog.UpdatedAt)

	// readers get copies
	products[0].Name = "mutated"
	*products[0].Price = 50
	again, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pasta", again[0].Name)
	assert.Equal(t, 2.0, again[0].PriceValue())

	require.NoError(t, repo.Reset(ctx))
	products, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 13)
}

func TestCatalogUpdateEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	require.NoError(t, repo.UpdateCatalog(ctx, entity.ProductCatalog{Source: "empty.xlsx"}))

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	catalog, err := repo.GetCatalog(ctx)
	require.NoError(t, err)
	assert.False(t, catalog.UpdatedAt.IsZero())
}

func TestCatalogGetCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	category, err := repo.GetCategory(ctx, "oliveOil")
	require.NoError(t, err)
	assert.Equal(t, "Olive oil", category.Name)

	_, err = repo.GetCategory(ctx, "olive")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCatalogConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()
	small := []entity.Product{{ID: 1, Name: "only", Category: "x", Image: "x.png"}}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.UpdateCatalog(ctx, entity.ProductCatalog{Products: small, Source: "small.xlsx"})
			_ = repo.Reset(ctx)
		}()
		go func() {
			defer wg.Done()
			products, err := repo.GetAll(ctx)
			assert.NoError(t, err)
			assert.Contains(t, []int{1, 13}, len(products))
		}()
	}
	wg.Wait()
}
