package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
	"github.com/yourusername/product-catalog/internal/metrics"
)

const (
	templateFilename       = "products-template.xlsx"
	spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// CatalogUseCase catalog import, lookup and template business logic
type CatalogUseCase interface {
	// Import parses a spreadsheet and replaces the whole catalog with its products.
	// On failure the current catalog is left untouched.
	Import(ctx context.Context, src repository.ByteSource) (int, error)

	// Reset restores the default products
	Reset(ctx context.Context) error

	GetAll(ctx context.Context) ([]entity.Product, error)
	GetByCategory(ctx context.Context, categoryID string) ([]entity.Product, error)
	Search(ctx context.Context, query string) ([]entity.Product, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)

	// GetCatalogInfo human readable description of the current catalog
	GetCatalogInfo(ctx context.Context) (string, error)

	// GetProductsAsText catalog listing used as assistant context
	GetProductsAsText(ctx context.Context) (string, error)

	// Template writes the import template to sink and returns its file name
	Template(ctx context.Context, sink repository.Sink) (string, error)

	// RecentActivity newest first
	RecentActivity(ctx context.Context, limit int) ([]entity.CatalogAction, error)
}

type catalogUseCase struct {
	catalogRepo  repository.CatalogRepository
	activityRepo repository.ActivityRepository
	excelParser  repository.ExcelParser
	templateGen  repository.TemplateGenerator
}

// NewCatalogUseCase creates the catalog use case and reports the size of the
// catalog the repository starts with
func NewCatalogUseCase(
	catalogRepo repository.CatalogRepository,
	activityRepo repository.ActivityRepository,
	excelParser repository.ExcelParser,
	templateGen repository.TemplateGenerator,
) CatalogUseCase {
	if products, err := catalogRepo.GetAll(context.Background()); err == nil {
		metrics.CatalogProducts.Set(float64(len(products)))
	}

	return &catalogUseCase{
		catalogRepo:  catalogRepo,
		activityRepo: activityRepo,
		excelParser:  excelParser,
		templateGen:  templateGen,
	}
}

// Import parses src and swaps the catalog
func (u *catalogUseCase) Import(ctx context.Context, src repository.ByteSource) (int, error) {
	products, err := u.excelParser.ParseProductsFromSource(ctx, src)
	if err != nil {
		metrics.CatalogImports.WithLabelValues(metrics.ResultFailure).Inc()
		slog.Warn("catalog import failed", slog.String("file", src.Name()), slog.Any("err", err))
		return 0, fmt.Errorf("failed to parse %s: %w", src.Name(), err)
	}

	catalog := entity.ProductCatalog{
		Products:  products,
		UpdatedAt: time.Now(),
		Source:    src.Name(),
	}
	if err := u.catalogRepo.UpdateCatalog(ctx, catalog); err != nil {
		metrics.CatalogImports.WithLabelValues(metrics.ResultFailure).Inc()
		return 0, fmt.Errorf("failed to update catalog: %w", err)
	}

	metrics.CatalogImports.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.CatalogProducts.Set(float64(len(products)))
	u.logAction(ctx, entity.ActionImport, fmt.Sprintf("Imported %d products from %s", len(products), src.Name()))

	slog.Info("catalog imported", slog.String("file", src.Name()), slog.Int("products", len(products)))
	return len(products), nil
}

// Reset restores the default products
func (u *catalogUseCase) Reset(ctx context.Context) error {
	if err := u.catalogRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset catalog: %w", err)
	}

	if products, err := u.catalogRepo.GetAll(ctx); err == nil {
		metrics.CatalogProducts.Set(float64(len(products)))
	}
	u.logAction(ctx, entity.ActionReset, "Restored default products")
	return nil
}

func (u *catalogUseCase) GetAll(ctx context.Context) ([]entity.Product, error) {
	return u.catalogRepo.GetAll(ctx)
}

func (u *catalogUseCase) GetByCategory(ctx context.Context, categoryID string) ([]entity.Product, error) {
	return u.catalogRepo.GetByCategory(ctx, categoryID)
}

func (u *catalogUseCase) Search(ctx context.Context, query string) ([]entity.Product, error) {
	return u.catalogRepo.Search(ctx, query)
}

func (u *catalogUseCase) Categories(ctx context.Context) ([]entity.Category, error) {
	return u.catalogRepo.Categories(ctx)
}

func (u *catalogUseCase) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	return u.catalogRepo.GetCategory(ctx, id)
}

// GetCatalogInfo source, update time and per-category counts
func (u *catalogUseCase) GetCatalogInfo(ctx context.Context) (string, error) {
	catalog, err := u.catalogRepo.GetCatalog(ctx)
	if err != nil {
		return "", err
	}

	counts := make(map[string]int)
	for _, product := range catalog.Products {
		counts[product.Category]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📦 Catalog: %s\n", catalog.Source)
	fmt.Fprintf(&sb, "📅 Updated: %s\n", catalog.UpdatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "📊 Total products: %d\n\n", len(catalog.Products))
	sb.WriteString("📂 Categories:\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "  • %s: %d\n", name, counts[name])
	}
	return sb.String(), nil
}

// GetProductsAsText products grouped by category, in catalog order
func (u *catalogUseCase) GetProductsAsText(ctx context.Context) (string, error) {
	products, err := u.catalogRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}
	return FormatProductsText(products), nil
}

// Template generates the import template and hands it to sink
func (u *catalogUseCase) Template(ctx context.Context, sink repository.Sink) (string, error) {
	data, err := u.templateGen.GenerateTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to generate template: %w", err)
	}
	if err := sink.Write(ctx, templateFilename, spreadsheetContentType, data); err != nil {
		return "", fmt.Errorf("failed to deliver template: %w", err)
	}
	return templateFilename, nil
}

func (u *catalogUseCase) RecentActivity(ctx context.Context, limit int) ([]entity.CatalogAction, error) {
	return u.activityRepo.Recent(ctx, limit)
}

// logAction records an activity entry; failures are only logged
func (u *catalogUseCase) logAction(ctx context.Context, action, details string) {
	if err := u.activityRepo.LogAction(ctx, entity.CatalogAction{Action: action, Details: details}); err != nil {
		slog.Warn("failed to log catalog action", slog.String("action", action), slog.Any("err", err))
	}
}

// FormatProductsText one line per product, grouped under category headings
func FormatProductsText(products []entity.Product) string {
	if len(products) == 0 {
		return ""
	}

	var order []string
	groups := make(map[string][]entity.Product)
	for _, p := range products {
		if _, seen := groups[p.Category]; !seen {
			order = append(order, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], p)
	}

	var sb strings.Builder
	for _, category := range order {
		fmt.Fprintf(&sb, "📂 %s:\n", category)
		for i, p := range groups[category] {
			fmt.Fprintf(&sb, "  %d. %s", i+1, p.Name)
			if p.Price != nil {
				fmt.Fprintf(&sb, " - $%.2f", *p.Price)
			}
			if p.Stock != nil {
				fmt.Fprintf(&sb, " (stock: %d)", *p.Stock)
			}
			if p.SKU != nil {
				fmt.Fprintf(&sb, " [%s]", *p.SKU)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
