package cli

import (
	"context"
	"fmt"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/infrastructure/exporter"
	"github.com/yourusername/product-catalog/internal/infrastructure/files"
	"github.com/yourusername/product-catalog/internal/infrastructure/parser"
	"github.com/yourusername/product-catalog/internal/infrastructure/storage"
	"github.com/yourusername/product-catalog/internal/usecase"
)

// services the use cases one command run works with
type services struct {
	catalog usecase.CatalogUseCase
	export  usecase.ExportUseCase
}

func newServices(clock exporter.Clock) services {
	catalogRepo := storage.NewMemoryCatalogRepository()
	activityRepo := storage.NewMemoryActivityRepository()

	return services{
		catalog: usecase.NewCatalogUseCase(catalogRepo, activityRepo, parser.NewExcelParser(), parser.NewTemplateGenerator()),
		export:  usecase.NewExportUseCase(catalogRepo, activityRepo, exporter.New(clock, storage.DefaultCategories())),
	}
}

// load imports input into the catalog; an empty input keeps the default products
func (s services) load(ctx context.Context, input string) (int, error) {
	if input == "" {
		products, err := s.catalog.GetAll(ctx)
		if err != nil {
			return 0, err
		}
		return len(products), nil
	}

	count, err := s.catalog.Import(ctx, files.NewFileSource(input))
	if err != nil {
		return 0, fmt.Errorf("failed to import %s: %w", input, err)
	}
	return count, nil
}

func parseProfile(name string) (entity.ExportProfile, error) {
	profile := entity.ExportProfile(name)
	if _, err := exporter.ProfileOptions(profile); err != nil {
		return "", err
	}
	return profile, nil
}
