package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
	"github.com/yourusername/product-catalog/internal/metrics"
)

const (
	exportKindFull     = "full"
	exportKindCategory = "category"
	exportKindSummary  = "summary"
)

// ExportUseCase reads the current catalog, serializes it and delivers the document
type ExportUseCase interface {
	// Export full catalog with explicit options
	Export(ctx context.Context, sink repository.Sink, opts entity.ExportOptions) (*entity.ExportFile, error)

	// ExportProfile full catalog with a named profile
	ExportProfile(ctx context.Context, sink repository.Sink, profile entity.ExportProfile) (*entity.ExportFile, error)

	// ExportCategory products of one category; unknown IDs are still exported, empty
	ExportCategory(ctx context.Context, sink repository.Sink, categoryID string) (*entity.ExportFile, error)

	// ExportSummary aggregate document
	ExportSummary(ctx context.Context, sink repository.Sink) (*entity.ExportFile, error)
}

type exportUseCase struct {
	catalogRepo  repository.CatalogRepository
	activityRepo repository.ActivityRepository
	exporter     repository.CatalogExporter
}

// NewExportUseCase creates the export use case
func NewExportUseCase(
	catalogRepo repository.CatalogRepository,
	activityRepo repository.ActivityRepository,
	exporter repository.CatalogExporter,
) ExportUseCase {
	return &exportUseCase{
		catalogRepo:  catalogRepo,
		activityRepo: activityRepo,
		exporter:     exporter,
	}
}

func (u *exportUseCase) Export(ctx context.Context, sink repository.Sink, opts entity.ExportOptions) (*entity.ExportFile, error) {
	catalog, err := u.catalogRepo.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	var overrides *entity.MetadataOverrides
	if catalog.Source != "" {
		overrides = &entity.MetadataOverrides{SourceFile: catalog.Source}
	}

	file, err := u.exporter.Export(catalog.Products, opts, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to export catalog: %w", err)
	}
	return u.deliver(ctx, sink, file, exportKindFull)
}

func (u *exportUseCase) ExportProfile(ctx context.Context, sink repository.Sink, profile entity.ExportProfile) (*entity.ExportFile, error) {
	products, err := u.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	file, err := u.exporter.ExportProfile(products, profile)
	if err != nil {
		return nil, err
	}
	return u.deliver(ctx, sink, file, string(profile))
}

func (u *exportUseCase) ExportCategory(ctx context.Context, sink repository.Sink, categoryID string) (*entity.ExportFile, error) {
	products, err := u.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	file, err := u.exporter.ExportByCategory(products, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to export category %s: %w", categoryID, err)
	}
	return u.deliver(ctx, sink, file, exportKindCategory)
}

func (u *exportUseCase) ExportSummary(ctx context.Context, sink repository.Sink) (*entity.ExportFile, error) {
	products, err := u.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	file, err := u.exporter.ExportSummary(products)
	if err != nil {
		return nil, fmt.Errorf("failed to export summary: %w", err)
	}
	return u.deliver(ctx, sink, file, exportKindSummary)
}

// deliver hands file to sink and records the export
func (u *exportUseCase) deliver(ctx context.Context, sink repository.Sink, file *entity.ExportFile, kind string) (*entity.ExportFile, error) {
	if err := sink.Write(ctx, file.Filename, file.ContentType, file.Data); err != nil {
		return nil, fmt.Errorf("failed to deliver %s: %w", file.Filename, err)
	}

	metrics.CatalogExports.WithLabelValues(kind).Inc()
	action := entity.CatalogAction{
		Action:  entity.ActionExport,
		Details: fmt.Sprintf("%s export %s (%d bytes)", kind, file.Filename, len(file.Data)),
	}
	if err := u.activityRepo.LogAction(ctx, action); err != nil {
		slog.Warn("failed to log catalog action", slog.String("action", action.Action), slog.Any("err", err))
	}
	return file, nil
}
