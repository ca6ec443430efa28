package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
	"github.com/yourusername/product-catalog/internal/infrastructure/exporter"
	"github.com/yourusername/product-catalog/internal/infrastructure/storage"
)

func newExportFixture() (ExportUseCase, repository.ActivityRepository) {
	catalog := storage.NewMemoryCatalogRepository()
	activity := storage.NewMemoryActivityRepository()
	clock := func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	exp := exporter.New(clock, storage.DefaultCategories())
	return NewExportUseCase(catalog, activity, exp), activity
}

func TestExportFullCatalog(t *testing.T) {
	ctx := context.Background()
	uc, activity := newExportFixture()
	sink := &recordingSink{}

	file, err := uc.Export(ctx, sink, entity.DefaultExportOptions())
	require.NoError(t, err)
	assert.Equal(t, "products-all-13-2024-06-01.json", file.Filename)
	require.Len(t, sink.files, 1)
	assert.Equal(t, "application/json", sink.files[0].contentType)

	var doc struct {
		Metadata entity.ExportMetadata `json:"metadata"`
		Products []entity.Product      `json:"products"`
	}
	require.NoError(t, json.Unmarshal(sink.files[0].data, &doc))
	assert.Equal(t, "defaults", doc.Metadata.SourceFile)
	assert.Equal(t, 13, doc.Metadata.TotalProducts)
	assert.Len(t, doc.Products, 13)

	recent, err := activity.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, entity.ActionExport, recent[0].Action)
	assert.Contains(t, recent[0].Details, file.Filename)
}

func TestExportProfiles(t *testing.T) {
	ctx := context.Background()
	uc, _ := newExportFixture()

	for _, profile := range exporter.Profiles() {
		t.Run(string(profile), func(t *testing.T) {
			sink := &recordingSink{}
			_, err := uc.ExportProfile(ctx, sink, profile)
			require.NoError(t, err)
			assert.Len(t, sink.files, 1)
		})
	}

	sink := &recordingSink{}
	_, err := uc.ExportProfile(ctx, sink, "everything")
	assert.ErrorIs(t, err, repository.ErrUnknownProfile)
	assert.Empty(t, sink.files)
}

func TestExportCategoryAndSummary(t *testing.T) {
	ctx := context.Background()
	uc, _ := newExportFixture()
	sink := &recordingSink{}

	file, err := uc.ExportCategory(ctx, sink, "breakfast")
	require.NoError(t, err)
	assert.Equal(t, "products-breakfast-2-2024-06-01.json", file.Filename)

	file, err = uc.ExportSummary(ctx, sink)
	require.NoError(t, err)
	assert.Equal(t, "products-summary-2024-06-01.json", file.Filename)
	assert.Len(t, sink.files, 2)
}

func TestExportSinkFailure(t *testing.T) {
	ctx := context.Background()
	uc, activity := newExportFixture()

	_, err := uc.ExportSummary(ctx, &recordingSink{err: errBoom})
	assert.ErrorIs(t, err, errBoom)

	recent, err := activity.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
