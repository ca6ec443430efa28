package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// Clock returns the current time. Tests inject a fixed one.
type Clock func() time.Time

// JSONExporter serializes product lists into JSON export documents
type JSONExporter struct {
	clock      Clock
	categories []entity.Category
}

// New creates an exporter. categories is the static list embedded when
// ExportOptions.IncludeCategories is set. A nil clock uses time.Now.
func New(clock Clock, categories []entity.Category) *JSONExporter {
	if clock == nil {
		clock = time.Now
	}
	return &JSONExporter{
		clock:      func() time.Time { return clock().UTC() },
		categories: categories,
	}
}

var _ repository.CatalogExporter = (*JSONExporter)(nil)

type timestampedProduct struct {
	entity.Product
	ImportTimestamp string `json:"importTimestamp"`
	ExportTimestamp string `json:"exportTimestamp"`
}

type document struct {
	Metadata   *entity.ExportMetadata `json:"metadata,omitempty"`
	Categories []entity.Category      `json:"categories,omitempty"`
	Products   any                    `json:"products"`
}

type summaryDocument struct {
	Metadata entity.ExportMetadata  `json:"metadata"`
	Summary  entity.CatalogSummary  `json:"summary"`
	Products []entity.ProductDigest `json:"products"`
}

// Export serializes products according to opts. overrides may be nil.
func (e *JSONExporter) Export(products []entity.Product, opts entity.ExportOptions, overrides *entity.MetadataOverrides) (*entity.ExportFile, error) {
	now := e.clock()
	doc := document{}

	if opts.IncludeMetadata {
		meta := e.metadata(now, len(products), overrides)
		doc.Metadata = &meta
	}
	if opts.IncludeCategories {
		doc.Categories = e.categories
	}

	if opts.IncludeTimestamps {
		stamp := now.Format(isoMillis)
		stamped := make([]timestampedProduct, len(products))
		for i, p := range products {
			stamped[i] = timestampedProduct{Product: p, ImportTimestamp: stamp, ExportTimestamp: stamp}
		}
		doc.Products = stamped
	} else {
		plain := make([]entity.Product, len(products))
		copy(plain, products)
		doc.Products = plain
	}

	data, err := encode(doc, opts.Format)
	if err != nil {
		return nil, err
	}

	filename := opts.Filename
	if filename == "" {
		category := "all"
		if overrides != nil && overrides.Category != "" {
			category = overrides.Category
		}
		filename = fmt.Sprintf("products-%s-%d-%s.json", category, len(products), now.Format(time.DateOnly))
	}

	slog.Info("products exported",
		slog.String("file", filename),
		slog.Int("products", len(products)),
		slog.Int("bytes", len(data)),
	)

	return &entity.ExportFile{Filename: filename, ContentType: JSONContentType, Data: data}, nil
}

// ExportProfile exports with a named option profile
func (e *JSONExporter) ExportProfile(products []entity.Product, profile entity.ExportProfile) (*entity.ExportFile, error) {
	opts, err := ProfileOptions(profile)
	if err != nil {
		return nil, err
	}
	return e.Export(products, opts, nil)
}

// ExportByCategory exports only products whose category equals category exactly
func (e *JSONExporter) ExportByCategory(products []entity.Product, category string) (*entity.ExportFile, error) {
	filtered := FilterByCategory(products, category)
	count := len(filtered)

	opts := entity.DefaultExportOptions()
	return e.Export(filtered, opts, &entity.MetadataOverrides{
		Category:      category,
		TotalProducts: &count,
		ImportMethod:  MethodCategoryFilter,
	})
}

// ExportSummary exports aggregates plus a trimmed projection of every product
func (e *JSONExporter) ExportSummary(products []entity.Product) (*entity.ExportFile, error) {
	now := e.clock()
	count := len(products)

	digests := make([]entity.ProductDigest, len(products))
	for i, p := range products {
		digests[i] = entity.ProductDigest{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.Stock,
			SKU:      p.SKU,
		}
	}

	doc := summaryDocument{
		Metadata: e.metadata(now, count, &entity.MetadataOverrides{
			TotalProducts: &count,
			ImportMethod:  MethodSummary,
		}),
		Summary:  Summarize(products),
		Products: digests,
	}

	data, err := encode(doc, entity.FormatPretty)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("products-summary-%s.json", now.Format(time.DateOnly))
	slog.Info("summary exported", slog.String("file", filename), slog.Int("products", count))

	return &entity.ExportFile{Filename: filename, ContentType: JSONContentType, Data: data}, nil
}

// metadata builds the metadata block, then applies non-zero overrides
func (e *JSONExporter) metadata(now time.Time, count int, overrides *entity.MetadataOverrides) entity.ExportMetadata {
	meta := entity.ExportMetadata{
		ExportDate:    now.Format(isoMillis),
		TotalProducts: count,
		ImportMethod:  MethodExcelImport,
		Version:       Version,
	}
	if overrides == nil {
		return meta
	}

	if overrides.ExportDate != "" {
		meta.ExportDate = overrides.ExportDate
	}
	if overrides.TotalProducts != nil {
		meta.TotalProducts = *overrides.TotalProducts
	}
	if overrides.ImportMethod != "" {
		meta.ImportMethod = overrides.ImportMethod
	}
	if overrides.Version != "" {
		meta.Version = overrides.Version
	}
	meta.SourceFile = overrides.SourceFile
	meta.Category = overrides.Category
	meta.CategoryID = overrides.CategoryID
	return meta
}

func encode(v any, format entity.ExportFormat) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if format != entity.FormatMinified {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
