package exporter

import (
	"fmt"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

const (
	// Version format version written into export metadata
	Version = "1.0.0"

	MethodExcelImport    = "Excel Import"
	MethodCategoryFilter = "Category Filtered Export"
	MethodSummary        = "Summary Export"

	JSONContentType = "application/json"
)

// ProfileOptions resolves a named profile into options
func ProfileOptions(profile entity.ExportProfile) (entity.ExportOptions, error) {
	switch profile {
	case entity.ProfileSimple:
		return entity.ExportOptions{IncludeMetadata: true, Format: entity.FormatPretty}, nil
	case entity.ProfileDetailed:
		return entity.ExportOptions{IncludeMetadata: true, IncludeCategories: true, IncludeTimestamps: true, Format: entity.FormatPretty}, nil
	case entity.ProfileMinimal:
		return entity.ExportOptions{Format: entity.FormatMinified}, nil
	default:
		return entity.ExportOptions{}, fmt.Errorf("%w: %q", repository.ErrUnknownProfile, profile)
	}
}

// Profiles every supported profile name
func Profiles() []entity.ExportProfile {
	return []entity.ExportProfile{entity.ProfileSimple, entity.ProfileDetailed, entity.ProfileMinimal}
}
