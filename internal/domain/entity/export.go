package entity

// ExportFormat controls whitespace of serialized exports
type ExportFormat string

const (
	FormatPretty   ExportFormat = "pretty"
	FormatMinified ExportFormat = "minified"
)

// ExportProfile names a canned combination of export options
type ExportProfile string

const (
	ProfileSimple   ExportProfile = "simple"
	ProfileDetailed ExportProfile = "detailed"
	ProfileMinimal  ExportProfile = "minimal"
)

// ExportMetadata block embedded in exports when requested
type ExportMetadata struct {
	ExportDate    string `json:"exportDate"`
	SourceFile    string `json:"sourceFile,omitempty"`
	Category      string `json:"category,omitempty"`
	CategoryID    string `json:"categoryId,omitempty"`
	TotalProducts int    `json:"totalProducts"`
	ImportMethod  string `json:"importMethod"`
	Version       string `json:"version"`
}

// MetadataOverrides replaces generated metadata values. Zero values are ignored.
type MetadataOverrides struct {
	ExportDate    string
	SourceFile    string
	Category      string
	CategoryID    string
	TotalProducts *int
	ImportMethod  string
	Version       string
}

// CategorySummary per-category aggregate of a summary export
type CategorySummary struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// PriceRange over products with a positive price
type PriceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// StockSummary stock aggregate. Average is nil for an empty product list.
type StockSummary struct {
	Total      int      `json:"total"`
	Average    *float64 `json:"average"`
	LowStock   int      `json:"lowStock"`
	OutOfStock int      `json:"outOfStock"`
}

// CatalogSummary aggregate section of a summary export
type CatalogSummary struct {
	TotalProducts int                        `json:"totalProducts"`
	Categories    map[string]CategorySummary `json:"categories"`
	PriceRange    PriceRange                 `json:"priceRange"`
	StockSummary  StockSummary               `json:"stockSummary"`
}

// ProductDigest trimmed product projection used by summary exports
type ProductDigest struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price,omitempty"`
	Stock    *int     `json:"stock,omitempty"`
	SKU      *string  `json:"sku,omitempty"`
}

// ExportOptions controls what an export contains
type ExportOptions struct {
	IncludeMetadata   bool
	IncludeCategories bool
	IncludeTimestamps bool
	Format            ExportFormat
	Filename          string // overrides the generated file name when set
}

// DefaultExportOptions metadata and timestamps on, categories off, pretty printed
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		IncludeMetadata:   true,
		IncludeCategories: false,
		IncludeTimestamps: true,
		Format:            FormatPretty,
	}
}

// ExportFile one serialized document, ready for a sink
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
