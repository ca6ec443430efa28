package parser

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/product-catalog/internal/domain/entity"
)

const (
	// ProductImageDir where bare image file names are expected to live
	ProductImageDir = "assets/images/products/"

	// FallbackImage used whenever no usable image reference is given
	FallbackImage = ProductImageDir + "Beverages.jpg"

	DefaultDescription = "No description available"
	DefaultCategory    = "uncategorized"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// NormalizeRow converts one data row into a product. position is the 1-based row
// number among data rows and becomes the product ID. The second result is false
// for a completely empty row, which callers skip.
func NormalizeRow(row []string, position int, cols ColumnMap) (entity.Product, bool) {
	if len(row) == 0 || isEmptyRow(row) {
		return entity.Product{}, false
	}

	product := entity.Product{
		ID:          position,
		Name:        textOr(cell(row, cols.Index(FieldName)), fmt.Sprintf("Product %d", position)),
		Description: textOr(cell(row, cols.Index(FieldDescription)), DefaultDescription),
		Category:    textOr(cell(row, cols.Index(FieldCategory)), DefaultCategory),
		Image:       ResolveImage(cell(row, cols.Index(FieldImage))),
	}

	if raw := cell(row, cols.Index(FieldPrice)); strings.TrimSpace(raw) != "" {
		product.Price = entity.Float64(ParseLenientFloat(raw))
	}
	if raw := cell(row, cols.Index(FieldStock)); strings.TrimSpace(raw) != "" {
		product.Stock = entity.Int(ParseLenientInt(raw))
	}
	if raw := cell(row, cols.Index(FieldSKU)); strings.TrimSpace(raw) != "" {
		product.SKU = entity.String(raw)
	}

	return product, true
}

// ResolveImage turns a raw image cell into a usable reference. Rules are tried in
// order and the first match wins.
func ResolveImage(raw string) string {
	source := strings.TrimSpace(raw)

	switch {
	case source == "":
		return FallbackImage
	case isAbsoluteURL(source):
		return source
	case strings.HasPrefix(source, "data:image/"):
		return source
	case strings.HasPrefix(source, "/assets/"):
		return source
	case strings.HasPrefix(source, "assets/"):
		return "/" + source
	case hasImageExtension(source):
		if strings.ContainsAny(source, `/\`) {
			return source
		}
		return ProductImageDir + source
	default:
		return FallbackImage
	}
}

// ParseLenientFloat parses the longest leading decimal literal of s. Text without
// one, and negative or non-finite values, yield 0.
func ParseLenientFloat(s string) float64 {
	match := leadingFloat.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseLenientInt parses the longest leading integer of s, with the same
// coercion rules as ParseLenientFloat.
func ParseLenientInt(s string) int {
	match := leadingInt.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}
	v, err := strconv.Atoi(match)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}

// hasImageExtension matches an extension anywhere in s, so "a.png?v=1" counts
func hasImageExtension(s string) bool {
	lower := strings.ToLower(s)
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func textOr(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// isEmptyRow reports whether every cell is blank
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
