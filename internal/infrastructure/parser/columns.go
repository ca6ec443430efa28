package parser

import (
	"log/slog"
	"strings"
)

// NotFound column position of a field with no matching header
const NotFound = -1

// Field canonical product attribute resolved from header text
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldCategory    Field = "category"
	FieldImage       Field = "image"
	FieldPrice       Field = "price"
	FieldStock       Field = "stock"
	FieldSKU         Field = "sku"
)

// Fields in the order they are resolved
var Fields = []Field{FieldName, FieldDescription, FieldCategory, FieldImage, FieldPrice, FieldStock, FieldSKU}

// Aliases accepted header names per field, already lower case
var Aliases = map[Field][]string{
	FieldName:        {"name", "product name", "product", "title"},
	FieldDescription: {"description", "desc", "details", "product description"},
	FieldCategory:    {"category", "cat", "type", "product category"},
	FieldImage:       {"image", "img", "picture", "photo", "url", "image url"},
	FieldPrice:       {"price", "cost", "amount"},
	FieldStock:       {"stock", "quantity", "qty", "inventory"},
	FieldSKU:         {"sku", "product code", "code", "id"},
}

// ColumnMap column position of every canonical field
type ColumnMap map[Field]int

// Index position of f, or NotFound
func (m ColumnMap) Index(f Field) int {
	if idx, ok := m[f]; ok {
		return idx
	}
	return NotFound
}

// Has reports whether f was found in the header row
func (m ColumnMap) Has(f Field) bool {
	return m.Index(f) != NotFound
}

// MapColumns resolves every canonical field against the header row.
// Matching is exact after trimming and lower-casing; the first matching header wins.
func MapColumns(header []string) ColumnMap {
	columnMap := make(ColumnMap, len(Fields))
	for _, field := range Fields {
		columnMap[field] = findColumn(header, Aliases[field])
		slog.Debug("column mapped", slog.String("field", string(field)), slog.Int("column", columnMap[field]))
	}
	return columnMap
}

func findColumn(header []string, aliases []string) int {
	for i, col := range header {
		colName := strings.ToLower(strings.TrimSpace(col))
		for _, alias := range aliases {
			if colName == alias {
				return i
			}
		}
	}
	return NotFound
}
