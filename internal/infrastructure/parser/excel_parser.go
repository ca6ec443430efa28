package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

type excelParser struct{}

// NewExcelParser creates the spreadsheet import pipeline
func NewExcelParser() repository.ExcelParser {
	return &excelParser{}
}

// ParseProducts reads products from a spreadsheet on disk
func (e *excelParser) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrReadFailure, err)
	}
	return e.ParseProductsFromBytes(ctx, data, filepath.Base(filePath))
}

// ParseProductsFromSource reads the whole source, then parses it
func (e *excelParser) ParseProductsFromSource(ctx context.Context, src repository.ByteSource) ([]entity.Product, error) {
	data, err := src.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrReadFailure, err)
	}
	return e.ParseProductsFromBytes(ctx, data, src.Name())
}

// ParseProductsFromBytes reads products from an in-memory spreadsheet
func (e *excelParser) ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Product, error) {
	rows, err := readFirstSheet(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	slog.Info("spreadsheet read", slog.String("file", filename), slog.Int("rows", len(rows)))

	return ConvertRows(rows)
}

// readFirstSheet returns the raw cell values of the workbook's first sheet
func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open excel file: %w", repository.ErrReadFailure, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: excel file has no sheets", repository.ErrReadFailure)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get rows: %w", repository.ErrReadFailure, err)
	}
	return rows, nil
}

// ConvertRows maps the header row once, then normalizes every following row.
// Blank rows above the header are dropped. Empty rows after it are skipped but
// keep their position, so product IDs may have gaps.
func ConvertRows(rows [][]string) ([]entity.Product, error) {
	for len(rows) > 0 && isEmptyRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) < 2 {
		return nil, repository.ErrTooFewRows
	}

	columnMap := MapColumns(rows[0])

	products := make([]entity.Product, 0, len(rows)-1)
	skipped := 0
	for i := 1; i < len(rows); i++ {
		product, ok := NormalizeRow(rows[i], i, columnMap)
		if !ok {
			skipped++
			continue
		}
		products = append(products, product)
	}

	slog.Info("products parsed", slog.Int("products", len(products)), slog.Int("skipped", skipped))

	return products, nil
}
