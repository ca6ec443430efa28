package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

const (
	TemplateFilename    = "products-template.xlsx"
	TemplateSheet       = "Products"
	InstructionsSheet   = "Instructions"
	SpreadsheetMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// TemplateHeader columns of the generated template
var TemplateHeader = []string{"Name", "Description", "Category", "Image URL", "Price", "Stock", "SKU"}

// TemplateRows sample rows users replace with their own products
var TemplateRows = [][]string{
	{"Energy Drink", "Refreshing energy drink for a quick boost", "beverages", "assets/images/products/energyDrink.jpg", "2.99", "50", "BEV001"},
	{"Redbull", "The world-famous energy drink", "beverages", "assets/images/products/redbull.jpg", "3.49", "30", "BEV002"},
	{"Mars Chocolate", "Classic Mars chocolate bar", "snacks", "assets/images/products/mars.jpeg", "1.49", "75", "SNK001"},
	{"Nescafé Gold", "Premium instant coffee blend", "beverages", "assets/images/products/nescafe-gold.webp", "12.99", "15", "BEV006"},
	{"Quaker Oats", "Healthy and nutritious oats", "breakfast", "assets/images/products/ots.jpg", "4.99", "30", "BRK001"},
	{"Coffee mate", "Creamy coffee creamer", "breakfast", "assets/images/products/coffeemate.webp", "3.99", "35", "BRK002"},
}

type templateGenerator struct{}

// NewTemplateGenerator creates the xlsx template generator
func NewTemplateGenerator() repository.TemplateGenerator {
	return &templateGenerator{}
}

// GenerateTemplate builds the import template workbook
func (g *templateGenerator) GenerateTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TemplateSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, name := range TemplateHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(TemplateSheet, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(TemplateSheet, colName, colName, 22); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(TemplateHeader), 1)
	if err := f.SetCellStyle(TemplateSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for r, row := range TemplateRows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := f.SetSheetRow(TemplateSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write sample row %d: %w", r+1, err)
		}
	}

	if err := writeInstructions(f); err != nil {
		return nil, err
	}

	sheetIdx, err := f.GetSheetIndex(TemplateSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to find template sheet: %w", err)
	}
	f.SetActiveSheet(sheetIdx)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}
	return buf.Bytes(), nil
}

// writeInstructions lists the accepted header names for every field
func writeInstructions(f *excelize.File) error {
	if _, err := f.NewSheet(InstructionsSheet); err != nil {
		return fmt.Errorf("failed to create instructions sheet: %w", err)
	}

	lines := [][]any{
		{"Product Import Instructions"},
		{},
		{"Keep the header row. Header names are matched case-insensitively."},
		{"Empty rows are skipped. Price and stock must be numbers."},
		{"Images may be full URLs, assets/ paths or bare file names (.jpg, .jpeg, .png, .webp)."},
		{},
		{"Field", "Accepted headers"},
	}
	for _, field := range Fields {
		lines = append(lines, []any{string(field), strings.Join(Aliases[field], ", ")})
	}

	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(InstructionsSheet, cell, &line); err != nil {
			return fmt.Errorf("failed to write instructions: %w", err)
		}
	}

	if err := f.SetColWidth(InstructionsSheet, "A", "A", 20); err != nil {
		return err
	}
	return f.SetColWidth(InstructionsSheet, "B", "B", 60)
}
