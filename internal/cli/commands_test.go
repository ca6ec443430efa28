package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

func fixedClock() time.Time { return time.Date(2024, 7, 8, 9, 10, 11, 0, time.UTC) }

func writeWorkbook(t *testing.T, path string, rows ...[]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func runExport(t *testing.T, mode string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewExportCommand(mode, t.TempDir())
	cmd.Out = &out
	cmd.Clock = fixedClock
	if err := cmd.ParseFlags(args); err != nil {
		return "", err
	}
	err := cmd.Run(context.Background())
	return out.String(), err
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "catalog.xlsx")
	outDir := filepath.Join(dir, "exports")
	writeWorkbook(t, input,
		[]any{"Name", "Category", "Price"},
		[]any{"Penne", "pasta", 1.2},
		[]any{"Fusilli", "pasta", 1.4},
	)

	out, err := runExport(t, ModeImport, "-in", input, "-out", outDir, "-profile", "simple")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 products from "+input)
	assert.Contains(t, out, "Wrote products-all-2-2024-07-08.json")

	data, err := os.ReadFile(filepath.Join(outDir, "products-all-2-2024-07-08.json"))
	require.NoError(t, err)

	var doc struct {
		Metadata entity.ExportMetadata `json:"metadata"`
		Products []entity.Product      `json:"products"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc.Metadata.TotalProducts)
	assert.Equal(t, "Fusilli", doc.Products[1].Name)
}

func TestImportCommandErrors(t *testing.T) {
	t.Run("missing input flag", func(t *testing.T) {
		_, err := runExport(t, ModeImport)
		assert.ErrorContains(t, err, "-in is required")
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := runExport(t, ModeImport, "-in", "x.xlsx", "-profile", "huge")
		assert.ErrorIs(t, err, repository.ErrUnknownProfile)
	})

	t.Run("too few rows", func(t *testing.T) {
		input := filepath.Join(t.TempDir(), "header.xlsx")
		writeWorkbook(t, input, []any{"Name"})

		_, err := runExport(t, ModeImport, "-in", input)
		assert.ErrorIs(t, err, repository.ErrTooFewRows)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runExport(t, ModeImport, "-in", filepath.Join(t.TempDir(), "nope.xlsx"))
		assert.ErrorIs(t, err, repository.ErrReadFailure)
	})
}

func TestCategoryAndSummaryCommands(t *testing.T) {
	outDir := t.TempDir()

	_, err := runExport(t, ModeCategory, "-category", "snacks", "-out", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "products-snacks-5-2024-07-08.json"))

	_, err = runExport(t, ModeSummary, "-out", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "products-summary-2024-07-08.json"))

	_, err = runExport(t, ModeCategory)
	assert.ErrorContains(t, err, "-category is required")
}

func TestDefaultsCommand(t *testing.T) {
	outDir := t.TempDir()

	_, err := runExport(t, ModeDefaults, "-out", outDir, "-profile", "minimal")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "products-all-13-2024-07-08.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n")
}

func TestTemplateCommand(t *testing.T) {
	outDir := t.TempDir()
	var out bytes.Buffer

	cmd := NewTemplateCommand("unused")
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-out", outDir}))
	require.NoError(t, cmd.Run(context.Background()))

	assert.FileExists(t, filepath.Join(outDir, "products-template.xlsx"))
	assert.Contains(t, out.String(), "products-template.xlsx")
}
