package telegram

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/product-catalog/internal/domain/entity"
)

func TestSplitMessage(t *testing.T) {
	t.Run("short text is untouched", func(t *testing.T) {
		assert.Equal(t, []string{"hello"}, splitMessage("hello", 10))
	})

	t.Run("splits on line breaks", func(t *testing.T) {
		chunks := splitMessage("aaaa\nbbbb\ncccc\n", 10)
		assert.Equal(t, []string{"aaaa\nbbbb\n", "cccc\n"}, chunks)
	})

	t.Run("long lines are cut", func(t *testing.T) {
		chunks := splitMessage(strings.Repeat("x", 25), 10)
		assert.Equal(t, []string{"xxxxxxxxxx", "xxxxxxxxxx", "xxxxx"}, chunks)
	})

	t.Run("multi-byte runes are not split", func(t *testing.T) {
		text := strings.Repeat("é", 8)
		chunks := splitMessage(text, 5)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 5)
			assert.True(t, utf8.ValidString(c))
		}
		assert.Equal(t, text, strings.Join(chunks, ""))
	})
}

func TestFormatters(t *testing.T) {
	assert.Contains(t, formatCategories([]entity.Category{{ID: "pasta", Name: "Pasta", Description: "Noodles"}}), "• Pasta (pasta)")

	assert.Equal(t, "🔍 Nothing found for \"pizza\".", formatSearchResults("pizza", nil))
	assert.Contains(t, formatSearchResults("twix", []entity.Product{{Name: "Twix", Category: "snacks"}}), "1 result(s)")

	assert.Equal(t, "No catalog activity yet.", formatActivity(nil))
	activity := formatActivity([]entity.CatalogAction{{
		Action:    entity.ActionImport,
		Details:   "Imported 3 products from a.xlsx",
		Timestamp: time.Date(2024, 2, 3, 4, 5, 0, 0, time.UTC),
	}})
	assert.Contains(t, activity, "2024-02-03 04:05  import: Imported 3 products from a.xlsx")
}

func TestIsSpreadsheet(t *testing.T) {
	assert.True(t, isSpreadsheet("catalog.xlsx"))
	assert.True(t, isSpreadsheet("CATALOG.XLSX"))
	assert.False(t, isSpreadsheet("catalog.xls"))
	assert.False(t, isSpreadsheet("catalog.csv"))
}
