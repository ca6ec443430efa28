package telegram

import (
	"fmt"
	"strings"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/usecase"
)

// maxMessageLen Telegram's limit on a single text message
const maxMessageLen = 4096

func welcomeMessage(assistant bool) string {
	msg := `👋 Welcome to the product catalog bot!

Send me an Excel file (.xlsx) to replace the catalog, or use /help to see what I can do.`
	if assistant {
		msg += "\n\nYou can also just ask me about products, e.g. \"Do you have energy drinks?\""
	}
	return msg
}

func helpMessage() string {
	return `📖 Commands:

/categories - Product categories
/products [category] - List products, optionally of one category
/search <text> - Search by name, description, category or SKU
/catalog - Current catalog info
/export [simple|detailed|minimal] - Export the catalog as JSON
/export_category <category> - Export one category
/summary - Export catalog statistics
/template - Download the import template
/reset - Restore the default products
/activity - Recent catalog changes and exports
/clear - Clear your assistant conversation

📎 Send an .xlsx file to import a new catalog. The first sheet must have a header row.`
}

func formatCategories(categories []entity.Category) string {
	var sb strings.Builder
	sb.WriteString("📂 Categories:\n\n")
	for _, c := range categories {
		fmt.Fprintf(&sb, "• %s (%s)\n  %s\n", c.Name, c.ID, c.Description)
	}
	sb.WriteString("\nUse /products <category> to list one of them.")
	return sb.String()
}

func formatSearchResults(query string, products []entity.Product) string {
	if len(products) == 0 {
		return fmt.Sprintf("🔍 Nothing found for \"%s\".", query)
	}
	return fmt.Sprintf("🔍 %d result(s) for \"%s\":\n\n%s", len(products), query, usecase.FormatProductsText(products))
}

func formatActivity(actions []entity.CatalogAction) string {
	if len(actions) == 0 {
		return "No catalog activity yet."
	}

	var sb strings.Builder
	sb.WriteString("🗂 Recent activity:\n\n")
	for _, a := range actions {
		fmt.Fprintf(&sb, "%s  %s: %s\n", a.Timestamp.Format("2006-01-02 15:04"), a.Action, a.Details)
	}
	return sb.String()
}

// splitMessage cuts text into chunks of at most limit bytes, preferring line breaks
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			cut := safeCut(line, limit)
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// safeCut largest index <= limit that does not split a UTF-8 sequence
func safeCut(s string, limit int) int {
	cut := limit
	for cut > 0 && cut < len(s) && s[cut]&0xC0 == 0x80 {
		cut--
	}
	if cut == 0 {
		return limit
	}
	return cut
}

func isSpreadsheet(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}
