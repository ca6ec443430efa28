package exporter

import "github.com/yourusername/product-catalog/internal/domain/entity"

// LowStockThreshold stock levels below this count as low
const LowStockThreshold = 10

// FilterByCategory products whose category equals category exactly, in order
func FilterByCategory(products []entity.Product, category string) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Summarize computes the aggregate section of a summary export.
// Missing price or stock counts as 0.
func Summarize(products []entity.Product) entity.CatalogSummary {
	summary := entity.CatalogSummary{
		TotalProducts: len(products),
		Categories:    make(map[string]entity.CategorySummary),
	}

	var priceSum float64
	priced := 0
	for _, p := range products {
		price, stock := p.PriceValue(), p.StockValue()

		cat := summary.Categories[p.Category]
		cat.Count++
		cat.TotalValue += price * float64(stock)
		summary.Categories[p.Category] = cat

		if price > 0 {
			if priced == 0 || price < summary.PriceRange.Min {
				summary.PriceRange.Min = price
			}
			if price > summary.PriceRange.Max {
				summary.PriceRange.Max = price
			}
			priceSum += price
			priced++
		}

		summary.StockSummary.Total += stock
		if stock < LowStockThreshold {
			summary.StockSummary.LowStock++
		}
		if stock == 0 {
			summary.StockSummary.OutOfStock++
		}
	}

	if priced > 0 {
		summary.PriceRange.Average = priceSum / float64(priced)
	}
	if len(products) > 0 {
		avg := float64(summary.StockSummary.Total) / float64(len(products))
		summary.StockSummary.Average = &avg
	}
	return summary
}
