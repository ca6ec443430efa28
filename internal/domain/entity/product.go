package entity

import "time"

// Product catalog entry. Optional fields stay nil when the source has no value for them.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
}

// PriceValue returns the price, or 0 when absent
func (p Product) PriceValue() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// StockValue returns the stock, or 0 when absent
func (p Product) StockValue() int {
	if p.Stock == nil {
		return 0
	}
	return *p.Stock
}

// SKUValue returns the SKU, or "" when absent
func (p Product) SKUValue() string {
	if p.SKU == nil {
		return ""
	}
	return *p.SKU
}

// Category static display group. Products reference it by ID through Product.Category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image,omitempty"`
}

// ProductCatalog the catalog snapshot currently being served
type ProductCatalog struct {
	Products  []Product
	UpdatedAt time.Time
	Source    string // spreadsheet file name, or "defaults"
}

// Float64 optional float helper
func Float64(v float64) *float64 { return &v }

// Int optional int helper
func Int(v int) *int { return &v }

// String optional string helper
func String(v string) *string { return &v }
