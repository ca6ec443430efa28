package entity

import "time"

const (
	ActionImport = "import"
	ActionReset  = "reset"
	ActionExport = "export"
)

// CatalogAction one entry of the catalog activity log
type CatalogAction struct {
	ID        string
	Action    string // ActionImport, ActionReset, ActionExport
	Details   string
	Timestamp time.Time
}
