package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// CatalogImports counts spreadsheet imports by result.
	CatalogImports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_imports_total",
		Help: "The total number of catalog imports, by result",
	}, []string{"result"})

	// CatalogProducts is the size of the catalog currently served.
	CatalogProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products_current",
		Help: "The number of products in the current catalog",
	})

	// CatalogExports counts JSON exports by kind (full, profile name, category, summary).
	CatalogExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_exports_total",
		Help: "The total number of catalog exports, by kind",
	}, []string{"kind"})
)
