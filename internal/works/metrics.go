package works

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flixhub_searches_total",
		Help: "Number of filter runs over the catalog",
	})

	notFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flixhub_work_not_found_total",
		Help: "Number of work ids that resolved to no record",
	})

	selections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flixhub_selections_total",
		Help: "Number of records selected for a permalink",
	})

	reloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flixhub_catalog_reloads_total",
		Help: "Number of catalog reloads by result",
	}, []string{"result"})

	catalogRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "flixhub_catalog_records",
		Help: "Number of records in the loaded catalog",
	})
)
