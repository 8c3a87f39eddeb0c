package catalog

import (
	"net/http"

	"flixhub/pkg/utils"
)

// NewAggregatorFromConfig builds the sources listed in cfg: local files
// first, then remote endpoints.
func NewAggregatorFromConfig(cfg utils.CatalogConfig) *Aggregator {
	var sources []Source
	for _, path := range cfg.Files {
		if path != "" {
			sources = append(sources, NewFileSource(path))
		}
	}
	for _, url := range cfg.URLs {
		if url == "" {
			continue
		}
		src := NewHTTPSource(url)
		if cfg.Timeout > 0 {
			src.Client = &http.Client{Timeout: cfg.Timeout}
		}
		sources = append(sources, src)
	}
	return NewAggregator(sources...)
}
