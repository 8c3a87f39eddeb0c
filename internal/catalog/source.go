package catalog

import (
	"context"
	"slices"

	"flixhub/pkg/models"
	"flixhub/pkg/utils"
)

// Source is implemented by each place a catalog can come from (local file,
// remote JSON endpoint). Each source maps its own format into models.Work.
type Source interface {
	Name() string
	FetchAll(ctx context.Context) ([]*models.Work, error)
}

// Aggregator fetches every source and merges the records into one catalog.
type Aggregator struct {
	Sources []Source
}

func NewAggregator(sources ...Source) *Aggregator {
	return &Aggregator{Sources: sources}
}

// FetchAndMerge returns the records of all sources in source order. Records
// sharing a source id are merged into the first occurrence. A failing source
// is logged and skipped.
func (a *Aggregator) FetchAndMerge(ctx context.Context) ([]*models.Work, error) {
	log := utils.Named("catalog")

	var (
		out  []*models.Work
		byID = make(map[models.FlexString]*models.Work)
	)
	for _, src := range a.Sources {
		log.Info().Str("source", src.Name()).Msg("fetching")
		works, err := src.FetchAll(ctx)
		if err != nil {
			log.Error().Err(err).Str("source", src.Name()).Msg("source failed, skipping")
			continue
		}

		for _, w := range works {
			if w == nil {
				continue
			}
			if w.ID != "" {
				if existing, ok := byID[w.ID]; ok {
					mergeWork(existing, w)
					continue
				}
				byID[w.ID] = w
			}
			out = append(out, w)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info().Int("records", len(out)).Msg("catalog merged")
	return out, nil
}

// mergeWork fills the gaps of base from incoming:
//
// - empty text fields are taken from incoming
// - year and rating are taken from incoming when base has none
// - list-form countries are unioned by code
// - the longer localized full synopsis wins
func mergeWork(base, incoming *models.Work) {
	fill := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
		}
	}
	fill(&base.Title, incoming.Title)
	fill(&base.TitleJa, incoming.TitleJa)
	fill(&base.Type, incoming.Type)
	fill(&base.Category, incoming.Category)
	fill(&base.Synopsis, incoming.Synopsis)
	fill(&base.SynopsisJa, incoming.SynopsisJa)
	fill(&base.ImageURL, incoming.ImageURL)

	if len(incoming.SynopsisJaFull) > len(base.SynopsisJaFull) {
		base.SynopsisJaFull = incoming.SynopsisJaFull
	}
	if base.Year == "" {
		base.Year = incoming.Year
	}
	if base.Rating == "" {
		base.Rating = incoming.Rating
	}

	base.Countries = mergeCountries(base.Countries, incoming.Countries)
}

func mergeCountries(a, b models.Countries) models.Countries {
	switch {
	case a.Empty():
		return b
	case b.Empty():
		return a
	case a.IsList && b.IsList:
		out := slices.Clone(a.List)
		for _, c := range b.List {
			if !slices.ContainsFunc(out, func(x models.Country) bool { return x.Code == c.Code }) {
				out = append(out, c)
			}
		}
		return models.CountryList(out...)
	case b.IsList:
		// prefer structured data over the legacy string
		return b
	default:
		return a
	}
}
