package catalog

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"flixhub/pkg/models"
)

// AnimeCategory is the category restored when a link names only a special
// category.
const AnimeCategory = "日本の映画(アニメ)"

// DefaultYears is used when the catalog has no usable years.
var DefaultYears = models.YearRange{Start: 1966, End: 2025}

// Reference is the static lookup data the filters run against.
type Reference struct {
	// CountryGroups lists every selectable country, grouped for bulk selection.
	CountryGroups []models.CountryGroup `yaml:"country_groups"`
	// CountryNames are display names for codes missing a name in the data.
	CountryNames map[string]string `yaml:"country_names"`
	// YearScope restricts which records define the default year range.
	YearScope []string `yaml:"year_scope"`
	// Specials are the curated title lists addressable via `special`.
	Specials []models.SpecialCategory `yaml:"specials"`
	// Featured titles always rank first, in this order.
	Featured []string `yaml:"featured"`
}

// CountryCodes returns every code of every group, in declaration order.
func (r *Reference) CountryCodes() []string {
	var out []string
	for _, g := range r.CountryGroups {
		for _, region := range g.Regions {
			codes := make([]string, 0, len(region.Countries))
			for code := range region.Countries {
				codes = append(codes, code)
			}
			slices.Sort(codes)
			for _, code := range codes {
				if !slices.Contains(out, code) {
					out = append(out, code)
				}
			}
		}
	}
	return out
}

// GroupCodes returns the codes of one group, or false for an unknown key.
func (r *Reference) GroupCodes(key string) ([]string, bool) {
	for _, g := range r.CountryGroups {
		if g.Key != key {
			continue
		}
		var out []string
		for _, region := range g.Regions {
			for code := range region.Countries {
				out = append(out, code)
			}
		}
		slices.Sort(out)
		return out, true
	}
	return nil, false
}

func (r *Reference) Special(key string) (models.SpecialCategory, bool) {
	for _, s := range r.Specials {
		if s.Key == key {
			return s, true
		}
	}
	return models.SpecialCategory{}, false
}

// CountryName resolves a display name for code.
func (r *Reference) CountryName(code string) string {
	if n, ok := r.CountryNames[code]; ok {
		return n
	}
	for _, g := range r.CountryGroups {
		for _, region := range g.Regions {
			if n, ok := region.Countries[code]; ok {
				return n
			}
		}
	}
	return code
}

// LoadReference reads reference data from a YAML file. Sections missing from
// the file keep their built-in defaults.
func LoadReference(path string) (*Reference, error) {
	ref := DefaultReference()
	if path == "" {
		return ref, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference: %w", err)
	}

	var file Reference
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse reference: %w", err)
	}

	if len(file.CountryGroups) > 0 {
		ref.CountryGroups = file.CountryGroups
	}
	if len(file.CountryNames) > 0 {
		ref.CountryNames = file.CountryNames
	}
	if len(file.YearScope) > 0 {
		ref.YearScope = file.YearScope
	}
	if len(file.Specials) > 0 {
		ref.Specials = file.Specials
	}
	if len(file.Featured) > 0 {
		ref.Featured = file.Featured
	}
	return ref, nil
}
