package models

// SpecialCategory is a curated title list that can override the base set of
// a search (e.g. a studio or franchise collection).
type SpecialCategory struct {
	Key      string   `json:"key" yaml:"key"`
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category,omitempty" yaml:"category"` // category restored when only `special` is given
	Titles   []string `json:"titles" yaml:"titles"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords"` // search aliases that trigger the override
}

// PageTitle is the display title used for shared special-category pages.
func (c SpecialCategory) PageTitle() string {
	return c.Name + "(映画)"
}

// CountryRegion groups country codes under a localized region name.
type CountryRegion struct {
	Key       string            `json:"key" yaml:"key"`
	Name      string            `json:"name" yaml:"name"`
	Countries map[string]string `json:"countries" yaml:"countries"` // code -> localized name
}

// CountryGroup is a bulk-selectable set of regions (e.g. an ad tier).
type CountryGroup struct {
	Key     string          `json:"key" yaml:"key"`
	Name    string          `json:"name" yaml:"name"`
	Regions []CountryRegion `json:"regions" yaml:"regions"`
}
