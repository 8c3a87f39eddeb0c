// Package filterstate maps a FilterState to a canonical URL query and back.
package filterstate

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"flixhub/internal/catalog"
	"flixhub/pkg/models"
)

// Query parameter names, in the order they are written.
const (
	ParamCountries  = "countries"
	ParamCategories = "categories"
	ParamStartYear  = "startYear"
	ParamEndYear    = "endYear"
	ParamSpecial    = "special"
	ParamSearch     = "search"
	ParamWork       = "work"
)

// Decoded is the result of decoding a query.
type Decoded struct {
	State models.FilterState
	Work  string // deep-linked work id, empty when absent
}

// Codec encodes against a fixed universe: the facets of the loaded catalog
// and the known special categories.
type Codec struct {
	facets   catalog.Facets
	specials map[string]models.SpecialCategory
}

func NewCodec(facets catalog.Facets, specials []models.SpecialCategory) *Codec {
	m := make(map[string]models.SpecialCategory, len(specials))
	for _, sc := range specials {
		m[sc.Key] = sc
	}
	return &Codec{facets: facets, specials: m}
}

// Defaults is the state an empty query decodes to.
func (c *Codec) Defaults() models.FilterState {
	return c.facets.DefaultState()
}

// Encode returns the canonical query for st, without a leading '?'.
// Dimensions equal to what decoding would restore are omitted, so the
// default state encodes to "".
func (c *Codec) Encode(st models.FilterState) string {
	return c.EncodeWork(st, "")
}

// EncodeWork is Encode with a trailing work parameter when work is non-empty.
func (c *Codec) EncodeWork(st models.FilterState, work string) string {
	var parts []string

	if !sameSet(st.Countries, c.facets.Countries) {
		parts = append(parts, ParamCountries+"="+joinList(canonicalOrder(st.Countries, c.facets.Countries)))
	}
	if !sameSet(st.Categories, c.restoredCategories(st.Special)) {
		parts = append(parts, ParamCategories+"="+joinList(canonicalOrder(st.Categories, c.facets.Categories)))
	}
	if st.Years.Start != c.facets.Years.Start {
		parts = append(parts, ParamStartYear+"="+strconv.Itoa(st.Years.Start))
	}
	if st.Years.End != c.facets.Years.End {
		parts = append(parts, ParamEndYear+"="+strconv.Itoa(st.Years.End))
	}
	if st.Special != "" {
		parts = append(parts, ParamSpecial+"="+url.QueryEscape(st.Special))
	}
	if st.Search != "" {
		parts = append(parts, ParamSearch+"="+url.QueryEscape(st.Search))
	}
	if work != "" {
		parts = append(parts, ParamWork+"="+url.QueryEscape(work))
	}
	return strings.Join(parts, "&")
}

// Decode parses a query (with or without a leading '?'). Malformed values
// leave their field at the default; it never fails.
func (c *Codec) Decode(query string) Decoded {
	raw := parseRaw(strings.TrimPrefix(query, "?"))
	st := c.Defaults()

	if v, ok := raw[ParamSpecial]; ok {
		if key, err := url.QueryUnescape(v); err == nil {
			if _, known := c.specials[key]; known {
				st.Special = key
			}
		}
	}

	if v, ok := raw[ParamCountries]; ok {
		st.Countries = splitList(v)
	}
	if v, ok := raw[ParamCategories]; ok {
		st.Categories = splitList(v)
	} else {
		st.Categories = c.restoredCategories(st.Special)
	}

	if y, ok := parseYear(raw[ParamStartYear]); ok {
		st.Years.Start = y
	}
	if y, ok := parseYear(raw[ParamEndYear]); ok {
		st.Years.End = y
	}
	if st.Years.Start > st.Years.End {
		st.Years.End = st.Years.Start
	}

	if v, ok := raw[ParamSearch]; ok {
		if s, err := url.QueryUnescape(v); err == nil {
			st.Search = s
		}
	}

	var work string
	if v, ok := raw[ParamWork]; ok {
		if s, err := url.QueryUnescape(v); err == nil {
			work = strings.TrimSpace(s)
		}
	}

	return Decoded{State: st, Work: work}
}

// restoredCategories is the category selection implied when the query has no
// categories parameter.
func (c *Codec) restoredCategories(special string) []string {
	if sc, ok := c.specials[special]; ok && sc.Category != "" {
		return []string{sc.Category}
	}
	return slices.Clone(c.facets.Categories)
}

// parseRaw splits a query into still-escaped values. The first occurrence of
// a key wins.
func parseRaw(query string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			continue
		}
		if _, dup := out[key]; !dup {
			out[key] = v
		}
	}
	return out
}

// splitList decodes a comma-joined list. Items are escaped individually, so
// an escaped comma stays inside its item. Bad or blank items are dropped.
func splitList(raw string) []string {
	out := []string{}
	if raw == "" {
		return out
	}
	for _, item := range strings.Split(raw, ",") {
		s, err := url.QueryUnescape(item)
		if err != nil {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func joinList(items []string) string {
	escaped := make([]string, len(items))
	for i, s := range items {
		escaped[i] = url.QueryEscape(s)
	}
	return strings.Join(escaped, ",")
}

func parseYear(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	s, err := url.QueryUnescape(raw)
	if err != nil {
		return 0, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y <= 0 {
		return 0, false
	}
	return y, true
}

// canonicalOrder sorts items by their position in universe. Items outside
// the universe follow in input order.
func canonicalOrder(items, universe []string) []string {
	out := make([]string, 0, len(items))
	for _, u := range universe {
		if slices.Contains(items, u) {
			out = append(out, u)
		}
	}
	for _, s := range items {
		if !slices.Contains(universe, s) && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func sameSet(a, b []string) bool {
	for _, s := range a {
		if !slices.Contains(b, s) {
			return false
		}
	}
	for _, s := range b {
		if !slices.Contains(a, s) {
			return false
		}
	}
	return true
}
