package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Work is a single catalog record as delivered by a catalog source.
//
// Everything except WorkID comes from the source data. WorkID is derived
// lazily (see internal/workid) and cached here for the rest of the process.
type Work struct {
	ID             FlexString `json:"id"`                       // source id, not stable across re-ingestion
	Title          string     `json:"title"`                    // english title
	TitleJa        string     `json:"titleJa,omitempty"`        // localized title
	Year           FlexString `json:"year,omitempty"`           // number or numeric string
	Type           string     `json:"type,omitempty"`           // movie, series, ...
	Category       string     `json:"category,omitempty"`       // genre/locale tag
	Countries      Countries  `json:"countries"`                // [{code,name}] or legacy string
	Rating         FlexString `json:"rating,omitempty"`         // numeric string
	Synopsis       string     `json:"synopsis,omitempty"`       // short synopsis
	SynopsisJa     string     `json:"synopsisJa,omitempty"`     // localized synopsis
	SynopsisJaFull string     `json:"synopsisJaFull,omitempty"` // localized full synopsis
	ImageURL       string     `json:"imageUrl,omitempty"`

	WorkID string `json:"-"`
}

// YearValue returns the leading integer of the year ("2020.0" and "2020年"
// read as 2020) and whether it is positive.
func (w *Work) YearValue() (int, bool) {
	s := strings.TrimSpace(string(w.Year))
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// RatingValue returns the parsed rating. Absent or unparsable ratings report false.
func (w *Work) RatingValue() (float64, bool) {
	s := strings.TrimSpace(string(w.Rating))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Country is one availability entry of a record.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// Countries holds either the list form or the legacy delimited string form
// of a record's availability.
type Countries struct {
	List   []Country
	Legacy string
	IsList bool
}

func CountryList(cs ...Country) Countries {
	return Countries{List: cs, IsList: true}
}

func LegacyCountries(s string) Countries {
	return Countries{Legacy: s}
}

func (c Countries) Empty() bool {
	return len(c.List) == 0 && c.Legacy == ""
}

// MatchesAny reports whether any of codes is present. The list form matches
// codes exactly, the legacy string form matches by substring.
func (c Countries) MatchesAny(codes []string) bool {
	if c.IsList {
		for _, country := range c.List {
			for _, code := range codes {
				if country.Code == code {
					return true
				}
			}
		}
		return false
	}
	if c.Legacy == "" {
		return false
	}
	for _, code := range codes {
		if strings.Contains(c.Legacy, code) {
			return true
		}
	}
	return false
}

func (c *Countries) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = Countries{}
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		return json.Unmarshal(data, &c.Legacy)
	case data[0] == '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		c.IsList = true
		c.List = make([]Country, 0, len(raw))
		for _, r := range raw {
			r = bytes.TrimSpace(r)
			if len(r) > 0 && r[0] == '"' {
				var code string
				if err := json.Unmarshal(r, &code); err != nil {
					return err
				}
				c.List = append(c.List, Country{Code: code})
				continue
			}
			var country Country
			if err := json.Unmarshal(r, &country); err != nil {
				return err
			}
			c.List = append(c.List, country)
		}
		return nil
	default:
		// anything else is treated as no availability data
		return nil
	}
}

func (c Countries) MarshalJSON() ([]byte, error) {
	if c.IsList {
		if c.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.List)
	}
	if c.Legacy == "" {
		return []byte("null"), nil
	}
	return json.Marshal(c.Legacy)
}

// FlexString accepts a JSON string or number and keeps its text.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string { return string(f) }
