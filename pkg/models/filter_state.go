package models

import "slices"

// YearRange is an inclusive year window. A zero bound is open.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r YearRange) Contains(year int) bool {
	if r.Start != 0 && year < r.Start {
		return false
	}
	if r.End != 0 && year > r.End {
		return false
	}
	return true
}

// FilterState is the complete set of user selections driving a result set.
//
// Countries and Categories are sets kept as slices in selection order. An
// empty (or nil) selection means "nothing selected", not "everything".
type FilterState struct {
	Countries  []string  `json:"countries"`
	Categories []string  `json:"categories"`
	Years      YearRange `json:"years"`
	Search     string    `json:"search,omitempty"`
	Special    string    `json:"special,omitempty"`
}

func (s FilterState) Clone() FilterState {
	out := s
	out.Countries = slices.Clone(s.Countries)
	out.Categories = slices.Clone(s.Categories)
	if out.Countries == nil {
		out.Countries = []string{}
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	return out
}
