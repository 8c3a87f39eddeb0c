package works

import (
	"flixhub/pkg/models"
)

type CountryOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type SpecialOption struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	PageTitle string `json:"page_title"`
	Category  string `json:"category,omitempty"`
}

// FacetsView is everything a client needs to render the filter controls.
type FacetsView struct {
	Countries  []CountryOption       `json:"countries"`
	Groups     []models.CountryGroup `json:"groups"`
	Categories []string              `json:"categories"`
	Years      models.YearRange      `json:"years"`
	YearList   []int                 `json:"year_list"`
	Specials   []SpecialOption       `json:"specials"`
}

func (s *Service) Facets() FacetsView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := FacetsView{
		Groups:     s.ref.CountryGroups,
		Categories: append([]string{}, s.facets.Categories...),
		Years:      s.facets.Years,
		YearList:   append([]int{}, s.facets.YearList...),
	}
	for _, code := range s.facets.Countries {
		v.Countries = append(v.Countries, CountryOption{Code: code, Name: s.ref.CountryName(code)})
	}
	for _, sc := range s.ref.Specials {
		v.Specials = append(v.Specials, SpecialOption{
			Key:       sc.Key,
			Name:      sc.Name,
			PageTitle: sc.PageTitle(),
			Category:  sc.Category,
		})
	}
	return v
}
