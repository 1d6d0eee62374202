package viewstate

import (
	"slices"

	"bookshelf/internal/domain"
	"bookshelf/internal/logic"
)

// DefaultPageSize is the page size a fresh engine starts with
const DefaultPageSize = 20

// AllowedPageSizes are the only accepted page sizes, in display order
var AllowedPageSizes = []int{20, 50, 100}

// IsAllowedPageSize reports whether n is one of AllowedPageSizes
func IsAllowedPageSize(n int) bool {
	return slices.Contains(AllowedPageSizes, n)
}

// Params is the full set of mutable view parameters. It is comparable and
// doubles as the derivation cache key.
type Params struct {
	SearchQuery  string
	SearchActive bool
	Country      string
	Language     string
	PagesRange   string
	CenturyRange string
	PageSize     int
	Page         int
}

// DefaultParams returns the parameters of an untouched view
func DefaultParams(pageSize int) Params {
	if !IsAllowedPageSize(pageSize) {
		pageSize = DefaultPageSize
	}
	return Params{PageSize: pageSize, Page: 1}
}

// Criteria extracts the filtering predicates
func (p Params) Criteria() logic.Criteria {
	return logic.Criteria{
		SearchQuery:  p.SearchQuery,
		SearchActive: p.SearchActive,
		Country:      p.Country,
		Language:     p.Language,
		PagesRange:   p.PagesRange,
		CenturyRange: p.CenturyRange,
	}
}

// Facet returns the current value of a facet filter
func (p Params) Facet(f domain.Facet) string {
	switch f {
	case domain.FacetCountry:
		return p.Country
	case domain.FacetLanguage:
		return p.Language
	case domain.FacetPages:
		return p.PagesRange
	case domain.FacetCentury:
		return p.CenturyRange
	}
	return ""
}

// withFacet returns a copy with one facet filter replaced
func (p Params) withFacet(f domain.Facet, value string) (Params, bool) {
	switch f {
	case domain.FacetCountry:
		p.Country = value
	case domain.FacetLanguage:
		p.Language = value
	case domain.FacetPages:
		p.PagesRange = value
	case domain.FacetCentury:
		p.CenturyRange = value
	default:
		return p, false
	}
	return p, true
}

// cacheKey drops the query text while search is inactive, since it cannot
// affect the derived view until submitted.
func (p Params) cacheKey() Params {
	if !p.SearchActive {
		p.SearchQuery = ""
	}
	return p
}
