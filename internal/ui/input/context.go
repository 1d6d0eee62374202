package input

import (
	"bookshelf/internal/domain"
	"bookshelf/internal/logic"
	"bookshelf/internal/ui/input/types"
	"bookshelf/internal/ui/state"
	"bookshelf/internal/viewstate"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	View   logic.View
	Params viewstate.Params
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of rows on the current page
func (c *ModelContext) TotalItems() int {
	return len(c.View.Items)
}

func (c *ModelContext) CurrentPage() int {
	return c.Params.Page
}

func (c *ModelContext) TotalPages() int {
	return c.View.TotalPages
}

func (c *ModelContext) PageSize() int {
	return c.Params.PageSize
}

// SearchQuery returns the text currently typed into the search box
func (c *ModelContext) SearchQuery() string {
	return c.Params.SearchQuery
}

func (c *ModelContext) FacetValue(facet domain.Facet) string {
	return c.Params.Facet(facet)
}

// FacetOptions lists selectable values for a facet, led by the "All" entry
func (c *ModelContext) FacetOptions(facet domain.Facet) []types.Option {
	return FacetOptions(facet, c.View.Facets)
}

// CurrentBook returns the book under the cursor
func (c *ModelContext) CurrentBook() (domain.Book, bool) {
	i := c.State.SelectedIndex
	if i < 0 || i >= len(c.View.Items) {
		return domain.Book{}, false
	}
	return c.View.Items[i], true
}

// FacetOptions builds the option list for a facet selector
func FacetOptions(facet domain.Facet, facets logic.FacetOptions) []types.Option {
	switch facet {
	case domain.FacetCountry:
		return valueOptions("All Countries", facets.Countries)
	case domain.FacetLanguage:
		return valueOptions("All Languages", facets.Languages)
	case domain.FacetPages:
		return bucketOptions("All Page Ranges", logic.PagesBuckets)
	case domain.FacetCentury:
		return bucketOptions("All Centuries", logic.CenturyBuckets)
	}
	return nil
}

func valueOptions(all string, values []string) []types.Option {
	opts := make([]types.Option, 0, len(values)+1)
	opts = append(opts, types.Option{Value: "", Label: all})
	for _, v := range values {
		// An empty filter value already means "all"
		if v == "" {
			continue
		}
		opts = append(opts, types.Option{Value: v, Label: v})
	}
	return opts
}

func bucketOptions(all string, buckets []logic.Bucket) []types.Option {
	opts := make([]types.Option, 0, len(buckets)+1)
	opts = append(opts, types.Option{Value: "", Label: all})
	for _, b := range buckets {
		opts = append(opts, types.Option{Value: b.Label, Label: b.Display})
	}
	return opts
}
