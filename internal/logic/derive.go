package logic

import "bookshelf/internal/domain"

// View is everything a renderer needs for one frame of the book list
type View struct {
	Facets   FacetOptions
	Filtered []domain.Book
	Items    []domain.Book
	PageInfo
}

// Derive computes the filtered list and the current page slice. It is a pure
// function of its inputs; page is used as given, without clamping.
func Derive(books []domain.Book, facets FacetOptions, c Criteria, page, size int) View {
	filtered := Filter(books, c)
	return View{
		Facets:   facets,
		Filtered: filtered,
		Items:    PageWindow(filtered, page, size),
		PageInfo: NewPageInfo(page, size, len(filtered)),
	}
}
