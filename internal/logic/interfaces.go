package logic

import "bookshelf/internal/domain"

// CatalogStore provides access to the loaded catalog
type CatalogStore interface {
	// All returns the catalog in its original order
	All() []domain.Book
	Len() int
	// Replace swaps the whole catalog for a new snapshot
	Replace(books []domain.Book)
}

// Criteria is the set of predicates a record must satisfy to be part of the
// filtered view. Empty string fields place no constraint.
type Criteria struct {
	SearchQuery  string
	SearchActive bool
	Country      string
	Language     string
	PagesRange   string
	CenturyRange string
}
