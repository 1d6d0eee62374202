package logic

import (
	"sort"

	"bookshelf/internal/domain"
)

// FacetOptions holds the selectable values for the exact-match facets
type FacetOptions struct {
	Countries []string
	Languages []string
}

// UniqueValues returns the distinct values of a field across books, sorted
// ascending by byte order. Empty values are kept as ordinary values.
func UniqueValues(books []domain.Book, field func(domain.Book) string) []string {
	seen := make(map[string]struct{}, len(books))
	values := make([]string, 0)
	for _, b := range books {
		v := field(b)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// BuildFacetOptions scans the full catalog for country and language options
func BuildFacetOptions(books []domain.Book) FacetOptions {
	return FacetOptions{
		Countries: UniqueValues(books, func(b domain.Book) string { return b.Country }),
		Languages: UniqueValues(books, func(b domain.Book) string { return b.Language }),
	}
}
