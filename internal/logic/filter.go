package logic

import (
	"strings"

	"bookshelf/internal/domain"
)

// MatchesSearch checks if a book's title or author contains the query,
// ignoring case. An empty query matches every book.
func MatchesSearch(book domain.Book, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(book.Title), q) ||
		strings.Contains(strings.ToLower(book.Author), q)
}

// MatchesExact checks a facet value against a filter; an empty filter matches all
func MatchesExact(value, filter string) bool {
	return filter == "" || value == filter
}

// MatchesPages checks a page count against a page-count selector
func MatchesPages(pages int, label string) bool {
	r, ok := PagesRange(label)
	if !ok {
		return true
	}
	return r.Contains(pages)
}

// MatchesCentury checks a publication year against a century selector
func MatchesCentury(year int, label string) bool {
	r, ok := CenturyRange(label)
	if !ok {
		return true
	}
	return r.Contains(year)
}

// Matches reports whether a book satisfies every predicate of the criteria
func (c Criteria) Matches(book domain.Book) bool {
	if c.SearchActive && !MatchesSearch(book, c.SearchQuery) {
		return false
	}
	return MatchesExact(book.Country, c.Country) &&
		MatchesExact(book.Language, c.Language) &&
		MatchesPages(book.Pages, c.PagesRange) &&
		MatchesCentury(book.Year, c.CenturyRange)
}

// IsZero reports whether the criteria place no constraint at all
func (c Criteria) IsZero() bool {
	return !c.SearchActive && c.Country == "" && c.Language == "" &&
		c.PagesRange == "" && c.CenturyRange == ""
}

// Filter returns the books matching the criteria in catalog order
func Filter(books []domain.Book, c Criteria) []domain.Book {
	result := make([]domain.Book, 0, len(books))
	if c.IsZero() {
		return append(result, books...)
	}
	for _, b := range books {
		if c.Matches(b) {
			result = append(result, b)
		}
	}
	return result
}
