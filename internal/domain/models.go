package domain

// Book is a single catalog record. Records carry no identity field; the
// catalog position is the only ordering.
type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Country   string `json:"country"`
	Language  string `json:"language"`
	Year      int    `json:"year"` // negative for BC
	Pages     int    `json:"pages"`
	ImageLink string `json:"imageLink"`
	Link      string `json:"link,omitempty"`
}

// Facet identifies a discrete filter dimension
type Facet string

// Facets exposed by the view engine
const (
	FacetCountry  Facet = "country"
	FacetLanguage Facet = "language"
	FacetPages    Facet = "pages"
	FacetCentury  Facet = "century"
)

// Facets lists every facet in display order
var Facets = []Facet{FacetCountry, FacetLanguage, FacetPages, FacetCentury}

// String returns the facet name
func (f Facet) String() string { return string(f) }
