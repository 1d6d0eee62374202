package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"bookshelf/internal/domain"
)

// Column widths for a book row, excluding the cursor gutter
const (
	authorWidth  = 24
	countryWidth = 16
	yearWidth    = 9
	pagesWidth   = 6
	minTitle     = 12
)

// BookRenderer handles rendering of book rows
type BookRenderer struct {
	styles *Styles
}

// NewBookRenderer creates a new book renderer
func NewBookRenderer(styles *Styles) *BookRenderer {
	return &BookRenderer{styles: styles}
}

// RenderBook renders one row of the book list. highlight is the submitted
// search query, empty when no search is applied.
func (r *BookRenderer) RenderBook(book domain.Book, isSelected bool, highlight string, width int) string {
	base := lipgloss.NewStyle()
	if isSelected {
		base = r.styles.SelectionBg
	}

	titleWidth := width - 2 - authorWidth - countryWidth - yearWidth - pagesWidth - 4
	if titleWidth < minTitle {
		titleWidth = minTitle
	}

	gutter := "  "
	if isSelected {
		gutter = "› "
	}

	cells := []string{
		base.Render(gutter),
		r.cell(book.Title, titleWidth, highlight, base.Bold(true)),
		r.cell(book.Author, authorWidth, highlight, base.Inherit(r.styles.Author)),
		r.cell(book.Country, countryWidth, "", base.Inherit(r.styles.Meta)),
		r.cell(FormatYear(book.Year), yearWidth, "", base.Inherit(r.styles.Meta)),
		base.Inherit(r.styles.Meta).Render(fmt.Sprintf("%*s", pagesWidth, strconv.Itoa(book.Pages))),
	}
	return strings.Join(cells, base.Render(" "))
}

// cell truncates text to width, pads it, and highlights the first match
func (r *BookRenderer) cell(text string, width int, highlight string, style lipgloss.Style) string {
	text = ansi.Truncate(text, width, "…")
	pad := width - ansi.StringWidth(text)
	if pad < 0 {
		pad = 0
	}
	rendered := style.Render(text)
	if highlight != "" {
		rendered = highlightMatch(text, highlight, style.Inherit(r.styles.Highlight), style)
	}
	return rendered + style.Render(strings.Repeat(" ", pad))
}

// highlightMatch highlights matching text within a string
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Lowercasing can change byte lengths outside ASCII; fall back to plain text then
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// FormatYear renders a publication year, with negative years as BC
func FormatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("%d BC", -year)
	}
	return strconv.Itoa(year)
}

type infoField struct {
	label string
	value string
}

// RenderBookInfo renders the details popup body
func (r *BookRenderer) RenderBookInfo(book domain.Book, imageURL string) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(book.Title))
	b.WriteString("\n\n")

	fields := []infoField{
		{"Author", book.Author},
		{"Country", book.Country},
		{"Language", book.Language},
		{"Year", FormatYear(book.Year)},
		{"Pages", strconv.Itoa(book.Pages)},
		{"Image", imageURL},
	}
	if book.Link != "" {
		fields = append(fields, infoField{"Link", book.Link})
	}

	for i, f := range fields {
		b.WriteString(r.styles.Key.Render(fmt.Sprintf("%-9s", f.label+":")))
		b.WriteString(" ")
		b.WriteString(r.styles.Desc.Render(f.value))
		if i < len(fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
