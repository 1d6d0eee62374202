package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"bookshelf/internal/domain"
	"bookshelf/internal/logic"
	"bookshelf/internal/ui/input/types"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Books         []domain.Book // rows of the current page
	Matches       int
	CatalogSize   int
	PageInfo      logic.PageInfo
	SelectedIndex int

	SearchQuery  string
	SearchActive bool
	Country      string
	Language     string
	PagesRange   string
	CenturyRange string

	Loading    bool
	LoadSource string
	LoadError  error

	StatusMessage    string
	ShowHelp         bool
	HelpScrollOffset int
	ShowInfo         bool
	InfoContent      string
	ViewportOffset   int
	ViewportHeight   int
	HelpModel        help.Model
	KeyMap           KeyMap
	Paginator        paginator.Model
	TextInput        string
	InputMode        string

	OptionTitle   string
	OptionIndex   int
	OptionChoices []types.Option
}

// HighlightQuery is the text to highlight in rows, the submitted query only
func (s ViewState) HighlightQuery() string {
	if !s.SearchActive {
		return ""
	}
	return s.SearchQuery
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	bookRender  *BookRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		bookRender:  NewBookRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// BookRenderer exposes the row renderer for the details popup
func (r *Renderer) BookRenderer() *BookRenderer {
	return r.bookRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderFilterSummary(state))
	content.WriteString("\n")

	if state.TextInput != "" {
		content.WriteString(state.TextInput)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(r.renderMain(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderFooter(state))

	// Key hints at the bottom when no popups are visible
	if !state.ShowHelp && !state.ShowInfo && state.OptionTitle == "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}
		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(state.HelpModel.View(state.KeyMap))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	if state.OptionTitle != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderOptions(state), state.Height, state.Width, r.styles.OptionBox)
	}

	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.InfoContent, state.Height, state.Width, r.styles.InfoBox)
	}

	if state.ShowHelp {
		helpContent := ScrollHelp(r.RenderHelpContent(state.KeyMap), state.Height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.HelpBox)
	}

	return finalContent
}

// renderTitleLine renders the logo with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("bookshelf")

	var indicators []string
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%s Loading", spinner[frame])))
	} else if state.CatalogSize > 0 {
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%d of %d books", state.Matches, state.CatalogSize)))
	}
	if q := state.HighlightQuery(); q != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", q)))
	}

	if len(indicators) == 0 {
		return logo
	}

	rightContent := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

// renderFilterSummary lists the active search and filters
func (r *Renderer) renderFilterSummary(state ViewState) string {
	value := func(v, all string) string {
		if v == "" {
			return r.styles.Dim.Render(all)
		}
		return r.styles.Filter.Render(v)
	}

	search := r.styles.Dim.Render("none")
	switch {
	case state.SearchActive && state.SearchQuery != "":
		search = r.styles.Filter.Render(state.SearchQuery)
	case !state.SearchActive && state.SearchQuery != "":
		search = r.styles.Dim.Render(state.SearchQuery + " (not submitted)")
	}

	parts := []string{
		r.styles.FilterLabel.Render("Search: ") + search,
		r.styles.FilterLabel.Render("Country: ") + value(state.Country, "All"),
		r.styles.FilterLabel.Render("Language: ") + value(state.Language, "All"),
		r.styles.FilterLabel.Render("Pages: ") + value(logic.BucketDisplay(logic.PagesBuckets, state.PagesRange), "All"),
		r.styles.FilterLabel.Render("Century: ") + value(logic.BucketDisplay(logic.CenturyBuckets, state.CenturyRange), "All"),
		r.styles.FilterLabel.Render("Per page: ") + r.styles.Desc.Render(fmt.Sprintf("%d", state.PageInfo.PageSize)),
	}
	return strings.Join(parts, r.styles.Dim.Render(" | "))
}

// renderMain renders the book list or its placeholder
func (r *Renderer) renderMain(state ViewState) string {
	switch {
	case state.Loading && state.CatalogSize == 0:
		return r.styles.Dim.Render("Loading catalog...")
	case state.LoadError != nil && state.CatalogSize == 0:
		return r.styles.StatusError.Render(fmt.Sprintf("Could not load catalog from %s", state.LoadSource)) +
			"\n" + r.styles.Dim.Render("No books found.")
	case len(state.Books) == 0:
		return r.styles.Dim.Render("No books found.")
	}
	return r.renderBookList(state)
}

// renderBookList renders the visible rows of the current page
func (r *Renderer) renderBookList(state ViewState) string {
	width := state.Width - 4
	if width <= 0 {
		width = 76
	}

	height := state.ViewportHeight
	if height <= 0 || height > len(state.Books) {
		height = len(state.Books)
	}
	offset := state.ViewportOffset
	if offset < 0 || offset > len(state.Books)-height {
		offset = 0
	}

	needsTopIndicator := offset > 0
	needsBottomIndicator := offset+height < len(state.Books)

	var lines []string
	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}

	highlight := state.HighlightQuery()
	for i := offset; i < offset+height && i < len(state.Books); i++ {
		lines = append(lines, r.bookRender.RenderBook(state.Books[i], i == state.SelectedIndex, highlight, width))
	}

	if needsBottomIndicator {
		itemsBelow := len(state.Books) - (offset + height)
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", itemsBelow)))
	}

	return strings.Join(lines, "\n")
}

// renderFooter renders the paginator, page counter, and status line
func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string

	pageLine := r.styles.Footer.Render(fmt.Sprintf("Page %d of %d", state.PageInfo.Page, state.PageInfo.TotalPages))
	if state.PageInfo.TotalPages > 1 {
		pageLine = state.Paginator.View() + "  " + pageLine
	}
	if state.PageInfo.HasPrev() {
		pageLine += r.styles.Dim.Render("  ‹ h")
	}
	if state.PageInfo.HasNext() {
		pageLine += r.styles.Dim.Render("  l ›")
	}
	lines = append(lines, pageLine)

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.LoadError != nil && strings.HasPrefix(state.StatusMessage, "Failed") {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}

	return strings.Join(lines, "\n")
}

// renderOptions renders the option selection popup
func (r *Renderer) renderOptions(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Section.Render(state.OptionTitle))
	b.WriteString("\n")

	visible := state.Height - 8
	if visible < 5 {
		visible = 5
	}
	start := 0
	if state.OptionIndex >= visible {
		start = state.OptionIndex - visible + 1
	}
	end := start + visible
	if end > len(state.OptionChoices) {
		end = len(state.OptionChoices)
	}

	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		opt := state.OptionChoices[i]
		if i == state.OptionIndex {
			b.WriteString(r.styles.Highlight.Render("› " + opt.Label))
		} else {
			b.WriteString("  " + r.styles.Desc.Render(opt.Label))
		}
		b.WriteString("\n")
	}
	if end < len(state.OptionChoices) {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", len(state.OptionChoices)-end)))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Dim.Render("↑/↓ apply • enter keep • esc restore"))
	return b.String()
}
