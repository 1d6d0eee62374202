package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeGoToPage
	ModeCountrySelect
	ModeLanguageSelect
	ModePagesSelect
	ModeCenturySelect
	ModePageSizeSelect
)

// Option is one entry of a selection list
type Option struct {
	Value string
	Label string
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentPage() int
	TotalPages() int
	PageSize() int
	SearchQuery() string
	FacetValue(facet domain.Facet) string
	FacetOptions(facet domain.Facet) []Option
	CurrentBook() (domain.Book, bool)
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
