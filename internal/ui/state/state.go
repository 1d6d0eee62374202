package state

import (
	"bookshelf/internal/ui/input/types"
)

// AppState contains the UI-only state. View parameters live in the engine.
type AppState struct {
	// Cursor state
	SelectedIndex int // row under the cursor on the current page

	// UI state
	ViewportOffset   int // offset for scrolling
	ViewportHeight   int // available height for the book list
	ShowHelp         bool
	HelpScrollOffset int // scroll offset for help popup
	ShowInfo         bool
	InfoContent      string
	StatusMessage    string // status bar message

	// Catalog load state
	Loading    bool
	LoadSource string
	LoadError  error

	// Option selection popup
	OptionTitle   string
	OptionIndex   int
	OptionChoices []types.Option
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default
	}
}

// ResetCursor moves the cursor and viewport to the top of the page
func (s *AppState) ResetCursor() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// SetOptions replaces the option popup contents
func (s *AppState) SetOptions(title string, index int, options []types.Option) {
	s.OptionTitle = title
	s.OptionIndex = index
	s.OptionChoices = options
}

// ClearOptions hides the option popup
func (s *AppState) ClearOptions() {
	s.OptionTitle = ""
	s.OptionIndex = 0
	s.OptionChoices = nil
}

// StartLoading marks a catalog load in progress
func (s *AppState) StartLoading(source string) {
	s.Loading = true
	s.LoadSource = source
	s.LoadError = nil
}

// FinishLoading records the outcome of the catalog load
func (s *AppState) FinishLoading(err error) {
	s.Loading = false
	s.LoadError = err
}
