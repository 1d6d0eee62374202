package types

import "bookshelf/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type GoToPageAction struct {
	Page int
}

func (a GoToPageAction) Type() string { return "go_to_page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Filter actions
type SetFacetAction struct {
	Facet domain.Facet
	Value string
}

func (a SetFacetAction) Type() string { return "set_facet" }

type SetPageSizeAction struct {
	Size int
}

func (a SetPageSizeAction) Type() string { return "set_page_size" }

type ClearAllAction struct{}

func (a ClearAllAction) Type() string { return "clear_all" }

// Option list actions
type UpdateOptionIndexAction struct {
	Index   int
	Title   string
	Options []Option
}

func (a UpdateOptionIndexAction) Type() string { return "update_option_index" }

// Display actions
type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
