package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"bookshelf/internal/ui/input/types"
)

// SearchMode edits the pending search query. Every edit is reported as an
// UpdateTextAction; only enter submits it.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{TextInputMode: newTextInputMode(types.ModeSearch, "search", "Search: ", ti)}
}
