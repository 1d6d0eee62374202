package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"bookshelf/internal/ui/input/types"
)

// GoToPageMode reads a page number; parsing happens when the text is submitted
type GoToPageMode struct {
	TextInputMode
}

func NewGoToPageMode(ti *textinput.Model) *GoToPageMode {
	return &GoToPageMode{
		TextInputMode: newTextInputMode(types.ModeGoToPage, "go-to-page", "Go to page: ", ti),
	}
}
