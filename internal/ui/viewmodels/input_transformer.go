package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"bookshelf/internal/ui/input/types"
)

// InputTransformer turns the active input mode into the prompt line
type InputTransformer struct {
	mode      types.Mode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case types.ModeSearch:
		return "Search: " + it.textInput.View()
	case types.ModeGoToPage:
		return "Go to page: " + it.textInput.View()
	default:
		// Selectors render as a popup instead
		return ""
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case types.ModeSearch:
		return "search"
	case types.ModeGoToPage:
		return "go-to-page"
	case types.ModeCountrySelect:
		return "country"
	case types.ModeLanguageSelect:
		return "language"
	case types.ModePagesSelect:
		return "pages"
	case types.ModeCenturySelect:
		return "century"
	case types.ModePageSizeSelect:
		return "page-size"
	default:
		return ""
	}
}
