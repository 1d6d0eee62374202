package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/domain"
	"bookshelf/internal/ui/input/modes"
	"bookshelf/internal/ui/input/types"
	"bookshelf/internal/viewstate"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeGoToPage] = modes.NewGoToPageMode(h.textInput)
	h.modes[types.ModeCountrySelect] = modes.NewFacetSelectMode(types.ModeCountrySelect, domain.FacetCountry, "Country")
	h.modes[types.ModeLanguageSelect] = modes.NewFacetSelectMode(types.ModeLanguageSelect, domain.FacetLanguage, "Language")
	h.modes[types.ModePagesSelect] = modes.NewFacetSelectMode(types.ModePagesSelect, domain.FacetPages, "Pages")
	h.modes[types.ModeCenturySelect] = modes.NewFacetSelectMode(types.ModeCenturySelect, domain.FacetCentury, "Century")
	h.modes[types.ModePageSizeSelect] = modes.NewPageSizeSelectMode(viewstate.AllowedPageSizes)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !IsTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)

		oldMode := h.currentMode
		h.currentMode = changeMode.Mode

		// Handle text input focus before Enter so modes see the seeded value
		if IsTextMode(h.currentMode) {
			h.textInput.Reset()
			if data, ok := changeMode.Data.(string); ok {
				h.textInput.SetValue(data)
				h.textInput.CursorEnd()
			}
			h.textInput.Focus()
			cmd = textinput.Blink
		} else if IsTextMode(oldMode) {
			h.textInput.Blur()
		}

		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if IsTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value(), Mode: h.currentMode})
		}
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// TextInput returns the shared text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if IsTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Prompt returns the label shown in front of the text input for the current mode
func (h *Handler) Prompt() string {
	if m, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok {
		return m.Prompt()
	}
	return ""
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// IsTextMode reports whether keys in mode are fed to the text input
func IsTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeSearch, types.ModeGoToPage:
		return true
	default:
		return false
	}
}

// IsSelectMode reports whether mode shows the option list popup
func IsSelectMode(mode types.Mode) bool {
	switch mode {
	case types.ModeCountrySelect, types.ModeLanguageSelect, types.ModePagesSelect,
		types.ModeCenturySelect, types.ModePageSizeSelect:
		return true
	default:
		return false
	}
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if IsTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// GetTextInput returns the text input model
func (h *Handler) GetTextInput() *textinput.Model {
	if h == nil {
		return nil
	}
	return h.textInput
}
