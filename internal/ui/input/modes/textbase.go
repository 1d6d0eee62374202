package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/ui/input/types"
)

// TextInputMode is shared by the prompt modes. Keys it does not consume are
// fed to the text input by the handler.
type TextInputMode struct {
	mode   types.Mode
	name   string
	prompt string
	input  *textinput.Model
}

func newTextInputMode(mode types.Mode, name, prompt string, ti *textinput.Model) TextInputMode {
	return TextInputMode{mode: mode, name: name, prompt: prompt, input: ti}
}

func (m TextInputMode) Name() string { return m.name }

// Prompt returns the label rendered in front of the input
func (m TextInputMode) Prompt() string { return m.prompt }

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.input != nil {
		m.input.Prompt = "" // drawn by the view
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.input != nil {
		m.input.Blur()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return m.leave(types.CancelTextAction{Mode: m.mode})
	case tea.KeyEnter:
		return m.leave(types.SubmitTextAction{Text: m.value(), Mode: m.mode})
	}
	return nil, false
}

// leave emits action followed by the switch back to normal mode
func (m TextInputMode) leave(action types.Action) ([]types.Action, bool) {
	return []types.Action{action, types.ChangeModeAction{Mode: types.ModeNormal}}, true
}

func (m TextInputMode) value() string {
	if m.input == nil {
		return ""
	}
	return m.input.Value()
}
