package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return m.page("prev", ctx)

	case tea.KeyRight:
		return m.page("next", ctx)

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if _, ok := ctx.CurrentBook(); ok {
			return []types.Action{types.ToggleInfoAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return m.page("prev", ctx)

	case "l":
		return m.page("next", ctx)

	case "/":
		// Start from the current query so an edit does not lose it
		return []types.Action{types.ChangeModeAction{
			Mode: types.ModeSearch,
			Data: ctx.SearchQuery(),
		}}, true

	case ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoToPage}}, true

	case "c":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCountrySelect}}, true

	case "L":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeLanguageSelect}}, true

	case "P":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePagesSelect}}, true

	case "Y":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCenturySelect}}, true

	case "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePageSizeSelect}}, true

	case "x":
		return []types.Action{types.ClearAllAction{}}, true

	case "i", "I":
		if _, ok := ctx.CurrentBook(); ok {
			return []types.Action{types.ToggleInfoAction{}}, true
		}
		return nil, true

	case "v":
		return []types.Action{types.OpenPagerAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		return nil, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}

// page emits a page change, stopping at the first and last page
func (m *NormalMode) page(direction string, ctx types.Context) ([]types.Action, bool) {
	current := ctx.CurrentPage()
	switch direction {
	case "prev":
		if current <= 1 {
			return nil, true
		}
		return []types.Action{types.GoToPageAction{Page: current - 1}}, true
	default:
		if current >= ctx.TotalPages() {
			return nil, true
		}
		return []types.Action{types.GoToPageAction{Page: current + 1}}, true
	}
}
