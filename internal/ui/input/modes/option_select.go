package modes

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/domain"
	"bookshelf/internal/ui/input/types"
)

// OptionSelectMode lets the user scroll through a list of values, applying
// each one as it is highlighted. Esc restores the value and page active on entry.
type OptionSelectMode struct {
	mode    types.Mode
	name    string
	title   string
	options func(ctx types.Context) []types.Option
	current func(ctx types.Context) string
	apply   func(value string) types.Action

	list          []types.Option
	index         int
	originalIndex int
	originalPage  int
}

// NewFacetSelectMode creates a selector for one facet filter
func NewFacetSelectMode(mode types.Mode, facet domain.Facet, title string) *OptionSelectMode {
	return &OptionSelectMode{
		mode:  mode,
		name:  facet.String(),
		title: title,
		options: func(ctx types.Context) []types.Option {
			return ctx.FacetOptions(facet)
		},
		current: func(ctx types.Context) string {
			return ctx.FacetValue(facet)
		},
		apply: func(value string) types.Action {
			return types.SetFacetAction{Facet: facet, Value: value}
		},
	}
}

// NewPageSizeSelectMode creates a selector over the allowed page sizes
func NewPageSizeSelectMode(sizes []int) *OptionSelectMode {
	opts := make([]types.Option, 0, len(sizes))
	for _, size := range sizes {
		v := strconv.Itoa(size)
		opts = append(opts, types.Option{Value: v, Label: v + " per page"})
	}
	return &OptionSelectMode{
		mode:  types.ModePageSizeSelect,
		name:  "page-size",
		title: "Page Size",
		options: func(types.Context) []types.Option {
			return opts
		},
		current: func(ctx types.Context) string {
			return strconv.Itoa(ctx.PageSize())
		},
		apply: func(value string) types.Action {
			size, _ := strconv.Atoi(value)
			return types.SetPageSizeAction{Size: size}
		},
	}
}

func (m *OptionSelectMode) Name() string {
	return m.name
}

func (m *OptionSelectMode) Enter(ctx types.Context) []types.Action {
	m.list = m.options(ctx)
	m.index = 0
	current := m.current(ctx)
	for i, opt := range m.list {
		if opt.Value == current {
			m.index = i
			break
		}
	}
	m.originalIndex = m.index
	m.originalPage = ctx.CurrentPage()

	return []types.Action{m.indexAction()}
}

func (m *OptionSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for option selection
func (m *OptionSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		actions := []types.Action{}
		if m.index != m.originalIndex && len(m.list) > 0 {
			actions = append(actions,
				m.apply(m.list[m.originalIndex].Value),
				types.GoToPageAction{Page: m.originalPage},
			)
		}
		return append(actions, types.ChangeModeAction{Mode: types.ModeNormal}), true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k":
		return m.move(-1), true

	case "down", "j":
		return m.move(1), true
	}

	return nil, true
}

func (m *OptionSelectMode) move(delta int) []types.Action {
	if len(m.list) == 0 {
		return nil
	}
	m.index = (m.index + delta + len(m.list)) % len(m.list)
	return []types.Action{
		m.indexAction(),
		m.apply(m.list[m.index].Value),
	}
}

func (m *OptionSelectMode) indexAction() types.UpdateOptionIndexAction {
	return types.UpdateOptionIndexAction{Index: m.index, Title: m.title, Options: m.list}
}
