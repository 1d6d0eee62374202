package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bookshelf/internal/config"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/ui/commands"
	"bookshelf/internal/ui/handlers"
	"bookshelf/internal/ui/input"
	inputtypes "bookshelf/internal/ui/input/types"
	"bookshelf/internal/ui/logic"
	"bookshelf/internal/ui/state"
	"bookshelf/internal/ui/viewmodels"
	"bookshelf/internal/ui/views"
	"bookshelf/internal/viewstate"
)

// Lines taken by everything around the book list
const reservedLines = 15

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	engine *viewstate.Engine
	logger *zap.Logger

	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over engine. A nil logger discards output.
func NewModel(bus eventbus.EventBus, cfg *config.Config, engine *viewstate.Engine, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		engine:       engine,
		logger:       logger.Named("ui"),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, engine, m.syncNavigatorState)
	m.cmdExecutor = commands.NewExecutor(appState, engine, bus)
	m.viewModel = viewmodels.NewViewModel(appState, engine, *m.inputHandler.GetTextInput())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State exposes the UI state, mainly for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.engine.View().Items),
	)
}

// Init requests the catalog and starts the spinner
func (m *Model) Init() tea.Cmd {
	if m.bus == nil || m.config.CatalogSource == "" {
		return nil
	}
	m.cmdExecutor.ExecuteLoadCatalog(m.config.CatalogSource)
	return handlers.Tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		if m.state.ShowInfo {
			return m, m.handleInfoKey(msg)
		}
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		if !input.IsSelectMode(m.inputHandler.CurrentMode()) {
			m.state.ClearOptions()
		}
		m.syncInput()

		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			m.syncInput()
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// syncInput mirrors the input handler into the view model
func (m *Model) syncInput() {
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
}

// context snapshots the state the input modes read
func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		State:  m.state,
		View:   m.engine.View(),
		Params: m.engine.Params(),
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// updateViewportHeight calculates the available height for the book list
func (m *Model) updateViewportHeight() {
	h := m.height - reservedLines
	if h < 3 {
		h = 3
	}
	m.state.ViewportHeight = h
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

func (m *Model) handleInfoKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "i", "q", "enter":
		m.state.ShowInfo = false
		m.state.InfoContent = ""
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "?", "q":
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case "j", "down":
		m.state.HelpScrollOffset++
	case "k", "up":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "v":
		m.state.ShowHelp = false
		return m.openPager("help", m.renderer.RenderHelpContent(m.viewModel.KeyMap()))
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Navigate(a.Direction)

	case inputtypes.GoToPageAction:
		return m.cmdExecutor.ExecuteGoToPage(a.Page)

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.cmdExecutor.ExecuteSearchInput(a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			return m.cmdExecutor.ExecuteSubmitSearch(a.Text)
		case inputtypes.ModeGoToPage:
			n, err := strconv.Atoi(strings.TrimSpace(a.Text))
			if err != nil {
				m.state.StatusMessage = "Invalid page number"
				return nil
			}
			return m.cmdExecutor.ExecuteGoToPage(n)
		}

	case inputtypes.CancelTextAction:
		// The typed query stays pending until the next submit
		if a.Mode == inputtypes.ModeSearch && !m.engine.Params().SearchActive && m.engine.Params().SearchQuery != "" {
			m.state.StatusMessage = "Search not applied"
		}

	case inputtypes.SetFacetAction:
		return m.cmdExecutor.ExecuteSetFacet(a.Facet, a.Value)

	case inputtypes.SetPageSizeAction:
		return m.cmdExecutor.ExecuteSetPageSize(a.Size)

	case inputtypes.ClearAllAction:
		return m.cmdExecutor.ExecuteClearAll()

	case inputtypes.UpdateOptionIndexAction:
		m.state.SetOptions(a.Title, a.Index, a.Options)

	case inputtypes.ToggleInfoAction:
		book, ok := m.context().CurrentBook()
		if !ok {
			return nil
		}
		m.state.InfoContent = m.renderer.BookRenderer().RenderBookInfo(book, m.config.ImageURL(book.ImageLink))
		m.state.ShowInfo = true

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.OpenPagerAction:
		return m.openPager("list", BuildListing(m.engine.View(), m.filterSummary()))

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		m.logger.Debug("unhandled action", zap.String("type", action.Type()))
	}

	return nil
}

// filterSummary describes the active search and filters in one line
func (m *Model) filterSummary() string {
	p := m.engine.Params()
	var parts []string
	if p.SearchActive && p.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("search %q", p.SearchQuery))
	}
	for _, f := range []struct{ name, value string }{
		{"country", p.Country},
		{"language", p.Language},
		{"pages", p.PagesRange},
		{"century", p.CenturyRange},
	} {
		if f.value != "" {
			parts = append(parts, f.name+" "+f.value)
		}
	}
	return strings.Join(parts, ", ")
}

// openPager returns a command that shows content in the ov pager
func (m *Model) openPager(what, content string) tea.Cmd {
	if m.program == nil {
		m.state.StatusMessage = "Pager unavailable"
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.TickMsg:
		// Don't continue tick loop if we're in pager mode or nothing is loading
		if m.inPagerMode || !m.state.Loading {
			return m, nil
		}
		return m, handlers.Tick()

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.String("content", msg.what), zap.Error(msg.err))
			m.state.StatusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		// Restart the spinner if a load is still running
		if m.state.Loading {
			return m, handlers.Tick()
		}
		return m, nil
	}

	return m, nil
}
