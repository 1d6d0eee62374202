package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"

	"bookshelf/internal/logic"
	"bookshelf/internal/ui/input/types"
	"bookshelf/internal/ui/state"
	"bookshelf/internal/ui/views"
	"bookshelf/internal/viewstate"
)

// ViewSource is the read side of the view state engine
type ViewSource interface {
	View() logic.View
	Params() viewstate.Params
	CatalogSize() int
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	source           ViewSource
	width            int
	height           int
	help             help.Model
	keys             views.KeyMap
	paginator        paginator.Model
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, source ViewSource, textInput textinput.Model) *ViewModel {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = "●"
	p.InactiveDot = "○"

	return &ViewModel{
		state:            appState,
		source:           source,
		help:             help.New(),
		keys:             views.DefaultKeyMap(),
		paginator:        p,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width - 4
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// KeyMap returns the key bindings shown in help
func (vm *ViewModel) KeyMap() views.KeyMap {
	return vm.keys
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	view := vm.source.View()
	params := vm.source.Params()

	p := vm.paginator
	p.TotalPages = view.TotalPages
	p.Page = params.Page - 1

	return views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Books:            view.Items,
		Matches:          len(view.Filtered),
		CatalogSize:      vm.source.CatalogSize(),
		PageInfo:         view.PageInfo,
		SelectedIndex:    vm.state.SelectedIndex,
		SearchQuery:      params.SearchQuery,
		SearchActive:     params.SearchActive,
		Country:          params.Country,
		Language:         params.Language,
		PagesRange:       params.PagesRange,
		CenturyRange:     params.CenturyRange,
		Loading:          vm.state.Loading,
		LoadSource:       vm.state.LoadSource,
		LoadError:        vm.state.LoadError,
		StatusMessage:    vm.state.StatusMessage,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		ShowInfo:         vm.state.ShowInfo,
		InfoContent:      vm.state.InfoContent,
		ViewportOffset:   vm.state.ViewportOffset,
		ViewportHeight:   vm.state.ViewportHeight,
		HelpModel:        vm.help,
		KeyMap:           vm.keys,
		Paginator:        p,
		TextInput:        vm.inputTransformer.GetInputText(),
		InputMode:        vm.inputTransformer.GetInputModeString(),
		OptionTitle:      vm.state.OptionTitle,
		OptionIndex:      vm.state.OptionIndex,
		OptionChoices:    vm.state.OptionChoices,
	}
}
