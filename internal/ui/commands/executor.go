package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/domain"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, engine Engine, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:  state,
			Engine: engine,
			Bus:    bus,
		},
	}
}

// ExecuteLoadCatalog creates and executes a load catalog command
func (e *Executor) ExecuteLoadCatalog(source string) tea.Cmd {
	return NewLoadCatalogCommand(e.ctx, source).Execute()
}

// ExecuteSearchInput creates and executes a search input command
func (e *Executor) ExecuteSearchInput(text string) tea.Cmd {
	return NewSearchInputCommand(e.ctx, text).Execute()
}

// ExecuteSubmitSearch creates and executes a submit search command
func (e *Executor) ExecuteSubmitSearch(text string) tea.Cmd {
	return NewSubmitSearchCommand(e.ctx, text).Execute()
}

// ExecuteSetFacet creates and executes a set facet command
func (e *Executor) ExecuteSetFacet(facet domain.Facet, value string) tea.Cmd {
	return NewSetFacetCommand(e.ctx, facet, value).Execute()
}

// ExecuteClearAll creates and executes a clear all command
func (e *Executor) ExecuteClearAll() tea.Cmd {
	return NewClearAllCommand(e.ctx).Execute()
}

// ExecuteSetPageSize creates and executes a set page size command
func (e *Executor) ExecuteSetPageSize(size int) tea.Cmd {
	return NewSetPageSizeCommand(e.ctx, size).Execute()
}

// ExecuteGoToPage creates and executes a go to page command
func (e *Executor) ExecuteGoToPage(page int) tea.Cmd {
	return NewGoToPageCommand(e.ctx, page).Execute()
}
