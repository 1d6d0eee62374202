package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/domain"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/logic"
	"bookshelf/internal/ui/state"
	"bookshelf/internal/viewstate"
)

// Engine is the view state the commands drive
type Engine interface {
	LoadCatalog(books []domain.Book)
	SetSearchQuery(text string)
	SubmitSearch()
	SetFacetFilter(facet domain.Facet, value string)
	ClearAll()
	SetPageSize(n int)
	GoToPage(n int)
	Params() viewstate.Params
	View() logic.View
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State  *state.AppState
	Engine Engine
	Bus    eventbus.EventBus
}

// afterPageChange scrolls back to the top when the page index moved
func (c *CommandContext) afterPageChange(before int) {
	if c.Engine.Params().Page != before {
		c.State.ResetCursor()
	}
}

// LoadCatalogCommand asks the loader for the catalog
type LoadCatalogCommand struct {
	ctx    *CommandContext
	source string
}

// NewLoadCatalogCommand creates a new load catalog command
func NewLoadCatalogCommand(ctx *CommandContext, source string) *LoadCatalogCommand {
	return &LoadCatalogCommand{ctx: ctx, source: source}
}

// Execute publishes the load request
func (c *LoadCatalogCommand) Execute() tea.Cmd {
	c.ctx.State.StartLoading(c.source)
	c.ctx.State.StatusMessage = fmt.Sprintf("Loading catalog from %s...", c.source)
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.CatalogLoadRequestedEvent{Source: c.source})
	}
	return nil
}

// SearchInputCommand records the text typed so far
type SearchInputCommand struct {
	ctx  *CommandContext
	text string
}

// NewSearchInputCommand creates a new search input command
func NewSearchInputCommand(ctx *CommandContext, text string) *SearchInputCommand {
	return &SearchInputCommand{ctx: ctx, text: text}
}

// Execute updates the pending query
func (c *SearchInputCommand) Execute() tea.Cmd {
	c.ctx.Engine.SetSearchQuery(c.text)
	return nil
}

// SubmitSearchCommand applies the typed query
type SubmitSearchCommand struct {
	ctx  *CommandContext
	text string
}

// NewSubmitSearchCommand creates a new submit search command
func NewSubmitSearchCommand(ctx *CommandContext, text string) *SubmitSearchCommand {
	return &SubmitSearchCommand{ctx: ctx, text: text}
}

// Execute submits the search and reports the match count
func (c *SubmitSearchCommand) Execute() tea.Cmd {
	c.ctx.Engine.SetSearchQuery(c.text)
	c.ctx.Engine.SubmitSearch()
	c.ctx.State.ResetCursor()

	matches := len(c.ctx.Engine.View().Filtered)
	if c.text == "" {
		c.ctx.State.StatusMessage = fmt.Sprintf("Showing all %d books", matches)
	} else {
		c.ctx.State.StatusMessage = fmt.Sprintf("%d books match %q", matches, c.text)
	}
	return nil
}

// SetFacetCommand changes one facet filter
type SetFacetCommand struct {
	ctx   *CommandContext
	facet domain.Facet
	value string
}

// NewSetFacetCommand creates a new set facet command
func NewSetFacetCommand(ctx *CommandContext, facet domain.Facet, value string) *SetFacetCommand {
	return &SetFacetCommand{ctx: ctx, facet: facet, value: value}
}

// Execute applies the filter
func (c *SetFacetCommand) Execute() tea.Cmd {
	c.ctx.Engine.SetFacetFilter(c.facet, c.value)
	c.ctx.State.ResetCursor()
	return nil
}

// ClearAllCommand resets search and filters
type ClearAllCommand struct {
	ctx *CommandContext
}

// NewClearAllCommand creates a new clear all command
func NewClearAllCommand(ctx *CommandContext) *ClearAllCommand {
	return &ClearAllCommand{ctx: ctx}
}

// Execute clears everything but the page size
func (c *ClearAllCommand) Execute() tea.Cmd {
	c.ctx.Engine.ClearAll()
	c.ctx.State.ResetCursor()
	c.ctx.State.StatusMessage = "Cleared search and filters"
	return nil
}

// SetPageSizeCommand changes the number of books per page
type SetPageSizeCommand struct {
	ctx  *CommandContext
	size int
}

// NewSetPageSizeCommand creates a new set page size command
func NewSetPageSizeCommand(ctx *CommandContext, size int) *SetPageSizeCommand {
	return &SetPageSizeCommand{ctx: ctx, size: size}
}

// Execute applies the page size
func (c *SetPageSizeCommand) Execute() tea.Cmd {
	c.ctx.Engine.SetPageSize(c.size)
	c.ctx.State.ResetCursor()
	return nil
}

// GoToPageCommand jumps to a page
type GoToPageCommand struct {
	ctx  *CommandContext
	page int
}

// NewGoToPageCommand creates a new go to page command
func NewGoToPageCommand(ctx *CommandContext, page int) *GoToPageCommand {
	return &GoToPageCommand{ctx: ctx, page: page}
}

// Execute moves to the page. Pages past the end are allowed and show no rows.
func (c *GoToPageCommand) Execute() tea.Cmd {
	if c.page < 1 {
		c.ctx.State.StatusMessage = "Invalid page number"
		return nil
	}
	before := c.ctx.Engine.Params().Page
	c.ctx.Engine.GoToPage(c.page)
	c.ctx.afterPageChange(before)

	if total := c.ctx.Engine.View().TotalPages; c.page > total {
		c.ctx.State.StatusMessage = fmt.Sprintf("Page %d is past the last page (%d)", c.page, total)
	}
	return nil
}
