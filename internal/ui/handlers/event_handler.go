package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/domain"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/ui/state"
)

// TickMsg is a tick message for animations
type TickMsg time.Time

// CatalogSink receives the loaded catalog
type CatalogSink interface {
	LoadCatalog(books []domain.Book)
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state            *state.AppState
	engine           CatalogSink
	onCatalogChanged func()
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, engine CatalogSink, onCatalogChanged func()) *EventHandler {
	return &EventHandler{
		state:            appState,
		engine:           engine,
		onCatalogChanged: onCatalogChanged,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadStartedEvent:
		wasLoading := h.state.Loading
		h.state.StartLoading(e.Source)
		h.state.StatusMessage = fmt.Sprintf("Loading catalog from %s...", e.Source)
		if wasLoading {
			return nil
		}
		// Return a tick command to start the spinner animation
		return Tick()

	case eventbus.CatalogLoadedEvent:
		h.engine.LoadCatalog(e.Books)
		h.state.FinishLoading(nil)
		h.state.ResetCursor()
		h.state.StatusMessage = fmt.Sprintf("Loaded %d books", len(e.Books))
		if h.onCatalogChanged != nil {
			h.onCatalogChanged()
		}

	case eventbus.CatalogLoadFailedEvent:
		h.state.FinishLoading(e.Err)
		h.state.StatusMessage = fmt.Sprintf("Failed to load catalog: %v", e.Err)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}

// Tick schedules the next spinner frame
func Tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
