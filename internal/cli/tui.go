package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bookshelf/internal/catalog"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/ui"
	"bookshelf/internal/viewstate"
)

// e2eEnv makes the browser print a ready marker for the pty tests
const e2eEnv = "BOOKSHELF_E2E_TEST"

// forwardedEvents are the bus events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventCatalogLoadStarted,
	eventbus.EventCatalogLoaded,
	eventbus.EventCatalogLoadFailed,
	eventbus.EventError,
}

// runTUI starts the interactive browser and blocks until it exits
func runTUI(ctx context.Context, rt *runtime) error {
	cfg, logger := rt.cfg, rt.logger

	bus := eventbus.New(logger)
	defer bus.Close()

	// answers the CatalogLoadRequested event the model publishes on Init
	loader := catalog.NewLoader(bus,
		catalog.WithTimeout(cfg.Timeout()),
		catalog.WithLogger(logger))
	defer loader.Stop()

	engine := viewstate.New(
		viewstate.WithPageSize(cfg.UISettings.DefaultPageSize),
		viewstate.WithCacheSize(cfg.Cache.Size),
		viewstate.WithEventBus(bus),
		viewstate.WithLogger(logger))

	model := ui.NewModel(bus, cfg, engine, logger)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, eventType := range forwardedEvents {
		bus.Subscribe(eventType, forward)
	}
	logViewChanges(bus, logger)

	if os.Getenv(e2eEnv) == "1" {
		bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) {
			fmt.Fprintln(os.Stdout, "__READY__")
		})
	}
	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: rt.hadConfig})

	logger.Debug("starting program", zap.Bool("alt_screen", cfg.UISettings.AltScreen))
	if _, err := p.Run(); err != nil {
		if isInterrupt(ctx, err) {
			logger.Info("interrupted")
			return nil
		}
		logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("failed to run program: %w", err)
	}
	logger.Info("exited normally")
	return nil
}

// logViewChanges records every view mutation the engine reports
func logViewChanges(bus eventbus.EventBus, logger *zap.Logger) func() {
	logger = logger.Named("view")
	return bus.Subscribe(eventbus.EventViewChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ViewChangedEvent)
		if !ok {
			return
		}
		logger.Debug("view changed",
			zap.String("operation", event.Operation),
			zap.Int("matches", event.Matches),
			zap.Int("page", event.Page),
			zap.Int("total_pages", event.TotalPages),
			zap.Int("page_size", event.PageSize))
	})
}
