package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"bookshelf/internal/domain"
	"bookshelf/internal/eventbus"
)

var (
	// ErrAlreadyLoaded is returned when the catalog has already been read once
	ErrAlreadyLoaded = errors.New("catalog already loaded")
	// ErrUnsupportedSource is returned for URL schemes other than http, https and file
	ErrUnsupportedSource = errors.New("unsupported catalog source")
)

// Loader reads the book catalog exactly once
type Loader interface {
	// Load reads and decodes the catalog synchronously
	Load(ctx context.Context, source string) ([]domain.Book, error)
	// Start runs Load in the background; results arrive on the event bus
	Start(ctx context.Context, source string) error
	// Stop cancels a background load and waits for it to finish
	Stop()
}

// loader is the concrete implementation
type loader struct {
	bus       eventbus.EventBus
	client    *http.Client
	timeout   time.Duration
	logger    *zap.Logger
	mu        sync.Mutex
	attempted bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// Option configures a Loader
type Option func(*loader)

// WithHTTPClient sets the client used for http and https sources
func WithHTTPClient(c *http.Client) Option {
	return func(l *loader) { l.client = c }
}

// WithTimeout bounds a single catalog read
func WithTimeout(d time.Duration) Option {
	return func(l *loader) { l.timeout = d }
}

// WithLogger sets the loader logger
func WithLogger(logger *zap.Logger) Option {
	return func(l *loader) { l.logger = logger }
}

// NewLoader creates a catalog loader. When bus is non-nil the loader reports
// progress on it and answers CatalogLoadRequested events.
func NewLoader(bus eventbus.EventBus, opts ...Option) Loader {
	l := &loader{
		bus:     bus,
		client:  http.DefaultClient,
		timeout: 10 * time.Second,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.Named("catalog")

	if bus != nil {
		bus.Subscribe(eventbus.EventCatalogLoadRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.CatalogLoadRequestedEvent); ok {
				if err := l.Start(context.Background(), event.Source); err != nil {
					l.logger.Warn("catalog load request rejected", zap.Error(err))
					l.publish(eventbus.ErrorEvent{Message: fmt.Sprintf("catalog load request rejected: %v", err), Err: err})
				}
			}
		})
	}

	return l
}

// claim marks the single read as taken
func (l *loader) claim() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.attempted {
		return ErrAlreadyLoaded
	}
	l.attempted = true
	return nil
}

// Load reads and decodes the catalog. Only the first call does any work;
// later calls return ErrAlreadyLoaded, including after a failed read.
func (l *loader) Load(ctx context.Context, source string) ([]domain.Book, error) {
	if err := l.claim(); err != nil {
		return nil, err
	}
	return l.load(ctx, source)
}

// Start claims the read and performs it on a new goroutine. The claim, the
// cancel func and the wait group change under a single lock.
func (l *loader) Start(ctx context.Context, source string) error {
	l.mu.Lock()
	if l.attempted {
		l.mu.Unlock()
		return ErrAlreadyLoaded
	}
	l.attempted = true
	loadCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer cancel()
		_, _ = l.load(loadCtx, source)
	}()
	return nil
}

// Stop cancels any background load
func (l *loader) Stop() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.mu.Unlock()

	l.wg.Wait()
}

func (l *loader) load(ctx context.Context, source string) ([]domain.Book, error) {
	l.publish(eventbus.CatalogLoadStartedEvent{Source: source})
	start := time.Now()

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	books, err := l.read(ctx, source)
	if err != nil {
		l.logger.Error("catalog load failed", zap.String("source", source), zap.Error(err))
		l.publish(eventbus.CatalogLoadFailedEvent{Source: source, Err: err})
		return nil, err
	}

	l.logger.Info("catalog read",
		zap.String("source", source),
		zap.Int("books", len(books)),
		zap.Duration("elapsed", time.Since(start)))
	l.publish(eventbus.CatalogLoadedEvent{Source: source, Books: books})
	return books, nil
}

func (l *loader) read(ctx context.Context, source string) ([]domain.Book, error) {
	r, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Decode(r)
}

// open returns a reader for a file path or an http(s)/file URL
func (l *loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.Contains(source, "://") {
		return openFile(source)
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog source: %w", err)
	}

	switch u.Scheme {
	case "file":
		return openFile(u.Path)
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build catalog request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch catalog: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to fetch catalog: unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, u.Scheme)
	}
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	return f, nil
}

// Decode parses a JSON array of books
func Decode(r io.Reader) ([]domain.Book, error) {
	var books []domain.Book
	if err := json.NewDecoder(r).Decode(&books); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if books == nil {
		books = []domain.Book{}
	}
	return books, nil
}

func (l *loader) publish(event eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(event)
	}
}
