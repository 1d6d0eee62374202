package viewstate

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"bookshelf/internal/domain"
	"bookshelf/internal/eventbus"
	"bookshelf/internal/logic"
)

// DefaultCacheSize is the number of derived views memoized by default
const DefaultCacheSize = 64

// Engine owns the view parameters and derives the visible slice of the
// catalog from them. It is not safe for concurrent use; callers drive it
// from a single goroutine.
type Engine struct {
	store  logic.CatalogStore
	facets logic.FacetOptions
	params Params
	cache  *lru.Cache[Params, logic.View]
	bus    eventbus.EventBus
	logger *zap.Logger
}

// Option configures an Engine
type Option func(*engineOptions)

type engineOptions struct {
	pageSize  int
	cacheSize int
	bus       eventbus.EventBus
	logger    *zap.Logger
	store     logic.CatalogStore
}

// WithPageSize sets the initial page size; disallowed values fall back to the default
func WithPageSize(n int) Option {
	return func(o *engineOptions) { o.pageSize = n }
}

// WithCacheSize sets how many derived views are memoized; zero disables the cache
func WithCacheSize(n int) Option {
	return func(o *engineOptions) { o.cacheSize = n }
}

// WithEventBus publishes a ViewChangedEvent after every mutation
func WithEventBus(bus eventbus.EventBus) Option {
	return func(o *engineOptions) { o.bus = bus }
}

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *engineOptions) { o.logger = logger }
}

// WithStore uses an existing catalog store instead of a fresh in-memory one
func WithStore(store logic.CatalogStore) Option {
	return func(o *engineOptions) { o.store = store }
}

// New creates an engine over an empty catalog
func New(opts ...Option) *Engine {
	o := engineOptions{pageSize: DefaultPageSize, cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.store == nil {
		o.store = logic.NewMemoryCatalogStore()
	}

	e := &Engine{
		store:  o.store,
		params: DefaultParams(o.pageSize),
		bus:    o.bus,
		logger: o.logger.Named("viewstate"),
	}
	if o.pageSize != e.params.PageSize {
		e.logger.Warn("ignoring disallowed page size", zap.Int("page_size", o.pageSize))
	}
	if o.cacheSize > 0 {
		// lru.New only fails for a non-positive size
		e.cache, _ = lru.New[Params, logic.View](o.cacheSize)
	}
	e.facets = logic.BuildFacetOptions(e.store.All())
	return e
}

// LoadCatalog replaces the catalog. Facet options are recomputed from the
// full catalog; view parameters are left untouched.
func (e *Engine) LoadCatalog(books []domain.Book) {
	e.store.Replace(books)
	e.facets = logic.BuildFacetOptions(e.store.All())
	if e.cache != nil {
		e.cache.Purge()
	}
	e.logger.Info("catalog loaded",
		zap.Int("books", len(books)),
		zap.Int("countries", len(e.facets.Countries)),
		zap.Int("languages", len(e.facets.Languages)))
	e.changed("load_catalog")
}

// SetSearchQuery stores the raw query text without activating it
func (e *Engine) SetSearchQuery(text string) {
	e.params.SearchQuery = text
	e.changed("set_search_query")
}

// SubmitSearch activates the search predicate and returns to the first page
func (e *Engine) SubmitSearch() {
	e.params.SearchActive = true
	e.params.Page = 1
	e.changed("submit_search")
}

// SetFacetFilter sets one facet filter and returns to the first page. An
// empty value removes the constraint.
func (e *Engine) SetFacetFilter(facet domain.Facet, value string) {
	params, ok := e.params.withFacet(facet, value)
	if !ok {
		e.logger.Debug("ignoring unknown facet", zap.String("facet", facet.String()))
		return
	}
	params.Page = 1
	e.params = params
	e.changed("set_facet_filter")
}

// ClearAll resets search and every facet filter. The page size is kept.
func (e *Engine) ClearAll() {
	e.params = DefaultParams(e.params.PageSize)
	e.changed("clear_all")
}

// SetPageSize changes the page size and returns to the first page. Sizes
// outside AllowedPageSizes are ignored.
func (e *Engine) SetPageSize(n int) {
	if !IsAllowedPageSize(n) {
		e.logger.Debug("ignoring disallowed page size", zap.Int("page_size", n))
		return
	}
	e.params.PageSize = n
	e.params.Page = 1
	e.changed("set_page_size")
}

// GoToPage moves to a 1-based page. The index is not clamped to the number
// of pages; a page past the end shows nothing. Indexes below 1 are ignored.
func (e *Engine) GoToPage(n int) {
	if n < 1 {
		e.logger.Debug("ignoring page index below 1", zap.Int("page", n))
		return
	}
	e.params.Page = n
	e.changed("go_to_page")
}

// Params returns a copy of the current view parameters
func (e *Engine) Params() Params {
	return e.params
}

// Facets returns the selectable country and language options
func (e *Engine) Facets() logic.FacetOptions {
	return e.facets
}

// CatalogSize returns the number of records in the catalog
func (e *Engine) CatalogSize() int {
	return e.store.Len()
}

// View derives the filtered list and current page for the current
// parameters. The returned slices must not be modified.
func (e *Engine) View() logic.View {
	key := e.params.cacheKey()
	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			return v
		}
	}

	v := logic.Derive(e.store.All(), e.facets, key.Criteria(), key.Page, key.PageSize)
	if e.cache != nil {
		e.cache.Add(key, v)
	}
	return v
}

func (e *Engine) changed(op string) {
	if e.bus == nil {
		return
	}
	v := e.View()
	e.bus.Publish(domain.ViewChangedEvent{
		Operation:  op,
		Matches:    v.Total,
		TotalPages: v.TotalPages,
		Page:       v.Page,
		PageSize:   v.PageSize,
	})
}
