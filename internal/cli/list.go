package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bookshelf/internal/catalog"
	"bookshelf/internal/domain"
	"bookshelf/internal/logic"
	"bookshelf/internal/ui/views"
	"bookshelf/internal/viewstate"
)

// listOptions holds the view parameters for a one-shot listing
type listOptions struct {
	search   string
	country  string
	language string
	pages    string
	century  string
	page     int
	output   string
}

func newListCommand(rt *runtime) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalog and exit",
		Example: `  bookshelf list --search tolstoy
  bookshelf list --country France --century 19th --page-size 50
  bookshelf list --pages 101-200 --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer rt.cleanup()
			return runList(cmd, rt, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.search, "search", "s", "", "submitted search query (title or author)")
	flags.StringVar(&opts.country, "country", "", "exact country filter")
	flags.StringVar(&opts.language, "language", "", "exact language filter")
	flags.StringVar(&opts.pages, "pages", "", "page-count bucket (1-100, 101-200, 201-300)")
	flags.StringVar(&opts.century, "century", "", "century bucket (16th, 17th, 18th, 19th)")
	flags.IntVarP(&opts.page, "page", "p", 1, "page number, 1-based")
	flags.StringVarP(&opts.output, "output", "o", "table", "output format (table, json)")

	return cmd
}

func runList(cmd *cobra.Command, rt *runtime, opts *listOptions) error {
	cfg, logger := rt.cfg, rt.logger

	var write func(io.Writer, logic.View, int) error
	switch opts.output {
	case "table":
		write = writeTable
	case "json":
		write = writeJSON
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	loader := catalog.NewLoader(nil,
		catalog.WithTimeout(cfg.Timeout()),
		catalog.WithLogger(logger))
	books, err := loader.Load(cmd.Context(), cfg.CatalogSource)
	if err != nil {
		return err
	}

	engine := viewstate.New(
		viewstate.WithPageSize(cfg.UISettings.DefaultPageSize),
		viewstate.WithCacheSize(cfg.Cache.Size),
		viewstate.WithLogger(logger))
	engine.LoadCatalog(books)
	applyListOptions(engine, opts)

	view := engine.View()
	logger.Debug("listing",
		zap.Int("matches", len(view.Filtered)),
		zap.Int("page", view.Page),
		zap.Int("total_pages", view.TotalPages))

	return write(cmd.OutOrStdout(), view, engine.CatalogSize())
}

// applyListOptions replays the flags through the same operations the
// browser uses
func applyListOptions(engine *viewstate.Engine, opts *listOptions) {
	if opts.search != "" {
		engine.SetSearchQuery(opts.search)
		engine.SubmitSearch()
	}
	engine.SetFacetFilter(domain.FacetCountry, opts.country)
	engine.SetFacetFilter(domain.FacetLanguage, opts.language)
	engine.SetFacetFilter(domain.FacetPages, opts.pages)
	engine.SetFacetFilter(domain.FacetCentury, opts.century)
	engine.GoToPage(opts.page)
}

func writeTable(w io.Writer, view logic.View, catalogSize int) error {
	if len(view.Items) == 0 {
		_, err := fmt.Fprintf(w, "No books found. (%d of %d books match, page %d of %d)\n",
			len(view.Filtered), catalogSize, view.Page, view.TotalPages)
		return err
	}

	align := []tw.Align{tw.AlignRight, tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignRight}
	config := tablewriter.Config{}
	config.Header.Alignment = tw.CellAlignment{PerColumn: align}
	config.Row.Alignment = tw.CellAlignment{PerColumn: align}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	table.Header("#", "Title", "Author", "Country", "Language", "Year", "Pages")

	first := logic.Offset(view.Page, view.PageSize)
	for i, b := range view.Items {
		if err := table.Append(
			strconv.Itoa(first+i+1),
			b.Title,
			b.Author,
			b.Country,
			b.Language,
			views.FormatYear(b.Year),
			strconv.Itoa(b.Pages),
		); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Page %d of %d (%d of %d books)\n",
		view.Page, view.TotalPages, len(view.Filtered), catalogSize)
	return err
}

// listing is the json output of the list command
type listing struct {
	Page        int           `json:"page"`
	PageSize    int           `json:"page_size"`
	TotalPages  int           `json:"total_pages"`
	Matches     int           `json:"matches"`
	CatalogSize int           `json:"catalog_size"`
	Books       []domain.Book `json:"books"`
}

func writeJSON(w io.Writer, view logic.View, catalogSize int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listing{
		Page:        view.Page,
		PageSize:    view.PageSize,
		TotalPages:  view.TotalPages,
		Matches:     len(view.Filtered),
		CatalogSize: catalogSize,
		Books:       view.Items,
	})
}
