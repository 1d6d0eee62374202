package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the normal-mode bindings for the help views
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageRows key.Binding
	TopEnd   key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	GoToPage key.Binding

	Search   key.Binding
	Country  key.Binding
	Language key.Binding
	Pages    key.Binding
	Century  key.Binding
	PageSize key.Binding
	Clear    key.Binding

	Details key.Binding
	Pager   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the bindings handled by normal mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageRows: key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "scroll rows")),
		TopEnd:   key.NewBinding(key.WithKeys("g", "G", "home", "end"), key.WithHelp("gg/G", "first/last row")),
		PrevPage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		GoToPage: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to page")),

		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Country:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "country")),
		Language: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "language")),
		Pages:    key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pages")),
		Century:  key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "century")),
		PageSize: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "page size")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear all")),

		Details: key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter/i", "details")),
		Pager:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "open in pager")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Search, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap, one column per help section
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageRows, k.TopEnd, k.PrevPage, k.NextPage, k.GoToPage},
		{k.Search, k.Country, k.Language, k.Pages, k.Century, k.PageSize, k.Clear},
		{k.Details, k.Pager, k.Help, k.Quit},
	}
}

// helpSections names the FullHelp columns
var helpSections = []string{"Navigation", "Search & Filters", "Other"}
