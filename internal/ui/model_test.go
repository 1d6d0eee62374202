package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/config"
	"bookshelf/internal/domain"
	"bookshelf/internal/eventbus"
	inputtypes "bookshelf/internal/ui/input/types"
	"bookshelf/internal/viewstate"
)

func testCatalog() []domain.Book {
	countries := []string{"Nigeria", "Russia", "France"}
	books := make([]domain.Book, 25)
	for i := range books {
		books[i] = domain.Book{
			Title:     fmt.Sprintf("Book %02d", i+1),
			Author:    "Someone",
			Country:   countries[i%len(countries)],
			Language:  "English",
			Year:      1800 + i,
			Pages:     100 + i*10,
			ImageLink: fmt.Sprintf("images/book-%02d.jpg", i+1),
		}
	}
	books[4].Author = "Leo Tolstoy"
	return books
}

func newTestModel(t *testing.T) (*Model, *viewstate.Engine) {
	t.Helper()
	engine := viewstate.New()
	m := NewModel(nil, config.DefaultConfig(), engine, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(EventMsg{Event: eventbus.CatalogLoadedEvent{Source: "test", Books: testCatalog()}})
	require.Equal(t, 25, engine.CatalogSize())
	return m, engine
}

func press(m *Model, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, last = m.Update(msg)
	}
	return last
}

func typeText(m *Model, text string) {
	for _, r := range text {
		press(m, string(r))
	}
}

func TestSearchAppliesOnlyOnSubmit(t *testing.T) {
	m, engine := newTestModel(t)

	press(m, "/")
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())

	typeText(m, "tolstoy")
	assert.Equal(t, "tolstoy", engine.Params().SearchQuery)
	assert.False(t, engine.Params().SearchActive)
	assert.Len(t, engine.View().Filtered, 25)

	press(m, "enter")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.True(t, engine.Params().SearchActive)
	require.Len(t, engine.View().Filtered, 1)
	assert.Equal(t, "Leo Tolstoy", engine.View().Filtered[0].Author)
	assert.Contains(t, m.View(), "Book 05")
}

func TestSearchEscLeavesQueryUnsubmitted(t *testing.T) {
	m, engine := newTestModel(t)

	press(m, "/")
	typeText(m, "tol")
	press(m, "esc")

	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, "tol", engine.Params().SearchQuery)
	assert.False(t, engine.Params().SearchActive)
	assert.Len(t, engine.View().Filtered, 25)
	assert.Equal(t, "Search not applied", m.state.StatusMessage)
}

func TestSearchPrefillsCurrentQuery(t *testing.T) {
	m, engine := newTestModel(t)

	press(m, "/")
	typeText(m, "tol")
	press(m, "enter")

	press(m, "/")
	assert.Equal(t, "tol", m.inputHandler.GetTextInput().Value())
	press(m, "backspace", "backspace", "backspace", "enter")
	assert.Empty(t, engine.Params().SearchQuery)
	assert.Len(t, engine.View().Filtered, 25)
}

func TestPageNavigationStopsAtBounds(t *testing.T) {
	m, engine := newTestModel(t)

	press(m, "j", "j")
	assert.Equal(t, 2, m.state.SelectedIndex)

	press(m, "l")
	assert.Equal(t, 2, engine.Params().Page)
	assert.Equal(t, 0, m.state.SelectedIndex, "page change scrolls to top")
	assert.Len(t, engine.View().Items, 5)

	press(m, "right")
	assert.Equal(t, 2, engine.Params().Page)

	press(m, "h", "h")
	assert.Equal(t, 1, engine.Params().Page)
}

func TestGoToPageIsUnclamped(t *testing.T) {
	m, engine := newTestModel(t)

	press(m, ":")
	assert.Equal(t, inputtypes.ModeGoToPage, m.inputHandler.CurrentMode())
	typeText(m, "99")
	press(m, "enter")

	assert.Equal(t, 99, engine.Params().Page)
	assert.Empty(t, engine.View().Items)
	assert.Contains(t, m.View(), "No books found.")
	assert.Contains(t, m.View(), "Page 99 of 2")
}

func TestGoToPageRejectsGarbage(t *testing.T) {
	m, engine := newTestModel(t)

	press(m, ":")
	typeText(m, "abc")
	press(m, "enter")

	assert.Equal(t, 1, engine.Params().Page)
	assert.Equal(t, "Invalid page number", m.state.StatusMessage)
}

func TestCountrySelectAppliesAndRestores(t *testing.T) {
	m, engine := newTestModel(t)
	press(m, "l")
	require.Equal(t, 2, engine.Params().Page)

	press(m, "c")
	assert.Equal(t, "Country", m.state.OptionTitle)
	assert.Equal(t, "All Countries", m.state.OptionChoices[0].Label)
	assert.Equal(t, "France", m.state.OptionChoices[1].Value)

	press(m, "j")
	assert.Equal(t, "France", engine.Params().Country)
	assert.Equal(t, 1, engine.Params().Page)
	assert.Len(t, engine.View().Filtered, 8)

	press(m, "esc")
	assert.Empty(t, engine.Params().Country)
	assert.Equal(t, 2, engine.Params().Page)
	assert.Empty(t, m.state.OptionTitle)
}

func TestCountrySelectEnterKeeps(t *testing.T) {
	m, engine := newTestModel(t)

	press(m, "c", "j", "j", "enter")
	assert.Equal(t, "Nigeria", engine.Params().Country)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, []string{"France", "Nigeria", "Russia"}, engine.Facets().Countries, "options come from the full catalog")
}

func TestPageSizeSelect(t *testing.T) {
	m, engine := newTestModel(t)

	press(m, "s", "down", "enter")
	assert.Equal(t, 50, engine.Params().PageSize)
	assert.Equal(t, 1, engine.View().TotalPages)
}

func TestClearAll(t *testing.T) {
	m, engine := newTestModel(t)
	press(m, "P", "j", "enter", "/")
	typeText(m, "book")
	press(m, "enter")
	require.NotEqual(t, viewstate.DefaultParams(20), engine.Params())

	press(m, "x")
	assert.Equal(t, viewstate.DefaultParams(20), engine.Params())
}

func TestInfoPopup(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "j", "enter")
	assert.True(t, m.state.ShowInfo)
	assert.Contains(t, m.state.InfoContent, "Book 02")
	assert.Contains(t, m.state.InfoContent, config.DefaultImageBaseURL+"images/book-02.jpg")

	press(m, "q")
	assert.False(t, m.state.ShowInfo)
}

func TestHelpPopupDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "?")
	assert.True(t, m.state.ShowHelp)
	assert.Contains(t, m.View(), "Bookshelf Help")

	cmd := press(m, "q")
	assert.Nil(t, cmd)
	assert.False(t, m.state.ShowHelp)
}

func TestPagerWithoutProgram(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Nil(t, press(m, "v"))
	assert.Equal(t, "Pager unavailable", m.state.StatusMessage)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLoadFailureShowsStatus(t *testing.T) {
	m := NewModel(nil, config.DefaultConfig(), viewstate.New(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(EventMsg{Event: eventbus.CatalogLoadFailedEvent{Source: "missing.json", Err: fmt.Errorf("no such file")}})

	out := m.View()
	assert.Contains(t, out, "Failed to load catalog: no such file")
	assert.Contains(t, out, "No books found.")
}

func TestBuildListing(t *testing.T) {
	engine := viewstate.New()
	engine.LoadCatalog(testCatalog())
	engine.SetFacetFilter(domain.FacetCountry, "Russia")

	out := BuildListing(engine.View(), "country Russia")
	assert.Contains(t, out, "bookshelf: 8 books (country Russia)")
	assert.Contains(t, out, "   1. Book 02 by Someone (Russia, English, 1801, 110 pages)")
	assert.NotContains(t, out, "Nigeria")

	empty := BuildListing(viewstate.New().View(), "")
	assert.Contains(t, empty, "No books found.")
}
