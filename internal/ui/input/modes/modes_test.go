package modes

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/domain"
	"bookshelf/internal/ui/input/types"
)

type fakeContext struct {
	page       int
	totalPages int
	pageSize   int
	query      string
	facets     map[domain.Facet]string
	options    []types.Option
	book       *domain.Book
}

func (c *fakeContext) CurrentIndex() int { return 0 }
func (c *fakeContext) TotalItems() int { return 10 }
func (c *fakeContext) CurrentPage() int { return c.page }
func (c *fakeContext) TotalPages() int { return c.totalPages }
func (c *fakeContext) PageSize() int { return c.pageSize }
func (c *fakeContext) SearchQuery() string { return c.query }
func (c *fakeContext) FacetValue(f domain.Facet) string {
	return c.facets[f]
}
func (c *fakeContext) FacetOptions(domain.Facet) []types.Option { return c.options }
func (c *fakeContext) CurrentBook() (domain.Book, bool) {
	if c.book == nil {
		return domain.Book{}, false
	}
	return *c.book, true
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModePaging(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{page: 1, totalPages: 3}

	actions, consumed := m.HandleKey(runes("l"), ctx)
	assert.True(t, consumed)
	assert.Equal(t, []types.Action{types.GoToPageAction{Page: 2}}, actions)

	actions, consumed = m.HandleKey(runes("h"), ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions, "no page before the first")

	ctx.page = 3
	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, ctx)
	assert.Empty(t, actions, "no page after the last")
}

func TestNormalModeSearchPrefill(t *testing.T) {
	m := NewNormalMode()
	actions, _ := m.HandleKey(runes("/"), &fakeContext{query: "war"})
	require.Len(t, actions, 1)
	assert.Equal(t, types.ChangeModeAction{Mode: types.ModeSearch, Data: "war"}, actions[0])
}

func TestNormalModeFacetKeys(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{}
	cases := map[string]types.Mode{
		"c": types.ModeCountrySelect,
		"L": types.ModeLanguageSelect,
		"P": types.ModePagesSelect,
		"Y": types.ModeCenturySelect,
		"s": types.ModePageSizeSelect,
		":": types.ModeGoToPage,
	}
	for key, mode := range cases {
		actions, consumed := m.HandleKey(runes(key), ctx)
		assert.True(t, consumed, key)
		assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: mode}}, actions, key)
	}
}

func TestNormalModeDoubleG(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{}

	actions, consumed := m.HandleKey(runes("g"), ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions)

	actions, _ = m.HandleKey(runes("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)

	// A stale first g does not combine
	m.HandleKey(runes("g"), ctx)
	m.lastGTime = time.Now().Add(-time.Second)
	actions, _ = m.HandleKey(runes("g"), ctx)
	assert.Empty(t, actions)
}

func TestNormalModeDetailsNeedABook(t *testing.T) {
	m := NewNormalMode()

	actions, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, &fakeContext{})
	assert.Empty(t, actions)

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, &fakeContext{book: &domain.Book{Title: "Ulysses"}})
	assert.Equal(t, []types.Action{types.ToggleInfoAction{}}, actions)
}

func TestNormalModeQuit(t *testing.T) {
	m := NewNormalMode()
	actions, _ := m.HandleKey(runes("q"), &fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: false}}, actions)

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, &fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}

func TestFacetSelectCyclesAndRestores(t *testing.T) {
	ctx := &fakeContext{
		page:   3,
		facets: map[domain.Facet]string{domain.FacetCountry: "Nigeria"},
		options: []types.Option{
			{Value: "", Label: "All Countries"},
			{Value: "France", Label: "France"},
			{Value: "Nigeria", Label: "Nigeria"},
		},
	}
	m := NewFacetSelectMode(types.ModeCountrySelect, domain.FacetCountry, "Country")

	enter := m.Enter(ctx)
	require.Len(t, enter, 1)
	assert.Equal(t, 2, enter[0].(types.UpdateOptionIndexAction).Index)

	actions, _ := m.HandleKey(runes("j"), ctx)
	require.Len(t, actions, 2)
	assert.Equal(t, 0, actions[0].(types.UpdateOptionIndexAction).Index, "wraps around")
	assert.Contains(t, actions, types.Action(types.SetFacetAction{Facet: domain.FacetCountry, Value: ""}))

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{
		types.SetFacetAction{Facet: domain.FacetCountry, Value: "Nigeria"},
		types.GoToPageAction{Page: 3},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, actions)
}

func TestFacetSelectEscWithoutChange(t *testing.T) {
	ctx := &fakeContext{options: []types.Option{{Value: "", Label: "All"}}}
	m := NewFacetSelectMode(types.ModeLanguageSelect, domain.FacetLanguage, "Language")
	m.Enter(ctx)

	actions, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, actions)
}

func TestPageSizeSelect(t *testing.T) {
	ctx := &fakeContext{pageSize: 50}
	m := NewPageSizeSelectMode([]int{20, 50, 100})
	enter := m.Enter(ctx)
	require.Len(t, enter, 1)
	assert.Equal(t, 1, enter[0].(types.UpdateOptionIndexAction).Index)

	actions, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Contains(t, actions, types.Action(types.SetPageSizeAction{Size: 100}))

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, actions)
}

func TestTextModeSubmitAndCancel(t *testing.T) {
	m := NewSearchMode(nil)

	actions, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, &fakeContext{})
	assert.True(t, consumed)
	assert.Equal(t, []types.Action{
		types.SubmitTextAction{Text: "", Mode: types.ModeSearch},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, actions)

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, &fakeContext{})
	assert.Equal(t, types.CancelTextAction{Mode: types.ModeSearch}, actions[0])

	_, consumed = m.HandleKey(runes("a"), &fakeContext{})
	assert.False(t, consumed)
	assert.Equal(t, "Search: ", m.Prompt())
}
