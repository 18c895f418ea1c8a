package home

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/toolbelt/internal/counter"
	"github.com/ryan-rushton/toolbelt/internal/messages"
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/store"
)

func keyRune(r rune) tea.KeyMsg        { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

var testTools = []registry.Tool{
	{ID: "pdf-to-word", Name: "PDF to Word Converter", Description: "Convert PDF documents to editable Word files", Category: registry.File},
	{ID: "zip-extractor", Name: "ZIP Extractor", Description: "Extract files from ZIP and RAR archives", Category: registry.File},
	{ID: "image-resizer", Name: "Image Resizer", Description: "Resize images to custom dimensions", Category: registry.Image},
	{ID: "hash-generator", Name: "Hash Generator", Description: "Generate cryptographic hashes", Category: registry.Text},
	{ID: "uuid-generator", Name: "UUID Generator", Description: "Generate unique identifiers", Category: registry.Text},
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		r, _ := m.Update(k)
		m = r.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, keyRune(r))
	}
	return m
}

func selected(t *testing.T, m Model) string {
	t.Helper()
	_, cmd := m.Update(keyType(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected non-nil cmd on enter")
	}
	sel, ok := cmd().(messages.ToolSelectedMsg)
	if !ok {
		t.Fatal("expected ToolSelectedMsg")
	}
	return sel.ID
}

func TestNavigation_BoundsChecking(t *testing.T) {
	m := New(testTools, nil)

	m = press(t, m, keyRune('k'))
	if m.cursor != 0 {
		t.Errorf("expected cursor=0, got %d", m.cursor)
	}

	for range 10 {
		m = press(t, m, keyRune('j'))
	}
	if m.cursor != len(testTools)-1 {
		t.Errorf("expected cursor=%d, got %d", len(testTools)-1, m.cursor)
	}
}

func TestEnter_SelectsTool(t *testing.T) {
	m := New(testTools, nil)
	m = press(t, m, keyRune('j'))

	if got := selected(t, m); got != "zip-extractor" {
		t.Errorf("expected tool ID 'zip-extractor', got %q", got)
	}
}

func TestCategoryTabs(t *testing.T) {
	m := New(testTools, nil)
	if m.Category() != registry.Any {
		t.Fatalf("expected All, got %q", m.Category())
	}

	m = press(t, m, keyRune('j'), keyType(tea.KeyTab), keyType(tea.KeyTab))
	if m.Category() != registry.Image {
		t.Fatalf("expected Image, got %q", m.Category())
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor reset on tab change, got %d", m.cursor)
	}
	if got := len(m.Visible()); got != 1 {
		t.Errorf("expected 1 image tool, got %d", got)
	}

	m = press(t, m, keyType(tea.KeyShiftTab), keyType(tea.KeyShiftTab), keyType(tea.KeyShiftTab))
	if m.Category() != registry.Text {
		t.Errorf("expected wrap to Text, got %q", m.Category())
	}
}

func TestSearch_FiltersAndSelects(t *testing.T) {
	m := New(testTools, nil)
	m = press(t, m, keyRune('/'))
	if !m.search.Focused() {
		t.Fatal("expected search focused after /")
	}

	m = typeText(t, m, "GENERATOR")
	if m.Query() != "GENERATOR" {
		t.Fatalf("expected query GENERATOR, got %q", m.Query())
	}
	if got := len(m.Visible()); got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}

	m = press(t, m, keyType(tea.KeyDown))
	if m.search.Focused() {
		t.Error("expected down to leave the search box")
	}
	if got := selected(t, m); got != "uuid-generator" {
		t.Errorf("expected uuid-generator, got %q", got)
	}
}

func TestSearch_NoResults(t *testing.T) {
	m := New(testTools, nil)
	m = press(t, m, keyRune('/'))
	m = typeText(t, m, "nothing like this")

	view := m.View()
	if !strings.Contains(view, NoResults) {
		t.Error("expected empty-state message")
	}
	if !strings.Contains(view, "Showing 0 tools") {
		t.Error("expected zero count line")
	}

	_, cmd := m.Update(keyType(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no selection with an empty list")
	}
}

func TestEsc_ClearsSearch(t *testing.T) {
	m := New(testTools, nil)
	m = press(t, m, keyRune('/'))
	m = typeText(t, m, "zip")
	m = press(t, m, keyType(tea.KeyEsc))
	if m.search.Focused() {
		t.Fatal("expected esc to leave the search box")
	}
	if m.Query() != "zip" {
		t.Fatal("expected first esc to keep the query")
	}
	m = press(t, m, keyType(tea.KeyEsc))
	if m.Query() != "" {
		t.Errorf("expected second esc to clear the query, got %q", m.Query())
	}
}

func TestCountLine(t *testing.T) {
	if got := CountLine(1); got != "Showing 1 tool" {
		t.Errorf("got %q", got)
	}
	if got := CountLine(30); got != "Showing 30 tools" {
		t.Errorf("got %q", got)
	}
}

func TestView_PopularBadge(t *testing.T) {
	view := New(testTools, nil).View()
	if got := strings.Count(view, "Popular"); got != PopularCount {
		t.Errorf("expected %d Popular badges, got %d", PopularCount, got)
	}
	if !strings.Contains(view, Hero) {
		t.Error("expected hero line")
	}
}

func TestCounter(t *testing.T) {
	c := counter.New(store.NewMemory(), rand.New(rand.NewPCG(1, 2)))
	m := New(testTools, c)
	if m.Init() == nil {
		t.Fatal("expected init cmd with a counter")
	}

	// Run the visit directly rather than through the batched tick.
	r, _ := m.Update(CountsMsg{Visits: counter.Seed + 1, Online: 20})
	m = r.(Model)
	view := m.View()
	if !strings.Contains(view, "12,848") {
		t.Error("expected grouped visitor count")
	}
	if !strings.Contains(view, "Online Now: ") {
		t.Error("expected online figure")
	}

	r, cmd := m.Update(RefreshMsg{})
	m = r.(Model)
	if cmd == nil {
		t.Error("expected refresh to schedule the next tick")
	}
	if m.online < counter.OnlineMin || m.online > counter.OnlineMax {
		t.Errorf("online %d out of range", m.online)
	}
}

func TestCounter_Hidden(t *testing.T) {
	m := New(testTools, nil)
	if m.Init() != nil {
		t.Error("expected no init cmd without a counter")
	}
	if strings.Contains(m.View(), "Total Visitors") {
		t.Error("expected no counter line")
	}
}

func TestQuit(t *testing.T) {
	m := New(testTools, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("expected quit cmd on ctrl+c")
	}
	_, cmd = m.Update(keyRune('q'))
	if cmd == nil {
		t.Error("expected quit cmd on q")
	}
}
