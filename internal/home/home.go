// Package home is the catalog screen: a search box, category tabs, the
// filtered tool list and the visitor counter.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ryan-rushton/toolbelt/internal/counter"
	"github.com/ryan-rushton/toolbelt/internal/messages"
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/styles"
)

const (
	// Hero is the line under the title.
	Hero = "All Your Tools in One Place"
	// NoResults replaces the list when nothing matches.
	NoResults = "No tools found matching your search."
	// PopularCount is how many leading cards carry the Popular badge.
	PopularCount = 3
)

// CountsMsg carries the visitor figures after the launch visit is recorded.
type CountsMsg struct {
	Visits int
	Online int
	Err    error
}

// RefreshMsg asks for a new online figure.
type RefreshMsg struct{}

var numbers = message.NewPrinter(language.English)

// Model is the home screen model.
type Model struct {
	tools    []registry.Tool
	counter  *counter.Counter
	search   textinput.Model
	category int
	cursor   int
	visits   int
	online   int
}

// New builds the catalog over tools. c may be nil, which hides the visitor
// counter.
func New(tools []registry.Tool, c *counter.Counter) Model {
	ti := textinput.New()
	ti.Placeholder = "Search tools..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40
	return Model{tools: tools, counter: c, search: ti}
}

// Init records the visit and starts the online refresh.
func (m Model) Init() tea.Cmd {
	if m.counter == nil {
		return nil
	}
	c := m.counter
	visit := func() tea.Msg {
		n, err := c.Visit(context.Background())
		return CountsMsg{Visits: n, Online: c.Online(), Err: err}
	}
	return tea.Batch(visit, refreshTick())
}

func refreshTick() tea.Cmd {
	return tea.Tick(counter.OnlineRefresh, func(time.Time) tea.Msg { return RefreshMsg{} })
}

// Category is the active tab.
func (m Model) Category() registry.Category {
	return registry.Categories[m.category]
}

// Query is the current search text.
func (m Model) Query() string {
	return m.search.Value()
}

// Visible lists the tools matching the active tab and search.
func (m Model) Visible() []registry.Tool {
	return registry.Filter(m.tools, m.Category(), m.search.Value())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.search.Width = max(20, min(60, msg.Width-12))
		return m, nil

	case CountsMsg:
		// A failed store read still shows the seeded figure.
		m.visits = msg.Visits
		if msg.Err != nil {
			m.visits = counter.Seed + 1
		}
		m.online = msg.Online
		return m, nil

	case RefreshMsg:
		if m.counter == nil {
			return m, nil
		}
		m.online = m.counter.Refresh()
		return m, refreshTick()

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.search.Blur()
		return m, nil
	case "enter":
		m.search.Blur()
		return m.selectCurrent()
	case "up", "down", "tab", "shift+tab":
		m.search.Blur()
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		cmd := m.search.Focus()
		return m, cmd
	case "esc":
		m.search.SetValue("")
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.Visible())-1 {
			m.cursor++
		}
	case "tab", "right", "l":
		m.category = (m.category + 1) % len(registry.Categories)
		m.cursor = 0
	case "shift+tab", "left", "h":
		m.category = (m.category + len(registry.Categories) - 1) % len(registry.Categories)
		m.cursor = 0
	case "enter", " ":
		return m.selectCurrent()
	}
	return m, nil
}

func (m Model) selectCurrent() (tea.Model, tea.Cmd) {
	visible := m.Visible()
	if m.cursor >= len(visible) {
		return m, nil
	}
	id := visible[m.cursor].ID
	return m, func() tea.Msg {
		return messages.ToolSelectedMsg{ID: id}
	}
}

// CountLine is "Showing N tool" or "Showing N tools".
func CountLine(n int) string {
	if n == 1 {
		return "Showing 1 tool"
	}
	return fmt.Sprintf("Showing %d tools", n)
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(registry.Categories))
	for i, c := range registry.Categories {
		if i == m.category {
			tabs[i] = styles.ActiveTab.Render(c.Label())
		} else {
			tabs[i] = styles.Tab.Render(c.Label())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCounter() string {
	if m.counter == nil || m.visits == 0 {
		return ""
	}
	return styles.Muted.Render("Total Visitors: ") + numbers.Sprintf("%d", m.visits) +
		"   " + styles.Success.Render("●") + styles.Muted.Render(" Online Now: ") + fmt.Sprint(m.online)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("toolbelt") + "\n")
	b.WriteString(styles.Subtitle.Render(Hero) + "\n")
	if line := m.viewCounter(); line != "" {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + m.search.View() + "\n\n")
	b.WriteString(m.viewTabs() + "\n\n")

	visible := m.Visible()
	b.WriteString(styles.Muted.Render(CountLine(len(visible))) + "\n\n")
	if len(visible) == 0 {
		b.WriteString(styles.Dimmed.Render(NoResults) + "\n")
	}
	for i, t := range visible {
		cursor := "  "
		nameStyle := lipgloss.NewStyle()
		descStyle := styles.Dimmed

		if i == m.cursor {
			cursor = styles.Selected.Render("> ")
			nameStyle = styles.Selected
			descStyle = styles.Subtitle
		}

		badge := ""
		if i < PopularCount {
			badge = " " + styles.Notice.Render("Popular")
		}
		fmt.Fprintf(&b, "%s%-30s %s%s\n",
			cursor,
			nameStyle.Render(t.Name),
			descStyle.Render(t.Description),
			badge,
		)
	}

	help := "↑↓/jk navigate  ←→/tab category  / search  enter select  q quit"
	if m.search.Focused() {
		help = "type to search  enter select  esc done"
	}
	b.WriteString("\n" + styles.Help.Render(help))

	return styles.Box.Render(b.String())
}
