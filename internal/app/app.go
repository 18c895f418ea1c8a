package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/toolbelt/internal/counter"
	"github.com/ryan-rushton/toolbelt/internal/home"
	"github.com/ryan-rushton/toolbelt/internal/messages"
	"github.com/ryan-rushton/toolbelt/internal/registry"
)

// Model is the top-level application model that manages screen transitions.
// The home screen lives for the whole session so its search, tab and visitor
// refresh survive a visit to a tool.
type Model struct {
	deps       registry.Deps
	home       home.Model
	current    tea.Model
	onHome     bool
	windowSize tea.WindowSizeMsg
}

func New(deps registry.Deps, c *counter.Counter) Model {
	h := home.New(registry.All(), c)
	return Model{
		deps:    deps,
		home:    h,
		current: h,
		onHome:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.home.Init()
}

func (m Model) updateHome(msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.home.Update(msg)
	m.home = updated.(home.Model)
	if m.onHome {
		m.current = m.home
	}
	return m, cmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.windowSize = ws
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case home.CountsMsg, home.RefreshMsg:
		return m.updateHome(msg)

	case messages.BackMsg:
		m.onHome = true
		m.current = m.home
		return m.updateHome(m.windowSize)

	case messages.ToolSelectedMsg:
		if t := registry.Get(msg.ID); t != nil {
			tool := t.New(m.deps)
			m.current = tool
			m.onHome = false
			return m, tea.Batch(tool.Init(), func() tea.Msg { return m.windowSize })
		}
	}

	if m.onHome {
		return m.updateHome(msg)
	}
	updated, cmd := m.current.Update(msg)
	m.current = updated
	return m, cmd
}

func (m Model) View() string {
	return m.current.View()
}
