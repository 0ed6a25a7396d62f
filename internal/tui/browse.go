package tui

import (
	"strings"
	"time"

	"calgrid/internal/calendar"
	"calgrid/internal/render"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type browseModel struct {
	now   time.Time
	month calendar.Month
	r     *render.Renderer
	keys  keyMap

	width  int
	height int
}

func newBrowseModel(now time.Time, start calendar.Month, r *render.Renderer) browseModel {
	return browseModel{
		now:   now,
		month: start,
		r:     r,
		keys:  defaultKeyMap(),
	}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.month = m.month.Prev(m.now)
		case key.Matches(msg, m.keys.Next):
			m.month = m.month.Next(m.now)
		case key.Matches(msg, m.keys.Today):
			m.month = calendar.Current(m.now)
		}
		return m, nil
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(m.r.Render(m.month))
	b.WriteString("\n")
	b.WriteString(m.r.Help(m.keys.helpLine()))
	b.WriteString("\n")
	return b.String()
}
