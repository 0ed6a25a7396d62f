// Package tui is the interactive month browser.
package tui

import (
	"os"
	"time"

	"calgrid/internal/calendar"
	"calgrid/internal/render"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the browser on start and blocks until the user quits. now marks
// today and is where the "today" key returns.
func Run(now time.Time, start calendar.Month, opts render.Options) error {
	m := newBrowseModel(now, start, render.New(os.Stdout, opts))
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
