package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	"calgrid/internal/calendar"
	"calgrid/internal/render"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(now time.Time) browseModel {
	return newBrowseModel(now, calendar.Current(now), render.New(io.Discard, render.Options{Lang: calendar.English}))
}

func press(t *testing.T, m browseModel, msg tea.KeyMsg) (browseModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(browseModel)
	if !ok {
		t.Fatalf("expected browseModel; got %T", next)
	}
	return bm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowse_NavigatesMonths(t *testing.T) {
	now := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)
	m := newTestModel(now)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.month.Year != 2025 || m.month.Month != 1 {
		t.Fatalf("expected January 2025 after right; got %d-%d", m.month.Year, m.month.Month)
	}
	if m.month.Today != 0 {
		t.Fatalf("today marker should only appear in the current month")
	}

	m, _ = press(t, m, runes("h"))
	m, _ = press(t, m, runes("h"))
	if m.month.Year != 2024 || m.month.Month != 11 {
		t.Fatalf("expected November 2024; got %d-%d", m.month.Year, m.month.Month)
	}

	m, _ = press(t, m, runes("t"))
	if m.month.Month != 12 || m.month.Today != 10 {
		t.Fatalf("expected return to today; got %+v", m.month)
	}
}

func TestBrowse_Quit(t *testing.T) {
	m := newTestModel(time.Now())
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := press(t, m, msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %q", msg.String())
		}
	}
}

func TestBrowse_ViewShowsMonthAndHelp(t *testing.T) {
	m := newTestModel(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	v := m.View()
	if !strings.Contains(v, "February - 2024") {
		t.Fatalf("expected month title in view; got:\n%s", v)
	}
	if !strings.Contains(v, "q: quit") {
		t.Fatalf("expected help line in view; got:\n%s", v)
	}
}

func TestBrowse_StartsAtGivenMonth(t *testing.T) {
	now := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)
	start := calendar.NewMonth(2020, 5, now)
	m := newBrowseModel(now, start, render.New(io.Discard, render.Options{Lang: calendar.English}))
	if !strings.Contains(m.View(), "May - 2020") {
		t.Fatalf("expected browser to open on May 2020; got:\n%s", m.View())
	}

	m, _ = press(t, m, runes("l"))
	if m.month.Year != 2020 || m.month.Month != 6 {
		t.Fatalf("expected June 2020; got %d-%d", m.month.Year, m.month.Month)
	}
	m, _ = press(t, m, runes("t"))
	if m.month.Year != 2024 || m.month.Month != 12 || m.month.Today != 10 {
		t.Fatalf("expected today's month; got %+v", m.month)
	}
}
