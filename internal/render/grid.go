// Package render draws a calendar.Month as a styled text grid.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"calgrid/internal/calendar"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Options controls labels and styling.
type Options struct {
	Lang  calendar.Lang
	Color bool
}

// Renderer formats months for one output stream.
type Renderer struct {
	opts Options
	lg   *lipgloss.Renderer
	st   styles
}

// New returns a Renderer whose color profile and background are detected
// from out and the environment.
func New(out io.Writer, opts Options) *Renderer {
	lg := lipgloss.NewRenderer(out)
	if opts.Color {
		applyColorProfilePreference(lg)
		applyThemePreference(lg)
	} else {
		lg.SetColorProfile(termenv.Ascii)
	}
	return newWithRenderer(lg, opts)
}

func newWithRenderer(lg *lipgloss.Renderer, opts Options) *Renderer {
	return &Renderer{opts: opts, lg: lg, st: newStyles(lg)}
}

func (r *Renderer) style(st lipgloss.Style, s string) string {
	if !r.opts.Color {
		return s
	}
	return st.Render(s)
}

// Title returns "<month name> - <year>" without the leading tab.
func (r *Renderer) Title(m calendar.Month) string {
	return fmt.Sprintf("%s - %d", r.opts.Lang.MonthName(m.Month), m.Year)
}

// Render returns the full calendar: a blank line, the tab-indented (unstyled) title,
// the weekday header row and the day grid.
func (r *Renderer) Render(m calendar.Month) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("\t")
	b.WriteString(r.Title(m))
	b.WriteString("\n")
	b.WriteString(r.Grid(m))
	return b.String()
}

// Grid returns the header row and the week rows, one per line.
func (r *Renderer) Grid(m calendar.Month) string {
	headers := r.opts.Lang.Weekdays()
	width := cellWidth(headers, m.Days)

	var lines []string
	cols := make([]string, 0, 7)
	for i, h := range headers {
		label := " " + h
		st := r.st.header
		if i == 0 {
			st = r.st.sundayHeader
		}
		cols = append(cols, padRight(r.style(st, label), width))
	}
	lines = append(lines, strings.Join(cols, " "))

	for _, week := range m.Weeks() {
		cols = cols[:0]
		for _, c := range week {
			cols = append(cols, r.cell(c, width))
		}
		lines = append(lines, strings.Join(cols, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (r *Renderer) cell(c calendar.Cell, width int) string {
	if c.Blank() {
		return strings.Repeat(" ", width)
	}
	txt := strconv.Itoa(c.Day) + " "
	if r.opts.Color {
		st := r.lg.NewStyle()
		switch {
		case c.Sunday && c.Today:
			st = r.st.sunday.Reverse(true)
		case c.Sunday:
			st = r.st.sunday
		case c.Today:
			st = r.st.today
		}
		txt = st.Render(txt)
	}
	return padLeft(txt, width)
}

// Help renders a muted one-line hint.
func (r *Renderer) Help(s string) string {
	return r.style(r.st.muted, s)
}

// Write renders m to w.
func Write(w io.Writer, m calendar.Month, opts Options) error {
	_, err := io.WriteString(w, New(w, opts).Render(m))
	return err
}

// cellWidth is the widest visible column: " Sun" headers or "31 " days.
func cellWidth(headers [7]string, days int) int {
	w := xansi.StringWidth(strconv.Itoa(max(days, 1)) + " ")
	for _, h := range headers {
		w = max(w, xansi.StringWidth(" "+h))
	}
	return w
}

func padLeft(s string, width int) string {
	if n := width - xansi.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - xansi.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
