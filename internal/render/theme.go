package render

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers.
//
// The grid must stay readable on light and dark backgrounds, so colors are
// lipgloss.AdaptiveColor values resolved against the renderer's background.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorHeader  lipgloss.TerminalColor = ac("30", "6")  // dark cyan
	colorSunday  lipgloss.TerminalColor = ac("28", "10") // green
	colorSundayH lipgloss.TerminalColor = ac("22", "2")  // dark green
	colorMuted   lipgloss.TerminalColor = ac("240", "243")
)

type styles struct {
	header       lipgloss.Style
	sundayHeader lipgloss.Style
	sunday       lipgloss.Style
	today        lipgloss.Style
	muted        lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	muted := r.NewStyle().Foreground(colorMuted)
	if r.HasDarkBackground() {
		muted = muted.Faint(true)
	}
	return styles{
		header:       r.NewStyle().Foreground(colorHeader),
		sundayHeader: r.NewStyle().Foreground(colorSundayH),
		sunday:       r.NewStyle().Foreground(colorSunday).Bold(true),
		today:        r.NewStyle().Bold(true).Reverse(true),
		muted:        muted,
	}
}

// applyColorProfilePreference picks the renderer's color profile.
//
// NO_COLOR always wins. Otherwise start from termenv's detection for the
// output and trust COLORTERM/TERM when they claim more than was detected.
// A non-terminal output (Ascii) is never upgraded.
func applyColorProfilePreference(r *lipgloss.Renderer) {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		r.SetColorProfile(termenv.Ascii)
		return
	}

	profile := r.ColorProfile()
	if profile == termenv.Ascii {
		return
	}

	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		profile = termenv.TrueColor
	} else if strings.Contains(term, "256color") && profile == termenv.ANSI {
		profile = termenv.ANSI256
	}
	r.SetColorProfile(profile)
}

// applyThemePreference configures background detection.
//
// Priority:
// 1) CALGRID_THEME=light|dark|auto
// 2) CALGRID_DARKBG=true|false
// 3) COLORFGBG heuristic ("fg;bg")
// 4) macOS appearance
func applyThemePreference(r *lipgloss.Renderer) {
	if v := strings.TrimSpace(os.Getenv("CALGRID_THEME")); v != "" {
		switch strings.ToLower(v) {
		case "light":
			r.SetHasDarkBackground(false)
			return
		case "dark":
			r.SetHasDarkBackground(true)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("CALGRID_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			r.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			r.SetHasDarkBackground(bg < 7)
			return
		}
	}

	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			r.SetHasDarkBackground(dark)
		}
	}
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// Prints "Dark" in dark mode; exits 1 in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
