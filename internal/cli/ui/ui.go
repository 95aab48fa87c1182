// Package ui renders ledgerctl output, styled on a terminal and plain otherwise.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#58A6FF"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008000", Dark: "#3FB950"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#F85149"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#CC6600", Dark: "#D29922"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#8B949E"}
)

// UI holds the terminal state and provides styled output methods
type UI struct {
	IsTTY   bool
	Width   int
	NoColor bool
}

// KV is one row of a key-value block
type KV struct {
	Key   string
	Value string
}

// New detects whether w is a terminal and how wide it is
func New(w io.Writer) *UI {
	u := &UI{Width: 80, NoColor: os.Getenv("NO_COLOR") != ""}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		u.IsTTY = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			u.Width = width
		}
	}
	return u
}

func (u *UI) styled() bool {
	return u.IsTTY && !u.NoColor
}

// Header renders a bordered title
func (u *UI) Header(title string) string {
	if !u.styled() {
		return fmt.Sprintf("=== %s ===", title)
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 2).
		Render(title)
}

// Block renders aligned key-value rows. Amount-like values are right aligned.
func (u *UI) Block(rows []KV) string {
	keyWidth, valueWidth := 0, 0
	for _, r := range rows {
		keyWidth = max(keyWidth, len(r.Key)+1)
		valueWidth = max(valueWidth, len(r.Value))
	}
	keyWidth = min(keyWidth, max(u.Width/2, 10))

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		key := fmt.Sprintf("%-*s", keyWidth, r.Key+":")
		value := fmt.Sprintf("%*s", valueWidth, r.Value)
		if u.styled() {
			key = lipgloss.NewStyle().Foreground(ColorMuted).Render(key)
			value = lipgloss.NewStyle().Bold(true).Render(value)
		}
		lines = append(lines, "  "+key+" "+value)
	}
	return strings.Join(lines, "\n")
}

// Success renders a success line
func (u *UI) Success(msg string) string {
	if !u.styled() {
		return "[OK] " + msg
	}
	return lipgloss.NewStyle().Foreground(ColorSuccess).Render("✓ ") + msg
}

// Error renders an error line
func (u *UI) Error(msg string) string {
	if !u.styled() {
		return "[FAILED] " + msg
	}
	return lipgloss.NewStyle().Foreground(ColorError).Bold(true).Render("✗ " + msg)
}

// Warning renders a warning line
func (u *UI) Warning(msg string) string {
	if !u.styled() {
		return "[WARN] " + msg
	}
	return lipgloss.NewStyle().Foreground(ColorWarning).Render("! " + msg)
}

// Muted renders secondary text
func (u *UI) Muted(msg string) string {
	if !u.styled() {
		return msg
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(msg)
}
