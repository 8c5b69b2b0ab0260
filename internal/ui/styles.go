package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("63")  // purple
	ColorHighlight = lipgloss.Color("57")  // dark purple background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorTextDim   = lipgloss.Color("241") // gray
	ColorSuccess   = lipgloss.Color("42")  // green
	ColorError     = lipgloss.Color("196") // red
	ColorAccent    = lipgloss.Color("226") // bright yellow
)

// LevelColors maps the severities the rewrite emits to display colors
var LevelColors = map[string]lipgloss.Color{
	"debug": lipgloss.Color("63"),  // purple
	"info":  lipgloss.Color("86"),  // cyan
	"warn":  lipgloss.Color("226"), // yellow
	"error": lipgloss.Color("196"), // red
}

// Common styles - reusable style definitions
var (
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)

// LevelStyle returns a style for a log level label, dim gray for
// anything unknown.
func LevelStyle(level string) lipgloss.Style {
	if c, ok := LevelColors[level]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(ColorTextDim)
}

// Banner prints the tool header.
func Banner() {
	banner := BorderStyle.Padding(0, 2).Render(
		TitleStyle.Render("logmend") + HintStyle.Render("  printf-to-structured log rewriter"))
	fmt.Println(banner)
}
