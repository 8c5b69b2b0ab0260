package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/space-cowboy/logmend/internal/models"
)

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	successStyle := lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	fmt.Println(successStyle.Render(message))
}

// PrintError prints an error message
func PrintError(message string) {
	errorStyle := lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	fmt.Println(errorStyle.Render("Error: " + message))
}

// PrintPreview prints a per-rule summary of what a scan found.
// Rules with zero hits are listed dimmed so the operator can see the
// whole ruleset ran.
func PrintPreview(path string, reports []models.RuleReport, emojiRemoved int) {
	fmt.Println()
	fmt.Println(TitleStyle.Render(fmt.Sprintf("Rewrite preview for %s", path)))
	fmt.Println()

	dimStyle := lipgloss.NewStyle().Foreground(ColorTextDim)

	for _, r := range reports {
		line := fmt.Sprintf("  %-16s %-6s %3d match(es)", r.Name, r.Level, r.Hits)
		if r.Hits == 0 {
			fmt.Println(dimStyle.Render(line))
			continue
		}
		fmt.Printf("  %-16s %s %3d match(es)\n",
			r.Name, LevelStyle(r.Level).Render(fmt.Sprintf("%-6s", r.Level)), r.Hits)
		if r.Before != "" {
			fmt.Println(dimStyle.Render("    - " + r.Before))
			fmt.Println(AccentStyle.Render("    + " + r.After))
		}
	}

	fmt.Println()
	if emojiRemoved > 0 {
		fmt.Printf("  emoji prefixes removed: %d\n", emojiRemoved)
		fmt.Println()
	}
}

// PrintHistory prints recent runs, newest first.
func PrintHistory(runs []models.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println(TitleStyle.Render("Recent runs"))
	fmt.Println()
	fmt.Printf("  %-4s %-19s %-8s %-9s %-6s %s\n", "ID", "When", "Ruleset", "Rewrites", "Emoji", "File")

	dimStyle := lipgloss.NewStyle().Foreground(ColorTextDim)
	for _, r := range runs {
		line := fmt.Sprintf("  %-4d %-19s %-8s %-9d %-6d %s",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Ruleset, r.Replacements, r.EmojiRemoved, r.FilePath)
		if r.DryRun {
			fmt.Println(dimStyle.Render(line + "  (dry run)"))
		} else {
			fmt.Println(line)
		}
	}
	fmt.Println()
}
