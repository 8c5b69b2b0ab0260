package ui

// review.go provides the interactive pre-apply review: a table of rules
// with their match counts and a preview pane showing the first rewrite
// the selected rule would make.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/space-cowboy/logmend/internal/models"
)

// ReviewResult contains the outcome after the review TUI exits.
type ReviewResult struct {
	Apply bool
}

type reviewModel struct {
	path         string
	reports      []models.RuleReport
	emojiRemoved int
	table        table.Model
	result       ReviewResult
	quitting     bool
}

func newReviewModel(path string, reports []models.RuleReport, emojiRemoved int) reviewModel {
	columns := []table.Column{
		{Title: "Rule", Width: 18},
		{Title: "Level", Width: 7},
		{Title: "Matches", Width: 8},
	}

	rows := make([]table.Row, len(reports))
	for i, r := range reports {
		rows[i] = table.Row{r.Name, r.Level, fmt.Sprintf("%d", r.Hits)}
	}

	height := len(reports)
	if height > 13 {
		height = 13
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorText)
	s.Selected = SelectedStyle
	t.SetStyles(s)

	return reviewModel{
		path:         path,
		reports:      reports,
		emojiRemoved: emojiRemoved,
		table:        t,
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "a", "enter":
			m.result.Apply = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m reviewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Review rewrites for %s", m.path)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.previewPane())
	b.WriteString("\n")
	if m.emojiRemoved > 0 {
		b.WriteString(HintStyle.Render(fmt.Sprintf("%d emoji prefix(es) will also be removed", m.emojiRemoved)))
		b.WriteString("\n")
	}
	b.WriteString(HintStyle.Render("↑/↓ select rule · a/enter apply all · q/esc cancel"))
	b.WriteString("\n")

	return BorderStyle.Padding(1, 2).Render(b.String())
}

// previewPane renders the first before→after rewrite for the rule under
// the cursor, or a note when the rule matched nothing.
func (m reviewModel) previewPane() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.reports) {
		return ""
	}

	r := m.reports[idx]
	if r.Hits == 0 {
		return HintStyle.Render("no matches for this rule")
	}

	dimStyle := lipgloss.NewStyle().Foreground(ColorTextDim)
	return dimStyle.Render("- "+r.Before) + "\n" + AccentStyle.Render("+ "+r.After)
}

// RunReview launches the review TUI and reports whether the operator
// chose to apply the rewrite.
func RunReview(path string, reports []models.RuleReport, emojiRemoved int) (ReviewResult, error) {
	m := newReviewModel(path, reports, emojiRemoved)

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return ReviewResult{}, fmt.Errorf("review program error: %w", err)
	}

	final := finalModel.(reviewModel)
	return final.result, nil
}
