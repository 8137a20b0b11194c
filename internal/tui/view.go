package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aurora-ops/aurora/internal/core/catalog"
	"github.com/aurora-ops/aurora/internal/core/chat"
	"github.com/aurora-ops/aurora/internal/core/styles"
)

const previewRowLimit = 5

// refreshConvo re-renders the conversation log into the viewport and
// pins it to the newest entry.
func (m *Model) refreshConvo() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for _, msg := range m.app.Assistant.History() {
		switch msg.Role {
		case chat.RoleUser:
			b.WriteString(styles.UserStyle.Render("you: ") + msg.Content)
		default:
			b.WriteString(styles.AssistantStyle.Render(m.app.Config.Assistant.Name+": ") + msg.Content)
		}
		b.WriteString("\n")
	}

	m.convo.SetContent(b.String())
	m.convo.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	if m.showHelp {
		return m.helpView()
	}

	sections := []string{
		m.headerView(),
		styles.PanelStyle.Width(m.width - 2).Render(m.convo.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, m.boardView(), m.previewView()),
		m.inputView(),
		m.footerView(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headerView() string {
	profile, _ := catalog.ProfileFor(m.marketplace)
	name := styles.HeaderStyle.Render(m.app.Config.Assistant.Name)
	channel := styles.BadgeStyle.Render(fmt.Sprintf("[%s · title ≤ %d chars]", profile.Name, profile.TitleMaxLength))
	return lipgloss.JoinHorizontal(lipgloss.Center, name,
		styles.SubtleStyle.Render("  voice-first marketplace command center  "), channel)
}

func (m Model) boardView() string {
	width := m.width/2 - 2

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("Tasks (%d)", len(m.tasks))) + "\n")

	if len(m.tasks) == 0 {
		b.WriteString(styles.SubtleStyle.Render("Add one manually or ask via a command."))
	}
	for i, t := range m.tasks {
		cursor := "  "
		if m.focus == focusBoard && i == m.selected {
			cursor = styles.BadgeStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor,
			t.Title,
			styles.StatusStyle(string(t.Status)).Render("["+t.Status.Label()+"]"),
		))
	}

	panel := styles.PanelStyle
	if m.focus == focusBoard {
		panel = styles.FocusedPanelStyle
	}
	return panel.Width(width).Render(b.String())
}

func (m Model) previewView() string {
	width := m.width - m.width/2 - 2

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render("Listing preview") + "\n")

	switch {
	case len(m.rows) == 0 && m.rawCatalog == "":
		b.WriteString(styles.SubtleStyle.Render("ctrl+l loads the sample sheet, ctrl+g generates listings."))
	case len(m.rows) == 0:
		b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("%d line(s) of raw catalog ready. ctrl+g generates listings.",
			len(strings.Split(strings.TrimSpace(m.rawCatalog), "\n")))))
	default:
		for i, row := range m.rows {
			if i == previewRowLimit {
				b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("… and %d more", len(m.rows)-previewRowLimit)))
				break
			}
			keywords := row.Keywords
			if len(keywords) > 6 {
				keywords = keywords[:6]
			}
			b.WriteString(fmt.Sprintf("%s %s\n  %s\n",
				styles.UserStyle.Render(row.Title),
				styles.SubtleStyle.Render("("+row.SKU+")"),
				styles.SubtleStyle.Render(strings.Join(keywords, " · ")),
			))
		}
	}

	return styles.PanelStyle.Width(width).Render(b.String())
}

func (m Model) inputView() string {
	panel := styles.PanelStyle
	if m.focus == focusInput {
		panel = styles.FocusedPanelStyle
	}
	return panel.Width(m.width - 2).Render(m.input.View())
}

func (m Model) footerView() string {
	if m.err != nil {
		return styles.ErrorStyle.Render("error: " + m.err.Error())
	}
	if m.status != "" {
		return styles.SuccessStyle.Render(m.status)
	}
	return styles.SubtleStyle.Render("tab focus · ctrl+n marketplace · ctrl+l sample · ctrl+g generate · ctrl+e export · ? help · ctrl+c quit")
}
