// ABOUTME: Campaign graph view for the terminal UI
// ABOUTME: Shows the DOT source for the selected campaign and its advertisements
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/crmdash/viz"
)

func (m Model) renderGraphView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("CAMPAIGN GRAPH"))
	s.WriteString("\n\n")

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.graphDOT == "":
		s.WriteString("Generating graph...\n")
	default:
		s.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Render(m.graphDOT))
	}

	s.WriteString("\n\n")

	// Help
	s.WriteString(m.renderGraphHelp())

	return s.String()
}

func (m Model) renderGraphHelp() string {
	help := []string{
		"Esc: Back",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleGraphKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.graphDOT = ""
		m.err = nil
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) openGraph() {
	campaigns := m.campaigns()
	if m.cursor >= len(campaigns) {
		return
	}

	m.viewMode = ViewGraph
	m.graphDOT, m.err = m.graphs.GenerateCampaignGraph(context.Background(), campaigns[m.cursor].ID, viz.FormatDOT)
}
