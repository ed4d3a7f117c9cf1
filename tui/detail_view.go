// ABOUTME: TUI detail view for a single lead or sales person
// ABOUTME: Shows lead fields, or a sales person's lead drill-down rows
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(20)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func (m *Model) openDetail() {
	switch m.tab {
	case TabLeads:
		lead, ok := m.selectedLead()
		if !ok {
			return
		}
		m.detailID = lead.ID
	case TabReports:
		reports := m.store.Reports()
		if m.cursor >= len(reports) {
			return
		}
		m.detailID = reports[m.cursor].ID
	default:
		return
	}
	m.viewMode = ViewDetail
}

func (m Model) renderDetailView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("DETAIL VIEW"))
	s.WriteString("\n\n")

	switch m.tab {
	case TabLeads:
		s.WriteString(m.renderLeadDetail())
	case TabReports:
		s.WriteString(m.renderReportDetail())
	}

	s.WriteString("\n")

	// Help
	s.WriteString(helpStyle.Render("Esc: Back • q: Quit"))

	return s.String()
}

func (m Model) renderLeadDetail() string {
	lead, err := m.store.Lead(m.detailID)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var s strings.Builder

	s.WriteString(m.renderField("Name", lead.Name))
	s.WriteString(m.renderField("Email", lead.Email))
	s.WriteString(m.renderField("Company", lead.Company))
	s.WriteString(m.renderField("Phone", lead.Phone))
	s.WriteString(fieldLabelStyle.Render("Status:") + " " + badgeStyle(lead.Status.Badge()).Render(string(lead.Status)) + "\n")
	s.WriteString(m.renderField("Value", lead.Value))
	s.WriteString(m.renderField("Source", lead.Source))
	s.WriteString(m.renderField("Created", lead.CreatedAt))
	s.WriteString(m.renderField("Follow-ups", strconv.Itoa(len(m.store.FollowUps(lead.ID)))))

	return s.String()
}

func (m Model) renderReportDetail() string {
	report, err := m.store.Report(m.detailID)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var s strings.Builder

	s.WriteString(m.renderField("Sales Person", report.Name))
	s.WriteString(m.renderField("Total Leads", strconv.Itoa(report.TotalLeads)))
	s.WriteString(m.renderField("Won / Lost", fmt.Sprintf("%d / %d", report.WonLeads, report.LostLeads)))
	s.WriteString(m.renderField("Follow-ups", strconv.Itoa(report.TotalFollowUps)))
	s.WriteString(m.renderField("Avg / Lead", m.fmt.Percent1(report.AvgFollowUpsPerLead)))

	details := m.store.LeadDetails(report.ID)
	if len(details) == 0 {
		return s.String()
	}

	s.WriteString("\n")
	s.WriteString(titleStyle.Render("Leads for " + report.Name))
	s.WriteString("\n")
	for _, d := range details {
		s.WriteString(fmt.Sprintf("  %-18s %-20s %-10s %2d  %s\n",
			d.LeadName, d.Company, d.Status, d.FollowUpCount, d.LastContact))
	}

	return s.String()
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fieldLabelStyle.Render(label+":") + " " + fieldValueStyle.Render(value) + "\n"
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
	case "q":
		return m, tea.Quit
	}

	return m, nil
}
