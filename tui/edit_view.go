// ABOUTME: TUI Add Lead form
// ABOUTME: Collects the form fields with textinputs and validates through forms.AddLeadForm
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/crmdash/forms"
	"github.com/harperreed/crmdash/models"
)

var fieldLabels = map[string]string{
	forms.FieldName:    "Name",
	forms.FieldEmail:   "Email",
	forms.FieldCompany: "Company",
	forms.FieldPhone:   "Phone",
	forms.FieldStatus:  "Status",
	forms.FieldValue:   "Value",
	forms.FieldSource:  "Source",
}

func (m Model) renderAddLeadView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("ADD NEW LEAD"))
	s.WriteString("\n\n")

	errs := m.form.Errors()
	for i, field := range forms.Fields {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(fmt.Sprintf("%-8s ", fieldLabels[field]))

		if field == forms.FieldStatus {
			status := models.LeadStatuses[m.formStatus]
			s.WriteString("◀ " + badgeStyle(status.Badge()).Render(string(status)) + " ▶")
		} else {
			s.WriteString(m.formInputs[i].View())
		}
		s.WriteString("\n")

		if msg, ok := errs[field]; ok {
			s.WriteString("           " + errorStyle.Render(msg) + "\n")
		}
	}

	s.WriteString(m.renderAddLeadHelp())

	return modalStyle.Render(s.String())
}

func (m Model) renderAddLeadHelp() string {
	help := []string{
		"Tab: Next field",
		"←/→: Status",
		"Enter: Add Lead",
		"Esc: Cancel",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m *Model) openAddLead() {
	m.form.Open()

	inputs := make([]textinput.Model, len(forms.Fields))
	for i, field := range forms.Fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = fieldLabels[field]
		inputs[i].CharLimit = 100
	}

	m.formInputs = inputs
	m.formStatus = 0
	m.focusIndex = 0
	m.viewMode = ViewAddLead
}

func (m Model) handleAddLeadKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.Cancel()
		m.viewMode = ViewList
		return m, nil
	case "tab", "down":
		cmd := m.focusField((m.focusIndex + 1) % len(m.formInputs))
		return m, cmd
	case "shift+tab", "up":
		cmd := m.focusField((m.focusIndex + len(m.formInputs) - 1) % len(m.formInputs))
		return m, cmd
	case "enter":
		newLead, ok := m.form.Submit()
		if !ok {
			return m, nil
		}
		lead := m.store.AddLead(newLead, m.now())
		m.message = fmt.Sprintf("Added lead %s (#%d)", lead.Name, lead.ID)
		m.viewMode = ViewList
		m.cursor = 0
		return m, nil
	}

	if forms.Fields[m.focusIndex] == forms.FieldStatus {
		switch msg.String() {
		case "left", "h":
			m.setStatus((m.formStatus + len(models.LeadStatuses) - 1) % len(models.LeadStatuses))
		case "right", "l", " ":
			m.setStatus((m.formStatus + 1) % len(models.LeadStatuses))
		}
		return m, nil
	}

	// Update current input
	field := forms.Fields[m.focusIndex]
	before := m.formInputs[m.focusIndex].Value()
	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	if after := m.formInputs[m.focusIndex].Value(); after != before {
		m.form.Set(field, after)
	}
	return m, cmd
}

func (m *Model) setStatus(idx int) {
	m.formStatus = idx
	m.form.Set(forms.FieldStatus, string(models.LeadStatuses[idx]))
}

func (m *Model) focusField(idx int) tea.Cmd {
	m.formInputs[m.focusIndex].Blur()
	m.focusIndex = idx
	return m.formInputs[idx].Focus()
}
