// ABOUTME: TUI view for a lead's follow-up history
// ABOUTME: Drives modal.FollowUpViewer and holds the scroll lock while open
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/crmdash/modal"
)

func (m *Model) openFollowUps() {
	lead, ok := m.selectedLead()
	if !ok {
		return
	}
	m.viewer.Open(lead.ID, lead.Name, m.store.FollowUps(lead.ID))
	m.viewMode = ViewFollowUps
}

func (m Model) renderFollowUpView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Follow-up History"))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render(m.viewer.LeadName()))
	s.WriteString("\n\n")

	if m.viewer.Empty() {
		s.WriteString("📭 " + modal.EmptyTitle + "\n")
		s.WriteString(mutedStyle.Render(modal.EmptyHint))
		s.WriteString("\n")
	} else {
		for _, f := range m.viewer.Entries() {
			s.WriteString(fmt.Sprintf("%s %s  %s\n",
				f.Type.Icon(), badgeStyle(f.Type.Badge()).Render(string(f.Type)), mutedStyle.Render(f.Date)))
			s.WriteString("   " + f.Description + "\n")
			s.WriteString("   Outcome: " + f.Outcome + "\n\n")
		}
	}

	s.WriteString(helpStyle.Render("Esc: Close • Enter: Close"))

	return modalStyle.Render(s.String())
}

func (m Model) handleFollowUpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.viewer.HandleKey(msg.String()) {
		m.viewMode = ViewList
		return m, nil
	}

	switch msg.String() {
	case "enter", "c":
		m.viewer.Close(modal.CloseButton)
		m.viewMode = ViewList
	// The list underneath stays put while the viewer holds the lock
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	}

	return m, nil
}
