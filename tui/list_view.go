// ABOUTME: TUI list view with tabs, search, and status filters
// ABOUTME: Renders each section as a lipgloss table with coloured status cells
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/harperreed/crmdash/filter"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/stats"
)

func (m Model) renderListView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("CRM DASHBOARD"))
	s.WriteString("\n\n")

	// Tabs
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	s.WriteString(m.renderFilters())
	s.WriteString("\n")

	if summary := m.renderSummary(); summary != "" {
		s.WriteString(summary)
		s.WriteString("\n")
	}

	s.WriteString(mutedStyle.Render(m.showingLine()))
	s.WriteString("\n")

	// Table
	if m.rowCount() == 0 {
		s.WriteString("\n")
		s.WriteString(m.emptyMessage())
		s.WriteString("\n")
		s.WriteString(mutedStyle.Render("Press c to clear filters"))
	} else {
		s.WriteString(m.renderTable())
	}
	s.WriteString("\n")

	if m.message != "" {
		s.WriteString(m.message)
		s.WriteString("\n")
	}

	// Help
	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	var rendered []string

	for i, tab := range tabNames {
		if Tab(i) == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderFilters() string {
	var parts []string
	if m.searching {
		parts = append(parts, m.search.View())
	} else if q := m.search.Value(); q != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", q))
	}
	if opts := m.statusOptions(); len(opts) > 1 {
		parts = append(parts, "Status: "+opts[m.statusIdx])
	}
	if m.tab == TabAds {
		parts = append(parts, "Platform: "+m.platformOptions()[m.platformIdx])
		if m.campaignID != 0 {
			parts = append(parts, "Campaign: "+m.store.CampaignName(m.campaignID))
		}
	}
	return strings.Join(parts, "   ")
}

func (m Model) statusOptions() []string {
	switch m.tab {
	case TabLeads:
		return options(models.LeadStatuses)
	case TabCustomers:
		return options(models.CustomerStatuses)
	case TabCampaigns:
		return options(models.CampaignStatuses)
	case TabAds:
		return options(models.AdStatuses)
	}
	return []string{filter.All}
}

func (m Model) platformOptions() []string {
	return append([]string{filter.All}, models.AdPlatforms...)
}

func options[T ~string](statuses []T) []string {
	out := []string{filter.All}
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func (m Model) status() string {
	return m.statusOptions()[m.statusIdx]
}

func (m Model) leads() []models.Lead {
	return filter.Apply(m.store.Leads(), filter.LeadQuery(m.search.Value(), m.status()))
}

func (m Model) customers() []models.Customer {
	return filter.Apply(m.store.Customers(), filter.CustomerQuery(m.search.Value(), m.status()))
}

func (m Model) campaigns() []models.Campaign {
	return filter.Apply(m.store.Campaigns(), filter.CampaignQuery(m.search.Value(), m.status()))
}

func (m Model) ads() []models.Advertisement {
	campaign := ""
	if m.campaignID != 0 {
		campaign = strconv.Itoa(m.campaignID)
	}
	q := filter.AdQuery(m.search.Value(), m.status(), m.platformOptions()[m.platformIdx], campaign, m.store.CampaignName)
	return filter.Apply(m.store.Ads(), q)
}

func (m Model) rowCount() int {
	switch m.tab {
	case TabLeads:
		return len(m.leads())
	case TabCustomers:
		return len(m.customers())
	case TabCampaigns:
		return len(m.campaigns())
	case TabAds:
		return len(m.ads())
	case TabReports:
		return len(m.store.Reports())
	}
	return 0
}

func (m Model) totalCount() int {
	switch m.tab {
	case TabLeads:
		return len(m.store.Leads())
	case TabCustomers:
		return len(m.store.Customers())
	case TabCampaigns:
		return len(m.store.Campaigns())
	case TabAds:
		return len(m.store.Ads())
	case TabReports:
		return len(m.store.Reports())
	}
	return 0
}

func (m Model) showingLine() string {
	noun := strings.ToLower(m.tab.String())
	if m.tab == TabAds {
		noun = "advertisements"
	}
	if m.tab == TabReports {
		noun = "sales people"
	}
	return fmt.Sprintf("Showing %d of %d %s", m.rowCount(), m.totalCount(), noun)
}

func (m Model) emptyMessage() string {
	if m.tab == TabAds {
		return "No advertisements found matching your criteria"
	}
	return fmt.Sprintf("No %s found matching your criteria", strings.ToLower(m.tab.String()))
}

func (m Model) renderSummary() string {
	switch m.tab {
	case TabCampaigns:
		sum := stats.SummarizeCampaigns(m.store.Campaigns())
		return fmt.Sprintf("Budget %s · Spent %s · Remaining %s · Leads %s",
			m.fmt.Currency(sum.TotalBudget), m.fmt.Currency(sum.SpentBudget),
			m.fmt.Currency(sum.RemainingBudget), m.fmt.Number(sum.LeadsGenerated))
	case TabAds:
		sum := stats.SummarizeAds(m.ads())
		return fmt.Sprintf("Budget %s · Spent %s · Clicks %s · CTR %s%%",
			m.fmt.Currency(sum.Budget), m.fmt.Currency(sum.Spent),
			m.fmt.Number(sum.Clicks), m.fmt.Percent2(sum.CTR))
	case TabReports:
		sum := stats.SummarizeReports(m.store.Reports())
		return fmt.Sprintf("Leads %d · Follow-ups %d · Won %d · Win rate %s%%",
			sum.TotalLeads, sum.TotalFollowUps, sum.TotalWon, m.fmt.Percent1(sum.WinRate))
	}
	return ""
}

// tableData returns headers, rows, per-row badge classes, and the status
// column (-1 when the tab has none).
func (m Model) tableData() ([]string, [][]string, []string, int) {
	var rows [][]string
	var badges []string

	switch m.tab {
	case TabLeads:
		for _, l := range m.leads() {
			rows = append(rows, []string{strconv.Itoa(l.ID), l.Name, l.Company, l.Email, string(l.Status), l.Value, l.Source, l.CreatedAt})
			badges = append(badges, l.Status.Badge())
		}
		return []string{"ID", "Name", "Company", "Email", "Status", "Value", "Source", "Created"}, rows, badges, 4
	case TabCustomers:
		for _, c := range m.customers() {
			rows = append(rows, []string{c.Name, c.Company, c.Email, string(c.Status), c.TotalValue, c.LastContact})
			badges = append(badges, c.Status.Badge())
		}
		return []string{"Name", "Company", "Email", "Status", "Total Value", "Last Contact"}, rows, badges, 3
	case TabCampaigns:
		for _, c := range m.campaigns() {
			rows = append(rows, []string{c.Name, string(c.Status), c.Channel,
				m.fmt.Currency(c.TotalBudget), m.fmt.Currency(c.SpentBudget),
				m.fmt.Percent1(stats.BudgetUsage(c.SpentBudget, c.TotalBudget)) + "%",
				m.fmt.Number(int64(c.LeadsGenerated))})
			badges = append(badges, c.Status.Badge())
		}
		return []string{"Name", "Status", "Channel", "Budget", "Spent", "Used", "Leads"}, rows, badges, 1
	case TabAds:
		for _, a := range m.ads() {
			rows = append(rows, []string{a.AdName, m.store.CampaignName(a.CampaignID), a.Platform, string(a.Status),
				m.fmt.Currency(a.Budget), m.fmt.Currency(a.Spent),
				m.fmt.Percent2(stats.CTR(a.Clicks, a.Impressions)) + "%",
				m.fmt.Percent2(stats.ConversionRate(a.Conversions, a.Clicks)) + "%"})
			badges = append(badges, a.Status.Badge())
		}
		return []string{"Ad", "Campaign", "Platform", "Status", "Budget", "Spent", "CTR", "Conv"}, rows, badges, 3
	case TabReports:
		for _, r := range m.store.Reports() {
			rows = append(rows, []string{r.Name, strconv.Itoa(r.TotalLeads), strconv.Itoa(r.WonLeads),
				strconv.Itoa(r.LostLeads), strconv.Itoa(r.TotalFollowUps), m.fmt.Percent1(r.AvgFollowUpsPerLead)})
		}
		return []string{"Sales Person", "Leads", "Won", "Lost", "Follow-ups", "Avg"}, rows, nil, -1
	}
	return nil, nil, nil, -1
}

func (m Model) renderTable() string {
	headers, rows, badges, statusCol := m.tableData()

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == m.cursor {
				style = selectedStyle.Padding(0, 1)
			}
			if col == statusCol && row < len(badges) {
				style = style.Foreground(lipgloss.Color(models.TermColor(badges[row])))
			}
			return style
		})

	return t.Render()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Tab: Switch tabs",
		"/: Search",
		"s: Status",
		"c: Clear",
	}
	switch m.tab {
	case TabLeads:
		help = append(help, "Enter: Details", "f: Follow-ups", "n: New lead")
	case TabCampaigns:
		help = append(help, "a: View ads", "g: Graph")
	case TabAds:
		help = append(help, "p: Platform")
	case TabReports:
		help = append(help, "Enter: Lead details")
	}
	help = append(help, "q: Quit")
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	m.message = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "tab", "right", "l":
		m.switchTab((int(m.tab) + 1) % len(tabNames))
	case "shift+tab", "left", "h":
		m.switchTab((int(m.tab) + len(tabNames) - 1) % len(tabNames))
	case "/":
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case "c":
		m.switchTab(int(m.tab))
	case "s":
		m.statusIdx = (m.statusIdx + 1) % len(m.statusOptions())
		m.cursor = 0
	case "p":
		if m.tab == TabAds {
			m.platformIdx = (m.platformIdx + 1) % len(m.platformOptions())
			m.cursor = 0
		}
	case "n":
		if m.tab == TabLeads {
			m.openAddLead()
			cmd := m.formInputs[0].Focus()
			return m, cmd
		}
	case "f":
		if m.tab == TabLeads {
			m.openFollowUps()
		}
	case "enter":
		m.openDetail()
	case "g":
		if m.tab == TabCampaigns {
			m.openGraph()
		}
	case "a":
		if m.tab == TabCampaigns {
			m.openCampaignAds()
		}
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

// moveCursor is a no-op while a modal holds the scroll lock.
func (m *Model) moveCursor(delta int) {
	if m.lock.Locked() {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= m.rowCount() {
		return
	}
	m.cursor = next
}

func (m *Model) switchTab(tab int) {
	m.tab = Tab(tab)
	m.cursor = 0
	m.statusIdx = 0
	m.platformIdx = 0
	m.campaignID = 0
	m.search.SetValue("")
}

// openCampaignAds jumps to the Ads tab filtered to the selected campaign.
func (m *Model) openCampaignAds() {
	campaigns := m.campaigns()
	if m.cursor >= len(campaigns) {
		return
	}
	id := campaigns[m.cursor].ID
	m.switchTab(int(TabAds))
	m.campaignID = id
}

func (m Model) selectedLead() (models.Lead, bool) {
	leads := m.leads()
	if m.tab != TabLeads || m.cursor >= len(leads) {
		return models.Lead{}, false
	}
	return leads[m.cursor], true
}
