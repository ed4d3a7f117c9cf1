// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Provides an interactive full-screen view of leads, customers, campaigns, ads, and reports
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/crmdash/forms"
	"github.com/harperreed/crmdash/modal"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/harperreed/crmdash/viz"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewAddLead
	ViewFollowUps
	ViewGraph
)

// Tab is one of the dashboard sections
type Tab int

const (
	TabLeads Tab = iota
	TabCustomers
	TabCampaigns
	TabAds
	TabReports
)

var tabNames = []string{"Leads", "Customers", "Campaigns", "Ads", "Reports"}

func (t Tab) String() string {
	if int(t) < len(tabNames) {
		return tabNames[t]
	}
	return ""
}

// Model is the main bubbletea model
type Model struct {
	store  *store.Store
	fmt    *stats.Formatter
	graphs *viz.GraphGenerator
	now    func() time.Time

	viewMode ViewMode
	tab      Tab

	// List view state
	cursor      int
	searching   bool
	search      textinput.Model
	statusIdx   int
	platformIdx int
	campaignID  int // ads tab filter, 0 for all campaigns

	// Add Lead state
	form       *forms.AddLeadForm
	formInputs []textinput.Model
	formStatus int
	focusIndex int

	// Follow-up viewer state
	lock   *modal.ScrollLock
	viewer *modal.FollowUpViewer

	// Detail and graph state
	detailID int
	graphDOT string

	// UI state
	message string
	width   int
	height  int
	err     error
}

// NewModel creates a new TUI model
func NewModel(s *store.Store, f *stats.Formatter) Model {
	search := textinput.New()
	search.Placeholder = "Search..."
	search.CharLimit = 100

	lock := &modal.ScrollLock{}

	return Model{
		store:    s,
		fmt:      f,
		graphs:   viz.NewGraphGenerator(s, f),
		now:      time.Now,
		viewMode: ViewList,
		tab:      TabLeads,
		search:   search,
		form:     forms.NewAddLeadForm(),
		lock:     lock,
		viewer:   modal.NewFollowUpViewer(lock),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewAddLead:
		return m.renderAddLeadView()
	case ViewFollowUps:
		return m.renderFollowUpView()
	case ViewGraph:
		return m.renderGraphView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		// Tearing down with the viewer open still has to release the lock
		m.viewer.Close(modal.Unmount)
		return m, tea.Quit
	}

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewAddLead:
		return m.handleAddLeadKeys(msg)
	case ViewFollowUps:
		return m.handleFollowUpKeys(msg)
	case ViewGraph:
		return m.handleGraphKeys(msg)
	}

	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("236"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170")).
			Padding(1, 2)
)

// badgeStyle colours a status the same way the web badges do.
func badgeStyle(badge string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(models.TermColor(badge)))
}
