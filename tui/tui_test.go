// ABOUTME: Tests for the terminal UI
// ABOUTME: Feeds key messages through Update and checks model state and rendered views
package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/crmdash/forms"
	"github.com/harperreed/crmdash/modal"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
)

var specialKeys = map[string]tea.KeyType{
	"esc":       tea.KeyEsc,
	"enter":     tea.KeyEnter,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+c":    tea.KeyCtrlC,
}

func key(k string) tea.KeyMsg {
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newTestModel() (Model, *store.Store) {
	s := store.NewDefault()
	m := NewModel(s, stats.DefaultFormatter())
	m.now = func() time.Time { return time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC) }
	return m, s
}

func TestInitialListView(t *testing.T) {
	m, _ := newTestModel()

	assert.Equal(t, ViewList, m.viewMode)
	assert.Equal(t, TabLeads, m.tab)

	view := m.View()
	assert.Contains(t, view, "Showing 8 of 8 leads")
	assert.Contains(t, view, "John Doe")
	assert.Contains(t, view, "Lisa Anderson")
}

func TestTabSwitching(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "tab")
	assert.Equal(t, TabCustomers, m.tab)
	assert.Contains(t, m.View(), "Showing 6 of 6 customers")

	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, TabReports, m.tab)
	assert.Contains(t, m.View(), "Emily Rodriguez")
}

func TestStatusCycle(t *testing.T) {
	m, _ := newTestModel()

	// All, New, Contacted, Qualified, Proposal, Won
	m = press(t, m, "s", "s", "s", "s", "s")
	assert.Equal(t, "Won", m.status())

	view := m.View()
	assert.Contains(t, view, "Showing 1 of 8 leads")
	assert.Contains(t, view, "Emily Davis")
	assert.NotContains(t, view, "John Doe")

	m = press(t, m, "s")
	assert.Equal(t, "Lost", m.status())
	m = press(t, m, "s")
	assert.Equal(t, "All", m.status())
}

func TestSearch(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "/", "solutions", "enter")
	assert.False(t, m.searching)
	assert.Equal(t, 2, m.rowCount())

	// Letters typed while searching do not trigger list commands
	m = press(t, m, "/", "q")
	assert.True(t, m.searching)
	assert.Equal(t, "solutionsq", m.search.Value())

	m = press(t, m, "esc")
	assert.False(t, m.searching)
	assert.Equal(t, "", m.search.Value())
	assert.Equal(t, 8, m.rowCount())
}

func TestEmptyStateAndClear(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "/", "zzz", "enter")
	view := m.View()
	assert.Contains(t, view, "Showing 0 of 8 leads")
	assert.Contains(t, view, "No leads found matching your criteria")

	m = press(t, m, "c")
	assert.Equal(t, 8, m.rowCount())
}

func TestPlatformCycleOnAds(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "p")
	assert.Equal(t, 0, m.platformIdx, "platform filter only applies to ads")

	m = press(t, m, "tab", "tab", "tab")
	require.Equal(t, TabAds, m.tab)

	m = press(t, m, "p")
	assert.Equal(t, "Google Ads", m.platformOptions()[m.platformIdx])

	ids := []int{}
	for _, a := range m.ads() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{1, 6, 7}, ids)
	assert.Contains(t, m.View(), "3.00%")
}

func TestCampaignViewAdsFiltersByCampaign(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "a")
	assert.Equal(t, TabLeads, m.tab, "view ads only applies to campaigns")

	m = press(t, m, "tab", "tab", "down", "down", "a")
	require.Equal(t, TabAds, m.tab)
	assert.Equal(t, 3, m.campaignID)

	ids := []int{}
	for _, a := range m.ads() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{4, 5, 10}, ids)

	view := m.View()
	assert.Contains(t, view, "Campaign: Social Media Brand Awareness")
	assert.Contains(t, view, "Showing 3 of 10 advertisements")

	m = press(t, m, "c")
	assert.Equal(t, 0, m.campaignID)
	assert.Len(t, m.ads(), 10)
}

func TestCursorBounds(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 20; i++ {
		m = press(t, m, "down")
	}
	assert.Equal(t, 7, m.cursor)
}

func TestFollowUpViewerHoldsLock(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "f")
	require.Equal(t, ViewFollowUps, m.viewMode)
	assert.True(t, m.lock.Locked())
	assert.Equal(t, 1, m.viewer.LeadID())
	assert.Contains(t, m.View(), "Sent initial introduction email")

	m = press(t, m, "down", "down")
	assert.Equal(t, 0, m.cursor, "cursor is frozen while the viewer is open")

	m = press(t, m, "esc")
	assert.Equal(t, ViewList, m.viewMode)
	assert.False(t, m.lock.Locked())

	m = press(t, m, "down")
	assert.Equal(t, 1, m.cursor)
}

func TestFollowUpViewerEmptyState(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "down", "down", "down", "f")
	require.Equal(t, 4, m.viewer.LeadID())
	assert.True(t, m.viewer.Empty())

	view := m.View()
	assert.Contains(t, view, modal.EmptyTitle)
	assert.Contains(t, view, modal.EmptyHint)

	m = press(t, m, "enter")
	assert.False(t, m.viewer.IsOpen())
	assert.False(t, m.lock.Locked())
}

func TestQuitReleasesLock(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "f")
	require.True(t, m.lock.Locked())

	_, cmd := m.Update(key("ctrl+c"))
	assert.NotNil(t, cmd)
	assert.False(t, m.lock.Locked())
}

func TestAddLeadValidation(t *testing.T) {
	m, s := newTestModel()

	m = press(t, m, "n")
	require.Equal(t, ViewAddLead, m.viewMode)
	assert.Equal(t, forms.StateOpen, m.form.State())

	m = press(t, m, "enter")
	assert.Equal(t, ViewAddLead, m.viewMode)
	assert.Len(t, s.Leads(), 8)
	assert.Contains(t, m.View(), "Name is required")

	// Typing into a field clears only that field's error
	m = press(t, m, "A")
	errs := m.form.Errors()
	assert.NotContains(t, errs, forms.FieldName)
	assert.Contains(t, errs, forms.FieldEmail)
}

func TestAddLeadSubmit(t *testing.T) {
	m, s := newTestModel()

	m = press(t, m, "n",
		"Ada Lovelace", "tab",
		"ada@engine.io", "tab",
		"Analytical", "tab",
		"555-0100", "tab",
		"right", "right", "tab",
		"$40,000", "tab",
		"Referral",
		"enter",
	)

	assert.Equal(t, ViewList, m.viewMode)
	assert.Equal(t, forms.StateClosed, m.form.State())

	leads := s.Leads()
	require.Len(t, leads, 9)
	assert.Equal(t, 9, leads[0].ID)
	assert.Equal(t, "Ada Lovelace", leads[0].Name)
	assert.Equal(t, models.LeadQualified, leads[0].Status)
	assert.Equal(t, "2024-12-12", leads[0].CreatedAt)
	assert.Contains(t, m.View(), "Added lead Ada Lovelace (#9)")
}

func TestAddLeadCancel(t *testing.T) {
	m, s := newTestModel()

	m = press(t, m, "n", "Someone", "esc")
	assert.Equal(t, ViewList, m.viewMode)
	assert.Equal(t, forms.StateClosed, m.form.State())
	assert.Empty(t, m.form.Values()[forms.FieldName])
	assert.Len(t, s.Leads(), 8)
}

func TestReportDrillDown(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "shift+tab", "down", "enter")
	require.Equal(t, ViewDetail, m.viewMode)

	view := m.View()
	assert.Contains(t, view, "Leads for Michael Chen")
	assert.Contains(t, view, "Robert Brown")

	m = press(t, m, "esc", "down", "down", "down", "enter")
	assert.NotContains(t, m.View(), "Leads for", "no drill-down rows for this person")
}

func TestLeadDetail(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, "down", "enter")
	require.Equal(t, ViewDetail, m.viewMode)
	assert.Contains(t, m.View(), "jane@innovate.com")
}
