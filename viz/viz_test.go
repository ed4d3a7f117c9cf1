// ABOUTME: Tests for campaign graphs and the terminal dashboard
// ABOUTME: Checks rendered DOT and SVG content and ASCII dashboard sections
package viz

import (
	"context"
	"strings"
	"testing"

	"github.com/harperreed/crmdash/filter"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCampaignGraphDOT(t *testing.T) {
	g := NewGraphGenerator(store.NewDefault(), stats.DefaultFormatter())

	dot, err := g.GenerateCampaignGraph(context.Background(), 0, FormatDOT)
	require.NoError(t, err)
	assert.Contains(t, dot, "campaign_1")
	assert.Contains(t, dot, "ad_10")
	assert.Contains(t, dot, "Summer Product Launch 2024")
}

func TestGenerateCampaignGraphSingleCampaign(t *testing.T) {
	g := NewGraphGenerator(store.NewDefault(), stats.DefaultFormatter())

	dot, err := g.GenerateCampaignGraph(context.Background(), 4, FormatDOT)
	require.NoError(t, err)
	assert.Contains(t, dot, "ad_6")
	assert.NotContains(t, dot, "campaign_1")

	_, err = g.GenerateCampaignGraph(context.Background(), 99, FormatDOT)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGenerateCampaignGraphSVG(t *testing.T) {
	g := NewGraphGenerator(store.NewDefault(), stats.DefaultFormatter())

	svg, err := g.GenerateCampaignGraph(context.Background(), 2, FormatSVG)
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
}

func TestGenerateCampaignGraphBadFormat(t *testing.T) {
	g := NewGraphGenerator(store.NewDefault(), stats.DefaultFormatter())
	_, err := g.GenerateCampaignGraph(context.Background(), 0, "png")
	assert.Error(t, err)
}

func TestRenderDashboard(t *testing.T) {
	s := store.NewDefault()
	f := stats.DefaultFormatter()
	ads := filter.Apply(s.Ads(), filter.AdQuery("", filter.All, filter.All, "", s.CampaignName))

	out := RenderDashboard(TerminalDashboard{
		Stats:     stats.GenerateDashboardStats(s.Cards(), s.Leads()),
		Campaigns: stats.SummarizeCampaigns(s.Campaigns()),
		Ads:       stats.SummarizeAds(ads),
		Reports:   stats.SummarizeReports(s.Reports()),
	}, f)

	for _, want := range []string{"LEAD PIPELINE", "RECENT LEADS", "Total Leads", "$285,000", "Sarah Williams"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Robert Brown", "only the four most recent leads are listed")

	// Contacted and New tie for the longest bar
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "New ") && strings.Contains(line, "█") {
			assert.Contains(t, line, strings.Repeat("█", 10))
		}
	}
}
