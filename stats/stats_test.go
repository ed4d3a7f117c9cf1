// ABOUTME: Tests for aggregation and formatting helpers
// ABOUTME: Covers rates, zero denominators, summaries, and locale output
package stats

import (
	"testing"

	"github.com/harperreed/crmdash/filter"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	assert.Zero(t, Sum([]int64{}, func(v int64) int64 { return v }))
	assert.Equal(t, int64(6), Sum([]int64{1, 2, 3}, func(v int64) int64 { return v }))
}

func TestRateZeroDenominator(t *testing.T) {
	assert.Zero(t, Rate(10, 0))
	assert.Zero(t, CTR(0, 0))
	assert.Zero(t, ConversionRate(5, 0))
	assert.Zero(t, BudgetUsage(500, 0))
}

func TestRateRounding(t *testing.T) {
	assert.Equal(t, 3.0, CTR(3750, 125000))
	assert.Equal(t, 6.53, ConversionRate(245, 3750))
	assert.Equal(t, 33.33, Rate(1, 3))
	assert.Equal(t, 65.0, BudgetUsage(32500, 50000))
	assert.Equal(t, 33.3, BudgetUsage(1, 3))
}

func TestFormatter(t *testing.T) {
	f := DefaultFormatter()

	assert.Equal(t, "$3,250", f.Currency(3250))
	assert.Equal(t, "$0", f.Currency(0))
	assert.Equal(t, "-$500", f.Currency(-500))
	assert.Equal(t, "125,000", f.Number(125000))
	assert.Equal(t, "3.00", f.Percent2(CTR(3750, 125000)))
	assert.Equal(t, "65.0", f.Percent1(65))
	assert.Equal(t, "USD", f.CurrencyCode())
}

func TestNewFormatterErrors(t *testing.T) {
	_, err := NewFormatter("not a locale!!", "USD")
	assert.Error(t, err)

	_, err = NewFormatter("en-US", "XYZW")
	assert.Error(t, err)

	f, err := NewFormatter("en-GB", "GBP")
	require.NoError(t, err)
	assert.Equal(t, "£1,000", f.Currency(1000))
}

func TestSummarizeCampaignsUsesWholeCollection(t *testing.T) {
	s := store.NewDefault()
	sum := SummarizeCampaigns(s.Campaigns())

	assert.Equal(t, int64(285000), sum.TotalBudget)
	assert.Equal(t, int64(166000), sum.SpentBudget)
	assert.Equal(t, int64(119000), sum.RemainingBudget)
	assert.Equal(t, int64(1453), sum.LeadsGenerated)
}

func TestSummarizeAdsUsesShownAds(t *testing.T) {
	s := store.NewDefault()
	shown := filter.Apply(s.Ads(), filter.AdQuery("", filter.All, "Google Ads", "", s.CampaignName))

	sum := SummarizeAds(shown)
	assert.Equal(t, int64(15500), sum.Budget)
	assert.Equal(t, int64(3250), sum.Spent)
	assert.Equal(t, int64(125000), sum.Impressions)
	assert.Equal(t, int64(3750), sum.Clicks)
	assert.Equal(t, 3.0, sum.CTR)

	empty := SummarizeAds(nil)
	assert.Zero(t, empty.CTR)
}

func TestSummarizeReports(t *testing.T) {
	s := store.NewDefault()
	sum := SummarizeReports(s.Reports())

	assert.Equal(t, int64(51), sum.TotalLeads)
	assert.Equal(t, int64(209), sum.TotalFollowUps)
	assert.Equal(t, int64(5), sum.TotalWon)
	assert.Equal(t, 9.8, sum.WinRate)
}

func TestWinRateRoundsOnceToOneDecimal(t *testing.T) {
	assert.Equal(t, 66.7, WinRate(2, 3))
	assert.Equal(t, 0.0, WinRate(3, 0))

	sum := SummarizeReports([]models.SalesPersonReport{
		{ID: 1, Name: "A", TotalLeads: 3, WonLeads: 1},
	})
	assert.Equal(t, 33.3, sum.WinRate)
	assert.Equal(t, "33.3", DefaultFormatter().Percent1(sum.WinRate))
}

func TestSummarizeLeads(t *testing.T) {
	s := store.NewDefault()
	all := s.Leads()
	shown := filter.Apply(all, filter.LeadQuery("", "New"))

	sum := SummarizeLeads(shown, all)
	assert.Equal(t, 2, sum.Shown)
	assert.Equal(t, 8, sum.Total)
	assert.Equal(t, 2, sum.ByStatus[models.LeadContacted])
}

func TestGenerateDashboardStats(t *testing.T) {
	s := store.NewDefault()
	d := GenerateDashboardStats(s.Cards(), s.Leads())

	require.Len(t, d.RecentLeads, 4)
	assert.Equal(t, 1, d.RecentLeads[0].ID)
	assert.Equal(t, 4, d.RecentLeads[3].ID)
	assert.Len(t, d.Cards, 4)
	assert.Equal(t, 8, d.TotalLeads)

	require.Len(t, d.Pipeline, len(models.LeadStatuses))
	assert.Equal(t, models.LeadNew, d.Pipeline[0].Stage)
	assert.Equal(t, 2, d.Pipeline[0].Count)
	assert.Equal(t, 1, d.Pipeline[4].Count)

	short := GenerateDashboardStats(nil, s.Leads()[:2])
	assert.Len(t, short.RecentLeads, 2)
}
