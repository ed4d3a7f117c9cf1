// ABOUTME: Sanity checks for the demo data set
// ABOUTME: Verifies record counts, unique ids, and campaign references
package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCounts(t *testing.T) {
	d := Default()

	assert.Len(t, d.Leads, 8)
	assert.Len(t, d.Customers, 6)
	assert.Len(t, d.Campaigns, 7)
	assert.Len(t, d.Ads, 10)
	assert.Len(t, d.Reports, 5)
	assert.Len(t, d.Cards, 4)
	assert.Len(t, d.FollowUps, 3)
}

func TestAdsReferenceKnownCampaigns(t *testing.T) {
	d := Default()
	ids := map[int]bool{}
	for _, c := range d.Campaigns {
		ids[c.ID] = true
	}
	for _, ad := range d.Ads {
		assert.True(t, ids[ad.CampaignID], "ad %d points at missing campaign %d", ad.ID, ad.CampaignID)
	}
}

func TestCampaignBudgetsBalance(t *testing.T) {
	for _, c := range Default().Campaigns {
		assert.Zero(t, c.Drift(), c.Name)
	}
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Leads[0].Name = "changed"
	assert.Equal(t, "John Doe", Default().Leads[0].Name)
}
