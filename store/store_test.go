// ABOUTME: Tests for the in-memory record store
// ABOUTME: Covers lead insertion, id allocation, copies, and lookups
package store

import (
	"sync"
	"testing"
	"time"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 12, 10, 15, 4, 5, 0, time.UTC)

func validLead() models.NewLead {
	return models.NewLead{
		Name:    "Ada Lovelace",
		Email:   "ada@engine.io",
		Company: "Analytical",
		Phone:   "+1 (555) 000-1111",
		Status:  models.LeadQualified,
		Value:   "$1,000",
		Source:  "Referral",
	}
}

func TestAddLeadPrepends(t *testing.T) {
	s := NewDefault()
	before := len(s.Leads())

	lead := s.AddLead(validLead(), testNow)

	leads := s.Leads()
	require.Len(t, leads, before+1)
	assert.Equal(t, lead, leads[0])
	assert.Equal(t, 9, lead.ID)
	assert.Equal(t, "2024-12-10", lead.CreatedAt)
	assert.Equal(t, models.LeadQualified, lead.Status)
	assert.Equal(t, 1, leads[1].ID)
}

func TestAddLeadIDsAreMonotonic(t *testing.T) {
	s := New(seed.Data{Leads: []models.Lead{{ID: 3}, {ID: 7}}})

	a := s.AddLead(validLead(), testNow)
	b := s.AddLead(validLead(), testNow)

	assert.Equal(t, 8, a.ID)
	assert.Equal(t, 9, b.ID)
}

func TestAddLeadUnknownStatusDefaultsToNew(t *testing.T) {
	s := New(seed.Data{})
	in := validLead()
	in.Status = "Archived"

	lead := s.AddLead(in, testNow)
	assert.Equal(t, models.LeadNew, lead.Status)
	assert.Equal(t, 1, lead.ID)
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewDefault()

	leads := s.Leads()
	leads[0].Name = "changed"
	assert.Equal(t, "John Doe", s.Leads()[0].Name)

	fu := s.FollowUps(1)
	fu[0].Outcome = "changed"
	assert.Equal(t, "Lead opened email and expressed interest", s.FollowUps(1)[0].Outcome)
}

func TestNewCopiesSeed(t *testing.T) {
	data := seed.Default()
	s := New(data)
	data.Leads[0].Name = "mutated"
	data.FollowUps[1][0].Type = models.FollowUpNote

	assert.Equal(t, "John Doe", s.Leads()[0].Name)
	assert.Equal(t, models.FollowUpEmail, s.FollowUps(1)[0].Type)
}

func TestFollowUps(t *testing.T) {
	s := NewDefault()

	fu := s.FollowUps(2)
	require.Len(t, fu, 3)
	assert.Equal(t, []int{3, 4, 5}, []int{fu[0].ID, fu[1].ID, fu[2].ID})

	empty := s.FollowUps(4)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestLookups(t *testing.T) {
	s := NewDefault()

	lead, err := s.Lead(6)
	require.NoError(t, err)
	assert.Equal(t, "Emily Davis", lead.Name)

	_, err = s.Lead(99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Report(42)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, "Email Marketing Q4", s.CampaignName(2))
	assert.Equal(t, UnknownCampaign, s.CampaignName(99))
}

func TestAdsByCampaign(t *testing.T) {
	s := NewDefault()
	groups := s.AdsByCampaign()

	assert.Len(t, groups[3], 3)
	assert.Len(t, groups[4], 2)
	assert.Empty(t, groups[6])
}

func TestLeadDetails(t *testing.T) {
	s := NewDefault()

	assert.Len(t, s.LeadDetails(1), 3)
	assert.Len(t, s.LeadDetails(2), 2)
	assert.Empty(t, s.LeadDetails(5))
	assert.Equal(t, []int{1, 2, 3}, s.ReportIDs())
}

func TestConcurrentAdds(t *testing.T) {
	s := NewDefault()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddLead(validLead(), testNow)
			_ = s.Leads()
		}()
	}
	wg.Wait()

	leads := s.Leads()
	assert.Len(t, leads, 28)
	seen := map[int]bool{}
	for _, l := range leads {
		assert.False(t, seen[l.ID], "duplicate id %d", l.ID)
		seen[l.ID] = true
	}
}
