// ABOUTME: In-memory record store for leads, customers, campaigns, ads, and reports
// ABOUTME: Guards seeded collections with a RWMutex and hands out copies to callers
package store

import (
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/seed"
)

var ErrNotFound = errors.New("not found")

// UnknownCampaign is shown for ads whose campaign id has no matching record.
const UnknownCampaign = "Unknown campaign"

type Store struct {
	mu          sync.RWMutex
	leads       []models.Lead
	customers   []models.Customer
	campaigns   []models.Campaign
	ads         []models.Advertisement
	followUps   map[int][]models.FollowUp
	reports     []models.SalesPersonReport
	leadDetails map[int][]models.LeadDetail
	cards       []models.DashboardCard
	nextLeadID  int
}

// New builds a store from seed data. The data is copied so later mutation of
// the argument has no effect on the store.
func New(data seed.Data) *Store {
	s := &Store{
		leads:       slices.Clone(data.Leads),
		customers:   slices.Clone(data.Customers),
		campaigns:   slices.Clone(data.Campaigns),
		ads:         slices.Clone(data.Ads),
		followUps:   make(map[int][]models.FollowUp, len(data.FollowUps)),
		reports:     slices.Clone(data.Reports),
		leadDetails: make(map[int][]models.LeadDetail, len(data.LeadDetails)),
		cards:       slices.Clone(data.Cards),
	}
	for id, entries := range data.FollowUps {
		s.followUps[id] = slices.Clone(entries)
	}
	for id, rows := range data.LeadDetails {
		s.leadDetails[id] = slices.Clone(rows)
	}

	maxID := 0
	for _, l := range s.leads {
		maxID = max(maxID, l.ID)
	}
	s.nextLeadID = maxID + 1
	return s
}

// NewDefault returns a store loaded with the demo data set.
func NewDefault() *Store {
	return New(seed.Default())
}

// Leads returns all leads, newest insertions first.
func (s *Store) Leads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.leads)
}

func (s *Store) Lead(id int) (models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Lead{}, ErrNotFound
}

// AddLead prepends a lead built from a validated submission. Ids are
// monotonic and never reused.
func (s *Store) AddLead(in models.NewLead, now time.Time) models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if _, ok := models.ParseLeadStatus(string(status)); !ok {
		status = models.LeadNew
	}

	lead := models.Lead{
		ID:        s.nextLeadID,
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Phone:     in.Phone,
		Status:    status,
		Value:     in.Value,
		Source:    in.Source,
		CreatedAt: now.Format("2006-01-02"),
	}
	s.nextLeadID++
	s.leads = slices.Insert(s.leads, 0, lead)
	return lead
}

// FollowUps returns the history for a lead in seeded order. Leads without
// history get an empty slice.
func (s *Store) FollowUps(leadID int) []models.FollowUp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.followUps[leadID])
}

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.customers)
}

func (s *Store) Campaigns() []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.campaigns)
}

func (s *Store) Campaign(id int) (models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Campaign{}, ErrNotFound
}

// CampaignName resolves an ad's campaign name.
func (s *Store) CampaignName(id int) string {
	c, err := s.Campaign(id)
	if err != nil {
		return UnknownCampaign
	}
	return c.Name
}

func (s *Store) Ads() []models.Advertisement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.ads)
}

// AdsByCampaign groups advertisements under their campaign id.
func (s *Store) AdsByCampaign() map[int][]models.Advertisement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int][]models.Advertisement)
	for _, ad := range s.ads {
		out[ad.CampaignID] = append(out[ad.CampaignID], ad)
	}
	return out
}

func (s *Store) Reports() []models.SalesPersonReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.reports)
}

func (s *Store) Report(id int) (models.SalesPersonReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return models.SalesPersonReport{}, ErrNotFound
}

// LeadDetails returns the drill-down rows for a sales person.
func (s *Store) LeadDetails(reportID int) []models.LeadDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.leadDetails[reportID])
}

// ReportIDs lists report ids that have drill-down rows, in ascending order.
func (s *Store) ReportIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.leadDetails))
}

func (s *Store) Cards() []models.DashboardCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.cards)
}

func cloneOrEmpty[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
