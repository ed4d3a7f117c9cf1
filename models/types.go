// ABOUTME: Data models for dashboard entities
// ABOUTME: Defines Lead, Customer, Campaign, Advertisement, FollowUp, and report rows
package models

type LeadStatus string

const (
	LeadNew       LeadStatus = "New"
	LeadContacted LeadStatus = "Contacted"
	LeadQualified LeadStatus = "Qualified"
	LeadProposal  LeadStatus = "Proposal"
	LeadWon       LeadStatus = "Won"
	LeadLost      LeadStatus = "Lost"
)

// LeadStatuses is the pipeline order used by filters, forms, and charts.
var LeadStatuses = []LeadStatus{LeadNew, LeadContacted, LeadQualified, LeadProposal, LeadWon, LeadLost}

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerInactive CustomerStatus = "Inactive"
	CustomerPending  CustomerStatus = "Pending"
)

var CustomerStatuses = []CustomerStatus{CustomerActive, CustomerInactive, CustomerPending}

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "Active"
	CampaignPlanned   CampaignStatus = "Planned"
	CampaignPaused    CampaignStatus = "Paused"
	CampaignCompleted CampaignStatus = "Completed"
)

var CampaignStatuses = []CampaignStatus{CampaignActive, CampaignPlanned, CampaignPaused, CampaignCompleted}

type AdStatus string

const (
	AdDraft     AdStatus = "Draft"
	AdInReview  AdStatus = "In Review"
	AdApproved  AdStatus = "Approved"
	AdRunning   AdStatus = "Running"
	AdPaused    AdStatus = "Paused"
	AdCompleted AdStatus = "Completed"
)

var AdStatuses = []AdStatus{AdDraft, AdInReview, AdApproved, AdRunning, AdPaused, AdCompleted}

// AdPlatforms lists the platform filter buttons in display order.
var AdPlatforms = []string{"Google Ads", "Facebook", "Instagram", "LinkedIn", "YouTube", "Twitter", "Email"}

type FollowUpType string

const (
	FollowUpCall    FollowUpType = "Call"
	FollowUpEmail   FollowUpType = "Email"
	FollowUpMeeting FollowUpType = "Meeting"
	FollowUpNote    FollowUpType = "Note"
)

type Lead struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Company   string     `json:"company"`
	Phone     string     `json:"phone"`
	Status    LeadStatus `json:"status"`
	Value     string     `json:"value"`
	Source    string     `json:"source"`
	CreatedAt string     `json:"createdAt"`
}

// NewLead is a validated form submission before it receives an id and date.
type NewLead struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Company string     `json:"company"`
	Phone   string     `json:"phone"`
	Status  LeadStatus `json:"status"`
	Value   string     `json:"value"`
	Source  string     `json:"source"`
}

type Customer struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Company     string         `json:"company"`
	Phone       string         `json:"phone"`
	Status      CustomerStatus `json:"status"`
	TotalValue  string         `json:"totalValue"`
	LastContact string         `json:"lastContact"`
	JoinedDate  string         `json:"joinedDate"`
}

type Campaign struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Status          CampaignStatus `json:"status"`
	StartDate       string         `json:"startDate"`
	EndDate         string         `json:"endDate"`
	TotalBudget     int64          `json:"totalBudget"`
	SpentBudget     int64          `json:"spentBudget"`
	RemainingBudget int64          `json:"remainingBudget"`
	Channel         string         `json:"channel"`
	TargetAudience  string         `json:"targetAudience"`
	LeadsGenerated  int            `json:"leadsGenerated"`
}

// Drift reports how far the stored remaining budget is from total minus spent.
// Zero means the record is consistent.
func (c Campaign) Drift() int64 {
	return c.TotalBudget - c.SpentBudget - c.RemainingBudget
}

// Advertisement references its campaign by id only; the campaign name is
// resolved through the store.
type Advertisement struct {
	ID          int      `json:"id"`
	CampaignID  int      `json:"campaignId"`
	AdName      string   `json:"adName"`
	Status      AdStatus `json:"status"`
	Platform    string   `json:"platform"`
	AdType      string   `json:"adType"`
	Budget      int64    `json:"budget"`
	Spent       int64    `json:"spent"`
	Impressions int64    `json:"impressions"`
	Clicks      int64    `json:"clicks"`
	Conversions int64    `json:"conversions"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	CreatedDate string   `json:"createdDate"`
}

type FollowUp struct {
	ID          int          `json:"id"`
	Date        string       `json:"date"`
	Type        FollowUpType `json:"type"`
	Description string       `json:"description"`
	Outcome     string       `json:"outcome"`
}

type SalesPersonReport struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	TotalLeads          int     `json:"totalLeads"`
	NewLeads            int     `json:"newLeads"`
	ContactedLeads      int     `json:"contactedLeads"`
	QualifiedLeads      int     `json:"qualifiedLeads"`
	ProposalLeads       int     `json:"proposalLeads"`
	WonLeads            int     `json:"wonLeads"`
	LostLeads           int     `json:"lostLeads"`
	TotalFollowUps      int     `json:"totalFollowUps"`
	AvgFollowUpsPerLead float64 `json:"avgFollowUpsPerLead"`
}

// LeadDetail is a drill-down row under a sales person on the reports page.
type LeadDetail struct {
	ID            int    `json:"id"`
	LeadName      string `json:"leadName"`
	Company       string `json:"company"`
	Status        string `json:"status"`
	FollowUpCount int    `json:"followUpCount"`
	LastContact   string `json:"lastContact"`
}

// DashboardCard is a static stat card on the landing page.
type DashboardCard struct {
	Title   string `json:"title"`
	Value   string `json:"value"`
	Icon    string `json:"icon"`
	Trend   string `json:"trend,omitempty"`
	TrendUp bool   `json:"trendUp"`
}

// ParseLeadStatus returns the matching status and whether it is a known value.
func ParseLeadStatus(s string) (LeadStatus, bool) {
	for _, st := range LeadStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}
