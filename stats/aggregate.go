// ABOUTME: Pure aggregation helpers for list pages and the dashboard
// ABOUTME: Sums, ratios, CTR, conversion rate, budget usage, and page summaries
package stats

import (
	"math"

	"github.com/harperreed/crmdash/models"
)

func Sum[T any](items []T, get func(T) int64) int64 {
	var total int64
	for _, item := range items {
		total += get(item)
	}
	return total
}

// Rate is num/den as a percentage rounded to two decimals. A zero
// denominator yields 0.
func Rate(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return round(float64(num)/float64(den)*100, 2)
}

func CTR(clicks, impressions int64) float64 {
	return Rate(clicks, impressions)
}

func ConversionRate(conversions, clicks int64) float64 {
	return Rate(conversions, clicks)
}

// BudgetUsage is spent/total as a percentage rounded to one decimal.
func BudgetUsage(spent, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(spent)/float64(total)*100, 1)
}

// WinRate is won/total as a percentage rounded to one decimal, matching how
// it is displayed.
func WinRate(won, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(won)/float64(total)*100, 1)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

type LeadSummary struct {
	Shown    int
	Total    int
	ByStatus map[models.LeadStatus]int
}

func SummarizeLeads(shown, all []models.Lead) LeadSummary {
	s := LeadSummary{
		Shown:    len(shown),
		Total:    len(all),
		ByStatus: make(map[models.LeadStatus]int),
	}
	for _, l := range all {
		s.ByStatus[l.Status]++
	}
	return s
}

type CampaignSummary struct {
	TotalBudget     int64 `json:"totalBudget"`
	SpentBudget     int64 `json:"spentBudget"`
	RemainingBudget int64 `json:"remainingBudget"`
	LeadsGenerated  int64 `json:"leadsGenerated"`
}

// SummarizeCampaigns totals every campaign regardless of the active filter.
func SummarizeCampaigns(all []models.Campaign) CampaignSummary {
	return CampaignSummary{
		TotalBudget:     Sum(all, func(c models.Campaign) int64 { return c.TotalBudget }),
		SpentBudget:     Sum(all, func(c models.Campaign) int64 { return c.SpentBudget }),
		RemainingBudget: Sum(all, func(c models.Campaign) int64 { return c.RemainingBudget }),
		LeadsGenerated:  Sum(all, func(c models.Campaign) int64 { return int64(c.LeadsGenerated) }),
	}
}

type AdSummary struct {
	Budget      int64   `json:"budget"`
	Spent       int64   `json:"spent"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	CTR         float64 `json:"ctr"`
}

// SummarizeAds totals the ads currently shown.
func SummarizeAds(shown []models.Advertisement) AdSummary {
	s := AdSummary{
		Budget:      Sum(shown, func(a models.Advertisement) int64 { return a.Budget }),
		Spent:       Sum(shown, func(a models.Advertisement) int64 { return a.Spent }),
		Impressions: Sum(shown, func(a models.Advertisement) int64 { return a.Impressions }),
		Clicks:      Sum(shown, func(a models.Advertisement) int64 { return a.Clicks }),
		Conversions: Sum(shown, func(a models.Advertisement) int64 { return a.Conversions }),
	}
	s.CTR = CTR(s.Clicks, s.Impressions)
	return s
}

type ReportSummary struct {
	TotalLeads     int64   `json:"totalLeads"`
	TotalFollowUps int64   `json:"totalFollowUps"`
	TotalWon       int64   `json:"totalWon"`
	WinRate        float64 `json:"winRate"`
}

func SummarizeReports(reports []models.SalesPersonReport) ReportSummary {
	s := ReportSummary{
		TotalLeads:     Sum(reports, func(r models.SalesPersonReport) int64 { return int64(r.TotalLeads) }),
		TotalFollowUps: Sum(reports, func(r models.SalesPersonReport) int64 { return int64(r.TotalFollowUps) }),
		TotalWon:       Sum(reports, func(r models.SalesPersonReport) int64 { return int64(r.WonLeads) }),
	}
	s.WinRate = WinRate(s.TotalWon, s.TotalLeads)
	return s
}

type PipelineStageStats struct {
	Stage models.LeadStatus
	Count int
}

type DashboardStats struct {
	Cards       []models.DashboardCard
	RecentLeads []models.Lead
	Pipeline    []PipelineStageStats
	TotalLeads  int
}

// RecentLeadCount is how many leads the dashboard table shows.
const RecentLeadCount = 4

// GenerateDashboardStats builds the landing page view. Pipeline stages come
// back in pipeline order, including stages with no leads.
func GenerateDashboardStats(cards []models.DashboardCard, leads []models.Lead) DashboardStats {
	stats := DashboardStats{
		Cards:      cards,
		TotalLeads: len(leads),
	}

	n := min(RecentLeadCount, len(leads))
	stats.RecentLeads = append([]models.Lead{}, leads[:n]...)

	counts := make(map[models.LeadStatus]int)
	for _, l := range leads {
		counts[l.Status]++
	}
	for _, st := range models.LeadStatuses {
		stats.Pipeline = append(stats.Pipeline, PipelineStageStats{Stage: st, Count: counts[st]})
	}
	return stats
}
