// ABOUTME: Terminal dashboard rendering
// ABOUTME: Provides the ASCII dashboard for the lead pipeline and campaign budgets
package viz

import (
	"fmt"
	"strings"

	"github.com/harperreed/crmdash/stats"
)

// TerminalDashboard bundles everything the ASCII dashboard prints.
type TerminalDashboard struct {
	Stats     stats.DashboardStats
	Campaigns stats.CampaignSummary
	Ads       stats.AdSummary
	Reports   stats.ReportSummary
}

func RenderDashboard(d TerminalDashboard, f *stats.Formatter) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  CRM ADMIN DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("OVERVIEW\n")
	for _, c := range d.Stats.Cards {
		arrow := "↓"
		if c.TrendUp {
			arrow = "↑"
		}
		out.WriteString(fmt.Sprintf("  %s %-13s %6s  %s %s\n", c.Icon, c.Title, c.Value, arrow, c.Trend))
	}
	out.WriteString("\n")

	out.WriteString("LEAD PIPELINE\n")
	renderPipeline(&out, d.Stats.Pipeline)
	out.WriteString("\n")

	out.WriteString("RECENT LEADS\n")
	for _, l := range d.Stats.RecentLeads {
		out.WriteString(fmt.Sprintf("  %-16s %-18s %-10s %s\n", l.Name, l.Company, l.Status, l.Value))
	}
	out.WriteString("\n")

	out.WriteString("MARKETING\n")
	out.WriteString(fmt.Sprintf("  📣 budget %s  spent %s  remaining %s\n",
		f.Currency(d.Campaigns.TotalBudget), f.Currency(d.Campaigns.SpentBudget), f.Currency(d.Campaigns.RemainingBudget)))
	out.WriteString(fmt.Sprintf("  📈 %s impressions  %s clicks  CTR %s%%\n\n",
		f.Number(d.Ads.Impressions), f.Number(d.Ads.Clicks), f.Percent2(d.Ads.CTR)))

	out.WriteString("SALES TEAM\n")
	out.WriteString(fmt.Sprintf("  👥 %d leads  %d follow-ups  %d won (%s%%)\n",
		d.Reports.TotalLeads, d.Reports.TotalFollowUps, d.Reports.TotalWon, f.Percent1(d.Reports.WinRate)))

	return out.String()
}

func renderPipeline(out *strings.Builder, pipeline []stats.PipelineStageStats) {
	// Find max count for scaling
	maxCount := 0
	for _, p := range pipeline {
		maxCount = max(maxCount, p.Count)
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, p := range pipeline {
		// Calculate bar length (0-10 blocks)
		barLength := (p.Count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-10s %s  %2d\n", p.Stage, bar, p.Count))
	}
}
