// ABOUTME: MCP prompt handlers for reusable dashboard workflow templates
// ABOUTME: Provides lead-summary, campaign-review, and sales-coaching prompts
package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type PromptHandlers struct {
	store *store.Store
	fmt   *stats.Formatter
}

func NewPromptHandlers(s *store.Store, f *stats.Formatter) *PromptHandlers {
	return &PromptHandlers{store: s, fmt: f}
}

// Prompts describes every prompt GetPrompt can answer.
var Prompts = []*mcp.Prompt{
	{
		Name:        "lead-summary",
		Description: "Summarise a lead and its follow-up history",
		Arguments:   []*mcp.PromptArgument{{Name: "lead_id", Description: "Lead ID", Required: true}},
	},
	{
		Name:        "campaign-review",
		Description: "Review a campaign's budget and advertisement performance",
		Arguments:   []*mcp.PromptArgument{{Name: "campaign_id", Description: "Campaign ID", Required: true}},
	},
	{
		Name:        "sales-coaching",
		Description: "Compare sales people and suggest coaching priorities",
	},
}

// GetPrompt generates the prompt message based on the template
func (h *PromptHandlers) GetPrompt(ctx context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := request.Params.Name
	arguments := request.Params.Arguments
	switch name {
	case "lead-summary":
		return h.getLeadSummaryPrompt(arguments)
	case "campaign-review":
		return h.getCampaignReviewPrompt(arguments)
	case "sales-coaching":
		return h.getSalesCoachingPrompt()
	default:
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}
}

func intArg(args map[string]string, name string) (int, error) {
	raw, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

func userPrompt(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}

func (h *PromptHandlers) getLeadSummaryPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	id, err := intArg(args, "lead_id")
	if err != nil {
		return nil, err
	}

	lead, err := h.store.Lead(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	var promptText strings.Builder
	promptText.WriteString("Please summarise this sales lead:\n\n")
	promptText.WriteString(fmt.Sprintf("Name: %s\n", lead.Name))
	promptText.WriteString(fmt.Sprintf("Company: %s\n", lead.Company))
	promptText.WriteString(fmt.Sprintf("Status: %s\n", lead.Status))
	promptText.WriteString(fmt.Sprintf("Value: %s\n", lead.Value))
	promptText.WriteString(fmt.Sprintf("Source: %s\n", lead.Source))

	followUps := h.store.FollowUps(id)
	if len(followUps) == 0 {
		promptText.WriteString("\nNo follow-up history is logged yet.\n")
	} else {
		promptText.WriteString("\nFollow-up history:\n")
		for _, f := range followUps {
			promptText.WriteString(fmt.Sprintf("- %s %s: %s (outcome: %s)\n", f.Date, f.Type, f.Description, f.Outcome))
		}
	}

	promptText.WriteString("\nPlease provide:")
	promptText.WriteString("\n1. Where this lead stands in the pipeline")
	promptText.WriteString("\n2. The next follow-up to schedule")

	return userPrompt(fmt.Sprintf("Summary for lead: %s", lead.Name), promptText.String()), nil
}

func (h *PromptHandlers) getCampaignReviewPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	id, err := intArg(args, "campaign_id")
	if err != nil {
		return nil, err
	}

	c, err := h.store.Campaign(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaign: %w", err)
	}

	var promptText strings.Builder
	promptText.WriteString("Please review this marketing campaign:\n\n")
	promptText.WriteString(fmt.Sprintf("Campaign: %s (%s)\n", c.Name, c.Status))
	promptText.WriteString(fmt.Sprintf("Channel: %s, audience: %s\n", c.Channel, c.TargetAudience))
	promptText.WriteString(fmt.Sprintf("Budget: %s spent of %s (%s%%)\n",
		h.fmt.Currency(c.SpentBudget), h.fmt.Currency(c.TotalBudget),
		h.fmt.Percent1(stats.BudgetUsage(c.SpentBudget, c.TotalBudget))))
	promptText.WriteString(fmt.Sprintf("Leads generated: %d\n", c.LeadsGenerated))

	ads := h.store.AdsByCampaign()[id]
	if len(ads) > 0 {
		promptText.WriteString("\nAdvertisements:\n")
		for _, a := range ads {
			promptText.WriteString(fmt.Sprintf("- %s on %s (%s): CTR %s%%, conversion %s%%\n",
				a.AdName, a.Platform, a.Status,
				h.fmt.Percent2(stats.CTR(a.Clicks, a.Impressions)),
				h.fmt.Percent2(stats.ConversionRate(a.Conversions, a.Clicks))))
		}
	}

	promptText.WriteString("\nSuggest where to move budget and which ads to pause or scale.")

	return userPrompt(fmt.Sprintf("Review of campaign: %s", c.Name), promptText.String()), nil
}

func (h *PromptHandlers) getSalesCoachingPrompt() (*mcp.GetPromptResult, error) {
	reports := h.store.Reports()
	sum := stats.SummarizeReports(reports)

	var promptText strings.Builder
	promptText.WriteString("Here is the sales team's current performance:\n\n")
	for _, r := range reports {
		promptText.WriteString(fmt.Sprintf("- %s: %d leads, %d won, %d lost, %.1f follow-ups per lead\n",
			r.Name, r.TotalLeads, r.WonLeads, r.LostLeads, r.AvgFollowUpsPerLead))
	}
	promptText.WriteString(fmt.Sprintf("\nTeam win rate: %s%%\n", h.fmt.Percent1(sum.WinRate)))
	promptText.WriteString("\nWho needs coaching first, and on what?")

	return userPrompt("Sales coaching suggestions", promptText.String()), nil
}
