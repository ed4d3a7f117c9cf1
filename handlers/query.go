// ABOUTME: Customer, campaign, and advertisement query tool handlers
// ABOUTME: Implements query_customers, query_campaigns, and query_advertisements with summaries
package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/harperreed/crmdash/filter"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type QueryHandlers struct {
	store *store.Store
}

func NewQueryHandlers(s *store.Store) *QueryHandlers {
	return &QueryHandlers{store: s}
}

type QueryInput struct {
	Query  string `json:"query,omitempty" jsonschema:"Search text"`
	Status string `json:"status,omitempty" jsonschema:"Status filter (default All)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type QueryCustomersOutput struct {
	Customers []models.Customer `json:"customers"`
	Shown     int               `json:"shown"`
	Total     int               `json:"total"`
}

func (h *QueryHandlers) QueryCustomers(_ context.Context, request *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, QueryCustomersOutput, error) {
	status, err := checkStatus(input.Status, models.CustomerStatuses)
	if err != nil {
		return nil, QueryCustomersOutput{}, err
	}

	all := h.store.Customers()
	shown := filter.Apply(all, filter.CustomerQuery(input.Query, status))

	return nil, QueryCustomersOutput{
		Customers: limit(shown, input.Limit),
		Shown:     len(shown),
		Total:     len(all),
	}, nil
}

type QueryCampaignsOutput struct {
	Campaigns []models.Campaign     `json:"campaigns"`
	Summary   stats.CampaignSummary `json:"summary"`
	Shown     int                   `json:"shown"`
	Total     int                   `json:"total"`
}

func (h *QueryHandlers) QueryCampaigns(_ context.Context, request *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, QueryCampaignsOutput, error) {
	status, err := checkStatus(input.Status, models.CampaignStatuses)
	if err != nil {
		return nil, QueryCampaignsOutput{}, err
	}

	all := h.store.Campaigns()
	shown := filter.Apply(all, filter.CampaignQuery(input.Query, status))

	return nil, QueryCampaignsOutput{
		Campaigns: limit(shown, input.Limit),
		Summary:   stats.SummarizeCampaigns(all),
		Shown:     len(shown),
		Total:     len(all),
	}, nil
}

type QueryAdsInput struct {
	Query      string `json:"query,omitempty" jsonschema:"Search text matched against ad name and campaign name"`
	Status     string `json:"status,omitempty" jsonschema:"Ad status: Draft, In Review, Approved, Running, Paused, Completed (default All)"`
	Platform   string `json:"platform,omitempty" jsonschema:"Platform such as Google Ads or Facebook (default All)"`
	CampaignID int    `json:"campaign_id,omitempty" jsonschema:"Only ads belonging to this campaign"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type AdOutput struct {
	models.Advertisement
	CampaignName   string  `json:"campaign_name"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

type QueryAdsOutput struct {
	Advertisements []AdOutput      `json:"advertisements"`
	Summary        stats.AdSummary `json:"summary"`
	Shown          int             `json:"shown"`
	Total          int             `json:"total"`
}

func (h *QueryHandlers) QueryAdvertisements(_ context.Context, request *mcp.CallToolRequest, input QueryAdsInput) (*mcp.CallToolResult, QueryAdsOutput, error) {
	status, err := checkStatus(input.Status, models.AdStatuses)
	if err != nil {
		return nil, QueryAdsOutput{}, err
	}

	platform := filter.All
	if input.Platform != "" {
		platform = input.Platform
	}
	if platform != filter.All && !knownPlatform(platform) {
		return nil, QueryAdsOutput{}, fmt.Errorf("invalid platform: %s", platform)
	}

	campaign := ""
	if input.CampaignID != 0 {
		campaign = strconv.Itoa(input.CampaignID)
	}

	all := h.store.Ads()
	shown := filter.Apply(all, filter.AdQuery(input.Query, status, platform, campaign, h.store.CampaignName))

	out := make([]AdOutput, 0, len(shown))
	for _, a := range limit(shown, input.Limit) {
		out = append(out, AdOutput{
			Advertisement:  a,
			CampaignName:   h.store.CampaignName(a.CampaignID),
			CTR:            stats.CTR(a.Clicks, a.Impressions),
			ConversionRate: stats.ConversionRate(a.Conversions, a.Clicks),
		})
	}

	return nil, QueryAdsOutput{
		Advertisements: out,
		Summary:        stats.SummarizeAds(shown),
		Shown:          len(shown),
		Total:          len(all),
	}, nil
}

func knownPlatform(p string) bool {
	for _, known := range models.AdPlatforms {
		if known == p {
			return true
		}
	}
	return false
}
