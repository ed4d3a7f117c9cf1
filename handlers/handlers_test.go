// ABOUTME: Tests for the MCP tool, resource, and prompt handlers
// ABOUTME: Calls handlers directly and through an in-memory MCP session
package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/harperreed/crmdash/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestQueryLeads(t *testing.T) {
	h := NewLeadHandlers(store.NewDefault())

	_, out, err := h.QueryLeads(ctx, nil, QueryLeadsInput{Status: "Won"})
	require.NoError(t, err)
	require.Len(t, out.Leads, 1)
	assert.Equal(t, "Emily Davis", out.Leads[0].Name)
	assert.Equal(t, "$15,000", out.Leads[0].Value)
	assert.Equal(t, 8, out.Total)

	_, out, err = h.QueryLeads(ctx, nil, QueryLeadsInput{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, out.Leads, 3)
	assert.Equal(t, 8, out.Shown)

	_, _, err = h.QueryLeads(ctx, nil, QueryLeadsInput{Status: "Closed"})
	assert.ErrorContains(t, err, "invalid status")
}

func TestAddLead(t *testing.T) {
	s := store.NewDefault()
	h := NewLeadHandlers(s)
	h.now = func() time.Time { return time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC) }

	_, lead, err := h.AddLead(ctx, nil, AddLeadInput{
		Name: "Ada", Email: "ada@engine.io", Company: "Analytical", Phone: "555", Value: "$1", Source: "MCP",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, lead.ID)
	assert.Equal(t, models.LeadNew, lead.Status)
	assert.Equal(t, "2024-12-12", lead.CreatedAt)
	assert.Equal(t, lead, s.Leads()[0])
}

func TestAddLeadInvalid(t *testing.T) {
	s := store.NewDefault()
	h := NewLeadHandlers(s)

	_, _, err := h.AddLead(ctx, nil, AddLeadInput{
		Email: "not-an-email", Company: "C", Phone: "1", Value: "$1", Source: "S",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required")
	assert.Contains(t, err.Error(), "Invalid email format")
	assert.Len(t, s.Leads(), 8)
}

func TestGetFollowUps(t *testing.T) {
	h := NewLeadHandlers(store.NewDefault())

	_, out, err := h.GetFollowUps(ctx, nil, GetFollowUpsInput{LeadID: 2})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", out.LeadName)
	assert.Len(t, out.FollowUps, 3)

	_, out, err = h.GetFollowUps(ctx, nil, GetFollowUpsInput{LeadID: 4})
	require.NoError(t, err)
	assert.NotNil(t, out.FollowUps)
	assert.Empty(t, out.FollowUps)

	_, _, err = h.GetFollowUps(ctx, nil, GetFollowUpsInput{LeadID: 99})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQueryAdvertisements(t *testing.T) {
	h := NewQueryHandlers(store.NewDefault())

	_, out, err := h.QueryAdvertisements(ctx, nil, QueryAdsInput{Platform: "Google Ads"})
	require.NoError(t, err)
	var ids []int
	for _, a := range out.Advertisements {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{1, 6, 7}, ids)
	assert.Equal(t, 3.0, out.Advertisements[0].CTR)
	assert.Equal(t, "Summer Product Launch 2024", out.Advertisements[0].CampaignName)
	assert.Equal(t, int64(15500), out.Summary.Budget)

	_, out, err = h.QueryAdvertisements(ctx, nil, QueryAdsInput{CampaignID: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Shown)

	_, _, err = h.QueryAdvertisements(ctx, nil, QueryAdsInput{Platform: "TikTok"})
	assert.ErrorContains(t, err, "invalid platform")
}

func TestQueryCampaignsAndCustomers(t *testing.T) {
	h := NewQueryHandlers(store.NewDefault())

	_, camps, err := h.QueryCampaigns(ctx, nil, QueryInput{Status: "Active"})
	require.NoError(t, err)
	assert.Equal(t, 4, camps.Shown)
	assert.Equal(t, int64(285000), camps.Summary.TotalBudget)

	_, custs, err := h.QueryCustomers(ctx, nil, QueryInput{Query: "innovate"})
	require.NoError(t, err)
	require.Len(t, custs.Customers, 1)
	assert.Equal(t, "Lisa Anderson", custs.Customers[0].Name)
}

func TestSalesReport(t *testing.T) {
	h := NewReportHandlers(store.NewDefault())

	_, out, err := h.SalesReport(ctx, nil, SalesReportInput{})
	require.NoError(t, err)
	assert.Len(t, out.Reports, 5)
	assert.Nil(t, out.Person)
	assert.Equal(t, 9.8, out.Summary.WinRate)

	_, out, err = h.SalesReport(ctx, nil, SalesReportInput{PersonID: 2})
	require.NoError(t, err)
	require.NotNil(t, out.Person)
	assert.Equal(t, "Michael Chen", out.Person.Name)
	assert.Len(t, out.Details, 2)

	_, _, err = h.SalesReport(ctx, nil, SalesReportInput{PersonID: 42})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCampaignGraph(t *testing.T) {
	s := store.NewDefault()
	h := NewVizHandlers(viz.NewGraphGenerator(s, stats.DefaultFormatter()))

	_, out, err := h.CampaignGraph(ctx, nil, CampaignGraphInput{CampaignID: 4})
	require.NoError(t, err)
	assert.Contains(t, out.DOTSource, "ad_6")
	assert.Contains(t, out.DOTSource, "ad_7")
	assert.Equal(t, 2, out.EdgeCount)

	_, _, err = h.CampaignGraph(ctx, nil, CampaignGraphInput{CampaignID: 77})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func readResource(t *testing.T, h *ResourceHandlers, uri string) (string, error) {
	t.Helper()
	res, err := h.ReadResource(ctx, &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}})
	if err != nil {
		return "", err
	}
	require.Len(t, res.Contents, 1)
	return res.Contents[0].Text, nil
}

func TestReadResource(t *testing.T) {
	h := NewResourceHandlers(store.NewDefault())

	text, err := readResource(t, h, "crm://leads/2")
	require.NoError(t, err)
	assert.Contains(t, text, "Initial discovery call")

	text, err = readResource(t, h, "crm://pipeline")
	require.NoError(t, err)
	assert.Contains(t, text, "Qualified")

	_, err = readResource(t, h, "http://leads")
	assert.Error(t, err)
	_, err = readResource(t, h, "crm://invoices")
	assert.Error(t, err)
	_, err = readResource(t, h, "crm://leads/99")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func getPrompt(h *PromptHandlers, name string, args map[string]string) (*mcp.GetPromptResult, error) {
	return h.GetPrompt(ctx, &mcp.GetPromptRequest{Params: &mcp.GetPromptParams{Name: name, Arguments: args}})
}

func TestGetPrompt(t *testing.T) {
	h := NewPromptHandlers(store.NewDefault(), stats.DefaultFormatter())

	res, err := getPrompt(h, "lead-summary", map[string]string{"lead_id": "4"})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	text := res.Messages[0].Content.(*mcp.TextContent).Text
	assert.Contains(t, text, "Sarah Williams")
	assert.Contains(t, text, "No follow-up history")

	res, err = getPrompt(h, "campaign-review", map[string]string{"campaign_id": "1"})
	require.NoError(t, err)
	assert.Contains(t, res.Messages[0].Content.(*mcp.TextContent).Text, "Video Ad - Product Demo")

	_, err = getPrompt(h, "lead-summary", nil)
	assert.ErrorContains(t, err, "lead_id is required")
	_, err = getPrompt(h, "nope", nil)
	assert.Error(t, err)
}

func TestServerListsTools(t *testing.T) {
	server := NewServer(store.NewDefault(), stats.DefaultFormatter(), "test")

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"query_leads", "add_lead", "get_followups", "query_customers",
		"query_campaigns", "query_advertisements", "sales_report", "campaign_graph",
	}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "query_leads",
		Arguments: map[string]any{"status": "Won"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.NotEmpty(t, res.Content)
	assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, "Emily Davis")
}
