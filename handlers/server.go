// ABOUTME: MCP server assembly
// ABOUTME: Registers every dashboard tool, resource, and prompt on one go-sdk server
package handlers

import (
	"strings"

	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/harperreed/crmdash/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server backed by the given store.
func NewServer(s *store.Store, f *stats.Formatter, version string) *mcp.Server {
	leadHandlers := NewLeadHandlers(s)
	queryHandlers := NewQueryHandlers(s)
	reportHandlers := NewReportHandlers(s)
	vizHandlers := NewVizHandlers(viz.NewGraphGenerator(s, f))
	resourceHandlers := NewResourceHandlers(s)
	promptHandlers := NewPromptHandlers(s, f)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "crmdash",
		Version: version,
	}, nil)

	// Register tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_leads",
		Description: "Search leads by name, email, or company with an optional status filter",
	}, leadHandlers.QueryLeads)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_lead",
		Description: "Add a new lead; it is placed first and receives the next id",
	}, leadHandlers.AddLead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_followups",
		Description: "Get the follow-up history for a lead",
	}, leadHandlers.GetFollowUps)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_customers",
		Description: "Search customers by name, email, or company with an optional status filter",
	}, queryHandlers.QueryCustomers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_campaigns",
		Description: "Search marketing campaigns with budget totals across all campaigns",
	}, queryHandlers.QueryCampaigns)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_advertisements",
		Description: "Search advertisements by text, status, platform, or campaign, including CTR and conversion rates",
	}, queryHandlers.QueryAdvertisements)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sales_report",
		Description: "Sales team performance with optional per-person lead drill-down",
	}, reportHandlers.SalesReport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "campaign_graph",
		Description: "GraphViz DOT source linking campaigns to their advertisements",
	}, vizHandlers.CampaignGraph)

	// Register resources
	for _, uri := range ResourceURIs {
		name := strings.TrimPrefix(uri, resourceScheme)
		server.AddResource(&mcp.Resource{
			URI:      uri,
			Name:     name,
			MIMEType: "application/json",
		}, resourceHandlers.ReadResource)
	}
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "crm://leads/{id}",
		Name:        "lead",
		Description: "A single lead with its follow-up history",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	// Register prompts
	for _, p := range Prompts {
		server.AddPrompt(p, promptHandlers.GetPrompt)
	}

	return server
}
