// ABOUTME: MCP resource handlers for exposing dashboard data
// ABOUTME: Provides read-only JSON views of leads, customers, campaigns, ads, reports, and the pipeline
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const resourceScheme = "crm://"

// ResourceURIs lists the fixed resources registered on the server.
var ResourceURIs = []string{
	"crm://leads",
	"crm://customers",
	"crm://campaigns",
	"crm://advertisements",
	"crm://reports",
	"crm://pipeline",
}

type ResourceHandlers struct {
	store *store.Store
}

func NewResourceHandlers(s *store.Store) *ResourceHandlers {
	return &ResourceHandlers{store: s}
}

// ReadResource handles resource read requests
func (h *ResourceHandlers) ReadResource(ctx context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, resourceScheme) {
		return nil, fmt.Errorf("invalid URI scheme: expected %s", resourceScheme)
	}

	parts := strings.Split(strings.TrimPrefix(uri, resourceScheme), "/")

	var payload any
	switch parts[0] {
	case "leads":
		if len(parts) == 1 {
			payload = h.store.Leads()
			break
		}
		lead, err := h.lead(parts[1])
		if err != nil {
			return nil, err
		}
		payload = lead
	case "customers":
		payload = h.store.Customers()
	case "campaigns":
		payload = h.store.Campaigns()
	case "advertisements":
		payload = h.store.Ads()
	case "reports":
		payload = h.store.Reports()
	case "pipeline":
		payload = stats.GenerateDashboardStats(h.store.Cards(), h.store.Leads()).Pipeline
	default:
		return nil, fmt.Errorf("unknown resource: %s", parts[0])
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", parts[0], err)
	}

	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{
		{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}}, nil
}

func (h *ResourceHandlers) lead(idStr string) (any, error) {
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid lead ID: %w", err)
	}

	lead, err := h.store.Lead(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	// Include follow-up history
	return struct {
		Lead      any `json:"lead"`
		FollowUps any `json:"follow_ups"`
	}{lead, h.store.FollowUps(id)}, nil
}
