// ABOUTME: GraphViz visualization MCP handlers
// ABOUTME: Provides the campaign_graph tool for agents
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/crmdash/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type VizHandlers struct {
	generator *viz.GraphGenerator
}

func NewVizHandlers(generator *viz.GraphGenerator) *VizHandlers {
	return &VizHandlers{generator: generator}
}

type CampaignGraphInput struct {
	CampaignID int `json:"campaign_id,omitempty" jsonschema:"Campaign ID (omit for every campaign)"`
}

type CampaignGraphOutput struct {
	CampaignID int    `json:"campaign_id,omitempty"`
	DOTSource  string `json:"dot_source"`
	NodeCount  int    `json:"node_count"`
	EdgeCount  int    `json:"edge_count"`
}

func (h *VizHandlers) CampaignGraph(ctx context.Context, request *mcp.CallToolRequest, input CampaignGraphInput) (*mcp.CallToolResult, CampaignGraphOutput, error) {
	dot, err := h.generator.GenerateCampaignGraph(ctx, input.CampaignID, viz.FormatDOT)
	if err != nil {
		return nil, CampaignGraphOutput{}, fmt.Errorf("failed to generate graph: %w", err)
	}

	// Count nodes and edges for stats
	return nil, CampaignGraphOutput{
		CampaignID: input.CampaignID,
		DOTSource:  dot,
		NodeCount:  strings.Count(dot, "shape="),
		EdgeCount:  strings.Count(dot, "->"),
	}, nil
}
