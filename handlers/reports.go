// ABOUTME: Sales report MCP tool handler
// ABOUTME: Implements sales_report with team totals and per-person lead drill-down
package handlers

import (
	"context"
	"fmt"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ReportHandlers struct {
	store *store.Store
}

func NewReportHandlers(s *store.Store) *ReportHandlers {
	return &ReportHandlers{store: s}
}

type SalesReportInput struct {
	PersonID int `json:"person_id,omitempty" jsonschema:"Sales person ID for lead drill-down (optional)"`
}

type SalesReportOutput struct {
	Reports []models.SalesPersonReport `json:"reports"`
	Summary stats.ReportSummary        `json:"summary"`
	Person  *models.SalesPersonReport  `json:"person,omitempty"`
	Details []models.LeadDetail        `json:"details,omitempty"`
}

func (h *ReportHandlers) SalesReport(_ context.Context, request *mcp.CallToolRequest, input SalesReportInput) (*mcp.CallToolResult, SalesReportOutput, error) {
	reports := h.store.Reports()
	out := SalesReportOutput{
		Reports: reports,
		Summary: stats.SummarizeReports(reports),
	}

	if input.PersonID != 0 {
		person, err := h.store.Report(input.PersonID)
		if err != nil {
			return nil, SalesReportOutput{}, fmt.Errorf("failed to get sales person %d: %w", input.PersonID, err)
		}
		out.Person = &person
		out.Details = h.store.LeadDetails(person.ID)
	}

	return nil, out, nil
}
