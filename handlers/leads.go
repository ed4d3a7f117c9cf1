// ABOUTME: Lead MCP tool handlers
// ABOUTME: Implements query_leads, add_lead, and get_followups tools
package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/crmdash/filter"
	"github.com/harperreed/crmdash/forms"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultLimit = 10

type LeadHandlers struct {
	store *store.Store
	now   func() time.Time
}

func NewLeadHandlers(s *store.Store) *LeadHandlers {
	return &LeadHandlers{store: s, now: time.Now}
}

type QueryLeadsInput struct {
	Query  string `json:"query,omitempty" jsonschema:"Search text matched against name, email, and company"`
	Status string `json:"status,omitempty" jsonschema:"Lead status: New, Contacted, Qualified, Proposal, Won, Lost (default All)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type QueryLeadsOutput struct {
	Leads []models.Lead `json:"leads"`
	Shown int           `json:"shown"`
	Total int           `json:"total"`
}

func (h *LeadHandlers) QueryLeads(_ context.Context, request *mcp.CallToolRequest, input QueryLeadsInput) (*mcp.CallToolResult, QueryLeadsOutput, error) {
	status, err := checkStatus(input.Status, models.LeadStatuses)
	if err != nil {
		return nil, QueryLeadsOutput{}, err
	}

	all := h.store.Leads()
	shown := filter.Apply(all, filter.LeadQuery(input.Query, status))

	return nil, QueryLeadsOutput{
		Leads: limit(shown, input.Limit),
		Shown: len(shown),
		Total: len(all),
	}, nil
}

type AddLeadInput struct {
	Name    string `json:"name" jsonschema:"Lead name (required)"`
	Email   string `json:"email" jsonschema:"Email address (required)"`
	Company string `json:"company" jsonschema:"Company name (required)"`
	Phone   string `json:"phone" jsonschema:"Phone number (required)"`
	Status  string `json:"status,omitempty" jsonschema:"Initial status (default New)"`
	Value   string `json:"value" jsonschema:"Deal value as display text, e.g. $5,000 (required)"`
	Source  string `json:"source" jsonschema:"Where the lead came from (required)"`
}

func (h *LeadHandlers) AddLead(_ context.Context, request *mcp.CallToolRequest, input AddLeadInput) (*mcp.CallToolResult, models.Lead, error) {
	values := map[string]string{
		forms.FieldName:    input.Name,
		forms.FieldEmail:   input.Email,
		forms.FieldCompany: input.Company,
		forms.FieldPhone:   input.Phone,
		forms.FieldStatus:  input.Status,
		forms.FieldValue:   input.Value,
		forms.FieldSource:  input.Source,
	}

	if errs := forms.Validate(values); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, msg := range errs {
			msgs = append(msgs, msg)
		}
		sort.Strings(msgs)
		return nil, models.Lead{}, fmt.Errorf("invalid lead: %s", strings.Join(msgs, "; "))
	}

	lead := h.store.AddLead(forms.ToNewLead(values), h.now())
	return nil, lead, nil
}

type GetFollowUpsInput struct {
	LeadID int `json:"lead_id" jsonschema:"Lead ID (required)"`
}

type GetFollowUpsOutput struct {
	LeadID    int               `json:"lead_id"`
	LeadName  string            `json:"lead_name"`
	FollowUps []models.FollowUp `json:"follow_ups"`
}

func (h *LeadHandlers) GetFollowUps(_ context.Context, request *mcp.CallToolRequest, input GetFollowUpsInput) (*mcp.CallToolResult, GetFollowUpsOutput, error) {
	lead, err := h.store.Lead(input.LeadID)
	if err != nil {
		return nil, GetFollowUpsOutput{}, fmt.Errorf("failed to get lead %d: %w", input.LeadID, err)
	}

	return nil, GetFollowUpsOutput{
		LeadID:    lead.ID,
		LeadName:  lead.Name,
		FollowUps: h.store.FollowUps(lead.ID),
	}, nil
}

// checkStatus maps an empty status to All and rejects values outside the set.
func checkStatus[T ~string](status string, valid []T) (string, error) {
	if status == "" || status == filter.All {
		return filter.All, nil
	}
	names := make([]string, len(valid))
	for i, v := range valid {
		if string(v) == status {
			return status, nil
		}
		names[i] = string(v)
	}
	return "", fmt.Errorf("invalid status: %s (valid: %s)", status, strings.Join(names, ", "))
}

func limit[T any](items []T, n int) []T {
	if n <= 0 {
		n = defaultLimit
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
