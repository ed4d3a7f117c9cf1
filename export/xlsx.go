// ABOUTME: XLSX export of dashboard datasets
// ABOUTME: Writes one styled sheet per dataset with excelize

package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/xuri/excelize/v2"
)

var ErrUnknownDataset = errors.New("unknown dataset")

// Datasets lists the exportable collections.
var Datasets = []string{"leads", "customers", "campaigns", "advertisements", "reports"}

type table struct {
	sheet   string
	headers []string
	rows    [][]any
}

func buildTable(dataset string, s *store.Store, f *stats.Formatter) (table, error) {
	switch dataset {
	case "leads":
		t := table{sheet: "Leads", headers: []string{"ID", "Name", "Email", "Company", "Phone", "Status", "Value", "Source", "Created At"}}
		for _, l := range s.Leads() {
			t.rows = append(t.rows, []any{l.ID, l.Name, l.Email, l.Company, l.Phone, string(l.Status), l.Value, l.Source, l.CreatedAt})
		}
		return t, nil

	case "customers":
		t := table{sheet: "Customers", headers: []string{"ID", "Name", "Email", "Company", "Phone", "Status", "Total Value", "Last Contact", "Joined"}}
		for _, c := range s.Customers() {
			t.rows = append(t.rows, []any{c.ID, c.Name, c.Email, c.Company, c.Phone, string(c.Status), c.TotalValue, c.LastContact, c.JoinedDate})
		}
		return t, nil

	case "campaigns":
		t := table{sheet: "Campaigns", headers: []string{"ID", "Name", "Status", "Start", "End", "Total Budget", "Spent", "Remaining", "Budget Used %", "Drift", "Channel", "Audience", "Leads"}}
		for _, c := range s.Campaigns() {
			t.rows = append(t.rows, []any{
				c.ID, c.Name, string(c.Status), c.StartDate, c.EndDate,
				c.TotalBudget, c.SpentBudget, c.RemainingBudget,
				stats.BudgetUsage(c.SpentBudget, c.TotalBudget), c.Drift(),
				c.Channel, c.TargetAudience, c.LeadsGenerated,
			})
		}
		return t, nil

	case "advertisements":
		t := table{sheet: "Advertisements", headers: []string{"ID", "Ad Name", "Campaign", "Status", "Platform", "Type", "Budget", "Spent", "Impressions", "Clicks", "Conversions", "CTR %", "Conversion %", "Start", "End"}}
		for _, a := range s.Ads() {
			t.rows = append(t.rows, []any{
				a.ID, a.AdName, s.CampaignName(a.CampaignID), string(a.Status), a.Platform, a.AdType,
				a.Budget, a.Spent, a.Impressions, a.Clicks, a.Conversions,
				stats.CTR(a.Clicks, a.Impressions), stats.ConversionRate(a.Conversions, a.Clicks),
				a.StartDate, a.EndDate,
			})
		}
		return t, nil

	case "reports":
		t := table{sheet: "Reports", headers: []string{"ID", "Sales Person", "Total Leads", "New", "Contacted", "Qualified", "Proposal", "Won", "Lost", "Follow-ups", "Avg / Lead"}}
		for _, r := range s.Reports() {
			t.rows = append(t.rows, []any{
				r.ID, r.Name, r.TotalLeads, r.NewLeads, r.ContactedLeads, r.QualifiedLeads,
				r.ProposalLeads, r.WonLeads, r.LostLeads, r.TotalFollowUps,
				f.Percent1(r.AvgFollowUpsPerLead),
			})
		}
		return t, nil
	}
	return table{}, fmt.Errorf("%w: %q", ErrUnknownDataset, dataset)
}

// Workbook writes dataset as an XLSX document to w.
func Workbook(w io.Writer, dataset string, s *store.Store, fm *stats.Formatter) error {
	t, err := buildTable(dataset, s, fm)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", t.sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range t.headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(t.sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(t.sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for r, row := range t.rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(t.sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	for i := range t.headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(t.sheet, col, col, 18)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
