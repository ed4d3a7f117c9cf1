// ABOUTME: List CLI commands for every dashboard collection
// ABOUTME: Filters leads, customers, campaigns, ads, and reports and prints tab-aligned tables
package cli

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/harperreed/crmdash/filter"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
)

// ListDatasets are the collections accepted by ListCommand.
var ListDatasets = []string{"leads", "customers", "campaigns", "ads", "reports"}

type listFlags struct {
	query    string
	status   string
	platform string
	campaign string
}

// ListCommand prints one collection after applying the filter flags.
func ListCommand(s *store.Store, f *stats.Formatter, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("list requires a dataset: %v", ListDatasets)
	}
	dataset := args[0]

	fs := flag.NewFlagSet("list "+dataset, flag.ContinueOnError)
	fs.SetOutput(out)
	var lf listFlags
	fs.StringVar(&lf.query, "query", "", "Search text")
	fs.StringVar(&lf.status, "status", filter.All, "Status filter")
	fs.StringVar(&lf.platform, "platform", filter.All, "Platform filter (ads only)")
	fs.StringVar(&lf.campaign, "campaign", "", "Campaign ID (ads only)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	switch dataset {
	case "leads":
		listLeads(w, s, lf)
	case "customers":
		listCustomers(w, s, lf)
	case "campaigns":
		listCampaigns(w, s, f, lf)
	case "ads":
		listAds(w, s, f, lf)
	case "reports":
		listReports(w, s, f)
	default:
		return fmt.Errorf("unknown dataset: %s (valid: %v)", dataset, ListDatasets)
	}

	return w.Flush()
}

func listLeads(w io.Writer, s *store.Store, lf listFlags) {
	all := s.Leads()
	shown := filter.Apply(all, filter.LeadQuery(lf.query, lf.status))

	_, _ = fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tEMAIL\tSTATUS\tVALUE\tSOURCE\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t----\t-------\t-----\t------\t-----\t------\t-------")
	for _, l := range shown {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.Name, l.Company, l.Email, l.Status, l.Value, l.Source, l.CreatedAt)
	}
	_, _ = fmt.Fprintf(w, "\nShowing %d of %d leads\n", len(shown), len(all))
}

func listCustomers(w io.Writer, s *store.Store, lf listFlags) {
	all := s.Customers()
	shown := filter.Apply(all, filter.CustomerQuery(lf.query, lf.status))

	_, _ = fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tEMAIL\tSTATUS\tTOTAL VALUE\tLAST CONTACT")
	_, _ = fmt.Fprintln(w, "--\t----\t-------\t-----\t------\t-----------\t------------")
	for _, c := range shown {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Company, c.Email, c.Status, c.TotalValue, c.LastContact)
	}
	_, _ = fmt.Fprintf(w, "\nShowing %d of %d customers\n", len(shown), len(all))
}

func listCampaigns(w io.Writer, s *store.Store, f *stats.Formatter, lf listFlags) {
	all := s.Campaigns()
	shown := filter.Apply(all, filter.CampaignQuery(lf.query, lf.status))

	_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATUS\tCHANNEL\tBUDGET\tSPENT\tUSED\tLEADS")
	_, _ = fmt.Fprintln(w, "--\t----\t------\t-------\t------\t-----\t----\t-----")
	for _, c := range shown {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s%%\t%d\n",
			c.ID, c.Name, c.Status, c.Channel, f.Currency(c.TotalBudget), f.Currency(c.SpentBudget),
			f.Percent1(stats.BudgetUsage(c.SpentBudget, c.TotalBudget)), c.LeadsGenerated)
	}

	sum := stats.SummarizeCampaigns(all)
	_, _ = fmt.Fprintf(w, "\nShowing %d of %d campaigns\n", len(shown), len(all))
	_, _ = fmt.Fprintf(w, "Total budget %s, spent %s, remaining %s\n",
		f.Currency(sum.TotalBudget), f.Currency(sum.SpentBudget), f.Currency(sum.RemainingBudget))
}

func listAds(w io.Writer, s *store.Store, f *stats.Formatter, lf listFlags) {
	all := s.Ads()
	shown := filter.Apply(all, filter.AdQuery(lf.query, lf.status, lf.platform, lf.campaign, s.CampaignName))

	_, _ = fmt.Fprintln(w, "ID\tAD\tCAMPAIGN\tPLATFORM\tSTATUS\tBUDGET\tSPENT\tCTR\tCONV")
	_, _ = fmt.Fprintln(w, "--\t--\t--------\t--------\t------\t------\t-----\t---\t----")
	for _, a := range shown {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s%%\t%s%%\n",
			a.ID, a.AdName, s.CampaignName(a.CampaignID), a.Platform, a.Status,
			f.Currency(a.Budget), f.Currency(a.Spent),
			f.Percent2(stats.CTR(a.Clicks, a.Impressions)),
			f.Percent2(stats.ConversionRate(a.Conversions, a.Clicks)))
	}

	sum := stats.SummarizeAds(shown)
	_, _ = fmt.Fprintf(w, "\nShowing %d of %d advertisements\n", len(shown), len(all))
	_, _ = fmt.Fprintf(w, "Budget %s, spent %s, CTR %s%%\n",
		f.Currency(sum.Budget), f.Currency(sum.Spent), f.Percent2(sum.CTR))
}

func listReports(w io.Writer, s *store.Store, f *stats.Formatter) {
	reports := s.Reports()

	_, _ = fmt.Fprintln(w, "ID\tSALES PERSON\tLEADS\tWON\tLOST\tFOLLOW-UPS\tAVG")
	_, _ = fmt.Fprintln(w, "--\t------------\t-----\t---\t----\t----------\t---")
	for _, r := range reports {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.ID, r.Name, r.TotalLeads, r.WonLeads, r.LostLeads, r.TotalFollowUps, f.Percent1(r.AvgFollowUpsPerLead))
	}

	sum := stats.SummarizeReports(reports)
	_, _ = fmt.Fprintf(w, "\nTeam: %d leads, %d won, win rate %s%%\n", sum.TotalLeads, sum.TotalWon, f.Percent1(sum.WinRate))
}
