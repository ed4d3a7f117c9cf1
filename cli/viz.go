// ABOUTME: Visualization CLI commands
// ABOUTME: Handles the ASCII dashboard and campaign graph generation commands
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/harperreed/crmdash/viz"
)

// DashboardCommand prints the terminal dashboard.
func DashboardCommand(s *store.Store, f *stats.Formatter, out io.Writer) error {
	d := viz.TerminalDashboard{
		Stats:     stats.GenerateDashboardStats(s.Cards(), s.Leads()),
		Campaigns: stats.SummarizeCampaigns(s.Campaigns()),
		Ads:       stats.SummarizeAds(s.Ads()),
		Reports:   stats.SummarizeReports(s.Reports()),
	}

	_, err := fmt.Fprint(out, viz.RenderDashboard(d, f))
	return err
}

// GraphCommand generates the campaign to advertisement graph.
func GraphCommand(ctx context.Context, s *store.Store, f *stats.Formatter, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("graph", flag.ContinueOnError)
	fs.SetOutput(out)
	output := fs.String("output", "", "Output file (default: stdout)")
	format := fs.String("format", string(viz.FormatDOT), "Output format: dot or svg")

	if err := fs.Parse(args); err != nil {
		return err
	}

	campaignID := 0
	if fs.NArg() > 0 {
		id, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("invalid campaign ID: %w", err)
		}
		campaignID = id
	}

	generator := viz.NewGraphGenerator(s, f)
	graph, err := generator.GenerateCampaignGraph(ctx, campaignID, viz.Format(*format))
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(graph), 0644)
	}

	_, err = fmt.Fprintln(out, graph)
	return err
}
