// ABOUTME: Campaign to advertisement graph generation
// ABOUTME: Renders campaigns and their ads with graphviz as SVG or DOT

package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatDOT Format = "dot"
)

type GraphGenerator struct {
	store *store.Store
	fmt   *stats.Formatter
}

func NewGraphGenerator(s *store.Store, f *stats.Formatter) *GraphGenerator {
	return &GraphGenerator{store: s, fmt: f}
}

var campaignFill = map[models.CampaignStatus]string{
	models.CampaignActive:    "palegreen",
	models.CampaignPlanned:   "lightblue",
	models.CampaignPaused:    "lightyellow",
	models.CampaignCompleted: "lightgray",
}

// GenerateCampaignGraph draws one box per campaign and one ellipse per ad.
// A non-zero campaignID limits the graph to that campaign.
func (g *GraphGenerator) GenerateCampaignGraph(ctx context.Context, campaignID int, format Format) (string, error) {
	var layout graphviz.Format
	switch format {
	case FormatSVG:
		layout = graphviz.SVG
	case FormatDOT, "":
		layout = graphviz.XDOT
	default:
		return "", fmt.Errorf("unsupported graph format %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetLabel("Campaigns and Advertisements")
	graph.SetRankDir(cgraph.LRRank)

	campaigns := g.store.Campaigns()
	if campaignID != 0 {
		c, err := g.store.Campaign(campaignID)
		if err != nil {
			return "", fmt.Errorf("failed to find campaign %d: %w", campaignID, err)
		}
		campaigns = []models.Campaign{c}
	}

	byCampaign := g.store.AdsByCampaign()
	for _, c := range campaigns {
		cnode, err := graph.CreateNodeByName(fmt.Sprintf("campaign_%d", c.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create campaign node: %w", err)
		}
		cnode.SetLabel(fmt.Sprintf("%s\n%s / %s\n(%s)", c.Name, g.fmt.Currency(c.SpentBudget), g.fmt.Currency(c.TotalBudget), c.Status))
		cnode.SetShape("box")
		cnode.SetStyle("filled")
		cnode.SetFillColor(fillFor(c.Status))

		for _, ad := range byCampaign[c.ID] {
			anode, err := graph.CreateNodeByName(fmt.Sprintf("ad_%d", ad.ID))
			if err != nil {
				return "", fmt.Errorf("failed to create ad node: %w", err)
			}
			anode.SetLabel(fmt.Sprintf("%s\n%s · CTR %s%%", ad.AdName, ad.Platform, g.fmt.Percent2(stats.CTR(ad.Clicks, ad.Impressions))))
			anode.SetShape("ellipse")

			edge, err := graph.CreateEdgeByName(fmt.Sprintf("runs_%d", ad.ID), cnode, anode)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetLabel(string(ad.Status))
			if ad.Status != models.AdRunning {
				edge.SetStyle("dashed")
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, layout, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}

func fillFor(status models.CampaignStatus) string {
	if c, ok := campaignFill[status]; ok {
		return c
	}
	return "white"
}
