// ABOUTME: HTML page handlers for the dashboard
// ABOUTME: Filters store collections per request and renders the layout template
package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/harperreed/crmdash/export"
	"github.com/harperreed/crmdash/filter"
	"github.com/harperreed/crmdash/forms"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/modal"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/harperreed/crmdash/viz"
	"go.uber.org/zap"
)

func statusOptions[T ~string](statuses []T) []string {
	out := []string{filter.All}
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func queryOr(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dash := stats.GenerateDashboardStats(s.store.Cards(), s.store.Leads())

	data := map[string]interface{}{
		"Stats":           dash,
		"Title":           "Dashboard",
		"ContentTemplate": "dashboard-content",
	}

	s.renderTemplate(w, r, http.StatusOK, "layout.html", data)
}

func (s *Server) handleLeads(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")
	status := queryOr(r, "status", filter.All)

	all := s.store.Leads()
	shown := filter.Apply(all, filter.LeadQuery(text, status))

	data := map[string]interface{}{
		"Leads":           shown,
		"Summary":         stats.SummarizeLeads(shown, all),
		"Query":           text,
		"Status":          status,
		"Statuses":        statusOptions(models.LeadStatuses),
		"Title":           "Leads",
		"ContentTemplate": "leads-content",
	}

	s.renderTemplate(w, r, http.StatusOK, "layout.html", data)
}

func (s *Server) addLeadData(form *forms.AddLeadForm) map[string]interface{} {
	return map[string]interface{}{
		"Values":   form.Values(),
		"Errors":   form.Errors(),
		"Statuses": models.LeadStatuses,
	}
}

func (s *Server) handleAddLeadPartial(w http.ResponseWriter, r *http.Request) {
	form := forms.NewAddLeadForm()
	form.Open()
	s.renderTemplate(w, r, http.StatusOK, "add-lead", s.addLeadData(form))
}

func (s *Server) handleAddLead(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := forms.NewAddLeadForm()
	form.Open()
	for _, field := range forms.Fields {
		if v, ok := r.PostForm[field]; ok && len(v) > 0 {
			form.Set(field, v[0])
		}
	}

	newLead, ok := form.Submit()
	if !ok {
		s.renderTemplate(w, r, http.StatusUnprocessableEntity, "add-lead", s.addLeadData(form))
		return
	}

	lead := s.store.AddLead(newLead, s.now())
	s.metrics.LeadsCreated.Inc()
	s.log.Info("lead created", zap.Int("lead_id", lead.ID), zap.String("source", lead.Source))

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/leads")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/leads", http.StatusSeeOther)
}

func (s *Server) handleFollowUpsPartial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("lead"))
	if err != nil {
		http.Error(w, "Invalid lead ID", http.StatusBadRequest)
		return
	}

	lead, err := s.store.Lead(id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Lead not found", http.StatusNotFound)
		return
	}

	entries := s.store.FollowUps(id)
	data := map[string]interface{}{
		"Lead":       lead,
		"Entries":    entries,
		"Empty":      len(entries) == 0,
		"EmptyTitle": modal.EmptyTitle,
		"EmptyHint":  modal.EmptyHint,
	}

	s.renderTemplate(w, r, http.StatusOK, "followups", data)
}

func (s *Server) handleCustomers(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")
	status := queryOr(r, "status", filter.All)

	all := s.store.Customers()
	shown := filter.Apply(all, filter.CustomerQuery(text, status))

	data := map[string]interface{}{
		"Customers":       shown,
		"Shown":           len(shown),
		"Total":           len(all),
		"Query":           text,
		"Status":          status,
		"Statuses":        statusOptions(models.CustomerStatuses),
		"Title":           "Customers",
		"ContentTemplate": "customers-content",
	}

	s.renderTemplate(w, r, http.StatusOK, "layout.html", data)
}

func (s *Server) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")
	status := queryOr(r, "status", filter.All)

	all := s.store.Campaigns()
	shown := filter.Apply(all, filter.CampaignQuery(text, status))

	data := map[string]interface{}{
		"Campaigns":       shown,
		"Summary":         stats.SummarizeCampaigns(all),
		"Shown":           len(shown),
		"Total":           len(all),
		"Query":           text,
		"Status":          status,
		"Statuses":        statusOptions(models.CampaignStatuses),
		"Title":           "Campaigns",
		"ContentTemplate": "campaigns-content",
	}

	s.renderTemplate(w, r, http.StatusOK, "layout.html", data)
}

func (s *Server) handleAdvertisements(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")
	status := queryOr(r, "status", filter.All)
	platform := queryOr(r, "platform", filter.All)
	campaign := r.URL.Query().Get("campaign")

	all := s.store.Ads()
	shown := filter.Apply(all, filter.AdQuery(text, status, platform, campaign, s.store.CampaignName))

	campaignName := ""
	if campaign != "" {
		if id, err := strconv.Atoi(campaign); err == nil {
			campaignName = s.store.CampaignName(id)
		} else {
			campaignName = store.UnknownCampaign
		}
	}

	data := map[string]interface{}{
		"Ads":             NewAdViews(shown, s.store.CampaignName),
		"Summary":         stats.SummarizeAds(shown),
		"Shown":           len(shown),
		"Total":           len(all),
		"Query":           text,
		"Status":          status,
		"Platform":        platform,
		"Campaign":        campaign,
		"CampaignName":    campaignName,
		"Statuses":        statusOptions(models.AdStatuses),
		"Platforms":       append([]string{filter.All}, models.AdPlatforms...),
		"Title":           "Advertisements",
		"ContentTemplate": "advertisements-content",
	}

	s.renderTemplate(w, r, http.StatusOK, "layout.html", data)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	reports := s.store.Reports()

	data := map[string]interface{}{
		"Reports":         reports,
		"Summary":         stats.SummarizeReports(reports),
		"Title":           "Reports",
		"ContentTemplate": "reports-content",
	}

	if person, err := strconv.Atoi(r.URL.Query().Get("person")); err == nil {
		if report, err := s.store.Report(person); err == nil {
			data["Selected"] = report
			data["Details"] = s.store.LeadDetails(person)
		}
	}

	s.renderTemplate(w, r, http.StatusOK, "layout.html", data)
}

func (s *Server) handleCampaignGraph(w http.ResponseWriter, r *http.Request) {
	id := 0
	if raw := r.URL.Query().Get("campaign"); raw != "" {
		var err error
		if id, err = strconv.Atoi(raw); err != nil {
			http.Error(w, "Invalid campaign ID", http.StatusBadRequest)
			return
		}
	}

	svg, err := s.generator.GenerateCampaignGraph(r.Context(), id, viz.FormatSVG)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Campaign not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(svg))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	dataset := chi.URLParam(r, "dataset")

	var buf bytes.Buffer
	err := export.Workbook(&buf, dataset, s.store, s.fmt)
	if errors.Is(err, export.ErrUnknownDataset) {
		http.Error(w, "Unknown dataset", http.StatusNotFound)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dataset+".xlsx"))
	_, _ = buf.WriteTo(w)
}
