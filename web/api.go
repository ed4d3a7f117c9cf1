// ABOUTME: JSON API handlers mounted under /api
// ABOUTME: Exposes filtered collections, lead creation, and follow-up history
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/harperreed/crmdash/filter"
	"github.com/harperreed/crmdash/forms"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"go.uber.org/zap"
)

// AdView is an advertisement with its derived fields resolved.
type AdView struct {
	models.Advertisement
	CampaignName   string  `json:"campaignName"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversionRate"`
}

func NewAdViews(ads []models.Advertisement, nameOf func(int) string) []AdView {
	out := make([]AdView, 0, len(ads))
	for _, a := range ads {
		out = append(out, AdView{
			Advertisement:  a,
			CampaignName:   nameOf(a.CampaignID),
			CTR:            stats.CTR(a.Clicks, a.Impressions),
			ConversionRate: stats.ConversionRate(a.Conversions, a.Clicks),
		})
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) apiLeads(w http.ResponseWriter, r *http.Request) {
	all := s.store.Leads()
	shown := filter.Apply(all, filter.LeadQuery(r.URL.Query().Get("q"), queryOr(r, "status", filter.All)))
	s.writeJSON(w, http.StatusOK, map[string]any{
		"leads": shown,
		"shown": len(shown),
		"total": len(all),
	})
}

func (s *Server) apiAddLead(w http.ResponseWriter, r *http.Request) {
	var in models.NewLead
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	values := map[string]string{
		forms.FieldName:    in.Name,
		forms.FieldEmail:   in.Email,
		forms.FieldCompany: in.Company,
		forms.FieldPhone:   in.Phone,
		forms.FieldStatus:  string(in.Status),
		forms.FieldValue:   in.Value,
		forms.FieldSource:  in.Source,
	}
	if errs := forms.Validate(values); len(errs) > 0 {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	lead := s.store.AddLead(forms.ToNewLead(values), s.now())
	s.metrics.LeadsCreated.Inc()
	s.log.Info("lead created", zap.Int("lead_id", lead.ID), zap.String("source", lead.Source))
	s.writeJSON(w, http.StatusCreated, lead)
}

func (s *Server) apiFollowUps(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lead id"})
		return
	}
	if _, err := s.store.Lead(id); errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "lead not found"})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"leadId":    id,
		"followUps": s.store.FollowUps(id),
	})
}

func (s *Server) apiCustomers(w http.ResponseWriter, r *http.Request) {
	all := s.store.Customers()
	shown := filter.Apply(all, filter.CustomerQuery(r.URL.Query().Get("q"), queryOr(r, "status", filter.All)))
	s.writeJSON(w, http.StatusOK, map[string]any{
		"customers": shown,
		"shown":     len(shown),
		"total":     len(all),
	})
}

func (s *Server) apiCampaigns(w http.ResponseWriter, r *http.Request) {
	all := s.store.Campaigns()
	shown := filter.Apply(all, filter.CampaignQuery(r.URL.Query().Get("q"), queryOr(r, "status", filter.All)))
	s.writeJSON(w, http.StatusOK, map[string]any{
		"campaigns": shown,
		"summary":   stats.SummarizeCampaigns(all),
		"shown":     len(shown),
		"total":     len(all),
	})
}

func (s *Server) apiAdvertisements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	all := s.store.Ads()
	shown := filter.Apply(all, filter.AdQuery(
		q.Get("q"),
		queryOr(r, "status", filter.All),
		queryOr(r, "platform", filter.All),
		q.Get("campaign"),
		s.store.CampaignName,
	))
	s.writeJSON(w, http.StatusOK, map[string]any{
		"advertisements": NewAdViews(shown, s.store.CampaignName),
		"summary":        stats.SummarizeAds(shown),
		"shown":          len(shown),
		"total":          len(all),
	})
}

func (s *Server) apiReports(w http.ResponseWriter, r *http.Request) {
	reports := s.store.Reports()
	details := map[string][]models.LeadDetail{}
	for _, id := range s.store.ReportIDs() {
		details[strconv.Itoa(id)] = s.store.LeadDetails(id)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"details": details,
		"summary": stats.SummarizeReports(reports),
	})
}
