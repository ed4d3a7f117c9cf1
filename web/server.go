// ABOUTME: Web UI server with embedded templates
// ABOUTME: Serves the admin dashboard pages, htmx partials, JSON API, and metrics
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/harperreed/crmdash/config"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/harperreed/crmdash/viz"
	"go.uber.org/zap"
)

//go:embed templates/*
var templatesFS embed.FS

type Server struct {
	store     *store.Store
	templates *template.Template
	generator *viz.GraphGenerator
	fmt       *stats.Formatter
	metrics   *Metrics
	limiter   *rateLimiter
	log       *zap.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewServer(s *store.Store, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	f, err := stats.NewFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		store:     s,
		generator: viz.NewGraphGenerator(s, f),
		fmt:       f,
		metrics:   NewMetrics(),
		limiter:   newRateLimiter(cfg.APIRateLimit),
		log:       logger,
		cfg:       cfg,
		now:       time.Now,
	}

	// Helper functions for templates
	funcMap := template.FuncMap{
		"currency": f.Currency,
		"number":   f.Number,
		"pct1":     f.Percent1,
		"pct2":     f.Percent2,
		"usage":    stats.BudgetUsage,
		"tel": func(raw string) template.URL {
			return template.URL(telHref(raw, cfg.PhoneRegion))
		},
		"barWidth": func(count, total int) int {
			if total == 0 {
				return 0
			}
			return count * 100 / total
		},
		"dict": func(kv ...interface{}) map[string]interface{} {
			m := make(map[string]interface{}, len(kv)/2)
			for i := 0; i+1 < len(kv); i += 2 {
				if k, ok := kv[i].(string); ok {
					m[k] = kv[i+1]
				}
			}
			return m
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	srv.templates = tmpl

	return srv, nil
}

// Routes builds the HTTP handler tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	if s.cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/", s.handleDashboard)
	r.Get("/leads", s.handleLeads)
	r.Post("/leads", s.handleAddLead)
	r.Get("/customers", s.handleCustomers)
	r.Get("/campaigns", s.handleCampaigns)
	r.Get("/advertisements", s.handleAdvertisements)
	r.Get("/reports", s.handleReports)
	r.Get("/graphs/campaigns.svg", s.handleCampaignGraph)
	r.Get("/export/{dataset}.xlsx", s.handleExport)

	// Partials for HTMX
	r.Get("/partials/add-lead", s.handleAddLeadPartial)
	r.Get("/partials/followups", s.handleFollowUpsPartial)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", requestIDHeader},
		}))
		r.Use(s.rateLimit)
		r.Get("/leads", s.apiLeads)
		r.Post("/leads", s.apiAddLead)
		r.Get("/leads/{id}/followups", s.apiFollowUps)
		r.Get("/customers", s.apiCustomers)
		r.Get("/campaigns", s.apiCampaigns)
		r.Get("/advertisements", s.apiAdvertisements)
		r.Get("/reports", s.apiReports)
	})

	r.Handle("/metrics", s.metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting web server", zap.String("addr", s.cfg.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("shutting down web server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func (s *Server) renderTemplate(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	// Render into a buffer first so a template error can still become a 500
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.serverError(w, r, fmt.Errorf("failed to render %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.Error(err),
	)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
