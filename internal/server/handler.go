package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/myusername/poker-results-scraper/internal/config"
	"github.com/myusername/poker-results-scraper/pkg/parser"
	"github.com/myusername/poker-results-scraper/pkg/scraper"
	"github.com/myusername/poker-results-scraper/pkg/stats"
)

// FetcherFactory builds a page fetcher for one request. Injected so handler
// tests can substitute a stub for the network.
type FetcherFactory func(scraper.Options) scraper.Fetcher

// ScrapeRequest is the body of POST /. The optional booleans override the
// configured defaults for a single request.
type ScrapeRequest struct {
	URL                 string `json:"url" validate:"required,url"`
	RenderJavaScript    *bool  `json:"renderJavaScript,omitempty"`
	RequireAnyPrizeCell *bool  `json:"requireAnyPrizeCell,omitempty"`
}

// ScrapeHandler serves the profile-statistics endpoint.
type ScrapeHandler struct {
	cfg        *config.Config
	logger     *slog.Logger
	validate   *validator.Validate
	newFetcher FetcherFactory
}

// NewScrapeHandler creates a handler. A nil factory uses the real fetchers.
func NewScrapeHandler(cfg *config.Config, logger *slog.Logger, factory FetcherFactory) *ScrapeHandler {
	if factory == nil {
		factory = func(opts scraper.Options) scraper.Fetcher { return scraper.New(opts) }
	}
	return &ScrapeHandler{
		cfg:        cfg,
		logger:     logger.With(slog.String("handler", "scrape")),
		validate:   validator.New(),
		newFetcher: factory,
	}
}

// Handle fetches the requested profile page and responds with the player's
// statistics report. Row-level parse failures never fail the request; only
// a bad request body or an upstream fetch failure does.
func (h *ScrapeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest("body must be JSON with a \"url\" field"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err.Error()))
		return
	}

	fetchOpts := scraper.Options{
		Timeout:          h.cfg.Scraper.Timeout,
		RenderJavaScript: h.cfg.Scraper.RenderJavaScript,
		UserAgent:        h.cfg.Scraper.UserAgent,
	}
	if req.RenderJavaScript != nil {
		fetchOpts.RenderJavaScript = *req.RenderJavaScript
	}

	statsOpts := stats.Options{RequireAnyPrizeCell: h.cfg.Stats.RequireAnyPrizeCell}
	if req.RequireAnyPrizeCell != nil {
		statsOpts.RequireAnyPrizeCell = *req.RequireAnyPrizeCell
	}

	html, err := h.newFetcher(fetchOpts).Fetch(r.Context(), req.URL)
	if err != nil {
		var fe *scraper.FetchError
		if errors.As(err, &fe) {
			h.logger.LogAttrs(r.Context(), slog.LevelWarn, "profile fetch failed",
				slog.String("url", req.URL),
				slog.Int("status", fe.StatusCode),
				slog.String("error", err.Error()))
			render.Render(w, r, ErrUpstreamFetch(err.Error()))
			return
		}
		render.Render(w, r, ErrInternal(err.Error()))
		return
	}

	name, rows, err := parser.ExtractProfile(html)
	if err != nil {
		render.Render(w, r, ErrInternal(err.Error()))
		return
	}

	report := stats.Run(name, rows, statsOpts)

	h.logger.LogAttrs(r.Context(), slog.LevelInfo, "report built",
		slog.String("player", report.Player),
		slog.Int("rows", len(rows)),
		slog.Int("tournaments", report.TotalTournaments))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, report)
}
