package handlers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/auth"
	"github.com/aliyacapital/seriesdash/internal/export"
	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/reports"
	"github.com/aliyacapital/seriesdash/internal/services"
)

// LookupHandler serves the series and investor views.
type LookupHandler struct {
	reporting    services.ReportingService
	prefs        services.PreferencesService
	seq          *services.Sequencer
	suggestLimit int
	log          *zap.Logger
}

func NewLookupHandler(reporting services.ReportingService, prefs services.PreferencesService, seq *services.Sequencer, suggestLimit int, log *zap.Logger) *LookupHandler {
	if seq == nil {
		seq = services.NewSequencer(0)
	}
	if suggestLimit <= 0 {
		suggestLimit = 10
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LookupHandler{reporting: reporting, prefs: prefs, seq: seq, suggestLimit: suggestLimit, log: log}
}

// ListResponse wraps a list of names.
type ListResponse struct {
	Values []string `json:"values"`
}

// HandleSeries handles GET /api/series
// @Summary List series
// @Tags lookup
// @Produce json
// @Param table_type query string false "tblSeries or tblDetailSeries"
// @Success 200 {object} ListResponse
// @Router /series [get]
func (h *LookupHandler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.reporting.ListSeries, false)
}

// HandleSeriesSuggest handles GET /api/series/suggest?q=
// @Summary Suggest series names
// @Tags lookup
// @Produce json
// @Param q query string true "Substring"
// @Success 200 {object} ListResponse
// @Router /series/suggest [get]
func (h *LookupHandler) HandleSeriesSuggest(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.reporting.ListSeries, true)
}

// HandleInvestors handles GET /api/investors
// @Summary List investors
// @Tags lookup
// @Produce json
// @Success 200 {object} ListResponse
// @Router /investors [get]
func (h *LookupHandler) HandleInvestors(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.reporting.ListInvestors, false)
}

// HandleInvestorSuggest handles GET /api/investors/suggest?q=
// @Summary Suggest investor names
// @Tags lookup
// @Produce json
// @Param q query string true "Substring"
// @Success 200 {object} ListResponse
// @Router /investors/suggest [get]
func (h *LookupHandler) HandleInvestorSuggest(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.reporting.ListInvestors, true)
}

type listSource func(ctx context.Context, tableType models.RecordType) ([]string, error)

func (h *LookupHandler) list(w http.ResponseWriter, r *http.Request, source listSource, suggest bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tableType := models.RecordType(r.URL.Query().Get("table_type"))
	if tableType == "" {
		tableType = models.RecordTypeSummary
	}
	if err := (models.RowFilter{TableType: tableType}).Validate(); err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	values, err := source(r.Context(), tableType)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if values == nil {
		values = []string{}
	}
	if suggest {
		values = reports.Suggest(values, r.URL.Query().Get("q"), parseLimit(r, "limit", h.suggestLimit))
	}
	writeJSON(w, http.StatusOK, ListResponse{Values: values})
}

// selection returns the query parameter if present, else the stored value.
// A fresh selection is remembered for the user.
func (h *LookupHandler) selection(r *http.Request, param string, stored func(*models.UserPreferences) string, remember func(ctx context.Context, email, v string) error) string {
	email := auth.EmailFromContext(r.Context())
	if v := strings.TrimSpace(r.URL.Query().Get(param)); v != "" {
		if email != "" {
			if err := remember(r.Context(), email, v); err != nil {
				h.log.Warn("failed to remember selection", zap.String("param", param), zap.Error(err))
			}
		}
		return v
	}
	if email == "" {
		return ""
	}
	p, err := h.prefs.Get(r.Context(), email)
	if err != nil {
		h.log.Warn("failed to load preferences", zap.Error(err))
		return ""
	}
	return stored(p)
}

func (h *LookupHandler) seriesSelection(r *http.Request) string {
	return h.selection(r, "sheet", func(p *models.UserPreferences) string { return p.LastSeries }, h.prefs.RememberSeries)
}

func (h *LookupHandler) investorSelection(r *http.Request) string {
	return h.selection(r, "investor", func(p *models.UserPreferences) string { return p.LastInvestor }, h.prefs.RememberInvestor)
}

// HandleSeriesRows handles GET /api/series/rows
// @Summary Rows of one series
// @Description Uses ?sheet= or, when absent, the user's last selected series
// @Tags lookup
// @Produce json
// @Param sheet query string false "Series (sheet name)"
// @Param format query string false "display for formatted cells"
// @Success 200 {object} models.SeriesDetail
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Superseded by a newer request"
// @Router /series/rows [get]
func (h *LookupHandler) HandleSeriesRows(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	sheet := h.seriesSelection(r)
	if sheet == "" {
		writeError(w, http.StatusBadRequest, "sheet is required")
		return
	}
	detail, err := sequenced(r, h.seq, "series-rows", func(ctx context.Context) (*models.SeriesDetail, error) {
		return h.reporting.SeriesDetail(ctx, filter, sheet)
	})
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if wantsDisplay(r) {
		writeJSON(w, http.StatusOK, export.SeriesRowsTable(sheet, detail.Rows).Display())
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// HandleInvestorDetail handles GET /api/investors/detail
// @Summary Investor breakdown by class
// @Description Uses ?investor= or, when absent, the user's last selected investor
// @Tags lookup
// @Produce json
// @Param investor query string false "Investor name substring"
// @Param format query string false "display for formatted cells"
// @Success 200 {object} models.InvestorDetail
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Superseded by a newer request"
// @Router /investors/detail [get]
func (h *LookupHandler) HandleInvestorDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	investor := h.investorSelection(r)
	if investor == "" {
		writeError(w, http.StatusBadRequest, "investor is required")
		return
	}
	detail, err := sequenced(r, h.seq, "investor-detail", func(ctx context.Context) (*models.InvestorDetail, error) {
		return h.reporting.InvestorDetail(ctx, filter, investor)
	})
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if wantsDisplay(r) {
		writeJSON(w, http.StatusOK, export.InvestorTable(detail).Display())
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
