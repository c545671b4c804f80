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

type ReportingHandler struct {
	service services.ReportingService
	seq     *services.Sequencer
	log     *zap.Logger
}

func NewReportingHandler(service services.ReportingService, seq *services.Sequencer, log *zap.Logger) *ReportingHandler {
	if seq == nil {
		seq = services.NewSequencer(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportingHandler{service: service, seq: seq, log: log}
}

// sequenced runs load under the caller's key for view. Requests from one
// user for one view are sequenced so only the latest filter change produces
// a response; older ones fail with ErrSuperseded.
func sequenced[T any](r *http.Request, seq *services.Sequencer, view string, load func(ctx context.Context) (T, error)) (T, error) {
	key := auth.EmailFromContext(r.Context()) + ":" + view
	return services.Run(r.Context(), seq, key, load)
}

// rows loads the filtered rows for view.
func (h *ReportingHandler) rows(r *http.Request, view string, filter models.RowFilter) ([]*models.SeriesRow, error) {
	return sequenced(r, h.seq, view, func(ctx context.Context) ([]*models.SeriesRow, error) {
		return h.service.Rows(ctx, filter)
	})
}

// chart is shared by the single-chart endpoints.
func (h *ReportingHandler) chart(w http.ResponseWriter, r *http.Request, view string, build func([]*models.SeriesRow, models.RowFilter) any) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	rows, err := h.rows(r, view, filter)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, build(rows, filter))
}

// HandleDashboard handles GET /api/reports/dashboard
// @Summary Get dashboard
// @Description Every dashboard chart computed from one filtered row set
// @Tags reports
// @Produce json
// @Param time_period query string false "all, lastMonth or lastYear"
// @Param fund query string false "Fund"
// @Param spv query string false "SPV"
// @Param class query string false "Class"
// @Param investor query string false "Investor name substring"
// @Param rm query string false "Relationship manager"
// @Param solicitor query string false "Solicitor"
// @Param table_type query string false "tblSeries or tblDetailSeries"
// @Param exclude_zeros query bool false "Drop rows that charge no fee before building the waterfall"
// @Success 200 {object} models.Dashboard
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Superseded by a newer request"
// @Failure 500 {object} ErrorResponse
// @Router /reports/dashboard [get]
func (h *ReportingHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	opts := parseWaterfallOptions(r)
	h.chart(w, r, "dashboard", func(rows []*models.SeriesRow, filter models.RowFilter) any {
		return reports.BuildDashboard(rows, filter, opts)
	})
}

// HandlePareto handles GET /api/reports/pareto
// @Summary Investor Pareto
// @Tags reports
// @Produce json
// @Success 200 {array} models.ParetoPoint
// @Router /reports/pareto [get]
func (h *ReportingHandler) HandlePareto(w http.ResponseWriter, r *http.Request) {
	h.chart(w, r, "pareto", func(rows []*models.SeriesRow, _ models.RowFilter) any { return reports.Pareto(rows) })
}

// HandleWaterfall handles GET /api/reports/waterfall
// @Summary Fee waterfall
// @Tags reports
// @Produce json
// @Param exclude_zeros query bool false "Drop rows that charge no fee"
// @Success 200 {object} models.WaterfallSummary
// @Router /reports/waterfall [get]
func (h *ReportingHandler) HandleWaterfall(w http.ResponseWriter, r *http.Request) {
	opts := parseWaterfallOptions(r)
	h.chart(w, r, "waterfall", func(rows []*models.SeriesRow, _ models.RowFilter) any { return reports.Waterfall(rows, opts) })
}

// HandleHistogram handles GET /api/reports/histogram
// @Summary Ownership histogram
// @Tags reports
// @Produce json
// @Success 200 {array} models.HistogramBin
// @Router /reports/histogram [get]
func (h *ReportingHandler) HandleHistogram(w http.ResponseWriter, r *http.Request) {
	h.chart(w, r, "histogram", func(rows []*models.SeriesRow, _ models.RowFilter) any { return reports.OwnershipHistogram(rows) })
}

// HandleTopSPVs handles GET /api/reports/top-spv
// @Summary Top SPVs by subscription
// @Tags reports
// @Produce json
// @Success 200 {array} models.RankedEntry
// @Router /reports/top-spv [get]
func (h *ReportingHandler) HandleTopSPVs(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, "limit", reports.LeaderboardSize)
	h.chart(w, r, "top-spv", func(rows []*models.SeriesRow, _ models.RowFilter) any { return reports.TopSPVs(rows, limit) })
}

// HandleTopRMs handles GET /api/reports/top-rm
// @Summary Top relationship managers by subscription
// @Tags reports
// @Produce json
// @Success 200 {array} models.RankedEntry
// @Router /reports/top-rm [get]
func (h *ReportingHandler) HandleTopRMs(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, "limit", reports.LeaderboardSize)
	h.chart(w, r, "top-rm", func(rows []*models.SeriesRow, _ models.RowFilter) any { return reports.TopRMs(rows, limit) })
}

// ClassCharts is the body of the class chart endpoint.
type ClassCharts struct {
	Net   []models.RankedEntry `json:"net"`
	Gross []models.RankedEntry `json:"gross"`
}

// HandleClasses handles GET /api/reports/classes
// @Summary Net and gross subscription by class
// @Tags reports
// @Produce json
// @Success 200 {object} ClassCharts
// @Router /reports/classes [get]
func (h *ReportingHandler) HandleClasses(w http.ResponseWriter, r *http.Request) {
	h.chart(w, r, "classes", func(rows []*models.SeriesRow, _ models.RowFilter) any {
		return ClassCharts{Net: reports.NetByClass(rows), Gross: reports.GrossByClass(rows)}
	})
}

// HandleScatter handles GET /api/reports/scatter
// @Summary Investor subscription vs management fee
// @Tags reports
// @Produce json
// @Success 200 {object} models.ScatterSeries
// @Router /reports/scatter [get]
func (h *ReportingHandler) HandleScatter(w http.ResponseWriter, r *http.Request) {
	h.chart(w, r, "scatter", func(rows []*models.SeriesRow, _ models.RowFilter) any { return reports.InvestorScatter(rows) })
}

// HandleSeriesSummary handles GET /api/reports/series-summary
// @Summary Series summary table
// @Tags reports
// @Produce json
// @Param sort query string false "Column to sort by"
// @Param dir query string false "asc or desc"
// @Param format query string false "display for formatted cells"
// @Success 200 {array} models.SeriesSummaryRow
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Superseded by a newer request"
// @Router /reports/series-summary [get]
func (h *ReportingHandler) HandleSeriesSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	sortKey := strings.TrimSpace(r.URL.Query().Get("sort"))
	desc := strings.EqualFold(r.URL.Query().Get("dir"), "desc")

	summary, err := sequenced(r, h.seq, "series-summary", func(ctx context.Context) ([]models.SeriesSummaryRow, error) {
		return h.service.SeriesSummary(ctx, filter, sortKey, desc)
	})
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if wantsDisplay(r) {
		writeJSON(w, http.StatusOK, export.SeriesSummaryTable(summary).Display())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
