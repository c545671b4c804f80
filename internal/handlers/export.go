package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/export"
	"github.com/aliyacapital/seriesdash/internal/models"
)

// ExportHandler serves tables as XLSX workbooks.
type ExportHandler struct {
	lookup    *LookupHandler
	reporting *ReportingHandler
	log       *zap.Logger
}

func NewExportHandler(reporting *ReportingHandler, lookup *LookupHandler, log *zap.Logger) *ExportHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportHandler{lookup: lookup, reporting: reporting, log: log}
}

// HandleSeriesSummaryExport handles GET /api/reports/series-summary/export
// @Summary Download the series summary as XLSX
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param sort query string false "Column to sort by"
// @Param dir query string false "asc or desc"
// @Success 200 {file} file
// @Router /reports/series-summary/export [get]
func (h *ExportHandler) HandleSeriesSummaryExport(w http.ResponseWriter, r *http.Request) {
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
	summary, err := sequenced(r, h.reporting.seq, "series-summary-export", func(ctx context.Context) ([]models.SeriesSummaryRow, error) {
		return h.reporting.service.SeriesSummary(ctx, filter, sortKey, desc)
	})
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	h.send(w, "series-summary", export.SeriesSummaryTable(summary))
}

// HandleInvestorDetailExport handles GET /api/investors/detail/export
// @Summary Download an investor breakdown as XLSX
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param investor query string false "Investor name substring"
// @Success 200 {file} file
// @Router /investors/detail/export [get]
func (h *ExportHandler) HandleInvestorDetailExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	investor := h.lookup.investorSelection(r)
	if investor == "" {
		writeError(w, http.StatusBadRequest, "investor is required")
		return
	}
	detail, err := sequenced(r, h.lookup.seq, "investor-detail-export", func(ctx context.Context) (*models.InvestorDetail, error) {
		return h.lookup.reporting.InvestorDetail(ctx, filter, investor)
	})
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	h.send(w, "investor-"+slug(investor), export.InvestorTable(detail))
}

func (h *ExportHandler) send(w http.ResponseWriter, base string, tables ...*export.Table) {
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, tables...); err != nil {
		h.log.Error("xlsx export failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	name := fmt.Sprintf("%s-%s.xlsx", base, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
