package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aliyacapital/seriesdash/internal/export"
)

func TestExportHandler_SeriesSummary(t *testing.T) {
	svc := &mockReporting{rows: sampleRows()}
	h := NewExportHandler(NewReportingHandler(svc, nil, nil), NewLookupHandler(svc, newMockPrefs(), nil, 0, nil), nil)

	rw := httptest.NewRecorder()
	h.HandleSeriesSummaryExport(rw, httptest.NewRequest(http.MethodGet, "/api/reports/series-summary/export?sort=gross", nil))
	require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	assert.Equal(t, export.ContentType, rw.Header().Get("Content-Type"))
	assert.Contains(t, rw.Header().Get("Content-Disposition"), "series-summary-")

	f, err := excelize.OpenReader(rw.Body)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 1)
}

func TestExportHandler_InvestorDetail(t *testing.T) {
	svc := &mockReporting{rows: sampleRows()}
	h := NewExportHandler(NewReportingHandler(svc, nil, nil), NewLookupHandler(svc, newMockPrefs(), nil, 0, nil), nil)

	rw := httptest.NewRecorder()
	h.HandleInvestorDetailExport(rw, httptest.NewRequest(http.MethodGet, "/api/investors/detail/export?investor=Alice+Holdings", nil))
	require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	assert.Contains(t, rw.Header().Get("Content-Disposition"), "investor-alice-holdings-")

	rw = httptest.NewRecorder()
	h.HandleInvestorDetailExport(rw, httptest.NewRequest(http.MethodGet, "/api/investors/detail/export", nil))
	assert.Equal(t, http.StatusBadRequest, rw.Code)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "alice-holdings-llc", slug("  Alice Holdings, LLC. "))
	assert.Equal(t, "", slug("***"))
}
