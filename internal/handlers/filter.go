package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aliyacapital/seriesdash/internal/errors"
	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/reports"
)

// parseFilter reads the dashboard filter from the query string. table_type
// defaults to summary rows.
func parseFilter(r *http.Request) (models.RowFilter, error) {
	q := r.URL.Query()
	window, err := models.ParseTimeWindow(q.Get("time_period"))
	if err != nil {
		return models.RowFilter{}, &errors.ErrValidation{Field: "time_period", Message: "must be all, lastMonth or lastYear"}
	}
	f := models.RowFilter{
		TableType: models.RecordType(strings.TrimSpace(q.Get("table_type"))),
		Fund:      strings.TrimSpace(q.Get("fund")),
		SPV:       strings.TrimSpace(q.Get("spv")),
		Class:     strings.TrimSpace(q.Get("class")),
		RM:        strings.TrimSpace(q.Get("rm")),
		Solicitor: strings.TrimSpace(q.Get("solicitor")),
		Investor:  strings.TrimSpace(q.Get("investor")),
		Window:    window,
	}
	if f.TableType == "" {
		f.TableType = models.RecordTypeSummary
	}
	if err := f.Validate(); err != nil {
		return models.RowFilter{}, err
	}
	return f, nil
}

func parseWaterfallOptions(r *http.Request) reports.WaterfallOptions {
	v, _ := strconv.ParseBool(r.URL.Query().Get("exclude_zeros"))
	return reports.WaterfallOptions{ExcludeZeros: v}
}

func parseLimit(r *http.Request, name string, def int) int {
	if s := r.URL.Query().Get(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// wantsDisplay reports whether cells should be rendered for display.
func wantsDisplay(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), "display")
}
