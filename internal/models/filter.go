package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/aliyacapital/seriesdash/internal/errors"
)

// TimeWindow bounds rows by insertion time relative to now.
type TimeWindow string

const (
	WindowAll       TimeWindow = "all"
	WindowLastMonth TimeWindow = "lastMonth"
	WindowLastYear  TimeWindow = "lastYear"
)

// ParseTimeWindow accepts "", "all", "lastMonth" and "lastYear".
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch TimeWindow(strings.TrimSpace(s)) {
	case "", WindowAll:
		return WindowAll, nil
	case WindowLastMonth:
		return WindowLastMonth, nil
	case WindowLastYear:
		return WindowLastYear, nil
	}
	return "", fmt.Errorf("unknown time period %q", s)
}

// Since returns the inclusive lower bound on inserted_at, or nil for all time.
func (w TimeWindow) Since(now time.Time) *time.Time {
	var t time.Time
	switch w {
	case WindowLastMonth:
		t = now.AddDate(0, -1, 0)
	case WindowLastYear:
		t = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &t
}

// RowFilter is the equality/substring filter applied to series_data.
// Empty fields are not applied.
type RowFilter struct {
	TableType RecordType `json:"table_type,omitempty"`
	Fund      string     `json:"fund,omitempty"`
	SPV       string     `json:"spv,omitempty"`
	Class     string     `json:"class,omitempty"`
	RM        string     `json:"rm,omitempty"`
	Solicitor string     `json:"solicitor,omitempty"`
	// Investor is matched as a case-insensitive substring.
	Investor string     `json:"investor,omitempty"`
	Window   TimeWindow `json:"time_period,omitempty"`
	// SheetName is an exact match used by the series view.
	SheetName string `json:"sheet_name,omitempty"`
}

var cacheKeyEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`)

// CacheKey is a stable string identifying the filter. Values are escaped so
// a "|" inside one field cannot shift it into the next.
func (f RowFilter) CacheKey() string {
	w := f.Window
	if w == "" {
		w = WindowAll
	}
	parts := []string{
		string(f.TableType),
		f.Fund,
		f.SPV,
		f.Class,
		f.RM,
		f.Solicitor,
		strings.ToLower(f.Investor),
		string(w),
		f.SheetName,
	}
	for i, p := range parts {
		parts[i] = cacheKeyEscaper.Replace(p)
	}
	return "rows|" + strings.Join(parts, "|")
}

// Validate checks the enumerated fields.
func (f RowFilter) Validate() error {
	switch f.TableType {
	case "", RecordTypeSummary, RecordTypeDetail:
	default:
		return &errors.ErrValidation{Field: "table_type", Message: "must be tblSeries or tblDetailSeries"}
	}
	if _, err := ParseTimeWindow(string(f.Window)); err != nil {
		return &errors.ErrValidation{Field: "time_period", Message: "must be all, lastMonth or lastYear"}
	}
	return nil
}
