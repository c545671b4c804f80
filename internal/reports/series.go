package reports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aliyacapital/seriesdash/internal/errors"
	"github.com/aliyacapital/seriesdash/internal/models"
)

// DefaultHouseNames are the investor names under which the firm invests its
// own capital.
var DefaultHouseNames = []string{"aliya", "aliya capital partners", "aliya capital partners llc"}

// MatchSeries keeps rows whose trimmed sheet name equals selection, ignoring
// case.
func MatchSeries(rows []*models.SeriesRow, selection string) []*models.SeriesRow {
	want := strings.TrimSpace(selection)
	if want == "" {
		return nil
	}
	var out []*models.SeriesRow
	for _, r := range rows {
		if r != nil && strings.EqualFold(strings.TrimSpace(r.SheetName), want) {
			out = append(out, r)
		}
	}
	return out
}

// SeriesSummary builds one line per series. House investment counts
// subscriptions made under any of houseNames, compared trimmed and lower
// cased.
func SeriesSummary(rows []*models.SeriesRow, houseNames []string) []models.SeriesSummaryRow {
	house := make(map[string]bool, len(houseNames))
	for _, n := range houseNames {
		house[strings.ToLower(strings.TrimSpace(n))] = true
	}

	groups := GroupBy(rows, BySheetName)
	out := make([]models.SeriesSummaryRow, 0, len(groups))
	for _, g := range groups {
		s := models.SeriesSummaryRow{SheetName: g.Key, SPV: g.Rows[0].SPV}
		for _, r := range g.Rows {
			sub := models.Val(r.SubscriptionAmount)
			s.Gross += sub
			s.Net += models.Val(r.NetSubscription)
			s.MgmtFee += models.Val(r.MgmtFee)
			s.Reserve += models.Val(r.ReserveFee)
			if house[strings.ToLower(strings.TrimSpace(r.Investor))] {
				s.HouseInvestment += sub
			}
		}
		s.Diff = s.Gross - s.Net
		out = append(out, s)
	}
	return out
}

var summaryText = map[string]func(s *models.SeriesSummaryRow) string{
	"sheet_name": func(s *models.SeriesSummaryRow) string { return s.SheetName },
	"spv":        func(s *models.SeriesSummaryRow) string { return s.SPV },
	"notes":      func(s *models.SeriesSummaryRow) string { return s.Notes },
}

var summaryNumber = map[string]func(s *models.SeriesSummaryRow) *float64{
	"net":              func(s *models.SeriesSummaryRow) *float64 { return &s.Net },
	"gross":            func(s *models.SeriesSummaryRow) *float64 { return &s.Gross },
	"diff":             func(s *models.SeriesSummaryRow) *float64 { return &s.Diff },
	"shortfall":        func(s *models.SeriesSummaryRow) *float64 { return s.Shortfall },
	"fees_wired":       func(s *models.SeriesSummaryRow) *float64 { return s.FeesWired },
	"diff2":            func(s *models.SeriesSummaryRow) *float64 { return s.Diff2 },
	"house_investment": func(s *models.SeriesSummaryRow) *float64 { return &s.HouseInvestment },
	"mgmt_fee":         func(s *models.SeriesSummaryRow) *float64 { return &s.MgmtFee },
	"reserve":          func(s *models.SeriesSummaryRow) *float64 { return &s.Reserve },
}

// SortSeriesSummary orders rows in place by key. Numbers compare numerically
// with absent values last in either direction; text compares case-insensitively.
func SortSeriesSummary(rows []models.SeriesSummaryRow, key string, desc bool) error {
	if key == "" {
		key = "sheet_name"
	}
	if get, ok := summaryText[key]; ok {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := strings.ToLower(get(&rows[i])), strings.ToLower(get(&rows[j]))
			if desc {
				return a > b
			}
			return a < b
		})
		return nil
	}
	get, ok := summaryNumber[key]
	if !ok {
		return &errors.ErrValidation{Field: "sort", Message: fmt.Sprintf("unknown sort column %q", key)}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := get(&rows[i]), get(&rows[j])
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case desc:
			return *a > *b
		default:
			return *a < *b
		}
	})
	return nil
}
