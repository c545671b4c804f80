// Package schema describes the series_data columns once: their order, display
// names and how each value is rendered. Report tables, exports and the
// assistant all read from here.
package schema

import (
	"strings"

	"github.com/aliyacapital/seriesdash/internal/models"
)

// Kind selects how a column's values are formatted.
type Kind int

const (
	KindText Kind = iota
	KindCurrency
	KindPercentage
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindCurrency:
		return "currency"
	case KindPercentage:
		return "percentage"
	case KindNumber:
		return "number"
	}
	return "text"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Column is one displayable series_data column.
type Column struct {
	Key     string `json:"key"`
	Display string `json:"display"`
	Kind    Kind   `json:"kind"`
	SQLType string `json:"sql_type"`
	// value extracts the cell from a row; nil means absent.
	value func(r *models.SeriesRow) any
}

// Value returns the column's cell for r, or nil when absent.
func (c Column) Value(r *models.SeriesRow) any {
	if c.value == nil || r == nil {
		return nil
	}
	return c.value(r)
}

func text(get func(r *models.SeriesRow) string) func(r *models.SeriesRow) any {
	return func(r *models.SeriesRow) any { return get(r) }
}

func nullableText(get func(r *models.SeriesRow) *string) func(r *models.SeriesRow) any {
	return func(r *models.SeriesRow) any {
		if p := get(r); p != nil {
			return *p
		}
		return nil
	}
}

func num(get func(r *models.SeriesRow) *float64) func(r *models.SeriesRow) any {
	return func(r *models.SeriesRow) any {
		if p := get(r); p != nil {
			return *p
		}
		return nil
	}
}

var columns = []Column{
	{"sheet_name", "Series", KindText, "text", text(func(r *models.SeriesRow) string { return r.SheetName })},
	{"spv", "SPV", KindText, "text", text(func(r *models.SeriesRow) string { return r.SPV })},
	{"fund", "Fund", KindText, "text", text(func(r *models.SeriesRow) string { return r.Fund })},
	{"class", "Class", KindText, "text", text(func(r *models.SeriesRow) string { return r.Class })},
	{"broker", "Broker", KindText, "text", text(func(r *models.SeriesRow) string { return r.Broker })},
	{"investor", "Investor", KindText, "text", text(func(r *models.SeriesRow) string { return r.Investor })},
	{"side_letter", "Side Letter", KindText, "text", nullableText(func(r *models.SeriesRow) *string { return r.SideLetter })},
	{"sl_notes", "SL Notes", KindText, "text", nullableText(func(r *models.SeriesRow) *string { return r.SLNotes })},
	{"rm", "RM", KindText, "text", text(func(r *models.SeriesRow) string { return r.RM })},
	{"percent_rm", "% RM", KindPercentage, "numeric", num(func(r *models.SeriesRow) *float64 { return r.PercentRM })},
	{"solicitor", "Solicitor", KindText, "text", text(func(r *models.SeriesRow) string { return r.Solicitor })},
	{"percent_solicitor", "% Solicitor", KindPercentage, "numeric", num(func(r *models.SeriesRow) *float64 { return r.PercentSolicitor })},
	{"model", "Model", KindText, "text", text(func(r *models.SeriesRow) string { return r.Model })},
	{"num_shares", "# Shares", KindNumber, "numeric", num(func(r *models.SeriesRow) *float64 { return r.NumShares })},
	{"percent_ownership", "% Ownership", KindPercentage, "numeric", num(func(r *models.SeriesRow) *float64 { return r.PercentOwnership })},
	{"pps", "PPS", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.PPS })},
	{"basis", "Basis", KindCurrency, "text", nullableText(func(r *models.SeriesRow) *string { return r.Basis })},
	{"subscription_amount", "Subscription Amount", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.SubscriptionAmount })},
	{"spread", "Spread", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.Spread })},
	{"percent_acq_fee", "% Acq Fee", KindPercentage, "numeric", num(func(r *models.SeriesRow) *float64 { return r.PercentAcqFee })},
	{"acq_fee", "$ Acq Fee", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.AcqFee })},
	{"percent_broker_fee", "% Broker Fee", KindPercentage, "numeric", num(func(r *models.SeriesRow) *float64 { return r.PercentBrokerFee })},
	{"broker_fee", "$ Broker Fee", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.BrokerFee })},
	{"percent_mgmt_fee", "% Mgmt Fee", KindPercentage, "numeric", num(func(r *models.SeriesRow) *float64 { return r.PercentMgmtFee })},
	{"net_for_mgmt_fee", "Net For Mgmt Fee", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.NetForMgmtFee })},
	{"mgmt_fee", "$ Mgmt Fee", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.MgmtFee })},
	{"percent_reserve_fee", "% Reserve Fee", KindPercentage, "numeric", num(func(r *models.SeriesRow) *float64 { return r.PercentReserveFee })},
	{"reserve_fee", "$ Reserve Fee", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.ReserveFee })},
	{"percent_spv_reserve", "% SPV Reserve", KindPercentage, "numeric", num(func(r *models.SeriesRow) *float64 { return r.PercentSPVReserve })},
	{"spv_reserve", "$ SPV Reserve", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.SPVReserve })},
	{"loan_fee_percent", "Loan Fee %", KindPercentage, "numeric", num(func(r *models.SeriesRow) *float64 { return r.LoanFeePercent })},
	{"loan_fee", "Loan Fee $", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.LoanFee })},
	{"net_subscription", "Net Subscription", KindCurrency, "numeric", num(func(r *models.SeriesRow) *float64 { return r.NetSubscription })},
}

var byKey = func() map[string]int {
	m := make(map[string]int, len(columns))
	for i, c := range columns {
		m[c.Key] = i
	}
	return m
}()

// Columns returns the display columns in canonical order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// Lookup finds a column by key, case-insensitively.
func Lookup(key string) (Column, bool) {
	i, ok := byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Column{}, false
	}
	return columns[i], true
}

// Keys returns the column keys in canonical order.
func Keys() []string {
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = c.Key
	}
	return keys
}

// DisplayName returns the header for key, or key itself for unknown columns.
func DisplayName(key string) string {
	if c, ok := Lookup(key); ok {
		return c.Display
	}
	return key
}

// OrderColumns puts known columns first in canonical order and appends the
// rest in the order given. Names are returned as given.
func OrderColumns(cols []string) []string {
	given := make(map[string]string, len(cols))
	for _, c := range cols {
		lc := strings.ToLower(c)
		if _, dup := given[lc]; !dup {
			given[lc] = c
		}
	}
	out := make([]string, 0, len(cols))
	used := make(map[string]bool, len(cols))
	for _, c := range columns {
		if name, ok := given[c.Key]; ok {
			out = append(out, name)
			used[name] = true
		}
	}
	for _, c := range cols {
		if used[c] {
			continue
		}
		used[c] = true
		out = append(out, c)
	}
	return out
}

// RowCells renders every column of r for display.
func RowCells(r *models.SeriesRow) []string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = c.Format(c.Value(r))
	}
	return cells
}

// Headers returns the display names in canonical order.
func Headers() []string {
	h := make([]string, len(columns))
	for i, c := range columns {
		h[i] = c.Display
	}
	return h
}
