// Package export renders report tables for display and as spreadsheets.
package export

import (
	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/schema"
)

type Column struct {
	Key    string      `json:"key"`
	Header string      `json:"header"`
	Kind   schema.Kind `json:"kind"`
}

// Table holds raw cell values; nil is an empty cell.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// DisplayTable is a Table rendered to strings.
type DisplayTable struct {
	Columns []Column   `json:"columns"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func (t *Table) Display() DisplayTable {
	d := DisplayTable{
		Columns: t.Columns,
		Headers: make([]string, len(t.Columns)),
		Rows:    make([][]string, 0, len(t.Rows)),
	}
	for i, c := range t.Columns {
		d.Headers[i] = c.Header
	}
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			if i < len(row) {
				cells[i] = schema.FormatValue(c.Kind, row[i])
			}
		}
		d.Rows = append(d.Rows, cells)
	}
	return d
}

func schemaColumn(key string) Column {
	c, _ := schema.Lookup(key)
	return Column{Key: c.Key, Header: c.Display, Kind: c.Kind}
}

// SeriesRowsTable lays rows out in schema order.
func SeriesRowsTable(name string, rows []*models.SeriesRow) *Table {
	cols := schema.Columns()
	t := &Table{Name: name, Columns: make([]Column, len(cols))}
	for i, c := range cols {
		t.Columns[i] = Column{Key: c.Key, Header: c.Display, Kind: c.Kind}
	}
	for _, r := range rows {
		cells := make([]any, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(r)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

var summaryColumns = []Column{
	{"sheet_name", "Series", schema.KindText},
	{"spv", "SPV", schema.KindText},
	{"net", "Net", schema.KindCurrency},
	{"gross", "Gross", schema.KindCurrency},
	{"diff", "Diff", schema.KindCurrency},
	{"shortfall", "Shortfall", schema.KindCurrency},
	{"fees_wired", "Fees Wired", schema.KindCurrency},
	{"diff2", "Diff 2", schema.KindCurrency},
	{"house_investment", "House Investment", schema.KindCurrency},
	{"mgmt_fee", "Mgmt Fee", schema.KindCurrency},
	{"reserve", "Reserve", schema.KindCurrency},
	{"notes", "Notes", schema.KindText},
}

func SeriesSummaryTable(rows []models.SeriesSummaryRow) *Table {
	t := &Table{Name: "Series Summary", Columns: summaryColumns}
	for _, s := range rows {
		t.Rows = append(t.Rows, []any{
			s.SheetName, s.SPV, s.Net, s.Gross, s.Diff,
			floatOrNil(s.Shortfall), floatOrNil(s.FeesWired), floatOrNil(s.Diff2),
			s.HouseInvestment, s.MgmtFee, s.Reserve, s.Notes,
		})
	}
	return t
}

var investorKeys = []string{
	"spv", "fund", "broker", "side_letter", "sl_notes", "rm", "percent_rm",
	"solicitor", "percent_solicitor", "model", "num_shares", "percent_ownership",
	"pps", "basis", "subscription_amount", "spread", "percent_acq_fee", "acq_fee",
	"percent_broker_fee", "broker_fee", "percent_mgmt_fee", "net_for_mgmt_fee",
	"mgmt_fee", "percent_reserve_fee", "reserve_fee", "percent_spv_reserve",
	"spv_reserve", "loan_fee_percent", "loan_fee", "net_subscription",
}

// InvestorTable renders the per-class breakdown, one row per class.
func InvestorTable(d *models.InvestorDetail) *Table {
	t := &Table{Name: "Investor", Columns: []Column{
		schemaColumn("class"),
		{Key: "rows", Header: "Rows", Kind: schema.KindNumber},
	}}
	if d.Investor != "" {
		t.Name = d.Investor
	}
	for _, k := range investorKeys {
		t.Columns = append(t.Columns, schemaColumn(k))
	}
	for i := range d.Classes {
		c := &d.Classes[i]
		t.Rows = append(t.Rows, []any{
			c.Class, c.Rows,
			c.SPV, c.Fund, c.Broker, textOrNil(c.SideLetter), textOrNil(c.SLNotes), c.RM, floatOrNil(c.PercentRM),
			c.Solicitor, floatOrNil(c.PercentSolicitor), c.Model, floatOrNil(c.NumShares), floatOrNil(c.PercentOwnership),
			floatOrNil(c.PPS), textOrNil(c.Basis), c.SubscriptionAmount, c.Spread, c.PercentAcqFee, c.AcqFee,
			c.PercentBrokerFee, c.BrokerFee, c.PercentMgmtFee, c.NetForMgmtFee,
			c.MgmtFee, c.PercentReserveFee, c.ReserveFee, c.PercentSPVReserve,
			c.SPVReserve, c.LoanFeePercent, c.LoanFee, c.NetSubscription,
		})
	}
	return t
}

func floatOrNil(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func textOrNil(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
