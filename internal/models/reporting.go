package models

// ParetoPoint is one investor on the Pareto chart.
type ParetoPoint struct {
	Investor      string  `json:"investor"`
	Subscription  float64 `json:"subscription"`
	CumulativePct float64 `json:"cumulative_pct"`
}

// FeeCategory names one waterfall deduction.
type FeeCategory string

const (
	FeeAcquisition FeeCategory = "acquisition"
	FeeBroker      FeeCategory = "broker"
	FeeManagement  FeeCategory = "management"
	FeeReserve     FeeCategory = "fund_reserve"
	FeeSPVReserve  FeeCategory = "spv_reserve"
	FeeLoan        FeeCategory = "loan"
)

// FeeCategories lists the waterfall deductions in step order.
var FeeCategories = []FeeCategory{FeeAcquisition, FeeBroker, FeeManagement, FeeReserve, FeeSPVReserve, FeeLoan}

// FeeLine is the dollar and percentage impact of one fee category.
type FeeLine struct {
	Category FeeCategory `json:"category"`
	Label    string      `json:"label"`
	// Amount is the subscription-weighted fee in dollars.
	Amount float64 `json:"amount"`
	// Pct is Amount as a share of total subscription, in percent.
	Pct float64 `json:"pct"`
	// ChargedPct is the share of subscription on rows where the fee applies.
	ChargedPct float64 `json:"charged_pct"`
}

// WaterfallStep is one bar of the waterfall chart.
type WaterfallStep struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Total bool    `json:"total"`
}

// WaterfallSummary is the fee breakdown from gross commitment to net.
type WaterfallSummary struct {
	TotalSubscription float64         `json:"total_subscription"`
	Fees              []FeeLine       `json:"fees"`
	NetPct            float64         `json:"net_pct"`
	Steps             []WaterfallStep `json:"steps"`
	HasFees           bool            `json:"has_fees"`
	RowCount          int             `json:"row_count"`
}

// HistogramBin counts rows whose ownership falls in [Min, Max) percent.
// A nil Max is unbounded.
type HistogramBin struct {
	Label string   `json:"label"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
	Count int      `json:"count"`
}

// RankedEntry is a label with a summed metric, used by leaderboards and
// class charts.
type RankedEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ScatterPoint is one investor on the fee/subscription scatter.
type ScatterPoint struct {
	Investor          string   `json:"investor"`
	TotalSubscription float64  `json:"total_subscription"`
	MgmtFeePct        float64  `json:"mgmt_fee_pct"`
	HasSideLetter     bool     `json:"has_side_letter"`
	SideLetterSeries  []string `json:"side_letter_series"`
}

// ScatterSeries splits scatter points by side-letter status.
type ScatterSeries struct {
	Standard       []ScatterPoint `json:"standard"`
	WithSideLetter []ScatterPoint `json:"with_side_letter"`
}

// ClassBreakdown is the investor view aggregated to one row per class.
// Percentage fields are fractions.
type ClassBreakdown struct {
	Class            string   `json:"class"`
	Rows             int      `json:"rows"`
	SPV              string   `json:"spv"`
	Fund             string   `json:"fund"`
	Broker           string   `json:"broker"`
	SideLetter       *string  `json:"side_letter"`
	SLNotes          *string  `json:"sl_notes"`
	RM               string   `json:"rm"`
	PercentRM        *float64 `json:"percent_rm"`
	Solicitor        string   `json:"solicitor"`
	PercentSolicitor *float64 `json:"percent_solicitor"`
	Model            string   `json:"model"`
	NumShares        *float64 `json:"num_shares"`
	PercentOwnership *float64 `json:"percent_ownership"`
	PPS              *float64 `json:"pps"`
	Basis            *string  `json:"basis"`

	SubscriptionAmount float64 `json:"subscription_amount"`
	Spread             float64 `json:"spread"`
	PercentAcqFee      float64 `json:"percent_acq_fee"`
	AcqFee             float64 `json:"acq_fee"`
	PercentBrokerFee   float64 `json:"percent_broker_fee"`
	BrokerFee          float64 `json:"broker_fee"`
	PercentMgmtFee     float64 `json:"percent_mgmt_fee"`
	NetForMgmtFee      float64 `json:"net_for_mgmt_fee"`
	MgmtFee            float64 `json:"mgmt_fee"`
	PercentReserveFee  float64 `json:"percent_reserve_fee"`
	ReserveFee         float64 `json:"reserve_fee"`
	PercentSPVReserve  float64 `json:"percent_spv_reserve"`
	SPVReserve         float64 `json:"spv_reserve"`
	LoanFeePercent     float64 `json:"loan_fee_percent"`
	LoanFee            float64 `json:"loan_fee"`
	NetSubscription    float64 `json:"net_subscription"`
}

// SeriesSummaryRow is one line of the series summary table.
type SeriesSummaryRow struct {
	SheetName       string   `json:"sheet_name"`
	SPV             string   `json:"spv"`
	Net             float64  `json:"net"`
	Gross           float64  `json:"gross"`
	Diff            float64  `json:"diff"`
	Shortfall       *float64 `json:"shortfall"`
	FeesWired       *float64 `json:"fees_wired"`
	Diff2           *float64 `json:"diff2"`
	HouseInvestment float64  `json:"house_investment"`
	MgmtFee         float64  `json:"mgmt_fee"`
	Reserve         float64  `json:"reserve"`
	Notes           string   `json:"notes"`
}

// Dashboard bundles every chart computed from one filtered row set.
type Dashboard struct {
	Filter       RowFilter        `json:"filter"`
	RowCount     int              `json:"row_count"`
	Pareto       []ParetoPoint    `json:"pareto"`
	Waterfall    WaterfallSummary `json:"waterfall"`
	Histogram    []HistogramBin   `json:"histogram"`
	TopSPVs      []RankedEntry    `json:"top_spvs"`
	TopRMs       []RankedEntry    `json:"top_rms"`
	NetByClass   []RankedEntry    `json:"net_by_class"`
	GrossByClass []RankedEntry    `json:"gross_by_class"`
	Scatter      ScatterSeries    `json:"scatter"`
}

// InvestorDetail is the investor view for one selection.
type InvestorDetail struct {
	Investor string           `json:"investor"`
	RowCount int              `json:"row_count"`
	Classes  []ClassBreakdown `json:"classes"`
}

// SeriesDetail is the series view for one selection.
type SeriesDetail struct {
	SheetName string       `json:"sheet_name"`
	Rows      []*SeriesRow `json:"rows"`
}
