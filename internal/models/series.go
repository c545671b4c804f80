package models

import (
	"strings"
	"time"
)

// RecordType distinguishes summary rows from detail rows in series_data.
type RecordType string

const (
	RecordTypeSummary RecordType = "tblSeries"
	RecordTypeDetail  RecordType = "tblDetailSeries"
)

// SeriesRow is one fee/ownership/subscription record for one investor in one
// class of one series (SPV). Numeric columns are nullable: a nil pointer means
// the source cell was empty, which is different from an explicit zero.
// Percentages are stored as fractions (0.02 == 2%).
type SeriesRow struct {
	ID         string     `json:"id" gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	SheetName  string     `json:"sheet_name" gorm:"column:sheet_name;type:text"`
	TableType  RecordType `json:"table_type" gorm:"column:table_type;type:text"`
	SPV        string     `json:"spv" gorm:"column:spv;type:text"`
	Fund       string     `json:"fund" gorm:"column:fund;type:text"`
	Class      string     `json:"class" gorm:"column:class;type:text"`
	Broker     string     `json:"broker" gorm:"column:broker;type:text"`
	Investor   string     `json:"investor" gorm:"column:investor;type:text"`
	SideLetter *string    `json:"side_letter" gorm:"column:side_letter;type:text"`
	SLNotes    *string    `json:"sl_notes" gorm:"column:sl_notes;type:text"`
	RM         string     `json:"rm" gorm:"column:rm;type:text"`
	PercentRM  *float64   `json:"percent_rm" gorm:"column:percent_rm"`
	Solicitor  string     `json:"solicitor" gorm:"column:solicitor;type:text"`

	PercentSolicitor   *float64 `json:"percent_solicitor" gorm:"column:percent_solicitor"`
	Model              string   `json:"model" gorm:"column:model;type:text"`
	NumShares          *float64 `json:"num_shares" gorm:"column:num_shares"`
	PercentOwnership   *float64 `json:"percent_ownership" gorm:"column:percent_ownership"`
	PPS                *float64 `json:"pps" gorm:"column:pps"`
	Basis              *string  `json:"basis" gorm:"column:basis;type:text"`
	SubscriptionAmount *float64 `json:"subscription_amount" gorm:"column:subscription_amount"`
	Spread             *float64 `json:"spread" gorm:"column:spread"`

	PercentAcqFee     *float64 `json:"percent_acq_fee" gorm:"column:percent_acq_fee"`
	AcqFee            *float64 `json:"acq_fee" gorm:"column:acq_fee"`
	PercentBrokerFee  *float64 `json:"percent_broker_fee" gorm:"column:percent_broker_fee"`
	BrokerFee         *float64 `json:"broker_fee" gorm:"column:broker_fee"`
	PercentMgmtFee    *float64 `json:"percent_mgmt_fee" gorm:"column:percent_mgmt_fee"`
	NetForMgmtFee     *float64 `json:"net_for_mgmt_fee" gorm:"column:net_for_mgmt_fee"`
	MgmtFee           *float64 `json:"mgmt_fee" gorm:"column:mgmt_fee"`
	PercentReserveFee *float64 `json:"percent_reserve_fee" gorm:"column:percent_reserve_fee"`
	ReserveFee        *float64 `json:"reserve_fee" gorm:"column:reserve_fee"`
	PercentSPVReserve *float64 `json:"percent_spv_reserve" gorm:"column:percent_spv_reserve"`
	SPVReserve        *float64 `json:"spv_reserve" gorm:"column:spv_reserve"`
	LoanFeePercent    *float64 `json:"loan_fee_percent" gorm:"column:loan_fee_percent"`
	LoanFee           *float64 `json:"loan_fee" gorm:"column:loan_fee"`
	NetSubscription   *float64 `json:"net_subscription" gorm:"column:net_subscription"`

	InsertedAt time.Time `json:"inserted_at" gorm:"column:inserted_at;type:timestamptz;autoCreateTime"`
}

func (SeriesRow) TableName() string { return "series_data" }

// Val dereferences a nullable numeric, treating absent as zero.
func Val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Text returns a pointer to s.
func Text(s string) *string { return &s }

// HasSideLetter reports whether the row carries a side letter, either as
// non-blank notes or as a truthy side_letter marker.
func (r *SeriesRow) HasSideLetter() bool {
	if r.SLNotes != nil && strings.TrimSpace(*r.SLNotes) != "" {
		return true
	}
	if r.SideLetter == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(*r.SideLetter)) {
	case "", "no", "n", "false", "0", "none", "-":
		return false
	}
	return true
}

// FeeRates returns the six fee rates that feed the waterfall, in step order.
func (r *SeriesRow) FeeRates() [6]*float64 {
	return [6]*float64{
		r.PercentAcqFee,
		r.PercentBrokerFee,
		r.PercentMgmtFee,
		r.PercentReserveFee,
		r.PercentSPVReserve,
		r.LoanFeePercent,
	}
}
