package reports

import (
	"github.com/aliyacapital/seriesdash/internal/models"
)

var feeLabels = map[models.FeeCategory]string{
	models.FeeAcquisition: "Acquisition Fee",
	models.FeeBroker:      "Broker Fee",
	models.FeeManagement:  "Management Fee",
	models.FeeReserve:     "Fund Reserve",
	models.FeeSPVReserve:  "SPV Reserve",
	models.FeeLoan:        "Loan Fee",
}

// WaterfallOptions tunes the waterfall row set.
type WaterfallOptions struct {
	// ExcludeZeros drops rows on which no fee rate is strictly positive.
	ExcludeZeros bool
}

// WithFees keeps the rows carrying at least one strictly positive fee rate.
func WithFees(rows []*models.SeriesRow) []*models.SeriesRow {
	out := make([]*models.SeriesRow, 0, len(rows))
	for _, r := range rows {
		if r != nil && chargesAnyFee(r) {
			out = append(out, r)
		}
	}
	return out
}

func chargesAnyFee(r *models.SeriesRow) bool {
	for _, rate := range r.FeeRates() {
		if models.Val(rate) > 0 {
			return true
		}
	}
	return false
}

// Waterfall expresses each fee category as a share of total subscription and
// leaves the remainder as net. A zero total yields zero fees and a net of 100.
func Waterfall(rows []*models.SeriesRow, opts WaterfallOptions) models.WaterfallSummary {
	if opts.ExcludeZeros {
		rows = WithFees(rows)
	}

	var total float64
	var feeAmount, chargedBase [6]float64
	count := 0
	for _, r := range rows {
		if r == nil {
			continue
		}
		count++
		sub := models.Val(r.SubscriptionAmount)
		total += sub
		for i, rate := range r.FeeRates() {
			rv := models.Val(rate)
			feeAmount[i] += sub * rv
			if rv > 0 {
				chargedBase[i] += sub
			}
		}
	}

	summary := models.WaterfallSummary{
		TotalSubscription: total,
		Fees:              make([]models.FeeLine, len(models.FeeCategories)),
		NetPct:            100,
		RowCount:          count,
	}
	var feePctSum float64
	for i, cat := range models.FeeCategories {
		line := models.FeeLine{Category: cat, Label: feeLabels[cat], Amount: feeAmount[i]}
		if total != 0 {
			line.Pct = feeAmount[i] / total * 100
			line.ChargedPct = chargedBase[i] / total * 100
		}
		if line.Amount != 0 {
			summary.HasFees = true
		}
		feePctSum += line.Pct
		summary.Fees[i] = line
	}
	if total != 0 {
		summary.NetPct = 100 - feePctSum
	}

	summary.Steps = make([]models.WaterfallStep, 0, len(summary.Fees)+2)
	summary.Steps = append(summary.Steps, models.WaterfallStep{Label: "Commitment", Value: 100, Total: true})
	for _, f := range summary.Fees {
		summary.Steps = append(summary.Steps, models.WaterfallStep{Label: f.Label, Value: -f.Pct})
	}
	summary.Steps = append(summary.Steps, models.WaterfallStep{Label: "Net Subscription", Value: summary.NetPct, Total: true})
	return summary
}
