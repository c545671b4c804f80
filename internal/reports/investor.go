package reports

import (
	"sort"
	"strings"

	"github.com/aliyacapital/seriesdash/internal/models"
)

// MatchInvestor keeps rows whose trimmed investor name contains selection,
// ignoring case. A blank selection matches nothing.
func MatchInvestor(rows []*models.SeriesRow, selection string) []*models.SeriesRow {
	needle := strings.ToLower(strings.TrimSpace(selection))
	if needle == "" {
		return nil
	}
	var out []*models.SeriesRow
	for _, r := range rows {
		if r == nil {
			continue
		}
		if strings.Contains(strings.ToLower(strings.TrimSpace(r.Investor)), needle) {
			out = append(out, r)
		}
	}
	return out
}

// InvestorBreakdown aggregates the rows matching selection into one line per
// class. Identifiers take the first row's value, amounts are summed and fee
// rates are summed then divided by the number of matching rows across all
// classes.
func InvestorBreakdown(rows []*models.SeriesRow, selection string) models.InvestorDetail {
	matched := MatchInvestor(rows, selection)
	detail := models.InvestorDetail{
		Investor: strings.TrimSpace(selection),
		RowCount: len(matched),
		Classes:  []models.ClassBreakdown{},
	}
	if len(matched) == 0 {
		return detail
	}
	n := float64(len(matched))

	for _, g := range GroupBy(matched, ByClass) {
		first := g.Rows[0]
		c := models.ClassBreakdown{
			Class:            g.Key,
			Rows:             len(g.Rows),
			SPV:              first.SPV,
			Fund:             first.Fund,
			Broker:           first.Broker,
			SideLetter:       first.SideLetter,
			SLNotes:          first.SLNotes,
			RM:               first.RM,
			PercentRM:        first.PercentRM,
			Solicitor:        first.Solicitor,
			PercentSolicitor: first.PercentSolicitor,
			Model:            first.Model,
			PercentOwnership: first.PercentOwnership,
			PPS:              first.PPS,
			Basis:            first.Basis,
		}
		for _, r := range g.Rows {
			if r.NumShares != nil {
				c.NumShares = models.Float(models.Val(c.NumShares) + *r.NumShares)
			}
			c.SubscriptionAmount += models.Val(r.SubscriptionAmount)
			c.Spread += models.Val(r.Spread)
			c.AcqFee += models.Val(r.AcqFee)
			c.BrokerFee += models.Val(r.BrokerFee)
			c.NetForMgmtFee += models.Val(r.NetForMgmtFee)
			c.MgmtFee += models.Val(r.MgmtFee)
			c.ReserveFee += models.Val(r.ReserveFee)
			c.SPVReserve += models.Val(r.SPVReserve)
			c.LoanFee += models.Val(r.LoanFee)
			c.NetSubscription += models.Val(r.NetSubscription)

			c.PercentAcqFee += models.Val(r.PercentAcqFee)
			c.PercentBrokerFee += models.Val(r.PercentBrokerFee)
			c.PercentMgmtFee += models.Val(r.PercentMgmtFee)
			c.PercentReserveFee += models.Val(r.PercentReserveFee)
			c.PercentSPVReserve += models.Val(r.PercentSPVReserve)
			c.LoanFeePercent += models.Val(r.LoanFeePercent)
		}
		// TODO: confirm with the fund team whether rates should average over
		// the class's own rows instead of every matching row.
		c.PercentAcqFee /= n
		c.PercentBrokerFee /= n
		c.PercentMgmtFee /= n
		c.PercentReserveFee /= n
		c.PercentSPVReserve /= n
		c.LoanFeePercent /= n

		detail.Classes = append(detail.Classes, c)
	}
	return detail
}

// Distinct returns the sorted, trimmed, non-blank values of key.
func Distinct(rows []*models.SeriesRow, key KeyFunc) []string {
	groups := GroupBy(rows, key)
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}
	sort.Strings(out)
	return out
}

// Suggest returns the values containing query, ignoring case, up to limit
// entries when limit is positive. A blank query suggests nothing.
func Suggest(values []string, query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []string{}
	if q == "" {
		return out
	}
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			out = append(out, v)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}
