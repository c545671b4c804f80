package reports

import (
	"strings"

	"github.com/aliyacapital/seriesdash/internal/models"
)

// InvestorScatter aggregates each investor's gross subscription against their
// subscription-weighted management fee, in percent. Rows missing an
// investor, a subscription or a management fee rate are skipped.
func InvestorScatter(rows []*models.SeriesRow) models.ScatterSeries {
	usable := make([]*models.SeriesRow, 0, len(rows))
	for _, r := range rows {
		if r == nil || r.SubscriptionAmount == nil || r.PercentMgmtFee == nil {
			continue
		}
		usable = append(usable, r)
	}

	out := models.ScatterSeries{
		Standard:       []models.ScatterPoint{},
		WithSideLetter: []models.ScatterPoint{},
	}
	for _, g := range GroupBy(usable, ByInvestor) {
		p := models.ScatterPoint{Investor: g.Key, SideLetterSeries: []string{}}
		var weighted float64
		seen := make(map[string]bool)
		for _, r := range g.Rows {
			sub := *r.SubscriptionAmount
			p.TotalSubscription += sub
			weighted += sub * *r.PercentMgmtFee * 100
			if r.HasSideLetter() {
				name := strings.TrimSpace(r.SheetName)
				if name != "" && !seen[name] {
					seen[name] = true
					p.SideLetterSeries = append(p.SideLetterSeries, name)
				}
				p.HasSideLetter = true
			}
		}
		if p.TotalSubscription != 0 {
			p.MgmtFeePct = weighted / p.TotalSubscription
		}
		if p.HasSideLetter {
			out.WithSideLetter = append(out.WithSideLetter, p)
		} else {
			out.Standard = append(out.Standard, p)
		}
	}
	return out
}
