package reports

import (
	"sort"

	"github.com/aliyacapital/seriesdash/internal/models"
)

// Pareto sums subscription per investor, sorts descending and attaches the
// running share of the grand total, rounded to two decimals. With a zero
// grand total every cumulative share is zero.
func Pareto(rows []*models.SeriesRow) []models.ParetoPoint {
	groups := GroupBy(rows, ByInvestor)
	points := make([]models.ParetoPoint, 0, len(groups))
	var total float64
	for _, g := range groups {
		sub := Sum(g.Rows, Subscription)
		total += sub
		points = append(points, models.ParetoPoint{Investor: g.Key, Subscription: sub})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Subscription > points[j].Subscription })

	if total == 0 {
		return points
	}
	var running float64
	for i := range points {
		running += points[i].Subscription
		points[i].CumulativePct = round2(running / total * 100)
	}
	return points
}
