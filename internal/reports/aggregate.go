// Package reports turns filtered series rows into chart- and table-ready
// structures. Every builder is a pure function of its input rows.
package reports

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aliyacapital/seriesdash/internal/models"
)

// KeyFunc extracts a grouping key from a row.
type KeyFunc func(r *models.SeriesRow) string

// Common grouping keys.
var (
	ByInvestor  KeyFunc = func(r *models.SeriesRow) string { return r.Investor }
	ByClass     KeyFunc = func(r *models.SeriesRow) string { return r.Class }
	BySPV       KeyFunc = func(r *models.SeriesRow) string { return r.SPV }
	BySheetName KeyFunc = func(r *models.SeriesRow) string { return r.SheetName }
	ByRM        KeyFunc = func(r *models.SeriesRow) string { return r.RM }
)

// Group is the rows sharing one key, in input order.
type Group struct {
	Key  string
	Rows []*models.SeriesRow
}

// GroupBy buckets rows by key, keeping first-seen key order. Rows whose key
// is blank are left out.
func GroupBy(rows []*models.SeriesRow, key KeyFunc) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range rows {
		if r == nil {
			continue
		}
		k := strings.TrimSpace(key(r))
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

// MetricFunc extracts a nullable numeric from a row.
type MetricFunc func(r *models.SeriesRow) *float64

var (
	Subscription    MetricFunc = func(r *models.SeriesRow) *float64 { return r.SubscriptionAmount }
	NetSubscription MetricFunc = func(r *models.SeriesRow) *float64 { return r.NetSubscription }
)

// Sum adds metric over rows, counting absent values as zero.
func Sum(rows []*models.SeriesRow, metric MetricFunc) float64 {
	var total float64
	for _, r := range rows {
		total += models.Val(metric(r))
	}
	return total
}

// Ranked sums metric per key and sorts descending. Rows with a blank key or
// an absent or zero metric do not contribute. Ties keep first-seen order.
// A positive limit truncates the result.
func Ranked(rows []*models.SeriesRow, key KeyFunc, metric MetricFunc, limit int) []models.RankedEntry {
	contributing := make([]*models.SeriesRow, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		if v := metric(r); v == nil || *v == 0 {
			continue
		}
		contributing = append(contributing, r)
	}

	groups := GroupBy(contributing, key)
	out := make([]models.RankedEntry, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.RankedEntry{Label: g.Key, Value: Sum(g.Rows, metric)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopSPVs is the SPV leaderboard by gross subscription.
func TopSPVs(rows []*models.SeriesRow, n int) []models.RankedEntry {
	return Ranked(rows, BySPV, Subscription, n)
}

// TopRMs is the relationship-manager leaderboard by gross subscription.
func TopRMs(rows []*models.SeriesRow, n int) []models.RankedEntry {
	return Ranked(rows, ByRM, Subscription, n)
}

// NetByClass is net subscription per class, largest first.
func NetByClass(rows []*models.SeriesRow) []models.RankedEntry {
	return Ranked(rows, ByClass, NetSubscription, 0)
}

// GrossByClass is gross subscription per class, largest first.
func GrossByClass(rows []*models.SeriesRow) []models.RankedEntry {
	return Ranked(rows, ByClass, Subscription, 0)
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
