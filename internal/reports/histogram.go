package reports

import (
	"math"

	"github.com/aliyacapital/seriesdash/internal/models"
)

type ownershipBin struct {
	label    string
	min, max float64
}

var ownershipBins = []ownershipBin{
	{"0-1%", 0, 1},
	{"1-5%", 1, 5},
	{"5-10%", 5, 10},
	{">10%", 10, math.Inf(1)},
}

// OwnershipHistogram counts rows per ownership band. Each row with an
// ownership value lands in the first half-open band containing its
// percentage; anything unmatched falls into the last band. Rows without
// ownership are not counted.
func OwnershipHistogram(rows []*models.SeriesRow) []models.HistogramBin {
	bins := make([]models.HistogramBin, len(ownershipBins))
	for i, b := range ownershipBins {
		bins[i] = models.HistogramBin{Label: b.label, Min: b.min}
		if !math.IsInf(b.max, 1) {
			bins[i].Max = models.Float(b.max)
		}
	}
	for _, r := range rows {
		if r == nil || r.PercentOwnership == nil {
			continue
		}
		pct := *r.PercentOwnership * 100
		idx := len(bins) - 1
		for i, b := range ownershipBins {
			if pct >= b.min && pct < b.max {
				idx = i
				break
			}
		}
		bins[idx].Count++
	}
	return bins
}
