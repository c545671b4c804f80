package reports

import (
	"github.com/aliyacapital/seriesdash/internal/models"
)

// LeaderboardSize is how many entries the SPV and RM leaderboards keep.
const LeaderboardSize = 5

// BuildDashboard computes every dashboard chart from one row set.
func BuildDashboard(rows []*models.SeriesRow, filter models.RowFilter, waterfall WaterfallOptions) *models.Dashboard {
	return &models.Dashboard{
		Filter:       filter,
		RowCount:     len(rows),
		Pareto:       Pareto(rows),
		Waterfall:    Waterfall(rows, waterfall),
		Histogram:    OwnershipHistogram(rows),
		TopSPVs:      TopSPVs(rows, LeaderboardSize),
		TopRMs:       TopRMs(rows, LeaderboardSize),
		NetByClass:   NetByClass(rows),
		GrossByClass: GrossByClass(rows),
		Scatter:      InvestorScatter(rows),
	}
}
