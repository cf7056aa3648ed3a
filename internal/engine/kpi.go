package engine

import (
	"github.com/civiclens/protest-backend-go/internal/models"
	"github.com/civiclens/protest-backend-go/internal/stats"
)

// USPopulation is the 2024 U.S. population estimate used for the
// peak-day-share KPI.
const USPopulation = 340_100_000

// Summarize computes the scalar KPIs for a filtered view. The peak-day value
// is taken from the time-series aggregation rather than recomputed, so the
// "largest day" KPI always agrees with the charted series.
func Summarize(rows []models.FilteredEvent, ts *models.TimeSeriesResult) models.KPISet {
	kpi := models.KPISet{TotalEvents: len(rows)}

	var sizes []float64
	missing := 0
	for _, row := range rows {
		if row.SizeMean == nil {
			missing++
			continue
		}
		sizes = append(sizes, *row.SizeMean)
	}

	var dayTotals []float64
	for _, v := range ts.DailyParticipants {
		if v != nil {
			dayTotals = append(dayTotals, *v)
		}
	}

	kpi.PeakDayParticipants = stats.Max(dayTotals)
	kpi.LargestDay = kpi.PeakDayParticipants
	if kpi.PeakDayParticipants > 0 {
		kpi.PercentUSPopulation = 100 * kpi.PeakDayParticipants / USPopulation
	}
	kpi.MeanSize = stats.Mean(sizes)
	kpi.LargestEvent = stats.Max(sizes)
	if kpi.TotalEvents > 0 {
		kpi.PercentMissingSize = 100 * float64(missing) / float64(kpi.TotalEvents)
	}

	return kpi
}
