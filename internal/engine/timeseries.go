package engine

import (
	"time"

	"github.com/civiclens/protest-backend-go/internal/models"
	"github.com/civiclens/protest-backend-go/internal/stats"
)

const rollingWindow = 7

// AggregateTimeSeries resamples a filtered view into dense daily buckets
// across the observed date span and derives the momentum, rolling, daily,
// cumulative, and participant series over a shared date axis. Rows without a
// date are excluded; a view with no dated rows yields empty series.
func AggregateTimeSeries(rows []models.FilteredEvent) *models.TimeSeriesResult {
	res := &models.TimeSeriesResult{}

	var min, max time.Time
	dated := 0
	for _, row := range rows {
		if row.Date == nil {
			continue
		}
		d := row.Date.Truncate(24 * time.Hour)
		if dated == 0 || d.Before(min) {
			min = d
		}
		if dated == 0 || d.After(max) {
			max = d
		}
		dated++
	}
	if dated == 0 {
		return res
	}

	days := int(max.Sub(min).Hours()/24) + 1
	counts := make([]int, days)
	sizeSums := make([]float64, days)
	sizeCounts := make([]int, days)
	for _, row := range rows {
		if row.Date == nil {
			continue
		}
		i := int(row.Date.Truncate(24*time.Hour).Sub(min).Hours() / 24)
		counts[i]++
		if row.SizeMean != nil {
			sizeSums[i] += *row.SizeMean
			sizeCounts[i]++
		}
	}

	res.Dates = make([]string, days)
	res.Momentum = make([]float64, days)
	res.Rolling7 = make([]*float64, days)
	res.Daily = counts
	res.Cumulative = make([]int, days)
	res.DailyParticipants = make([]*float64, days)

	running := 0
	for i := 0; i < days; i++ {
		res.Dates[i] = min.AddDate(0, 0, i).Format("2006-01-02")

		// Momentum combines scale and frequency for the day; days with no
		// sized events contribute zero, keeping the series dense.
		res.Momentum[i] = sizeSums[i] * float64(sizeCounts[i])

		if i >= rollingWindow-1 {
			sum := stats.Sum(sizeSums[i-rollingWindow+1 : i+1])
			res.Rolling7[i] = &sum
		}

		running += counts[i]
		res.Cumulative[i] = running

		if sizeCounts[i] > 0 {
			v := sizeSums[i]
			res.DailyParticipants[i] = &v
		}
	}

	res.Trend = fitTrend(min, res.Momentum)
	return res
}

// fitTrend fits an ordinary least-squares line of momentum against the day
// ordinal. With fewer than 2 defined points there is no trend line, which is
// not an error.
func fitTrend(start time.Time, momentum []float64) *models.TrendLine {
	x := make([]float64, len(momentum))
	for i := range momentum {
		x[i] = float64(start.AddDate(0, 0, i).Unix() / 86400)
	}
	fit, ok := stats.LinearRegression(x, momentum)
	if !ok {
		return nil
	}
	values := make([]float64, len(x))
	for i, xi := range x {
		values[i] = fit.Predict(xi)
	}
	return &models.TrendLine{
		Slope:     fit.Slope,
		Intercept: fit.Intercept,
		Values:    values,
	}
}
