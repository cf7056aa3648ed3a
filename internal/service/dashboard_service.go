package service

import (
	"math/rand"
	"time"

	"github.com/civiclens/protest-backend-go/internal/cache"
	"github.com/civiclens/protest-backend-go/internal/dataset"
	"github.com/civiclens/protest-backend-go/internal/engine"
	"github.com/civiclens/protest-backend-go/internal/models"
	"github.com/civiclens/protest-backend-go/internal/spatial"
)

// DashboardService wires the engine to the loaded dataset and memoizes the
// two expensive passes (filter, map aggregation) behind the result cache.
type DashboardService struct {
	data   *dataset.Dataset
	store  cache.Store
	ttl    time.Duration
	jitter spatial.JitterConfig
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(data *dataset.Dataset, store cache.Store, ttl time.Duration, jitter spatial.JitterConfig) *DashboardService {
	return &DashboardService{
		data:   data,
		store:  store,
		ttl:    ttl,
		jitter: jitter,
	}
}

// Filtered returns the filtered row set, served from cache when the same
// filter was computed within the TTL window.
func (s *DashboardService) Filtered(f models.EventFilter) ([]models.FilteredEvent, error) {
	return cache.GetOrCompute(s.store, "filter:"+f.CacheKey(), s.ttl, func() ([]models.FilteredEvent, error) {
		return engine.Filter(s.data, f), nil
	})
}

// Events returns the filtered rows projected onto the display columns.
func (s *DashboardService) Events(f models.EventFilter) ([]models.DisplayEvent, error) {
	rows, err := s.Filtered(f)
	if err != nil {
		return nil, err
	}
	events := make([]models.DisplayEvent, len(rows))
	for i := range rows {
		events[i] = rows[i].Display()
	}
	return events, nil
}

// Map returns the spatial aggregation for the filter. Cached alongside the
// filter pass; within a TTL window repeated requests see identical jittered
// positions.
func (s *DashboardService) Map(f models.EventFilter) (*models.MapResult, error) {
	return cache.GetOrCompute(s.store, "map:"+f.CacheKey(), s.ttl, func() (*models.MapResult, error) {
		rows, err := s.Filtered(f)
		if err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return engine.AggregateMap(rows, s.jitter, rng), nil
	})
}

// TimeSeries returns the daily series for the filtered rows.
func (s *DashboardService) TimeSeries(f models.EventFilter) (*models.TimeSeriesResult, error) {
	rows, err := s.Filtered(f)
	if err != nil {
		return nil, err
	}
	return engine.AggregateTimeSeries(rows), nil
}

// KPIs returns the scalar metrics for the filtered rows. The peak-day value comes
// from the same time-series pass the charts render, never a second
// computation.
func (s *DashboardService) KPIs(f models.EventFilter) (models.KPISet, error) {
	rows, err := s.Filtered(f)
	if err != nil {
		return models.KPISet{}, err
	}
	ts := engine.AggregateTimeSeries(rows)
	return engine.Summarize(rows, ts), nil
}

// LocationEvents returns the filtered rows that resolved to one display
// location, for the marker detail panel.
func (s *DashboardService) LocationEvents(f models.EventFilter, label string) ([]models.DisplayEvent, error) {
	rows, err := s.Filtered(f)
	if err != nil {
		return nil, err
	}
	var events []models.DisplayEvent
	for i := range rows {
		if rows[i].LocationLabel == label {
			events = append(events, rows[i].Display())
		}
	}
	return events, nil
}

// Meta returns the dataset summary for the filter controls.
func (s *DashboardService) Meta() models.DatasetMeta {
	return s.data.Meta()
}
