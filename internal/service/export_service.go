package service

import (
	"io"

	"github.com/civiclens/protest-backend-go/internal/dataset"
	"github.com/civiclens/protest-backend-go/internal/engine"
	"github.com/civiclens/protest-backend-go/internal/models"
)

// ExportService produces row-oriented CSV exports of the filtered view or
// the full dataset.
type ExportService struct {
	data      *dataset.Dataset
	dashboard *DashboardService
}

// NewExportService creates a new export service.
func NewExportService(data *dataset.Dataset, dashboard *DashboardService) *ExportService {
	return &ExportService{
		data:      data,
		dashboard: dashboard,
	}
}

// WriteCSV streams the export to w. With full set, the untouched source
// table is exported; otherwise the rows matching the filter specification.
func (s *ExportService) WriteCSV(w io.Writer, f models.EventFilter, full bool) error {
	var events []*models.Event
	if full {
		events = make([]*models.Event, len(s.data.Events))
		for i := range s.data.Events {
			events[i] = &s.data.Events[i]
		}
	} else {
		rows, err := s.dashboard.Filtered(f)
		if err != nil {
			return err
		}
		events = make([]*models.Event, len(rows))
		for i := range rows {
			events[i] = rows[i].Event
		}
	}
	return engine.ExportCSV(w, s.data, events)
}
