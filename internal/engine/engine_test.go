package engine

import (
	"time"

	"github.com/civiclens/protest-backend-go/internal/dataset"
	"github.com/civiclens/protest-backend-go/internal/models"
)

// Test fixtures shared by the engine tests.

func fptr(v float64) *float64 { return &v }

func dptr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func newDataset(events ...models.Event) *dataset.Dataset {
	return &dataset.Dataset{Events: events}
}

func filtered(events ...models.Event) []models.FilteredEvent {
	return Filter(newDataset(events...), models.EventFilter{})
}
