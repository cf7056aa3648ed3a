// Package engine implements the filtering, aggregation, and derived-metric
// core of the dashboard: it turns a filter specification plus the loaded
// dataset into filtered row sets, map clusters, time series, and KPIs.
package engine

import (
	"strings"
	"time"

	"github.com/civiclens/protest-backend-go/internal/dataset"
	"github.com/civiclens/protest-backend-go/internal/models"
)

// Filter returns the subset of dataset rows matching all criteria of the
// filter, in source order, with the display location resolved per row. The
// dataset is never mutated; every call produces a fresh slice.
func Filter(ds *dataset.Dataset, f models.EventFilter) []models.FilteredEvent {
	start, end := dateRange(f)
	orgTerms := f.OrgTerms()
	stateSet := make(map[string]struct{}, len(f.States))
	for _, s := range f.States {
		stateSet[s] = struct{}{}
	}

	var out []models.FilteredEvent
	for i := range ds.Events {
		e := &ds.Events[i]
		if !matchDate(e, start, end) {
			continue
		}
		if !matchSize(e, f.SizeFilter) {
			continue
		}
		if !matchOrgs(e, orgTerms) {
			continue
		}
		if len(stateSet) > 0 {
			if _, ok := stateSet[e.State]; !ok {
				continue
			}
		}
		if !matchOutcomes(e, f.Outcomes) {
			continue
		}
		out = append(out, models.FilteredEvent{
			Event:         e,
			LocationLabel: LocationLabel(e),
		})
	}
	return out
}

// dateRange parses the bounds. The date constraint only applies when BOTH
// bounds parse; a single-sided bound applies no date filtering at all. That
// is the source behavior, kept deliberately.
func dateRange(f models.EventFilter) (*time.Time, *time.Time) {
	if f.StartDate == "" || f.EndDate == "" {
		return nil, nil
	}
	start, err := time.Parse("2006-01-02", f.StartDate)
	if err != nil {
		return nil, nil
	}
	end, err := time.Parse("2006-01-02", f.EndDate)
	if err != nil {
		return nil, nil
	}
	return &start, &end
}

func matchDate(e *models.Event, start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	if e.Date == nil {
		return false
	}
	return !e.Date.Before(*start) && !e.Date.After(*end)
}

func matchSize(e *models.Event, mode string) bool {
	switch mode {
	case models.SizeFilterHas:
		return e.SizeMean != nil
	case models.SizeFilterNo:
		return e.SizeMean == nil
	default:
		return true
	}
}

// matchOrgs keeps rows whose organizations field contains ANY term as a
// literal substring. Organizations are lowercased at load, terms at parse.
func matchOrgs(e *models.Event, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	for _, t := range terms {
		if strings.Contains(e.Organizations, t) {
			return true
		}
	}
	return false
}

// matchOutcomes requires every selected flag to hold: the numeric outcome
// must be present and above zero, except property damage which counts any
// non-blank text regardless of content.
func matchOutcomes(e *models.Event, outcomes []string) bool {
	for _, o := range outcomes {
		var ok bool
		switch o {
		case models.OutcomeArrests:
			ok = positive(e.Arrests)
		case models.OutcomeParticipantInjuries:
			ok = positive(e.ParticipantInjuries)
		case models.OutcomePoliceInjuries:
			ok = positive(e.PoliceInjuries)
		case models.OutcomePropertyDamage:
			ok = strings.TrimSpace(e.PropertyDamage) != ""
		case models.OutcomeParticipantDeaths:
			ok = positive(e.ParticipantDeaths)
		case models.OutcomePoliceDeaths:
			ok = positive(e.PoliceDeaths)
		default:
			// Unknown flags are ignored rather than rejected
			ok = true
		}
		if !ok {
			return false
		}
	}
	return true
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}
