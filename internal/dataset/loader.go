package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/civiclens/protest-backend-go/internal/models"
)

// Columns consumed from the source file. Missing columns are tolerated and
// read as empty, so a partial extract still loads.
const (
	colTitle               = "title"
	colDate                = "date"
	colState               = "state"
	colOrganizations       = "organizations"
	colTargets             = "targets"
	colLocation            = "location"
	colLocality            = "locality"
	colLat                 = "lat"
	colLon                 = "lon"
	colSizeMean            = "size_mean"
	colParticipantInjuries = "participant_injuries"
	colPoliceInjuries      = "police_injuries"
	colArrests             = "arrests"
	colParticipantDeaths   = "participant_deaths"
	colPoliceDeaths        = "police_deaths"
	colPropertyDamage      = "property_damage"
	colNotables            = "notables"
	colClaimsSummary       = "claims_summary"
	colParticipantMeasures = "participant_measures"
	colPoliceMeasures      = "police_measures"
	colNotes               = "notes"
)

// modeledColumns lists the consumed columns in source order. It doubles as
// the export header for tables built in memory without a source file.
var modeledColumns = []string{
	colTitle, colDate, colState, colOrganizations, colTargets,
	colLocation, colLocality, colLat, colLon, colSizeMean,
	colParticipantInjuries, colPoliceInjuries, colArrests,
	colParticipantDeaths, colPoliceDeaths, colPropertyDamage,
	colNotables, colClaimsSummary, colParticipantMeasures,
	colPoliceMeasures, colNotes,
}

// Dataset is the full event table, loaded once at startup and read-only for
// the process lifetime. Concurrent readers need no locking.
type Dataset struct {
	Events []models.Event

	// Source header and records, kept verbatim so the export can emit
	// columns the engine never models.
	Header []string
	Raw    [][]string

	// Precomputed for the presentation layer's filter controls
	States  []string
	MinDate *time.Time
	MaxDate *time.Time
}

// Load parses the raw tabular source into a typed in-memory table.
// Unparseable dates and numbers become nils, never errors; only an unreadable
// file or a missing header row fails the load.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset rows: %w", err)
	}

	ds := &Dataset{
		Events: make([]models.Event, 0, len(records)),
		Header: header,
		Raw:    records,
	}
	stateSet := make(map[string]struct{})

	for row, rec := range records {
		field := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		e := models.Event{
			Row:                 row,
			Title:               field(colTitle),
			State:               field(colState),
			Organizations:       strings.ToLower(field(colOrganizations)),
			Targets:             strings.ToLower(field(colTargets)),
			Location:            field(colLocation),
			Locality:            field(colLocality),
			PropertyDamage:      field(colPropertyDamage),
			Notables:            field(colNotables),
			ClaimsSummary:       field(colClaimsSummary),
			ParticipantMeasures: field(colParticipantMeasures),
			PoliceMeasures:      field(colPoliceMeasures),
			Notes:               field(colNotes),
		}

		e.Date = parseDate(field(colDate))
		e.Lat = parseFloat(field(colLat))
		e.Lon = parseFloat(field(colLon))
		e.SizeMean = parseFloat(field(colSizeMean))

		e.ParticipantInjuriesRaw = field(colParticipantInjuries)
		e.ParticipantInjuries = parseFloat(e.ParticipantInjuriesRaw)
		e.PoliceInjuriesRaw = field(colPoliceInjuries)
		e.PoliceInjuries = parseFloat(e.PoliceInjuriesRaw)
		e.ArrestsRaw = field(colArrests)
		e.Arrests = parseFloat(e.ArrestsRaw)
		e.ParticipantDeathsRaw = field(colParticipantDeaths)
		e.ParticipantDeaths = parseFloat(e.ParticipantDeathsRaw)
		e.PoliceDeathsRaw = field(colPoliceDeaths)
		e.PoliceDeaths = parseFloat(e.PoliceDeathsRaw)

		// The literal null marker is not a state worth offering as a
		// filter option
		if e.State != "" && !strings.EqualFold(e.State, "nan") {
			stateSet[e.State] = struct{}{}
		}
		if e.Date != nil {
			if ds.MinDate == nil || e.Date.Before(*ds.MinDate) {
				ds.MinDate = e.Date
			}
			if ds.MaxDate == nil || e.Date.After(*ds.MaxDate) {
				ds.MaxDate = e.Date
			}
		}

		ds.Events = append(ds.Events, e)
	}

	ds.States = make([]string, 0, len(stateSet))
	for s := range stateSet {
		ds.States = append(ds.States, s)
	}
	sort.Strings(ds.States)

	return ds, nil
}

// Meta summarizes the loaded table for the filter controls.
func (ds *Dataset) Meta() models.DatasetMeta {
	meta := models.DatasetMeta{
		States:   ds.States,
		RowCount: len(ds.Events),
	}
	if ds.MinDate != nil {
		meta.MinDate = ds.MinDate.Format("2006-01-02")
	}
	if ds.MaxDate != nil {
		meta.MaxDate = ds.MaxDate.Format("2006-01-02")
	}
	return meta
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "01/02/2006"}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
