package dataset

import (
	"strconv"
	"strings"

	"github.com/civiclens/protest-backend-go/internal/models"
)

// ExportHeader returns the source columns in their original order. Tables
// built in memory without a source header fall back to the modeled columns.
// Derived fields (location_label) never existed in the source and are not
// part of the export.
func (ds *Dataset) ExportHeader() []string {
	if len(ds.Header) > 0 {
		return ds.Header
	}
	return modeledColumns
}

// ExportRecord assembles one export row for the event. Modeled columns are
// written from the normalized record; everything else passes through from
// the source file untouched.
func (ds *Dataset) ExportRecord(e *models.Event) []string {
	var raw []string
	if e.Row >= 0 && e.Row < len(ds.Raw) {
		raw = ds.Raw[e.Row]
	}

	header := ds.ExportHeader()
	rec := make([]string, len(header))
	for i, name := range header {
		if v, ok := modeledValue(e, strings.ToLower(strings.TrimSpace(name))); ok {
			rec[i] = v
			continue
		}
		if i < len(raw) {
			rec[i] = raw[i]
		}
	}
	return rec
}

// modeledValue returns the normalized value for a consumed column. Outcome
// columns carry the raw source text so annotations like "unspecified"
// survive a round trip. Columns the engine never models report false.
func modeledValue(e *models.Event, col string) (string, bool) {
	switch col {
	case colTitle:
		return e.Title, true
	case colDate:
		if e.Date == nil {
			return "", true
		}
		return e.Date.Format("2006-01-02"), true
	case colState:
		return e.State, true
	case colOrganizations:
		return e.Organizations, true
	case colTargets:
		return e.Targets, true
	case colLocation:
		return e.Location, true
	case colLocality:
		return e.Locality, true
	case colLat:
		return formatFloat(e.Lat), true
	case colLon:
		return formatFloat(e.Lon), true
	case colSizeMean:
		return formatFloat(e.SizeMean), true
	case colParticipantInjuries:
		return e.ParticipantInjuriesRaw, true
	case colPoliceInjuries:
		return e.PoliceInjuriesRaw, true
	case colArrests:
		return e.ArrestsRaw, true
	case colParticipantDeaths:
		return e.ParticipantDeathsRaw, true
	case colPoliceDeaths:
		return e.PoliceDeathsRaw, true
	case colPropertyDamage:
		return e.PropertyDamage, true
	case colNotables:
		return e.Notables, true
	case colClaimsSummary:
		return e.ClaimsSummary, true
	case colParticipantMeasures:
		return e.ParticipantMeasures, true
	case colPoliceMeasures:
		return e.PoliceMeasures, true
	case colNotes:
		return e.Notes, true
	}
	return "", false
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
