package models

import "time"

// Event represents one protest record from the source dataset.
// Nullable source fields are pointers; nil means the value was missing or
// unparseable in the raw file.
type Event struct {
	// Row is the record's position in the source file, used to look up
	// pass-through columns the engine never models. Serialized so cached
	// filtered views keep the linkage.
	Row int `json:"row"`

	Title         string     `json:"title"`
	Date          *time.Time `json:"date,omitempty"`
	State         string     `json:"state"`
	Organizations string     `json:"organizations"` // lowercased, semicolon-delimited
	Targets       string     `json:"targets"`       // lowercased
	Location      string     `json:"location"`
	Locality      string     `json:"locality"`
	Lat           *float64   `json:"lat,omitempty"`
	Lon           *float64   `json:"lon,omitempty"`

	// Participant size estimate
	SizeMean *float64 `json:"size_mean,omitempty"`

	// Outcome fields. The numeric pointer is the coerced value used for
	// filtering; the raw text is kept for export and detail views, since the
	// source mixes numbers with annotations like "unspecified".
	ParticipantInjuries    *float64 `json:"participant_injuries,omitempty"`
	ParticipantInjuriesRaw string   `json:"participant_injuries_raw,omitempty"`
	PoliceInjuries         *float64 `json:"police_injuries,omitempty"`
	PoliceInjuriesRaw      string   `json:"police_injuries_raw,omitempty"`
	Arrests                *float64 `json:"arrests,omitempty"`
	ArrestsRaw             string   `json:"arrests_raw,omitempty"`
	ParticipantDeaths      *float64 `json:"participant_deaths,omitempty"`
	ParticipantDeathsRaw   string   `json:"participant_deaths_raw,omitempty"`
	PoliceDeaths           *float64 `json:"police_deaths,omitempty"`
	PoliceDeathsRaw        string   `json:"police_deaths_raw,omitempty"`
	PropertyDamage         string   `json:"property_damage"`

	// Free-text context columns carried for detail views and export
	Notables            string `json:"notables,omitempty"`
	ClaimsSummary       string `json:"claims_summary,omitempty"`
	ParticipantMeasures string `json:"participant_measures,omitempty"`
	PoliceMeasures      string `json:"police_measures,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// HasCoordinates reports whether the event carries a usable lat/lon pair.
func (e *Event) HasCoordinates() bool {
	return e.Lat != nil && e.Lon != nil
}

// DateString formats the event date as YYYY-MM-DD, or "Unknown" when missing.
func (e *Event) DateString() string {
	if e.Date == nil {
		return "Unknown"
	}
	return e.Date.Format("2006-01-02")
}

// FilteredEvent is one row of a filtered view: the underlying event plus the
// display location resolved for it. The event itself is shared with the
// loaded dataset and must not be mutated.
type FilteredEvent struct {
	*Event
	LocationLabel string `json:"location_label"`
}
