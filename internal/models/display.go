package models

// DisplayEvent is the transport projection of a filtered row: the fixed set
// of display-relevant columns the presentation layer renders, nothing more.
type DisplayEvent struct {
	Title               string   `json:"title"`
	Date                string   `json:"date"` // YYYY-MM-DD or "Unknown"
	LocationLabel       string   `json:"location_label"`
	Location            string   `json:"location,omitempty"`
	Locality            string   `json:"locality,omitempty"`
	State               string   `json:"state,omitempty"`
	Lat                 *float64 `json:"lat,omitempty"`
	Lon                 *float64 `json:"lon,omitempty"`
	SizeMean            *float64 `json:"size_mean,omitempty"`
	Organizations       string   `json:"organizations,omitempty"`
	Targets             string   `json:"targets,omitempty"`
	Notables            string   `json:"notables,omitempty"`
	ClaimsSummary       string   `json:"claims_summary,omitempty"`
	ParticipantMeasures string   `json:"participant_measures,omitempty"`
	PoliceMeasures      string   `json:"police_measures,omitempty"`
	ParticipantInjuries string   `json:"participant_injuries,omitempty"`
	PoliceInjuries      string   `json:"police_injuries,omitempty"`
	Arrests             string   `json:"arrests,omitempty"`
	PropertyDamage      string   `json:"property_damage,omitempty"`
	Notes               string   `json:"notes,omitempty"`
}

// Display projects the filtered row onto its transport columns.
func (f *FilteredEvent) Display() DisplayEvent {
	return DisplayEvent{
		Title:               f.Title,
		Date:                f.DateString(),
		LocationLabel:       f.LocationLabel,
		Location:            f.Location,
		Locality:            f.Locality,
		State:               f.State,
		Lat:                 f.Lat,
		Lon:                 f.Lon,
		SizeMean:            f.SizeMean,
		Organizations:       f.Organizations,
		Targets:             f.Targets,
		Notables:            f.Notables,
		ClaimsSummary:       f.ClaimsSummary,
		ParticipantMeasures: f.ParticipantMeasures,
		PoliceMeasures:      f.PoliceMeasures,
		ParticipantInjuries: f.ParticipantInjuriesRaw,
		PoliceInjuries:      f.PoliceInjuriesRaw,
		Arrests:             f.ArrestsRaw,
		PropertyDamage:      f.PropertyDamage,
		Notes:               f.Notes,
	}
}
