package engine

import (
	"fmt"
	"strings"

	"github.com/civiclens/protest-backend-go/internal/models"
)

const unknown = "Unknown"

// LocationLabel resolves the best available display name for an event:
// location, then locality, then "{state}, {date}". The source data carries
// literal "nan" strings for missing text, which count as blank. The label is
// deterministic per record, so it is a stable grouping and cache key.
func LocationLabel(e *models.Event) string {
	if loc := cleanText(e.Location); loc != "" {
		return loc
	}
	if loc := cleanText(e.Locality); loc != "" {
		return loc
	}
	state := cleanText(e.State)
	if state == "" {
		state = unknown
	}
	return fmt.Sprintf("%s, %s", state, e.DateString())
}

// EventLabel builds the per-event hover line used inside map clusters.
func EventLabel(e *models.Event) string {
	title := cleanText(e.Title)
	if title == "" {
		title = unknown
	}
	orgs := cleanText(e.Organizations)
	if orgs == "" {
		orgs = unknown
	}
	return fmt.Sprintf("%s (%s)<br>Org: %s", title, e.DateString(), orgs)
}

// cleanText trims a raw text field and blanks out the literal null marker.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}
