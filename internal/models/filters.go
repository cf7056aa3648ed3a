package models

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// Size filter modes
const (
	SizeFilterHas = "has" // size_mean present
	SizeFilterNo  = "no"  // size_mean missing
	SizeFilterAll = "all" // no constraint
)

// Outcome flag values. Each selected flag is an additional AND constraint.
const (
	OutcomeArrests             = "arrests_any"
	OutcomeParticipantInjuries = "participant_injuries_any"
	OutcomePoliceInjuries      = "police_injuries_any"
	OutcomePropertyDamage      = "property_damage_any"
	OutcomeParticipantDeaths   = "participant_deaths_any"
	OutcomePoliceDeaths        = "police_deaths_any"
)

// EventFilter represents the full set of user-selected constraints that
// defines one filtered view. Every field is optional; the zero value applies
// no constraint at all.
type EventFilter struct {
	StartDate  string   `form:"startDate"`  // YYYY-MM-DD; both bounds required to apply
	EndDate    string   `form:"endDate"`    // YYYY-MM-DD
	SizeFilter string   `form:"sizeFilter"` // has, no, all (default all)
	OrgSearch  string   `form:"orgSearch"`  // comma-separated substring terms
	States     []string `form:"states"`     // empty = all states/territories
	Outcomes   []string `form:"outcomes"`   // outcome flag values, AND-combined
}

// OrgTerms splits the organization search into normalized terms: comma-split,
// trimmed, lowercased, empties dropped.
func (f *EventFilter) OrgTerms() []string {
	if f.OrgSearch == "" {
		return nil
	}
	var terms []string
	for _, t := range strings.Split(f.OrgSearch, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// CacheKey derives a stable key from the filter. Multi-valued fields are
// sorted so that selection order does not produce distinct keys.
func (f *EventFilter) CacheKey() string {
	states := append([]string(nil), f.States...)
	sort.Strings(states)
	outcomes := append([]string(nil), f.Outcomes...)
	sort.Strings(outcomes)
	terms := f.OrgTerms()
	sort.Strings(terms)

	canonical := strings.Join([]string{
		f.StartDate,
		f.EndDate,
		f.SizeFilter,
		strings.Join(terms, ","),
		strings.Join(states, ","),
		strings.Join(outcomes, ","),
	}, "|")

	sum := sha1.Sum([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
