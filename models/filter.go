package models

// FilterCriteria is the transient search input. Zero value means no filter.
type FilterCriteria struct {
	Name           string  `json:"name,omitempty"`           // name fragment
	City           string  `json:"city,omitempty"`           // city fragment
	Specialization string  `json:"specialization,omitempty"` // tag fragment
	Open24h        bool    `json:"open24h,omitempty"`
	OpenNow        bool    `json:"openNow,omitempty"`
	Nearby         bool    `json:"nearby,omitempty"` // radius mode; requires a user coordinate
	RadiusKm       float64 `json:"radiusKm,omitempty"`
}

// Active reports whether any predicate is set.
func (f FilterCriteria) Active() bool {
	return f.Name != "" || f.City != "" || f.Specialization != "" ||
		f.Open24h || f.OpenNow || f.Nearby
}

// FilterStateVersion is the current schema version of SavedFilterState.
const FilterStateVersion = 1

// SavedFilterState is the persisted per-session filter configuration.
// It is loaded once at session start and written back on every change;
// a version mismatch on load falls back to DefaultFilterState.
type SavedFilterState struct {
	Version  int            `json:"version"`
	Criteria FilterCriteria `json:"criteria"`
}

// DefaultFilterState returns the state used for new or out-of-date sessions.
func DefaultFilterState() SavedFilterState {
	return SavedFilterState{
		Version:  FilterStateVersion,
		Criteria: FilterCriteria{RadiusKm: 5},
	}
}
