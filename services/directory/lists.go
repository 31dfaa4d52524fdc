package directory

import (
	"strings"

	"wetopinie/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UniqueCities returns the distinct non-empty city values, sorted under
// Polish collation.
func UniqueCities(clinics []models.Clinic) []string {
	seen := make(map[string]bool)
	var cities []string
	for _, c := range clinics {
		if c.City == "" || seen[c.City] {
			continue
		}
		seen[c.City] = true
		cities = append(cities, c.City)
	}
	collate.New(language.Polish, collate.Loose).SortStrings(cities)
	return cities
}

// UniqueSpecializations returns the distinct trimmed specialization tags
// across all clinics, sorted under Polish collation. Legacy comma-joined
// values are already split by the store adapter; trimming here guards
// submitter-entered whitespace.
func UniqueSpecializations(clinics []models.Clinic) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, c := range clinics {
		for _, tag := range c.Specializations {
			t := strings.TrimSpace(tag)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			tags = append(tags, t)
		}
	}
	collate.New(language.Polish, collate.Loose).SortStrings(tags)
	return tags
}
