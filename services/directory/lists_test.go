package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wetopinie/models"
)

func TestUniqueCities(t *testing.T) {
	clinics := []models.Clinic{
		{City: "Warszawa"},
		{City: "Kraków"},
		{City: "Warszawa"},
		{City: ""},
		{City: "Łódź"},
	}
	got := UniqueCities(clinics)
	assert.Equal(t, []string{"Kraków", "Łódź", "Warszawa"}, got)
}

func TestUniqueSpecializations(t *testing.T) {
	clinics := []models.Clinic{
		{Specializations: []string{"chirurgia", " dermatologia "}},
		{Specializations: []string{"chirurgia", "okulistyka"}},
		{Specializations: []string{"", "  "}},
	}
	got := UniqueSpecializations(clinics)
	assert.Equal(t, []string{"chirurgia", "dermatologia", "okulistyka"}, got)
}
