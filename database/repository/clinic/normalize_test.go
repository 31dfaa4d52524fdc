package clinicRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeDocumentLegacyShape(t *testing.T) {
	raw := bson.M{
		"_id":             "abc123",
		"NAME":            "Lecznica Pod Psem",
		"CITY":            "Łódź",
		"Address":         "ul. Piotrkowska 1",
		"Telephone":       "601 234 567",
		"EMAIL":           "biuro@podpsem.pl",
		"WWW":             "https://podpsem.pl",
		"Specialisations": "chirurgia, dermatologia ,",
		"OpenHoursMonday": "09:00-17:00",
		"OpenHoursFriday": "09:00-15:00",
		"OpenHoursSunday": "zamknięte",
		"lat":             "51.77",
		"lng":             "19.46",
	}

	c := NormalizeDocument(raw)
	assert.Equal(t, "abc123", c.ID)
	assert.Equal(t, "Lecznica Pod Psem", c.Name)
	assert.Equal(t, "Łódź", c.City)
	assert.Equal(t, "601 234 567", c.Phone)
	assert.Equal(t, []string{"chirurgia", "dermatologia"}, c.Specializations)
	assert.Equal(t, "09:00-17:00", c.OpeningHours["pn"])
	assert.Equal(t, "09:00-15:00", c.OpeningHours["pt"])
	assert.Equal(t, "zamknięte", c.OpeningHours["nd"])

	require.True(t, c.HasCoordinates(), "string coordinates parse")
	assert.InDelta(t, 51.77, *c.Lat, 1e-9)
	assert.InDelta(t, 19.46, *c.Lng, 1e-9)
}

func TestNormalizeDocumentCanonicalShape(t *testing.T) {
	raw := bson.M{
		"id":              "c1",
		"name":            "Ala-Wet",
		"city":            "Kraków",
		"specializations": bson.A{"chirurgia", "stomatologia"},
		"openingHours":    bson.M{"pn": "08:00-16:00", "sb": "zamknięte"},
		"reviewsCount":    int32(12),
		"lat":             50.06,
		"lng":             19.94,
	}

	c := NormalizeDocument(raw)
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, []string{"chirurgia", "stomatologia"}, c.Specializations)
	assert.Equal(t, "08:00-16:00", c.OpeningHours["pn"])
	assert.Equal(t, 12, c.ReviewsCount)
	require.True(t, c.HasCoordinates())
}

func TestNormalizeDocumentCanonicalWinsOverLegacy(t *testing.T) {
	raw := bson.M{
		"id":   "c1",
		"name": "Nowa Nazwa",
		"NAME": "Stara Nazwa",
	}
	c := NormalizeDocument(raw)
	assert.Equal(t, "Nowa Nazwa", c.Name)
}

func TestNormalizeDocumentCoordinatesBothOrNeither(t *testing.T) {
	c := NormalizeDocument(bson.M{"id": "c1", "lat": 50.0})
	assert.False(t, c.HasCoordinates(), "lone latitude is dropped")
	assert.Nil(t, c.Lat)
	assert.Nil(t, c.Lng)

	c = NormalizeDocument(bson.M{"id": "c2", "lat": "nie ma", "lng": 19.0})
	assert.False(t, c.HasCoordinates())
}

func TestNormalizeDocumentObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	c := NormalizeDocument(bson.M{"_id": oid, "name": "X"})
	assert.Equal(t, oid.Hex(), c.ID)
}

func TestNormalizeDocumentEmptySchedule(t *testing.T) {
	c := NormalizeDocument(bson.M{"id": "c1", "OpenHoursMonday": "  "})
	assert.Nil(t, c.OpeningHours)
}
