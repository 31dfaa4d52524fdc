package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wetopinie/models"
)

// monday returns a fixed Monday at the given clock time.
func monday(t *testing.T, hhmm string) time.Time {
	t.Helper()
	at, err := time.Parse("2006-01-02 15:04", "2025-03-10 "+hhmm)
	if err != nil {
		t.Fatalf("bad test time %q: %v", hhmm, err)
	}
	return at
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "nd", DayKey(time.Sunday))
	assert.Equal(t, "pn", DayKey(time.Monday))
	assert.Equal(t, "sb", DayKey(time.Saturday))
}

func TestIs24Hours(t *testing.T) {
	assert.True(t, Is24Hours(models.WeeklySchedule{"pn": "00:00-24:00"}))
	assert.True(t, Is24Hours(models.WeeklySchedule{"pn": "zamknięte", "wt": " 00:00 - 24:00 "}))
	assert.False(t, Is24Hours(models.WeeklySchedule{"pn": "00:00-23:59"}))
	assert.False(t, Is24Hours(models.WeeklySchedule{}))
	assert.False(t, Is24Hours(nil))
}

func TestIsOpenNowBasicRange(t *testing.T) {
	schedule := models.WeeklySchedule{"pn": "09:00-17:00"}

	assert.True(t, IsOpenNow(schedule, monday(t, "09:00")), "start is inclusive")
	assert.True(t, IsOpenNow(schedule, monday(t, "16:59")))
	assert.False(t, IsOpenNow(schedule, monday(t, "17:00")), "end is exclusive")
	assert.False(t, IsOpenNow(schedule, monday(t, "08:59")))
}

func TestIsOpenNowClosedMarkers(t *testing.T) {
	assert.False(t, IsOpenNow(models.WeeklySchedule{"pn": "zamknięte"}, monday(t, "12:00")))
	assert.False(t, IsOpenNow(models.WeeklySchedule{"pn": "Zamkniete"}, monday(t, "12:00")))
	assert.False(t, IsOpenNow(models.WeeklySchedule{"pn": ""}, monday(t, "12:00")))
	assert.False(t, IsOpenNow(models.WeeklySchedule{"wt": "09:00-17:00"}, monday(t, "12:00")),
		"absent day means closed")
	assert.False(t, IsOpenNow(nil, monday(t, "12:00")))
}

func TestIsOpenNowMultipleRanges(t *testing.T) {
	schedule := models.WeeklySchedule{"pn": "08:00-12:00; 14:00-18:00"}

	assert.True(t, IsOpenNow(schedule, monday(t, "09:30")))
	assert.False(t, IsOpenNow(schedule, monday(t, "13:00")), "lunch gap")
	assert.True(t, IsOpenNow(schedule, monday(t, "14:00")))
	assert.False(t, IsOpenNow(schedule, monday(t, "18:00")))
}

func TestIsOpenNowOvernightRange(t *testing.T) {
	schedule := models.WeeklySchedule{"pn": "22:00-06:00"}

	assert.True(t, IsOpenNow(schedule, monday(t, "23:00")))
	assert.True(t, IsOpenNow(schedule, monday(t, "05:59")))
	assert.False(t, IsOpenNow(schedule, monday(t, "06:00")))
	assert.False(t, IsOpenNow(schedule, monday(t, "12:00")))
}

func TestIsOpenNowEndOfDay(t *testing.T) {
	schedule := models.WeeklySchedule{"pn": "00:00-24:00"}

	assert.True(t, IsOpenNow(schedule, monday(t, "00:00")))
	assert.True(t, IsOpenNow(schedule, monday(t, "23:59")))
}

func TestIsOpenNowMalformedRangesSkipped(t *testing.T) {
	schedule := models.WeeklySchedule{"pn": "po południu; 14:00-18:00"}

	assert.True(t, IsOpenNow(schedule, monday(t, "15:00")))
	assert.False(t, IsOpenNow(schedule, monday(t, "10:00")))

	assert.False(t, IsOpenNow(models.WeeklySchedule{"pn": "dziwne godziny"}, monday(t, "12:00")),
		"all ranges malformed means closed")
}
