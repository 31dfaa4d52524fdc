package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseTimestamp(t *testing.T) {
	ref := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	want := ref.UnixMilli()

	assert.Equal(t, want, ParseTimestamp(ref), "time.Time")
	assert.Equal(t, want, ParseTimestamp(want), "epoch millis")
	assert.Equal(t, want, ParseTimestamp(ref.Unix()), "epoch seconds")
	assert.Equal(t, want, ParseTimestamp(float64(want)), "epoch millis as float")
	assert.Equal(t, want, ParseTimestamp("2024-06-15T10:30:00Z"), "RFC3339 string")
	assert.Equal(t, want, ParseTimestamp(bson.M{"seconds": ref.Unix()}), "structured seconds")
	assert.Equal(t, want, ParseTimestamp(map[string]any{"seconds": ref.Unix()}))

	dateOnly := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, dateOnly, ParseTimestamp("2024-06-15"), "date-only string")
}

func TestParseTimestampUnparseable(t *testing.T) {
	assert.Zero(t, ParseTimestamp(nil))
	assert.Zero(t, ParseTimestamp(""))
	assert.Zero(t, ParseTimestamp("wczoraj"))
	assert.Zero(t, ParseTimestamp(bson.M{"nanos": 5}))
	assert.Zero(t, ParseTimestamp(-1000))
}
