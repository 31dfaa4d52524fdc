package reviews

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// epochMillisCutoff separates second-precision epochs from millisecond ones.
// Anything below is treated as seconds.
const epochMillisCutoff = 1e12

// ParseTimestamp normalizes the mixed timestamp encodings found in review
// documents to epoch milliseconds: numeric epochs (seconds or millis),
// ISO-8601 / RFC3339 strings, date-only strings, native time values and the
// structured {seconds} form. Unparseable values normalize to the minimum so
// they sort last in a newest-first ordering.
func ParseTimestamp(v any) int64 {
	switch val := v.(type) {
	case nil:
		return 0
	case time.Time:
		return val.UnixMilli()
	case primitive.DateTime:
		return int64(val)
	case int64:
		return normalizeEpoch(float64(val))
	case int32:
		return normalizeEpoch(float64(val))
	case int:
		return normalizeEpoch(float64(val))
	case float64:
		return normalizeEpoch(val)
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, val); err == nil {
				return t.UnixMilli()
			}
		}
		return 0
	case bson.M:
		return secondsField(map[string]any(val))
	case map[string]any:
		return secondsField(val)
	}
	return 0
}

func normalizeEpoch(f float64) int64 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f < epochMillisCutoff {
		return int64(f * 1000)
	}
	return int64(f)
}

func secondsField(m map[string]any) int64 {
	if secs, ok := m["seconds"]; ok {
		switch s := secs.(type) {
		case int64:
			return s * 1000
		case int32:
			return int64(s) * 1000
		case int:
			return int64(s) * 1000
		case float64:
			return int64(s * 1000)
		}
	}
	return 0
}
