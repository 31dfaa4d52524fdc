package clinicRepo

import (
	"strconv"
	"strings"
	"time"

	"wetopinie/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Legacy documents imported from the original spreadsheet dump carry
// uppercase field names (NAME, CITY, Telephone, OpenHoursMonday, ...) while
// documents written by the moderation pipeline use the canonical lowercase
// shape. NormalizeDocument folds both into one canonical Clinic so the rest
// of the codebase never branches on field presence.
func NormalizeDocument(raw bson.M) models.Clinic {
	c := models.Clinic{
		ID:              docID(raw),
		Name:            firstString(raw, "name", "NAME"),
		City:            firstString(raw, "city", "CITY"),
		Address:         firstString(raw, "address", "Address"),
		Phone:           firstString(raw, "phone", "Telephone"),
		Email:           firstString(raw, "email", "EMAIL"),
		WWW:             firstString(raw, "www", "WWW"),
		Facebook:        firstString(raw, "facebook", "Facebook"),
		Instagram:       firstString(raw, "instagram", "Instagram"),
		LinkedIn:        firstString(raw, "linkedin", "LinkedIn"),
		YouTube:         firstString(raw, "youtube", "YouTube"),
		Pricing:         firstString(raw, "cennik", "Cennik"),
		Notes:           firstString(raw, "dodatkowe", "Dodatkowe Informacje"),
		Specializations: asStringSlice(firstValue(raw, "specializations", "Specialisations")),
		OpeningHours:    asSchedule(raw),
		ReviewsCount:    asInt(firstValue(raw, "reviewsCount", "ReviewsCount")),
		ApprovedAt:      asTime(raw["approvedAt"]),
		UpdatedAt:       asTime(raw["updatedAt"]),
	}

	lat, latOK := asFloat(raw["lat"])
	lng, lngOK := asFloat(raw["lng"])
	// Both present or both absent.
	if latOK && lngOK {
		c.Lat, c.Lng = &lat, &lng
	}
	return c
}

// legacyDayFields maps the import dump's per-day columns to schedule keys.
var legacyDayFields = map[string]string{
	"OpenHoursMonday":    models.DayMonday,
	"OpenHoursTuesday":   models.DayTuesday,
	"OpenHoursWednesday": models.DayWednesday,
	"OpenHoursThursday":  models.DayThursday,
	"OpenHoursFriday":    models.DayFriday,
	"OpenHoursSaturday":  models.DaySaturday,
	"OpenHoursSunday":    models.DaySunday,
}

func asSchedule(raw bson.M) models.WeeklySchedule {
	if v, ok := raw["openingHours"]; ok {
		switch m := v.(type) {
		case bson.M:
			sched := models.WeeklySchedule{}
			for k, val := range m {
				if s, ok := val.(string); ok {
					sched[k] = s
				}
			}
			return sched
		case models.WeeklySchedule:
			return m
		}
	}
	sched := models.WeeklySchedule{}
	for field, key := range legacyDayFields {
		if s, ok := raw[field].(string); ok && strings.TrimSpace(s) != "" {
			sched[key] = s
		}
	}
	if len(sched) == 0 {
		return nil
	}
	return sched
}

func docID(raw bson.M) string {
	if s, ok := raw["id"].(string); ok && s != "" {
		return s
	}
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if s, ok := raw["_id"].(string); ok {
		return s
	}
	return ""
}

func firstValue(raw bson.M, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstString(raw bson.M, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func asStringSlice(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return val
	case bson.A:
		var out []string
		for _, item := range val {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		// Legacy records store specializations as one comma-separated string.
		var out []string
		for _, part := range strings.Split(val, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return nil
}

func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	}
	return 0, false
}

func asInt(v any) int {
	f, ok := asFloat(v)
	if !ok {
		return 0
	}
	return int(f)
}

func asTime(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case primitive.DateTime:
		return val.Time()
	case string:
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			return t
		}
	}
	return time.Time{}
}
