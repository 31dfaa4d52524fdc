package directory

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"wetopinie/models"
)

// dayKeys is indexed by time.Weekday (Sunday = 0).
var dayKeys = [7]string{
	models.DaySunday,
	models.DayMonday,
	models.DayTuesday,
	models.DayWednesday,
	models.DayThursday,
	models.DayFriday,
	models.DaySaturday,
}

// DayKey returns the schedule key for a weekday.
func DayKey(w time.Weekday) string {
	return dayKeys[w]
}

// closedMarker is the normalized stem of "zamknięte".
const closedMarker = "zamkni"

// rangePattern matches one HH:MM-HH:MM range; single-digit hours tolerated.
var rangePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})$`)

// Is24Hours reports whether any day is marked with the literal round-the-clock
// range "00:00-24:00" (whitespace and diacritics ignored).
func Is24Hours(schedule models.WeeklySchedule) bool {
	for _, raw := range schedule {
		compact := strings.Join(strings.Fields(Fold(raw)), "")
		if compact == "00:00-24:00" {
			return true
		}
	}
	return false
}

// IsOpenNow evaluates the schedule at the given instant. The raw day value is
// free text entered by submitters: the closed marker or an absent/empty value
// means closed, malformed ranges are skipped rather than fatal, a range
// ending in 24:00 runs to end of day, and a range whose start exceeds its end
// wraps past midnight. Range ends are exclusive; a clinic closing at 17:00 is
// not open at 17:00 sharp.
func IsOpenNow(schedule models.WeeklySchedule, at time.Time) bool {
	raw, ok := schedule[DayKey(at.Weekday())]
	if !ok || strings.TrimSpace(raw) == "" {
		return false
	}
	if strings.Contains(Fold(raw), closedMarker) {
		return false
	}

	nowMinutes := at.Hour()*60 + at.Minute()
	for _, part := range strings.Split(raw, ";") {
		start, end, ok := parseRange(strings.TrimSpace(part))
		if !ok {
			continue
		}
		if start <= end {
			if nowMinutes >= start && nowMinutes < end {
				return true
			}
		} else {
			// Overnight range, e.g. 22:00-06:00.
			if nowMinutes >= start || nowMinutes < end {
				return true
			}
		}
	}
	return false
}

// parseRange converts "HH:MM-HH:MM" to minutes of day. An end of exactly
// 24:00 maps to 1440, the end-of-day boundary, not midnight of the next day.
func parseRange(s string) (start, end int, ok bool) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	sh, _ := strconv.Atoi(m[1])
	sm, _ := strconv.Atoi(m[2])
	eh, _ := strconv.Atoi(m[3])
	em, _ := strconv.Atoi(m[4])
	return sh*60 + sm, eh*60 + em, true
}
