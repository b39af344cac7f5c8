package agenda

import (
	"strconv"
	"strings"
	"time"

	"github.com/rafagnx/clinicos-sub001/internal/domain/appointment"
)

// Stored times are either bare wall-clock strings ("HH:MM", "HH:MM:SS") or
// ISO datetimes. Parsing never fails: a malformed value substitutes the
// default rather than erroring, because these values only drive display.

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MinuteOfDay resolves a time string to minutes since local midnight.
// ISO datetimes are converted to the viewer's local wall clock; malformed
// values resolve to 0 ("00:00").
func MinuteOfDay(s string) int {
	if strings.Contains(s, "T") {
		if t, ok := parseISO(s); ok {
			local := t.Local()
			return local.Hour()*60 + local.Minute()
		}
		return 0
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0
	}
	hour, err1 := strconv.Atoi(parts[0])
	min, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0
	}
	return hour*60 + min
}

// localDateOf converts an ISO datetime string to the viewer-local calendar
// date. The UTC calendar day must never be used directly: an evening
// appointment stored in UTC would otherwise shift to the next day.
func localDateOf(s string) (string, bool) {
	t, ok := parseISO(s)
	if !ok {
		return "", false
	}
	return t.Local().Format("2006-01-02"), true
}

// resolveDate determines an appointment's calendar date. A plain date field
// wins; when the date field is absent or itself carries a time component,
// the local day is derived from the start-time value instead.
func resolveDate(a *appointment.Appointment) (string, bool) {
	if a.Date != nil && len(*a.Date) == 10 && !strings.Contains(*a.Date, "T") {
		return *a.Date, true
	}
	if strings.Contains(a.StartTime, "T") {
		if d, ok := localDateOf(a.StartTime); ok {
			return d, true
		}
	}
	if a.Date != nil && strings.Contains(*a.Date, "T") {
		if d, ok := localDateOf(*a.Date); ok {
			return d, true
		}
	}
	return "", false
}

// durationMinutes computes the rendered duration: end minus start when an
// end time exists, else the appointment's declared duration, else the
// default. Anything under the floor is clamped up to the default to avoid
// degenerate slivers.
func durationMinutes(a *appointment.Appointment) int {
	d := DefaultDurationMinutes
	if a.EndTime != nil && *a.EndTime != "" {
		d = MinuteOfDay(*a.EndTime) - MinuteOfDay(a.StartTime)
	} else if a.DurationMinutes != nil {
		d = *a.DurationMinutes
	}
	if d < MinDurationMinutes {
		d = DefaultDurationMinutes
	}
	return d
}
