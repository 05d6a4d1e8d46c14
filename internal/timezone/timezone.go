package timezone

import (
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone = "Europe/Madrid"
	DisplayLayout   = "02/01/2006 15:04"
	DateLayout      = "02/01/2006"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// apiLayouts are the shapes the API uses for DateTimeField values. Values
// without an offset are already shop-local.
var apiLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseAPI reads an API timestamp into the shop location.
func ParseAPI(value, tz string) (time.Time, bool) {
	loc := Location(tz)
	for _, layout := range apiLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// Format renders an API timestamp for display. Unparsable input is
// returned unchanged.
func Format(value, tz string) string {
	if t, ok := ParseAPI(value, tz); ok {
		return t.Format(DisplayLayout)
	}
	return value
}
