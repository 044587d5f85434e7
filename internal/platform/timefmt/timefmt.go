// Package timefmt renders timestamps for Korean "as of" labels.
package timefmt

import (
	"fmt"
	"time"
)

const DefaultZone = "Asia/Seoul"

// seoulFallback is used when the tz database is not present in the image.
var seoulFallback = time.FixedZone("KST", 9*60*60)

// LoadLocation resolves name, falling back to a fixed +09:00 zone.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return seoulFallback
	}
	return loc
}

// FormatAsOf renders "2025년 05월 20일 오후 3시 기준". A nil time yields nil.
func FormatAsOf(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	if loc == nil {
		loc = seoulFallback
	}

	local := t.In(loc)
	marker := "오전"
	if local.Hour() >= 12 {
		marker = "오후"
	}
	hour := local.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	out := fmt.Sprintf("%d년 %02d월 %02d일 %s %d시 기준", local.Year(), int(local.Month()), local.Day(), marker, hour)
	return &out
}

// Today returns the civil date in loc as YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = seoulFallback
	}
	return now.In(loc).Format(time.DateOnly)
}
