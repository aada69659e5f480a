package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Range is a resolved reporting window as inclusive calendar dates.
type Range struct {
	StartDate string
	EndDate   string
}

// Bounds returns the UTC instant bounds of the range: the start date's
// midnight and the end date's last second. Both ends are inclusive when
// filtering events.
func (r Range) Bounds() (time.Time, time.Time) {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	return start, end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// Contains reports whether t falls inside the range bounds, inclusive.
func (r Range) Contains(t time.Time) bool {
	start, end := r.Bounds()
	return !t.Before(start) && !t.After(end)
}

// ResolveRange computes the reporting window. Explicit dates (YYYY-MM-DD)
// pass through after validation. With no dates, the window derives from
// today: on a Monday it is the previous Monday through Sunday, otherwise
// this week's Monday through today.
func ResolveRange(today time.Time, startDate, endDate string) (Range, error) {
	if startDate != "" && endDate != "" {
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return Range{}, fmt.Errorf("invalid start date %q (use YYYY-MM-DD)", startDate)
		}
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return Range{}, fmt.Errorf("invalid end date %q (use YYYY-MM-DD)", endDate)
		}
		if end.Before(start) {
			return Range{}, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
		}
		return Range{StartDate: startDate, EndDate: endDate}, nil
	}
	if startDate != "" || endDate != "" {
		return Range{}, fmt.Errorf("provide both start and end dates, or neither")
	}

	// time.Weekday counts Sunday as 0; the report week starts on Monday.
	weekday := int(today.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekday-- // days since Monday

	if weekday == 0 {
		return Range{
			StartDate: today.AddDate(0, 0, -7).Format(dateLayout),
			EndDate:   today.AddDate(0, 0, -1).Format(dateLayout),
		}, nil
	}
	return Range{
		StartDate: today.AddDate(0, 0, -weekday).Format(dateLayout),
		EndDate:   today.Format(dateLayout),
	}, nil
}
