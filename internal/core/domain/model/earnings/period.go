package earnings

import (
	"fmt"
	"strings"
	"time"

	"courierledger/internal/pkg/errs"
)

// Period is the reporting span of period and top-earner queries.
type Period string

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Day, Week, Month, Year:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("period", fmt.Errorf("%q is not one of day, week, month, year", s))
	}
}

// PeriodWindow decides where a period starts relative to now.
//
// CalendarToDate starts at the beginning of the current UTC day, ISO week
// (Monday), month or year. Trailing reaches back one full period from now.
type PeriodWindow string

const (
	CalendarToDate PeriodWindow = "calendar"
	Trailing       PeriodWindow = "trailing"
)

func ParsePeriodWindow(s string) (PeriodWindow, error) {
	w := PeriodWindow(strings.ToLower(strings.TrimSpace(s)))
	switch w {
	case CalendarToDate, Trailing:
		return w, nil
	case "":
		return CalendarToDate, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("period window", fmt.Errorf("%q is not calendar or trailing", s))
	}
}

// Bounds returns the inclusive [start, end] window for p anchored at now.
func (w PeriodWindow) Bounds(p Period, now time.Time) (time.Time, time.Time, error) {
	now = now.UTC()
	if w == Trailing {
		switch p {
		case Day:
			return now.Add(-24 * time.Hour), now, nil
		case Week:
			return now.AddDate(0, 0, -7), now, nil
		case Month:
			return now.AddDate(0, -1, 0), now, nil
		case Year:
			return now.AddDate(-1, 0, 0), now, nil
		}
		return time.Time{}, time.Time{}, fmt.Errorf("unsupported period %q", p)
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch p {
	case Day:
		return midnight, now, nil
	case Week:
		offset := (int(midnight.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset), now, nil
	case Month:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), now, nil
	case Year:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), now, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unsupported period %q", p)
}
