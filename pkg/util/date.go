package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/muhammadchandra19/tick-data-service/pkg/errors"
)

// DateLayout is the calendar-date layout used across the service.
const DateLayout = "2006-01-02"

// TimePointer converts a time.Time to a pointer to a time.Time.
func TimePointer(t time.Time) *time.Time {
	return &t
}

// ParseDateRange parses a trade-date range in the form "start:end",
// "start:", ":end" or a single "date", each date being "YYYY-MM-DD".
// An empty range means the current day. A missing side falls back to the
// other one, so "2022-04-04:" covers exactly that day.
//
// The returned bounds cover whole calendar days: start at midnight UTC,
// end at the last nanosecond of its day.
func ParseDateRange(dateRange string, now time.Time) (time.Time, time.Time, error) {
	startRaw, endRaw := splitDateRange(dateRange, now)

	start, err := time.ParseInLocation(DateLayout, startRaw, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewErrorDetails(
			fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", startRaw),
			errors.InvalidDateRangeError,
			"date_range",
		)
	}

	end, err := time.ParseInLocation(DateLayout, endRaw, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewErrorDetails(
			fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", endRaw),
			errors.InvalidDateRangeError,
			"date_range",
		)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.NewErrorDetails(
			fmt.Sprintf("end date %s is before start date %s", endRaw, startRaw),
			errors.InvalidDateRangeError,
			"date_range",
		)
	}

	return start, end.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

func splitDateRange(dateRange string, now time.Time) (string, string) {
	if dateRange == "" {
		today := now.UTC().Format(DateLayout)
		return today, today
	}

	parts := strings.SplitN(dateRange, ":", 2)
	if len(parts) == 1 {
		return parts[0], parts[0]
	}

	start, end := parts[0], parts[1]
	if start == "" {
		start = end
	}
	if end == "" {
		end = start
	}
	return start, end
}
