package booking

import (
	"time"
)

const (
	dateLayout            = "2006-01-02"
	dateTimeLayout        = "2006-01-02T15:04"
	dateTimeSecondsLayout = "2006-01-02T15:04:05"

	openingHour = 9
	closingHour = 17
)

const (
	msgBlank         = "date and time cannot be blank"
	msgPastOrInverse = "any booking for past dates or times cannot be accommodated"
	msgClosedDay     = "appointments are only allowed from Monday to Saturday"
	msgBusinessHours = "appointments are only allowed from 9:00AM - 5:00PM"
)

// validateSlot checks a proposed booking slot against the temporal and
// business-hour rules, first failure wins. On success it returns the
// normalized (start, end) pair ready for conflict checking.
//
// An inverted interval deliberately shares the past-booking rejection: the
// two have always been one user-facing category.
func validateSlot(now time.Time, date, timeFrom, timeTo string) (time.Time, time.Time, error) {
	var zero time.Time

	if date == "" || timeFrom == "" || timeTo == "" {
		return zero, zero, validationError(RejectBlankField, msgBlank)
	}

	start, err := parseDateTime(date, timeFrom)
	if err != nil {
		return zero, zero, validationError(RejectBlankField, msgBlank)
	}
	end, err := parseDateTime(date, timeTo)
	if err != nil {
		return zero, zero, validationError(RejectBlankField, msgBlank)
	}

	// now == start is still bookable.
	if now.After(start) {
		return zero, zero, validationError(RejectInvalidInterval, msgPastOrInverse)
	}
	// Zero-length slots count as inverted: the store only accepts
	// date_time_from < date_time_to.
	if !start.Before(end) {
		return zero, zero, validationError(RejectInvalidInterval, msgPastOrInverse)
	}

	if start.Weekday() == time.Sunday {
		return zero, zero, validationError(RejectClosedDay, msgClosedDay)
	}

	dayOpen := time.Date(start.Year(), start.Month(), start.Day(), openingHour, 0, 0, 0, start.Location())
	dayClose := time.Date(start.Year(), start.Month(), start.Day(), closingHour, 0, 0, 0, start.Location())
	if start.Before(dayOpen) || end.After(dayClose) {
		return zero, zero, validationError(RejectOutsideBusinessHours, msgBusinessHours)
	}

	return start, end, nil
}

// parseDateTime combines a calendar date with a time of day, which may come
// with or without seconds.
func parseDateTime(date, timeOfDay string) (time.Time, error) {
	raw := date + "T" + timeOfDay
	t, err := time.ParseInLocation(dateTimeSecondsLayout, raw, time.Local)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation(dateTimeLayout, raw, time.Local)
}
