package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode"
)

var patterns = []*regexp.Regexp{
	// 15-07-2024, 15.07.2024, 15 July 2024
	regexp.MustCompile(`^(\d{1,2})[-.\s](\d{1,2}|[A-Za-z]+)[-.\s](\d{4})`),
	// 2024-07-15, 2024.07.15, 2024 July 15
	regexp.MustCompile(`^(\d{4})[-.\s](\d{1,2}|[A-Za-z]+)[-.\s](\d{1,2})`),
	// July 15, 2024
	regexp.MustCompile(`^([A-Za-z]+)\s(\d{1,2})[-,.\s]+(\d{4})`),
}

// Parse converts a textual date into midnight UTC of that day. Only the start of
// text has to match; anything after the date is ignored.
func Parse(text string) (time.Time, error) {
	for _, pattern := range patterns {
		groups := pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}

		first, second, third := groups[1], groups[2], groups[3]

		var year, month, day string

		switch {
		case isAlpha(first):
			month, day, year = first, second, third
		case len(first) == 4: //nolint:gomnd
			year, month, day = first, second, third
		default:
			day, month, year = first, second, third
		}

		return build(year, month, day)
	}

	return time.Time{}, ErrInvalidDateFormat
}

func build(yearText, monthText, dayText string) (time.Time, error) {
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse year %q: %w", yearText, err)
	}

	day, err := strconv.Atoi(dayText)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", dayText, err)
	}

	var month time.Month

	if isAlpha(monthText) {
		if month, err = monthFromName(monthText); err != nil {
			return time.Time{}, err
		}
	} else {
		m, err := strconv.Atoi(monthText)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse month %q: %w", monthText, err)
		}

		month = time.Month(m)
	}

	return Date(year, int(month), day)
}

// Date builds a calendar date, rejecting values time.Date would normalize.
func Date(year, month, day int) (time.Time, error) {
	calendarErr := &CalendarError{Year: year, Month: month, Day: day}

	switch {
	case year < 1 || year > 9999: //nolint:gomnd
		calendarErr.reason = fmt.Sprintf("year %d is out of range", year)
	case month < 1 || month > 12: //nolint:gomnd
		calendarErr.reason = "month must be in 1..12"
	case day < 1 || day > time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day():
		calendarErr.reason = "day is out of range for month"
	default:
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, calendarErr
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
