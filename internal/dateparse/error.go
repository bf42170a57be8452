package dateparse

import (
	"errors"
	"fmt"
)

var ErrInvalidDateFormat = errors.New(
	"Invalid date format. Please use DD-MM-YYYY, DD.MM.YYYY, YYYY-MM-DD, YYYY.MM.DD, or Month DD, YYYY.", //nolint:stylecheck
)

type MonthNameError struct {
	Name string
}

func (e *MonthNameError) Error() string {
	return fmt.Sprintf("Invalid month name: %s", e.Name)
}

// CalendarError reports numeric date parts that do not form a real date.
type CalendarError struct {
	Year, Month, Day int
	reason           string
}

func (e *CalendarError) Error() string {
	return e.reason
}

func IsCalendarError(err error) *CalendarError {
	if err == nil {
		return nil
	}

	var calendarErr *CalendarError

	if errors.As(err, &calendarErr) {
		return calendarErr
	}

	return nil
}

func IsMonthNameError(err error) *MonthNameError {
	if err == nil {
		return nil
	}

	var monthErr *MonthNameError

	if errors.As(err, &monthErr) {
		return monthErr
	}

	return nil
}

// IsDateError reports whether err came out of Parse.
func IsDateError(err error) bool {
	return errors.Is(err, ErrInvalidDateFormat) || IsMonthNameError(err) != nil || IsCalendarError(err) != nil
}
