package dateparse

import (
	"strings"
	"time"
)

var monthsByAbbr = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// monthFromName resolves a month by its first three letters, so both
// abbreviations and full names are accepted in any case.
func monthFromName(name string) (time.Month, error) {
	key := strings.ToLower(name)
	if len(key) > 3 { //nolint:gomnd
		key = key[:3]
	}

	month, ok := monthsByAbbr[key]
	if !ok {
		return 0, &MonthNameError{Name: name}
	}

	return month, nil
}
