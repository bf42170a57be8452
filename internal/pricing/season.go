package pricing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Season string

const (
	LowSeason  Season = "low_season"
	MidSeason  Season = "mid_season"
	HighSeason Season = "high_season"
)

// Seasons lists every season in rendering order.
var Seasons = [...]Season{LowSeason, MidSeason, HighSeason}

func (s Season) Valid() bool {
	switch s {
	case LowSeason, MidSeason, HighSeason:
		return true
	}

	return false
}

// Label renders "low_season" as "Low Season".
func (s Season) Label() string {
	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(string(s), "_", " "))
}

// Anchor marks the first day of a season, recurring every year.
type Anchor struct {
	Month  time.Month `json:"month"`
	Day    int        `json:"day"`
	Season Season     `json:"season"`
}

func (a Anchor) validate() error {
	if a.Month < time.January || a.Month > time.December {
		return fmt.Errorf("anchor month %d: %w", a.Month, ErrInvalidRateCard)
	}

	// 2024 is a leap year so 29 Feb is a legal anchor.
	if a.Day < 1 || a.Day > daysIn(a.Month, 2024) { //nolint:gomnd
		return fmt.Errorf("anchor day %d for %v: %w", a.Day, a.Month, ErrInvalidRateCard)
	}

	if !a.Season.Valid() {
		return fmt.Errorf("anchor season %q: %w", a.Season, ErrInvalidRateCard)
	}

	return nil
}

func (a Anchor) notAfter(month time.Month, day int) bool {
	if a.Month != month {
		return a.Month < month
	}

	return a.Day <= day
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

type Calendar struct {
	anchors []Anchor
}

func NewCalendar(anchors []Anchor) (*Calendar, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("season calendar has no anchors: %w", ErrInvalidRateCard)
	}

	sorted := make([]Anchor, len(anchors))
	copy(sorted, anchors)

	for _, a := range sorted {
		if err := a.validate(); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Month != sorted[j].Month {
			return sorted[i].Month > sorted[j].Month
		}

		return sorted[i].Day > sorted[j].Day
	})

	return &Calendar{anchors: sorted}, nil
}

// SeasonOf returns the season of the latest anchor on or before the date's
// month and day. The year is ignored; dates before every anchor are low season.
func (c *Calendar) SeasonOf(date time.Time) Season {
	month, day := date.Month(), date.Day()

	for _, a := range c.anchors {
		if a.notAfter(month, day) {
			return a.Season
		}
	}

	return LowSeason
}

// Anchors returns the anchors in descending (month, day) order.
func (c *Calendar) Anchors() []Anchor {
	out := make([]Anchor, len(c.anchors))
	copy(out, c.anchors)

	return out
}
