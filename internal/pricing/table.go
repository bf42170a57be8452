package pricing

import (
	"fmt"
	"strings"
	"time"
)

// RoomRate holds the nightly price of one room type for every season.
type RoomRate struct {
	Name   string         `json:"name"`
	Prices map[Season]int `json:"prices"`
}

func (r RoomRate) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("room with empty name: %w", ErrInvalidRateCard)
	}

	for _, season := range Seasons {
		price, ok := r.Prices[season]
		if !ok {
			return fmt.Errorf("room %q has no %s price: %w", r.Name, season, ErrInvalidRateCard)
		}

		if price <= 0 {
			return fmt.Errorf("room %q has non-positive %s price %d: %w", r.Name, season, price, ErrInvalidRateCard)
		}
	}

	for season := range r.Prices {
		if !season.Valid() {
			return fmt.Errorf("room %q has unknown season %q: %w", r.Name, season, ErrInvalidRateCard)
		}
	}

	return nil
}

type PriceTable struct {
	rooms []RoomRate
	index map[string]int
}

func NewPriceTable(rooms []RoomRate) (*PriceTable, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("price table has no rooms: %w", ErrInvalidRateCard)
	}

	table := &PriceTable{
		rooms: make([]RoomRate, 0, len(rooms)),
		index: make(map[string]int, len(rooms)),
	}

	for _, room := range rooms {
		if err := room.validate(); err != nil {
			return nil, err
		}

		if _, dup := table.index[room.Name]; dup {
			return nil, fmt.Errorf("room %q listed twice: %w", room.Name, ErrInvalidRateCard)
		}

		prices := make(map[Season]int, len(Seasons))
		for _, season := range Seasons {
			prices[season] = room.Prices[season]
		}

		table.index[room.Name] = len(table.rooms)
		table.rooms = append(table.rooms, RoomRate{Name: room.Name, Prices: prices})
	}

	return table, nil
}

// RoomTypes returns the room names in configured order.
func (t *PriceTable) RoomTypes() []string {
	names := make([]string, 0, len(t.rooms))
	for _, room := range t.rooms {
		names = append(names, room.Name)
	}

	return names
}

func (t *PriceTable) room(name string) (RoomRate, error) {
	idx, ok := t.index[name]
	if !ok {
		return RoomRate{}, fmt.Errorf("room %q: %w", name, ErrUnknownRoomType)
	}

	return t.rooms[idx], nil
}

func (t *PriceTable) Price(room string, season Season) (int, error) {
	rate, err := t.room(room)
	if err != nil {
		return 0, err
	}

	return rate.Prices[season], nil
}

// Prices returns the room's low, mid and high season prices in that order.
func (t *PriceTable) Prices(room string) ([len(Seasons)]int, error) {
	var out [len(Seasons)]int

	rate, err := t.room(room)
	if err != nil {
		return out, err
	}

	for i, season := range Seasons {
		out[i] = rate.Prices[season]
	}

	return out, nil
}

func (t *PriceTable) Range(room string) (minPrice, maxPrice int, err error) {
	prices, err := t.Prices(room)
	if err != nil {
		return 0, 0, err
	}

	minPrice, maxPrice = prices[0], prices[0]
	for _, p := range prices[1:] {
		minPrice = min(minPrice, p)
		maxPrice = max(maxPrice, p)
	}

	return minPrice, maxPrice, nil
}

// RateCard bundles the price table with the season calendar. It is immutable
// and safe for concurrent use.
type RateCard struct {
	table    *PriceTable
	calendar *Calendar
}

func NewRateCard(rooms []RoomRate, anchors []Anchor) (*RateCard, error) {
	table, err := NewPriceTable(rooms)
	if err != nil {
		return nil, fmt.Errorf("build price table: %w", err)
	}

	calendar, err := NewCalendar(anchors)
	if err != nil {
		return nil, fmt.Errorf("build season calendar: %w", err)
	}

	return &RateCard{table: table, calendar: calendar}, nil
}

func (c *RateCard) RoomTypes() []string {
	return c.table.RoomTypes()
}

func (c *RateCard) SeasonOf(date time.Time) Season {
	return c.calendar.SeasonOf(date)
}

// Price returns the nightly price of room on date.
func (c *RateCard) Price(room string, date time.Time) (int, error) {
	return c.table.Price(room, c.calendar.SeasonOf(date))
}

func (c *RateCard) Prices(room string) ([len(Seasons)]int, error) {
	return c.table.Prices(room)
}

func (c *RateCard) Range(room string) (int, int, error) {
	return c.table.Range(room)
}

// Rooms returns a copy of the price table in configured order.
func (c *RateCard) Rooms() []RoomRate {
	out := make([]RoomRate, 0, len(c.table.rooms))

	for _, room := range c.table.rooms {
		prices := make(map[Season]int, len(room.Prices))
		for season, price := range room.Prices {
			prices[season] = price
		}

		out = append(out, RoomRate{Name: room.Name, Prices: prices})
	}

	return out
}

func (c *RateCard) Anchors() []Anchor {
	return c.calendar.Anchors()
}
