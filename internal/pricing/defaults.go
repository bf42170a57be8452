package pricing

import "time"

func DefaultRooms() []RoomRate {
	return []RoomRate{
		{Name: "Classic Deluxe", Prices: map[Season]int{LowSeason: 800, MidSeason: 900, HighSeason: 950}},
		{Name: "Deluxe", Prices: map[Season]int{LowSeason: 800, MidSeason: 900, HighSeason: 950}},
		{Name: "Superior", Prices: map[Season]int{LowSeason: 750, MidSeason: 800, HighSeason: 850}},
		{Name: "G-House", Prices: map[Season]int{LowSeason: 750, MidSeason: 800, HighSeason: 850}},
	}
}

func DefaultAnchors() []Anchor {
	return []Anchor{
		{Month: time.February, Day: 22, Season: LowSeason},
		{Month: time.March, Day: 15, Season: MidSeason},
		{Month: time.March, Day: 29, Season: HighSeason},
		{Month: time.May, Day: 17, Season: MidSeason},
	}
}

// Default returns the compiled-in rate card.
func Default() *RateCard {
	card, err := NewRateCard(DefaultRooms(), DefaultAnchors())
	if err != nil {
		panic(err)
	}

	return card
}
