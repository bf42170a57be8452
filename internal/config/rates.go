package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/avstrong/hotelrates/internal/pricing"
)

type roomFile struct {
	Name   string         `mapstructure:"name"`
	Prices map[string]int `mapstructure:"prices"`
}

type anchorFile struct {
	Month  int    `mapstructure:"month"`
	Day    int    `mapstructure:"day"`
	Season string `mapstructure:"season"`
}

// LoadRates returns the compiled-in rate card when path is empty, otherwise
// the card described by the file. The format follows the file extension.
// A file may omit either section to keep the default for it.
func LoadRates(path string) (*pricing.RateCard, error) {
	if path == "" {
		return pricing.Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rates file %s: %w", path, err)
	}

	rooms := pricing.DefaultRooms()

	if v.IsSet("rooms") {
		var raw []roomFile
		if err := v.UnmarshalKey("rooms", &raw); err != nil {
			return nil, fmt.Errorf("decode rooms from %s: %w", path, err)
		}

		rooms = make([]pricing.RoomRate, 0, len(raw))

		for _, r := range raw {
			prices := make(map[pricing.Season]int, len(r.Prices))
			for season, price := range r.Prices {
				prices[pricing.Season(season)] = price
			}

			rooms = append(rooms, pricing.RoomRate{Name: r.Name, Prices: prices})
		}
	}

	anchors := pricing.DefaultAnchors()

	if v.IsSet("seasons") {
		var raw []anchorFile
		if err := v.UnmarshalKey("seasons", &raw); err != nil {
			return nil, fmt.Errorf("decode seasons from %s: %w", path, err)
		}

		anchors = make([]pricing.Anchor, 0, len(raw))

		for _, a := range raw {
			anchors = append(anchors, pricing.Anchor{
				Month:  time.Month(a.Month),
				Day:    a.Day,
				Season: pricing.Season(a.Season),
			})
		}
	}

	card, err := pricing.NewRateCard(rooms, anchors)
	if err != nil {
		return nil, fmt.Errorf("rates file %s: %w", path, err)
	}

	return card, nil
}
