package inquiry

import (
	"fmt"
	"strings"
	"time"

	"github.com/avstrong/hotelrates/internal/dateparse"
	"github.com/avstrong/hotelrates/internal/extract"
	"github.com/avstrong/hotelrates/internal/logger"
	"github.com/avstrong/hotelrates/internal/pricing"
)

const (
	greeting   = "Thank you for your inquiry. Here's the information you requested:\n\n"
	dateLayout = "January 02, 2006"
)

type Responder struct {
	l         *logger.Logger
	rates     *pricing.RateCard
	extractor *extract.Extractor
}

func New(l *logger.Logger, rates *pricing.RateCard) (*Responder, error) {
	extractor, err := extract.New(rates.RoomTypes())
	if err != nil {
		return nil, fmt.Errorf("build extractor: %w", err)
	}

	return &Responder{
		l:         l,
		rates:     rates,
		extractor: extractor,
	}, nil
}

// GenerateResponse answers a free-text pricing inquiry. A date that cannot be
// parsed makes its error message the whole reply. Any returned error is a
// failure of the rate card, not of the inquiry.
func (r *Responder) GenerateResponse(text string) (string, error) {
	entities := r.extractor.Extract(text)

	r.l.LogDebug("Inquiry entities extracted", "roomType", entities.RoomType, "date", entities.Date)

	var (
		date time.Time
		err  error
	)

	if entities.HasDate() {
		date, err = dateparse.Parse(entities.Date)
		if err != nil {
			r.l.LogDebug("Inquiry date rejected", "date", entities.Date, "reason", err.Error())

			return err.Error(), nil
		}
	}

	var b strings.Builder

	b.WriteString(greeting)

	switch {
	case entities.HasRoomType() && entities.HasDate():
		err = r.writeRoomOnDate(&b, entities.RoomType, date)
	case entities.HasRoomType():
		err = r.writeRoomSeasons(&b, entities.RoomType)
	case entities.HasDate():
		err = r.writeDate(&b, date)
	default:
		err = r.writeRanges(&b)
	}

	if err != nil {
		return "", err
	}

	return b.String(), nil
}

func (r *Responder) writeRoomOnDate(b *strings.Builder, room string, date time.Time) error {
	price, err := r.rates.Price(room, date)
	if err != nil {
		return fmt.Errorf("price %s on %s: %w", room, date.Format(time.DateOnly), err)
	}

	fmt.Fprintf(b, "The price for a %s room on %s is $%d per night.", room, date.Format(dateLayout), price)

	return nil
}

func (r *Responder) writeRoomSeasons(b *strings.Builder, room string) error {
	prices, err := r.rates.Prices(room)
	if err != nil {
		return fmt.Errorf("season prices of %s: %w", room, err)
	}

	fmt.Fprintf(b, "Prices for %s room:\n", room)

	for i, season := range pricing.Seasons {
		fmt.Fprintf(b, "- %s: $%d per night\n", season.Label(), prices[i])
	}

	return nil
}

func (r *Responder) writeDate(b *strings.Builder, date time.Time) error {
	fmt.Fprintf(b, "Prices for %s:\n", date.Format(dateLayout))

	for _, room := range r.rates.RoomTypes() {
		price, err := r.rates.Price(room, date)
		if err != nil {
			return fmt.Errorf("price %s on %s: %w", room, date.Format(time.DateOnly), err)
		}

		fmt.Fprintf(b, "- %s: $%d per night\n", room, price)
	}

	return nil
}

func (r *Responder) writeRanges(b *strings.Builder) error {
	b.WriteString("Our room types and price ranges:\n")

	for _, room := range r.rates.RoomTypes() {
		lowest, highest, err := r.rates.Range(room)
		if err != nil {
			return fmt.Errorf("price range of %s: %w", room, err)
		}

		fmt.Fprintf(b, "- %s: $%d - $%d per night\n", room, lowest, highest)
	}

	return nil
}
