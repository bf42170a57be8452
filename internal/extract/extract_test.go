package extract

import (
	"errors"
	"testing"
)

var rooms = []string{"Classic Deluxe", "Deluxe", "Superior", "G-House"}

func TestExtract(t *testing.T) {
	e, err := New(rooms)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		text string
		want Entities
	}{
		{
			"I'd like to book a Classic Deluxe room for July 15, 2024",
			Entities{RoomType: "Classic Deluxe", Date: "July 15, 2024"},
		},
		{
			"What are the rates for a Deluxe room?",
			Entities{RoomType: "Deluxe"},
		},
		{
			"I'm planning a trip on March 15, 2024. What are the room rates?",
			Entities{Date: "March 15, 2024"},
		},
		{
			"Can you give me information about your room types and prices?",
			Entities{},
		},
		{
			"classic deluxe from 2024-03-01 please",
			Entities{RoomType: "Classic Deluxe", Date: "2024-03-01"},
		},
		{
			"is the g-house free on 15/07/2024?",
			Entities{RoomType: "G-House", Date: "15/07/2024"},
		},
		{
			"SUPERIOR, 15 Jul. 2024",
			Entities{RoomType: "Superior", Date: "15 Jul. 2024"},
		},
		{
			"Dec 25 2024 or Jan 3, 2025 in a Deluxe or a Superior",
			Entities{RoomType: "Deluxe", Date: "Dec 25 2024"},
		},
		{
			"arriving 3 september 2024",
			Entities{Date: "3 september 2024"},
		},
		{
			"booking ref 123-4-56789",
			Entities{},
		},
	}

	for _, tt := range tests {
		if got := e.Extract(tt.text); got != tt.want {
			t.Errorf("Extract(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestExtractQuotesRoomNames(t *testing.T) {
	e, err := New([]string{"Suite (Sea View)", "Room+"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := e.Extract("a suite (sea view) please").RoomType; got != "Suite (Sea View)" {
		t.Errorf("RoomType = %q, want %q", got, "Suite (Sea View)")
	}

	if got := e.Extract("just a room please").RoomType; got != "" {
		t.Errorf("RoomType = %q, want none", got)
	}
}

func TestNewWithoutRoomTypes(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoRoomTypes) {
		t.Fatalf("New(nil) error = %v, want ErrNoRoomTypes", err)
	}
}

func TestExtractDateBoundaryIsASCII(t *testing.T) {
	e, err := New(rooms)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := e.Extract("café15-07-2024").Date; got != "15-07-2024" {
		t.Errorf("Date = %q, want %q", got, "15-07-2024")
	}

	if got := e.Extract("ref15-07-2024").Date; got != "" {
		t.Errorf("Date = %q, want none after an ASCII letter", got)
	}
}
