package extract

import (
	"fmt"
	"regexp"
	"strings"
)

const monthAbbr = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

var datePattern = regexp.MustCompile(`(?i)\b(` +
	`\d{1,2}[-./]\d{1,2}[-./]\d{4}` +
	`|\d{4}[-./]\d{1,2}[-./]\d{1,2}` +
	`|\d{1,2}\s+` + monthAbbr + `[a-z]*\.?\s+\d{4}` +
	`|` + monthAbbr + `[a-z]*\.?\s+\d{1,2},?\s+\d{4}` +
	`)\b`)

// Entities is what an inquiry mentions. Empty fields were not found.
type Entities struct {
	RoomType string
	Date     string
}

func (e Entities) HasRoomType() bool { return e.RoomType != "" }

func (e Entities) HasDate() bool { return e.Date != "" }

type Extractor struct {
	roomPattern *regexp.Regexp
	canonical   map[string]string
}

// New builds an extractor for the given room names. Names are tried in the
// given order at every position of the text.
func New(roomTypes []string) (*Extractor, error) {
	if len(roomTypes) == 0 {
		return nil, ErrNoRoomTypes
	}

	quoted := make([]string, 0, len(roomTypes))
	canonical := make(map[string]string, len(roomTypes))

	for _, name := range roomTypes {
		quoted = append(quoted, regexp.QuoteMeta(name))

		key := strings.ToLower(name)
		if _, ok := canonical[key]; !ok {
			canonical[key] = name
		}
	}

	roomPattern, err := regexp.Compile(`(?i)(` + strings.Join(quoted, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("compile room type pattern: %w", err)
	}

	return &Extractor{
		roomPattern: roomPattern,
		canonical:   canonical,
	}, nil
}

// Extract finds the leftmost room type and the leftmost date-shaped substring.
// The room type is returned as configured, not as typed; the date is returned
// unparsed.
func (e *Extractor) Extract(text string) Entities {
	var out Entities

	if m := e.roomPattern.FindStringSubmatch(text); m != nil {
		out.RoomType = e.canonical[strings.ToLower(m[1])]
	}

	if m := datePattern.FindStringSubmatch(text); m != nil {
		out.Date = m[1]
	}

	return out
}
