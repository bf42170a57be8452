package pricing

import "errors"

var (
	ErrUnknownRoomType = errors.New("unknown room type")
	ErrInvalidRateCard = errors.New("invalid rate card")
)
