package extract

import "errors"

var ErrNoRoomTypes = errors.New("no room types to extract")
