package booking

import "errors"

var (
	ErrValidation   = errors.New("invalid booking request")
	ErrRoomNotFound = errors.New("room not found")
	ErrNotFound     = errors.New("booking not found")
)
