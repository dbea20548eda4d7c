package house

import "errors"

// Sentinel errors for the house hierarchy. Floor and room failures are
// house-kind errors: the house aggregate owns both.
var (
	// ErrHouseNotFound is returned when a house ID does not exist.
	ErrHouseNotFound = errors.New("house not found")

	// ErrFloorNotFound is returned when a floor ID does not exist in its house.
	ErrFloorNotFound = errors.New("floor not found")

	// ErrRoomNotFound is returned when a room ID does not exist on its floor.
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidName is returned when a house, floor, or room name is too short.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidAddress is returned when a house address is too short.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidRoomSize is returned when a room size is negative.
	ErrInvalidRoomSize = errors.New("invalid room size")

	// ErrInvalidRoomType is returned when a room type is not recognised.
	ErrInvalidRoomType = errors.New("invalid room type")

	// ErrInvalidID is returned when a house, floor, or room identifier is empty.
	ErrInvalidID = errors.New("invalid id")
)
