package house

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation constants matching the device package conventions.
const (
	minNameLength    = 2
	minAddressLength = 5
)

// validRoomTypes is a pre-computed set for O(1) type checks.
var validRoomTypes map[RoomType]struct{}

func init() {
	validRoomTypes = make(map[RoomType]struct{}, len(AllRoomTypes()))
	for _, t := range AllRoomTypes() {
		validRoomTypes[t] = struct{}{}
	}
}

// ValidateName checks if a house, floor, or room name is valid.
// Lengths count characters, not bytes.
func ValidateName(name string) error {
	if name == "" || utf8.RuneCountInString(strings.TrimSpace(name)) < minNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidName, minNameLength)
	}
	return nil
}

// ValidateAddress checks if a house address is valid.
func ValidateAddress(address string) error {
	if address == "" || utf8.RuneCountInString(strings.TrimSpace(address)) < minAddressLength {
		return fmt.Errorf("%w: address must be at least %d characters", ErrInvalidAddress, minAddressLength)
	}
	return nil
}

// ValidateRoomSize checks that a room size is non-negative.
func ValidateRoomSize(size float64) error {
	if size < 0 {
		return fmt.Errorf("%w: room size cannot be negative", ErrInvalidRoomSize)
	}
	return nil
}

// ValidateRoomType checks if a room type is valid.
func ValidateRoomType(roomType RoomType) error {
	if _, ok := validRoomTypes[roomType]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidRoomType, roomType)
}

// ParseRoomType converts a raw type string into a RoomType.
// An empty string maps to RoomTypeOther, the default classification.
func ParseRoomType(raw string) (RoomType, error) {
	if raw == "" {
		return RoomTypeOther, nil
	}
	t := RoomType(raw)
	if err := ValidateRoomType(t); err != nil {
		return "", err
	}
	return t, nil
}

// ValidateID checks that an identifier for the named entity is present.
// Entity is the lowercase entity name used in the error message
// ("house", "floor", "room").
func ValidateID(id, entity string) error {
	if id == "" {
		return fmt.Errorf("%w: %s ID cannot be empty", ErrInvalidID, entity)
	}
	return nil
}
