package device

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// minNameLength is the minimum device name length after trimming.
const minNameLength = 2

// validDeviceTypes is a pre-computed set for O(1) type checks.
var validDeviceTypes map[DeviceType]struct{}

func init() {
	validDeviceTypes = make(map[DeviceType]struct{}, len(AllDeviceTypes()))
	for _, t := range AllDeviceTypes() {
		validDeviceTypes[t] = struct{}{}
	}
}

// ValidateName checks if a device name is valid.
// Lengths count characters, not bytes.
func ValidateName(name string) error {
	if name == "" || utf8.RuneCountInString(strings.TrimSpace(name)) < minNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidName, minNameLength)
	}
	return nil
}

// ValidateDeviceType checks if a device type is valid.
func ValidateDeviceType(deviceType DeviceType) error {
	if _, ok := validDeviceTypes[deviceType]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidDeviceType, deviceType)
}

// ParseType converts a raw type string into a DeviceType.
// Returns ErrInvalidDeviceType for anything outside the fixed enumeration.
func ParseType(raw string) (DeviceType, error) {
	t := DeviceType(raw)
	if err := ValidateDeviceType(t); err != nil {
		return "", err
	}
	return t, nil
}

// ValidateID checks that a device identifier is present.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: device ID cannot be empty", ErrInvalidDeviceID)
	}
	return nil
}

// GenerateID creates a new UUID for a device.
func GenerateID() string {
	return uuid.New().String()
}
