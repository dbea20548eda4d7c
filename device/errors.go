package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrDeviceNotFound) {
//	    // handle not found case
//	}
var (
	// ErrDeviceNotFound is returned when a device ID does not exist in its room.
	ErrDeviceNotFound = errors.New("device: not found")

	// ErrInvalidDeviceType is returned when a device type is not recognised.
	ErrInvalidDeviceType = errors.New("device: invalid type")

	// ErrInvalidName is returned when a device name is empty or too short.
	ErrInvalidName = errors.New("device: invalid name")

	// ErrInvalidDeviceID is returned when a device identifier is empty.
	ErrInvalidDeviceID = errors.New("device: invalid id")
)
