package house

import (
	"github.com/google/uuid"

	"github.com/nerrad567/gray-logic-home/device"
)

// Location holds the geographic coordinates of a house.
// It is created with the house and immutable thereafter.
// Coordinate ranges are not validated.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// House is the root of the spatial hierarchy. It owns its floors (and,
// transitively, rooms and devices) exclusively.
//
// OwnerID is declared but never assigned by any registry operation;
// it is reserved for a future ownership feature.
type House struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Location Location `json:"location"`
	OwnerID  string   `json:"owner_id,omitempty"`
	Floors   []*Floor `json:"floors"`
}

// NewHouse creates a house with a generated ID, no owner, and no floors.
func NewHouse(name, address string, loc Location) *House {
	return &House{
		ID:       GenerateID(),
		Name:     name,
		Address:  address,
		Location: loc,
	}
}

// FindFloor returns the floor with the given ID, or nil if absent.
func (h *House) FindFloor(floorID string) *Floor {
	for _, f := range h.Floors {
		if f.ID == floorID {
			return f
		}
	}
	return nil
}

// Floor is a level within a house.
type Floor struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	FloorNumber int     `json:"floor_number"`
	Rooms       []*Room `json:"rooms"`
}

// NewFloor creates a floor with a generated ID and no rooms.
func NewFloor(name string, floorNumber int) *Floor {
	return &Floor{
		ID:          GenerateID(),
		Name:        name,
		FloorNumber: floorNumber,
	}
}

// FindRoom returns the room with the given ID, or nil if absent.
func (f *Floor) FindRoom(roomID string) *Room {
	for _, r := range f.Rooms {
		if r.ID == roomID {
			return r
		}
	}
	return nil
}

// Room is a physical space on a floor.
//
// Floor is the owning floor's number, copied at creation. It is not
// kept in sync if the parent is renumbered.
type Room struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Type    RoomType         `json:"type"`
	Floor   int              `json:"floor"`
	Size    float64          `json:"size"` // square metres
	Devices []*device.Device `json:"devices"`
}

// NewRoom creates a room with a generated ID and no devices.
func NewRoom(name string, roomType RoomType, floorNumber int, size float64) *Room {
	return &Room{
		ID:    GenerateID(),
		Name:  name,
		Type:  roomType,
		Floor: floorNumber,
		Size:  size,
	}
}

// FindDevice returns the device with the given ID, or nil if absent.
func (r *Room) FindDevice(deviceID string) *device.Device {
	for _, d := range r.Devices {
		if d.ID == deviceID {
			return d
		}
	}
	return nil
}

// RoomType classifies a room.
type RoomType string

// RoomType constants.
const (
	RoomTypeBedroom    RoomType = "bedroom"
	RoomTypeBathroom   RoomType = "bathroom"
	RoomTypeKitchen    RoomType = "kitchen"
	RoomTypeLivingRoom RoomType = "living_room"
	RoomTypeOther      RoomType = "other"
)

// AllRoomTypes returns all valid room type values.
func AllRoomTypes() []RoomType {
	return []RoomType{
		RoomTypeBedroom, RoomTypeBathroom, RoomTypeKitchen,
		RoomTypeLivingRoom, RoomTypeOther,
	}
}

// GenerateID creates a new UUID for a house, floor, or room.
func GenerateID() string {
	return uuid.New().String()
}
