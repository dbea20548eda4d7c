package registry

import (
	"fmt"

	"github.com/nerrad567/gray-logic-home/device"
	"github.com/nerrad567/gray-logic-home/house"
	"github.com/nerrad567/gray-logic-home/user"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used;
// *slog.Logger satisfies it directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry owns the user and house collections and every operation on
// them. Returned entities are live references into registry state:
// later mutations through the registry are visible through pointers
// returned earlier. See the package documentation for the concurrency
// contract.
type Registry struct {
	users  map[string]*user.User
	houses map[string]*house.House
	logger Logger
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		users:  make(map[string]*user.User),
		houses: make(map[string]*house.House),
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// CreateUser registers a new user with the regular role.
// The email must not be registered to any existing user.
func (r *Registry) CreateUser(name, email string) (*user.User, error) {
	if err := user.ValidateName(name); err != nil {
		return nil, err
	}
	if err := user.ValidateEmail(email); err != nil {
		return nil, err
	}
	for _, u := range r.users {
		if u.Email == email {
			return nil, user.ErrEmailExists
		}
	}

	u := user.New(name, email)
	r.users[u.ID] = u

	r.logger.Info("user created", "id", u.ID, "name", u.Name)
	return u, nil
}

// GetUser retrieves a user by ID.
func (r *Registry) GetUser(id string) (*user.User, error) {
	if err := user.ValidateID(id); err != nil {
		return nil, err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

// UserUpdate describes a partial update to a user.
// Nil fields are left unchanged.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UpdateUser applies a partial update to a user. All provided fields
// are validated before any of them is written, so a failed update
// leaves the user untouched. Changing the email to the value the user
// already holds is allowed; changing it to another user's email is not.
func (r *Registry) UpdateUser(id string, upd UserUpdate) (*user.User, error) {
	u, err := r.GetUser(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if err := user.ValidateName(*upd.Name); err != nil {
			return nil, err
		}
	}
	if upd.Email != nil {
		if err := user.ValidateEmail(*upd.Email); err != nil {
			return nil, err
		}
		for _, other := range r.users {
			if other.Email == *upd.Email && other.ID != id {
				return nil, user.ErrEmailExists
			}
		}
	}

	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}

	r.logger.Info("user updated", "id", u.ID)
	return u, nil
}

// ListUsers returns all registered users in no particular order.
func (r *Registry) ListUsers() []*user.User {
	users := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users
}

// CreateHouse creates a house at the given coordinates with no floors
// and no owner.
func (r *Registry) CreateHouse(name, address string, latitude, longitude float64) (*house.House, error) {
	if err := house.ValidateName(name); err != nil {
		return nil, err
	}
	if err := house.ValidateAddress(address); err != nil {
		return nil, err
	}

	h := house.NewHouse(name, address, house.Location{
		Latitude:  latitude,
		Longitude: longitude,
	})
	r.houses[h.ID] = h

	r.logger.Info("house created", "id", h.ID, "name", h.Name)
	return h, nil
}

// GetHouse retrieves a house by ID.
func (r *Registry) GetHouse(id string) (*house.House, error) {
	if err := house.ValidateID(id, "house"); err != nil {
		return nil, err
	}
	h, ok := r.houses[id]
	if !ok {
		return nil, house.ErrHouseNotFound
	}
	return h, nil
}

// ListHouses returns all houses in no particular order.
func (r *Registry) ListHouses() []*house.House {
	houses := make([]*house.House, 0, len(r.houses))
	for _, h := range r.houses {
		houses = append(houses, h)
	}
	return houses
}

// UpdateHouseName renames a house.
func (r *Registry) UpdateHouseName(id, name string) (*house.House, error) {
	h, err := r.GetHouse(id)
	if err != nil {
		return nil, err
	}
	if err := house.ValidateName(name); err != nil {
		return nil, err
	}

	h.Name = name

	r.logger.Info("house renamed", "id", h.ID, "name", h.Name)
	return h, nil
}

// DeleteHouse removes a house and everything it owns.
func (r *Registry) DeleteHouse(id string) error {
	if _, ok := r.houses[id]; !ok {
		return fmt.Errorf("%w: %q", house.ErrHouseNotFound, id)
	}
	delete(r.houses, id)

	r.logger.Info("house deleted", "id", id)
	return nil
}

// AddFloor appends a floor to a house.
func (r *Registry) AddFloor(houseID, name string, floorNumber int) (*house.Floor, error) {
	h, err := r.GetHouse(houseID)
	if err != nil {
		return nil, err
	}
	if err := house.ValidateName(name); err != nil {
		return nil, err
	}

	f := house.NewFloor(name, floorNumber)
	h.Floors = append(h.Floors, f)

	r.logger.Info("floor added", "house_id", h.ID, "id", f.ID, "name", f.Name)
	return f, nil
}

// GetFloor retrieves a floor within a house.
func (r *Registry) GetFloor(houseID, floorID string) (*house.Floor, error) {
	_, f, err := r.resolveFloor(houseID, floorID)
	return f, err
}

// AddRoom appends a room to a floor. The room's floor number is copied
// from the parent floor at creation. An empty roomType defaults to
// RoomTypeOther.
func (r *Registry) AddRoom(houseID, floorID, name string, roomType house.RoomType, size float64) (*house.Room, error) {
	_, f, err := r.resolveFloor(houseID, floorID)
	if err != nil {
		return nil, err
	}
	if err := house.ValidateName(name); err != nil {
		return nil, err
	}
	if roomType == "" {
		roomType = house.RoomTypeOther
	}
	if err := house.ValidateRoomType(roomType); err != nil {
		return nil, err
	}
	if err := house.ValidateRoomSize(size); err != nil {
		return nil, err
	}

	room := house.NewRoom(name, roomType, f.FloorNumber, size)
	f.Rooms = append(f.Rooms, room)

	r.logger.Info("room added", "house_id", houseID, "floor_id", f.ID, "id", room.ID, "name", room.Name)
	return room, nil
}

// GetRoom retrieves a room within a floor.
func (r *Registry) GetRoom(houseID, floorID, roomID string) (*house.Room, error) {
	_, room, err := r.resolveRoom(houseID, floorID, roomID)
	return room, err
}

// AddDevice appends a device to a room. The raw type string must parse
// to a known DeviceType.
func (r *Registry) AddDevice(houseID, floorID, roomID, rawType, name string) (*device.Device, error) {
	_, room, err := r.resolveRoom(houseID, floorID, roomID)
	if err != nil {
		return nil, err
	}
	if err := device.ValidateName(name); err != nil {
		return nil, err
	}
	deviceType, err := device.ParseType(rawType)
	if err != nil {
		return nil, err
	}

	d := device.New(deviceType, name)
	room.Devices = append(room.Devices, d)

	r.logger.Info("device added", "room_id", room.ID, "id", d.ID, "type", d.Type, "name", d.Name)
	return d, nil
}

// GetDevice retrieves a device within a room.
func (r *Registry) GetDevice(houseID, floorID, roomID, deviceID string) (*device.Device, error) {
	if err := device.ValidateID(deviceID); err != nil {
		return nil, err
	}
	_, room, err := r.resolveRoom(houseID, floorID, roomID)
	if err != nil {
		return nil, err
	}
	d := room.FindDevice(deviceID)
	if d == nil {
		return nil, device.ErrDeviceNotFound
	}
	return d, nil
}

// UpdateDeviceStatus merges a status patch into a device. Keys in the
// patch overwrite existing keys; keys absent from the patch are
// retained.
func (r *Registry) UpdateDeviceStatus(houseID, floorID, roomID, deviceID string, status device.Status) (*device.Device, error) {
	d, err := r.GetDevice(houseID, floorID, roomID, deviceID)
	if err != nil {
		return nil, err
	}

	d.MergeStatus(status)

	r.logger.Debug("device status updated", "id", d.ID)
	return d, nil
}

// resolveFloor checks both identifiers and resolves the house then the
// floor, in that order.
func (r *Registry) resolveFloor(houseID, floorID string) (*house.House, *house.Floor, error) {
	if err := house.ValidateID(houseID, "house"); err != nil {
		return nil, nil, err
	}
	if err := house.ValidateID(floorID, "floor"); err != nil {
		return nil, nil, err
	}
	h, err := r.GetHouse(houseID)
	if err != nil {
		return nil, nil, err
	}
	f := h.FindFloor(floorID)
	if f == nil {
		return nil, nil, house.ErrFloorNotFound
	}
	return h, f, nil
}

// resolveRoom checks all three identifiers in hierarchy order, then
// resolves the chain house, floor, room.
func (r *Registry) resolveRoom(houseID, floorID, roomID string) (*house.Floor, *house.Room, error) {
	if err := house.ValidateID(houseID, "house"); err != nil {
		return nil, nil, err
	}
	if err := house.ValidateID(floorID, "floor"); err != nil {
		return nil, nil, err
	}
	if err := house.ValidateID(roomID, "room"); err != nil {
		return nil, nil, err
	}
	h, err := r.GetHouse(houseID)
	if err != nil {
		return nil, nil, err
	}
	f := h.FindFloor(floorID)
	if f == nil {
		return nil, nil, house.ErrFloorNotFound
	}
	room := f.FindRoom(roomID)
	if room == nil {
		return nil, nil, house.ErrRoomNotFound
	}
	return f, room, nil
}

// Stats holds registry counts for monitoring.
type Stats struct {
	Users        int
	Houses       int
	Floors       int
	Rooms        int
	Devices      int
	ByDeviceType map[device.DeviceType]int
}

// GetStats returns current registry statistics.
func (r *Registry) GetStats() Stats {
	stats := Stats{
		Users:        len(r.users),
		Houses:       len(r.houses),
		ByDeviceType: make(map[device.DeviceType]int),
	}

	for _, h := range r.houses {
		stats.Floors += len(h.Floors)
		for _, f := range h.Floors {
			stats.Rooms += len(f.Rooms)
			for _, room := range f.Rooms {
				stats.Devices += len(room.Devices)
				for _, d := range room.Devices {
					stats.ByDeviceType[d.Type]++
				}
			}
		}
	}

	return stats
}
