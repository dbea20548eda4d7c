package blueprint

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/gray-logic-home/house"
	"github.com/nerrad567/gray-logic-home/registry"
)

// defaultFloorNumber is used when a floor spec omits its number.
const defaultFloorNumber = 1

// Parse decodes a blueprint document from r.
func Parse(r io.Reader) (*Blueprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading blueprint: %w", err)
	}

	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("parsing blueprint: %w", err)
	}
	return &bp, nil
}

// ParseFile decodes a blueprint document from the file at path.
func ParseFile(path string) (*Blueprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening blueprint: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Apply creates every entity the blueprint describes through the
// registry's public operations, in document order: users first, then
// each house top-down. It stops at the first failing entry and returns
// the underlying registry error, wrapped with the entry's name.
func Apply(reg *registry.Registry, bp *Blueprint) (*Result, error) {
	result := &Result{}

	for _, us := range bp.Users {
		if _, err := reg.CreateUser(us.Name, us.Email); err != nil {
			return result, fmt.Errorf("user %q: %w", us.Name, err)
		}
		result.Users++
	}

	for _, hs := range bp.Houses {
		if err := applyHouse(reg, hs, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

func applyHouse(reg *registry.Registry, hs HouseSpec, result *Result) error {
	h, err := reg.CreateHouse(hs.Name, hs.Address, hs.Latitude, hs.Longitude)
	if err != nil {
		return fmt.Errorf("house %q: %w", hs.Name, err)
	}
	result.Houses++

	for _, fs := range hs.Floors {
		number := defaultFloorNumber
		if fs.Number != nil {
			number = *fs.Number
		}
		f, err := reg.AddFloor(h.ID, fs.Name, number)
		if err != nil {
			return fmt.Errorf("floor %q: %w", fs.Name, err)
		}
		result.Floors++

		for _, rs := range fs.Rooms {
			if err := applyRoom(reg, h.ID, f.ID, rs, result); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyRoom(reg *registry.Registry, houseID, floorID string, rs RoomSpec, result *Result) error {
	roomType, err := house.ParseRoomType(rs.Type)
	if err != nil {
		return fmt.Errorf("room %q: %w", rs.Name, err)
	}
	room, err := reg.AddRoom(houseID, floorID, rs.Name, roomType, rs.Size)
	if err != nil {
		return fmt.Errorf("room %q: %w", rs.Name, err)
	}
	result.Rooms++

	for _, ds := range rs.Devices {
		d, err := reg.AddDevice(houseID, floorID, room.ID, ds.Type, ds.Name)
		if err != nil {
			return fmt.Errorf("device %q: %w", ds.Name, err)
		}
		if len(ds.Status) > 0 {
			if _, err := reg.UpdateDeviceStatus(houseID, floorID, room.ID, d.ID, ds.Status); err != nil {
				return fmt.Errorf("device %q status: %w", ds.Name, err)
			}
		}
		result.Devices++
	}
	return nil
}
