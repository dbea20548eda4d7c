package blueprint

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nerrad567/gray-logic-home/device"
	"github.com/nerrad567/gray-logic-home/house"
	"github.com/nerrad567/gray-logic-home/registry"
)

const siteYAML = `
users:
  - name: Ada
    email: ada@example.com
houses:
  - name: My House
    address: 123 Main St
    latitude: 40.7128
    longitude: -74.0060
    floors:
      - name: Ground Floor
        number: 0
        rooms:
          - name: Kitchen
            type: kitchen
            size: 12.5
      - name: First Floor
        rooms:
          - name: Living Room
            type: living_room
            size: 24.5
            devices:
              - type: temperature
                name: Sensor
                status:
                  unit: celsius
              - type: light
                name: Ceiling Light
          - name: Box Room
`

func TestParse(t *testing.T) {
	bp, err := Parse(strings.NewReader(siteYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(bp.Users) != 1 || bp.Users[0].Email != "ada@example.com" {
		t.Errorf("Users = %+v, want one user with ada@example.com", bp.Users)
	}
	if len(bp.Houses) != 1 {
		t.Fatalf("Houses = %d, want 1", len(bp.Houses))
	}

	h := bp.Houses[0]
	if h.Latitude != 40.7128 {
		t.Errorf("Latitude = %v, want 40.7128", h.Latitude)
	}
	if len(h.Floors) != 2 {
		t.Fatalf("Floors = %d, want 2", len(h.Floors))
	}
	if h.Floors[0].Number == nil || *h.Floors[0].Number != 0 {
		t.Errorf("explicit ground floor number not preserved: %v", h.Floors[0].Number)
	}
	if h.Floors[1].Number != nil {
		t.Errorf("omitted floor number should be nil, got %v", *h.Floors[1].Number)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse(strings.NewReader("houses: [unterminated"))
	if err == nil {
		t.Fatal("Parse of malformed document should fail")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(siteYAML), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	bp, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(bp.Houses) != 1 {
		t.Errorf("Houses = %d, want 1", len(bp.Houses))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("ParseFile of missing file should fail")
	}
}

func TestApply(t *testing.T) {
	bp, err := Parse(strings.NewReader(siteYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	reg := registry.New()
	result, err := Apply(reg, bp)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := &Result{Users: 1, Houses: 1, Floors: 2, Rooms: 3, Devices: 2}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("Result = %+v, want %+v", result, want)
	}

	h := reg.ListHouses()[0]
	if h.Name != "My House" {
		t.Errorf("house name = %q, want %q", h.Name, "My House")
	}

	ground := h.Floors[0]
	if ground.FloorNumber != 0 {
		t.Errorf("ground floor number = %d, want 0", ground.FloorNumber)
	}
	first := h.Floors[1]
	if first.FloorNumber != 1 {
		t.Errorf("omitted floor number = %d, want default 1", first.FloorNumber)
	}

	living := first.Rooms[0]
	if living.Type != house.RoomTypeLivingRoom {
		t.Errorf("room type = %q, want %q", living.Type, house.RoomTypeLivingRoom)
	}
	if living.Floor != 1 {
		t.Errorf("room floor = %d, want 1", living.Floor)
	}

	box := first.Rooms[1]
	if box.Type != house.RoomTypeOther {
		t.Errorf("untyped room = %q, want %q", box.Type, house.RoomTypeOther)
	}

	sensor := living.Devices[0]
	if sensor.Type != device.DeviceTypeTemperature {
		t.Errorf("device type = %q, want %q", sensor.Type, device.DeviceTypeTemperature)
	}
	if sensor.Status["unit"] != "celsius" {
		t.Errorf("device status = %v, want unit=celsius", sensor.Status)
	}

	lamp := living.Devices[1]
	if len(lamp.Status) != 0 {
		t.Errorf("device without status block should start empty, got %v", lamp.Status)
	}
}

func TestApplyValidationFailure(t *testing.T) {
	const badYAML = `
houses:
  - name: My House
    address: 123 Main St
    floors:
      - name: First Floor
        rooms:
          - name: Living Room
            devices:
              - type: toaster
                name: Toaster
`
	bp, err := Parse(strings.NewReader(badYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	reg := registry.New()
	result, err := Apply(reg, bp)
	if !errors.Is(err, device.ErrInvalidDeviceType) {
		t.Fatalf("Apply = %v, want %v", err, device.ErrInvalidDeviceType)
	}
	if !strings.Contains(err.Error(), "Toaster") {
		t.Errorf("error = %q, want it to name the failing entry", err)
	}

	// Everything created before the failing entry stays in place.
	if result.Houses != 1 || result.Floors != 1 || result.Rooms != 1 || result.Devices != 0 {
		t.Errorf("partial result = %+v, want 1 house/floor/room and no devices", result)
	}
	if got := len(reg.ListHouses()); got != 1 {
		t.Errorf("houses in registry = %d, want 1", got)
	}
}

func TestApplyDuplicateUser(t *testing.T) {
	const dupYAML = `
users:
  - name: Ada
    email: ada@example.com
  - name: Grace
    email: ada@example.com
`
	bp, err := Parse(strings.NewReader(dupYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	result, err := Apply(registry.New(), bp)
	if err == nil {
		t.Fatal("Apply with duplicate emails should fail")
	}
	if result.Users != 1 {
		t.Errorf("Users = %d, want 1", result.Users)
	}
}
