package blueprint

// Blueprint is the root of a YAML site description.
type Blueprint struct {
	Users  []UserSpec  `yaml:"users"`
	Houses []HouseSpec `yaml:"houses"`
}

// UserSpec describes a user account to register.
type UserSpec struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// HouseSpec describes a house and its nested structure.
type HouseSpec struct {
	Name      string      `yaml:"name"`
	Address   string      `yaml:"address"`
	Latitude  float64     `yaml:"latitude"`
	Longitude float64     `yaml:"longitude"`
	Floors    []FloorSpec `yaml:"floors"`
}

// FloorSpec describes a floor. A nil Number means unspecified and
// defaults to 1; an explicit 0 (UK ground floor) is preserved.
type FloorSpec struct {
	Name   string     `yaml:"name"`
	Number *int       `yaml:"number"`
	Rooms  []RoomSpec `yaml:"rooms"`
}

// RoomSpec describes a room. An empty Type defaults to "other".
type RoomSpec struct {
	Name    string       `yaml:"name"`
	Type    string       `yaml:"type"`
	Size    float64      `yaml:"size"`
	Devices []DeviceSpec `yaml:"devices"`
}

// DeviceSpec describes a device. A non-empty Status block is applied
// through the registry's status merge after creation.
type DeviceSpec struct {
	Type   string         `yaml:"type"`
	Name   string         `yaml:"name"`
	Status map[string]any `yaml:"status"`
}

// Result reports what an Apply created.
type Result struct {
	Users   int
	Houses  int
	Floors  int
	Rooms   int
	Devices int
}
