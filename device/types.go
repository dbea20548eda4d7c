package device

// Device represents a monitorable or controllable entity in a room.
type Device struct {
	ID     string     `json:"id"`
	Type   DeviceType `json:"type"`
	Name   string     `json:"name"`
	Status Status     `json:"status"`
}

// New creates a device with a generated ID and an empty status map.
func New(deviceType DeviceType, name string) *Device {
	return &Device{
		ID:     GenerateID(),
		Type:   deviceType,
		Name:   name,
		Status: Status{},
	}
}

// Status holds the current device state as an open-ended JSON-style map.
// There is no enforced schema; bridges and callers agree on keys.
//
// Examples:
//   - Light: {"on": true, "brightness": 50}
//   - Temperature sensor: {"value": 21.5, "unit": "celsius"}
type Status map[string]any

// MergeStatus applies a status patch to the device. Keys present in the
// patch overwrite existing keys; all other keys are retained. Patch
// values are deep-copied so the caller cannot alias the stored status
// through the patch map afterwards.
func (d *Device) MergeStatus(patch Status) {
	if d.Status == nil {
		d.Status = make(Status, len(patch))
	}
	for k, v := range patch {
		d.Status[k] = deepCopyValue(v)
	}
}

// DeepCopy creates a complete independent copy of the Device.
// The status map is cloned so modifications to the copy do not affect
// the original.
func (d *Device) DeepCopy() *Device {
	if d == nil {
		return nil
	}
	cpy := *d
	cpy.Status = deepCopyMap(d.Status)
	return &cpy
}

// deepCopyMap creates a deep copy of a map[string]any.
// Nested maps and slices are recursively copied.
func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cpy := make(map[string]any, len(m))
	for k, v := range m {
		cpy[k] = deepCopyValue(v)
	}
	return cpy
}

// deepCopyValue recursively copies a value, handling nested maps and slices.
func deepCopyValue(v any) any {
	if v == nil {
		return nil
	}
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		cpy := make([]any, len(val))
		for i, elem := range val {
			cpy[i] = deepCopyValue(elem)
		}
		return cpy
	default:
		// Primitives (string, bool, int, float64, etc.) are safe to copy by value
		return v
	}
}

// DeviceType represents the specific kind of device.
type DeviceType string //nolint:revive // device.DeviceType is clearer than device.Type in calling code

// DeviceType constants.
const (
	DeviceTypeTemperature    DeviceType = "temperature"
	DeviceTypeHumidity       DeviceType = "humidity"
	DeviceTypeLight          DeviceType = "light"
	DeviceTypeSecurityCamera DeviceType = "security_camera"
	DeviceTypeDoorLock       DeviceType = "door_lock"
	DeviceTypeOther          DeviceType = "other"
)

// AllDeviceTypes returns all valid device type values.
func AllDeviceTypes() []DeviceType {
	return []DeviceType{
		DeviceTypeTemperature, DeviceTypeHumidity, DeviceTypeLight,
		DeviceTypeSecurityCamera, DeviceTypeDoorLock, DeviceTypeOther,
	}
}
