// Package device defines the device model for Gray Logic Home.
//
// A Device is the leaf of the site hierarchy: it belongs to exactly one
// room and carries an open-ended Status map with no enforced schema.
// Status updates merge key by key rather than replacing the map, so a
// light that reports {"on": true} and later {"brightness": 50} ends up
// with both keys.
//
// The package owns the DeviceType enumeration, device-kind sentinel
// errors, and validation for device fields. The registry package wires
// devices into the house hierarchy.
package device
