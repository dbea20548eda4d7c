// Package user defines user accounts for Gray Logic Home.
//
// Users are a flat collection alongside the house hierarchy: they are
// created and updated through the registry and never deleted. The Role
// field is stored but not enforced; there is no authentication layer.
package user
