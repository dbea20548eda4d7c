// Package house defines the spatial hierarchy for Gray Logic Home.
//
// A House owns an ordered list of Floors, each Floor owns Rooms, and
// each Room owns Devices. The hierarchy is held by value inside the
// house: child entities are created with their parent and never
// re-parented. A Location (latitude/longitude pair) is created with the
// house and immutable thereafter.
//
// Child lookups are linear scans over the owning slice, matched by
// identifier equality. At the scale of a single dwelling that is the
// right trade-off; a per-parent index map would change nothing
// observable.
//
// # Thread Safety
//
// None of the types in this package synchronise access; see the
// registry package for the ownership contract.
package house
