// Package registry provides the stateful core of Gray Logic Home.
//
// The Registry owns two top-level collections — users and houses — and
// all validation and mutation logic for the site model. Every operation
// is a single-step validate-then-mutate transaction: arguments are
// checked and parent entities resolved before anything is written, so a
// failed call never leaves a partial mutation behind.
//
// Parent resolution runs in hierarchy order (house, then floor, then
// room) and short-circuits before deeper field validation, so a missing
// house is reported before an invalid child name would be.
//
// Failures are sentinel errors from the user, house, and device
// packages, one family per aggregate root; callers select the kind with
// errors.Is.
//
// # Thread Safety
//
// The Registry is not synchronised. Operations return live references
// into registry state, so an internal lock could not protect reads
// through previously returned pointers anyway. Callers that share a
// Registry across goroutines must supply external mutual exclusion
// around all access.
package registry
