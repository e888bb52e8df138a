// Package topo implements the boundary-representation topology layer: a
// directed acyclic graph of Vertex, Edge, Wire, Face, Shell, and Solid
// handles parametrized over caller-supplied point (P), curve (C), and
// surface (S) payload types.
//
// Identity and sharing
//
// Every Vertex and Edge carries an immutable opaque identity, allocated
// once at construction and independent of its geometric payload. Two
// handles refer to the same entity iff their identities are equal; cloning
// a handle (ordinary Go value copy, since handles hold only a pointer to
// shared entity data) produces another reference to the same entity, and
// mutating one handle's payload is visible through every other handle
// sharing that identity. This is what lets the same Edge appear in many
// Wires without duplicating its curve.
//
// Locking
//
// Each Vertex/Edge/Face guards its own geometric payload with a
// sync.RWMutex scoped to that field alone; the graph-shape fields
// (endpoints, wire edge sequences, face boundary lists) are immutable
// after construction and need no lock. Do not access (even read) the
// payload of an entity from inside a mapped/try_mapped callback passed
// for that same entity. This is a caller contract with no run-time check;
// the mapping walk itself holds no entity lock while a callback runs.
//
// Construction contracts
//
// Each entity kind follows the same four-constructor convention:
// New (panics on invariant violation), TryNew (returns an error),
// NewUnchecked (trusts the caller, no validation), and DebugNew (an alias
// for New kept for call sites that want the validating behavior
// unconditionally, with no build-mode switch to compile the checks out of
// a release build; prefer NewUnchecked directly once invariants are known
// to hold from construction elsewhere).
package topo
