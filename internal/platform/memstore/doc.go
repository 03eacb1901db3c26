// Package memstore provides in-memory implementations of the store
// interfaces, backed by maps guarded by a mutex. It serves as the
// development and test engine; the two engines are interchangeable behind
// the interfaces in internal/store.
//
// Atomicity: every operation executes inside a single critical section, so
// read-modify-write sequences (task updates, demo-identity find-or-create)
// are serialized without database transactions. WithTx is a no-op for this
// engine.
package memstore
