// Package store defines the persistence interfaces for the application's
// entities, the shared error taxonomy for store implementations, and the
// transaction helper used to execute read-modify-write sequences atomically.
// Concrete backends live under internal/platform.
package store
