// Package domain contains the core business entities, value objects, and
// domain logic of the application: users and the tasks they own. Entities
// validate themselves; persistence and transport concerns live elsewhere.
package domain
