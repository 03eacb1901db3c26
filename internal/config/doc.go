// Package config defines the application configuration structures and the
// loading logic that populates them from environment variables and optional
// config files. Environment variables use the ADHDAILY_ prefix and take
// precedence over file values.
package config
