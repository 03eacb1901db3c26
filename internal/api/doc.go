// Package api implements the HTTP handlers for the ADHDaily backend:
// registration and login, task lifecycle endpoints and the daily focus
// selection. Handlers translate between HTTP and the service layer and
// map internal errors to sanitized status codes and messages.
package api
