// Package api contains the HTTP handlers for the task backend: registration,
// login and token refresh, user lookups, and the per-user task CRUD surface.
// Handlers translate store and service errors into sanitized HTTP responses;
// nothing from the persistence layer leaks to clients verbatim.
package api
