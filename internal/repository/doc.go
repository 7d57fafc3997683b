// Package repository implements the data access layer for the ClubHub
// services.
//
// Each repository owns one entity table in the service's SurrealDB
// database and follows a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database.Database
//   - Finders return (nil, nil) for absent records; "not found" is not an
//     error at this layer, the orchestrator decides user-facing behavior
//   - Save inserts when the entity has no ID and fully replaces the row
//     otherwise; there are no partial-field updates
//   - SurrealQL queries are parameterized with $variable syntax and use
//     type::thing() for safe record ID handling
//
// Record IDs are UUIDs assigned in Go at insert time so they can travel
// between services as plain strings.
package repository
