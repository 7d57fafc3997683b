// Package model defines domain entities and data structures for the ClubHub services.
//
// The model package contains all struct definitions for domain objects,
// request types, enriched DTOs, and error definitions. Models are shared
// across all four services; each service only persists its own entity and
// treats the others as peer-owned data reached over HTTP.
//
// # Domain Entities
//
//   - Club: Community group identified by a unique name
//   - Member: Person belonging to a club (soft reference by club name)
//   - Event: Scheduled activity hosted by a club, with bounded capacity
//   - Registration: A member's seat on an event
//
// # Soft References
//
// Cross-entity fields (Member.ClubName, Event.ClubName,
// Registration.MemberID/EventID) are soft references: nothing at the
// storage layer enforces them. The owning service validates them at
// write time and enriches reads with peer data, degrading to sentinel
// values when a peer is unreachable.
//
// # Enriched DTOs
//
// The XxxDTO types are request-scoped projections built on every read.
// They are never persisted; fields sourced from a peer carry documented
// fallback values so a read succeeds even when the peer is down.
package model
