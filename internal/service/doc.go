// Package service implements the business logic layer for the ClubHub
// services: the enrichment orchestrators, the capacity state machine,
// and the cascade cleanup coordinator.
//
// # Orchestrator Pattern
//
// All four entity services share the same write/read skeleton, so the
// CRUD core lives in one generic Orchestrator driven by per-type hooks
// (reference validation, uniqueness, full-replace apply, enrichment,
// cascade cleanup). Each entity service embeds an Orchestrator and adds
// its type-specific operations.
//
// A write validates soft references against the owning peer service
// before anything is persisted; a read loads locally and enriches from
// peers, degrading to sentinel values when a peer is unreachable. Peer
// unavailability is never an error on a read.
//
// # Repository Interfaces
//
// Services define the repository interface they consume, allowing easy
// mocking for unit tests and clear contracts for data access.
//
// # Error Handling
//
// Services return sentinel errors defined in errors.go:
//
//	var (
//	    ErrClubNotFound   = errors.New("club not found")
//	    ErrEventFull      = errors.New("event is full, cannot register")
//	)
//
// Handlers map these to RFC 9457 problem responses; see
// handler.MapServiceError.
package service
