// Package handler provides the HTTP endpoints of the ClubHub services.
//
// Each service binary mounts one entity handler plus a health handler.
// Handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the backing service
//   - Register wires the routes onto a method-pattern ServeMux
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to RFC 9457 Problem Details responses
//     through MapServiceError
//
// Beyond entity CRUD, each handler exposes the cross-service endpoints
// its peers rely on: /validate/ reference checks, enrichment listings
// (members/events by club), capacity adjustments, and the /cleanup
// cascade targets.
//
// # Example Usage
//
//	h := handler.NewClubHandler(clubService)
//	mux := http.NewServeMux()
//	h.Register(mux)
package handler
