// Package middleware provides HTTP middleware for the ClubHub services.
//
// Each service binary wraps its mux in the same chain:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// RequestID tags every request with a UUID (honoring an inbound
// X-Request-ID so IDs survive peer hops), Logger emits one structured
// line per request, and Recovery converts panics into RFC 9457 problem
// responses.
//
// # Context Values
//
// GetRequestID(ctx) returns the request's unique identifier.
package middleware
