// Package peer implements the synchronous HTTP lookup client the ClubHub
// services use to talk to each other.
//
// Every orchestrator resolves related entities ("does this club exist",
// "give me this member's fields", "decrement this event's counter")
// through the Lookup interface. The contract is deliberately soft:
// transport errors, non-2xx statuses, and malformed bodies all fold into
// false/nil results and are only logged. Callers never see an error from
// this package — a missing peer degrades the result, it does not fail
// the request.
//
// There are no retries and no caching; every call hits the peer. The
// HTTP client carries a finite timeout so a hung peer cannot block a
// request thread forever.
//
// Peer base URLs are resolved by logical service name through a Registry
// built once at startup from configuration.
package peer
