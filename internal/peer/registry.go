package peer

import "strings"

// Logical service names used for peer resolution.
const (
	ClubService         = "club-service"
	MemberService       = "member-service"
	EventService        = "event-service"
	RegistrationService = "registration-service"
)

// Registry maps logical service names to base URLs. It is built once at
// process start from configuration and injected into each orchestrator;
// there is no ambient global state.
type Registry struct {
	addrs map[string]string
}

// NewRegistry creates a registry from a service name to base URL map.
// Trailing slashes on base URLs are dropped.
func NewRegistry(addrs map[string]string) *Registry {
	normalized := make(map[string]string, len(addrs))
	for name, addr := range addrs {
		normalized[name] = strings.TrimRight(addr, "/")
	}
	return &Registry{addrs: normalized}
}

// Resolve returns the base URL for a logical service name.
func (r *Registry) Resolve(service string) (string, bool) {
	addr, ok := r.addrs[service]
	return addr, ok
}
