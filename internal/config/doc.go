// Package config manages configuration for the ClubHub service binaries.
//
// The config package loads and validates configuration from environment
// variables. Each binary calls Load with its logical service name, which
// picks its default port and its SurrealDB database inside the shared
// namespace:
//
//	cfg, err := config.Load(peer.ClubService)
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, env, timeouts)
//   - DatabaseConfig: SurrealDB connection settings
//   - PeerConfig: base URLs of the other three services + call timeout
//
// # Environment Variables
//
//	SERVER_PORT            - HTTP server port (default: per service, 8081-8084)
//	SERVER_ENV             - development | production | test
//	DB_HOST / DB_PORT      - SurrealDB endpoint (default: localhost:8000)
//	DB_NAMESPACE           - SurrealDB namespace (default: clubhub)
//	DB_DATABASE            - SurrealDB database (default: the service's entity)
//	DB_USER / DB_PASSWORD  - SurrealDB credentials
//	PEER_CLUB_URL          - club service base URL
//	PEER_MEMBER_URL        - member service base URL
//	PEER_EVENT_URL         - event service base URL
//	PEER_REGISTRATION_URL  - registration service base URL
//	PEER_TIMEOUT           - peer call timeout (default: 5s)
//
// Validate collects every problem into one joined error so a
// misconfigured deploy reports all issues at once.
package config
