package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/clubhub/api/internal/peer"
)

// Config holds all configuration for one service binary
type Config struct {
	Service  string
	Server   ServerConfig
	Database DatabaseConfig
	Peers    PeerConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// PeerConfig holds the base URLs of the other services and the timeout
// applied to every peer call.
type PeerConfig struct {
	ClubURL         string
	MemberURL       string
	EventURL        string
	RegistrationURL string
	Timeout         time.Duration
}

// defaultPorts are the conventional local ports of the four services.
var defaultPorts = map[string]string{
	peer.ClubService:         "8081",
	peer.MemberService:       "8082",
	peer.EventService:        "8083",
	peer.RegistrationService: "8084",
}

// Load reads configuration from environment variables with sensible
// defaults for the named service. Each service gets its own SurrealDB
// database inside the shared namespace and its own default port.
func Load(service string) (*Config, error) {
	port, ok := defaultPorts[service]
	if !ok {
		return nil, fmt.Errorf("unknown service %q", service)
	}

	return &Config{
		Service: service,
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", port),
			Env:          getEnv("SERVER_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "8000"),
			Namespace: getEnv("DB_NAMESPACE", "clubhub"),
			Database:  getEnv("DB_DATABASE", strings.TrimSuffix(service, "-service")),
			User:      getEnv("DB_USER", "root"),
			Password:  getEnv("DB_PASSWORD", "root"),
		},
		Peers: PeerConfig{
			ClubURL:         getEnv("PEER_CLUB_URL", "http://localhost:8081"),
			MemberURL:       getEnv("PEER_MEMBER_URL", "http://localhost:8082"),
			EventURL:        getEnv("PEER_EVENT_URL", "http://localhost:8083"),
			RegistrationURL: getEnv("PEER_REGISTRATION_URL", "http://localhost:8084"),
			Timeout:         getDurationEnv("PEER_TIMEOUT", peer.DefaultTimeout),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// PeerAddresses returns the service name to base URL map used to build
// the peer registry.
func (c *Config) PeerAddresses() map[string]string {
	return map[string]string{
		peer.ClubService:         c.Peers.ClubURL,
		peer.MemberService:       c.Peers.MemberURL,
		peer.EventService:        c.Peers.EventURL,
		peer.RegistrationService: c.Peers.RegistrationURL,
	}
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}

	// Database validation
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}

	// Peer validation
	if c.Peers.ClubURL == "" {
		errs = append(errs, errors.New("PEER_CLUB_URL is required"))
	}
	if c.Peers.MemberURL == "" {
		errs = append(errs, errors.New("PEER_MEMBER_URL is required"))
	}
	if c.Peers.EventURL == "" {
		errs = append(errs, errors.New("PEER_EVENT_URL is required"))
	}
	if c.Peers.RegistrationURL == "" {
		errs = append(errs, errors.New("PEER_REGISTRATION_URL is required"))
	}
	if c.Peers.Timeout <= 0 {
		errs = append(errs, errors.New("PEER_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
