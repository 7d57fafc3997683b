package config

import (
	"strings"
	"testing"
	"time"

	"github.com/clubhub/api/internal/peer"
)

func validBaseConfig() *Config {
	return &Config{
		Service: peer.ClubService,
		Server: ServerConfig{
			Port: "8081",
			Env:  "development",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "clubhub",
			Database:  "club",
		},
		Peers: PeerConfig{
			ClubURL:         "http://localhost:8081",
			MemberURL:       "http://localhost:8082",
			EventURL:        "http://localhost:8083",
			RegistrationURL: "http://localhost:8084",
			Timeout:         5 * time.Second,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_MissingDatabaseHost(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Host = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing DB_HOST")
	}
	if !strings.Contains(err.Error(), "DB_HOST") {
		t.Errorf("expected error to mention DB_HOST, got: %v", err)
	}
}

func TestConfig_Validate_MissingPeerURL(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Peers.EventURL = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing PEER_EVENT_URL")
	}
	if !strings.Contains(err.Error(), "PEER_EVENT_URL") {
		t.Errorf("expected error to mention PEER_EVENT_URL, got: %v", err)
	}
}

func TestConfig_Validate_NonPositivePeerTimeout(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Peers.Timeout = 0

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for zero PEER_TIMEOUT")
	}
	if !strings.Contains(err.Error(), "PEER_TIMEOUT") {
		t.Errorf("expected error to mention PEER_TIMEOUT, got: %v", err)
	}
}

func TestConfig_Validate_CollectsMultipleErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Database.Namespace = ""
	cfg.Peers.ClubURL = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for multiple invalid fields")
	}
	for _, want := range []string{"SERVER_PORT", "DB_NAMESPACE", "PEER_CLUB_URL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}
}

func TestLoad_UnknownService(t *testing.T) {
	if _, err := Load("billing-service"); err == nil {
		t.Error("expected error for unknown service name")
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DATABASE", "PEER_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(peer.EventService)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8083" {
		t.Errorf("expected default port 8083, got %q", cfg.Server.Port)
	}
	if cfg.Database.Database != "event" {
		t.Errorf("expected default database 'event', got %q", cfg.Database.Database)
	}
	if cfg.Peers.Timeout != peer.DefaultTimeout {
		t.Errorf("expected default peer timeout %v, got %v", peer.DefaultTimeout, cfg.Peers.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got: %v", err)
	}
}

func TestPeerAddresses_CoversAllServices(t *testing.T) {
	cfg := validBaseConfig()
	addrs := cfg.PeerAddresses()

	for _, name := range []string{peer.ClubService, peer.MemberService, peer.EventService, peer.RegistrationService} {
		if addrs[name] == "" {
			t.Errorf("expected address for %s", name)
		}
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := validBaseConfig()
	if !cfg.IsDevelopment() {
		t.Error("expected development mode")
	}
	cfg.Server.Env = "production"
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}
