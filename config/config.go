package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Booking    BookingConfig    `yaml:"booking"`
	Push       PushConfig       `yaml:"push"`
	Sweeper    SweeperConfig    `yaml:"sweeper"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// AuthConfig holds the JWT configuration for the building gateway.
type AuthConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
	// AdminUIDs are identities allowed to resolve reports and post announcements.
	AdminUIDs []string `yaml:"admin_uids"`
}

// MachineConfig describes one machine of the laundry room roster.
type MachineConfig struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Kind        string `yaml:"kind"`
}

// BookingConfig holds the reservation policy configuration.
type BookingConfig struct {
	// Timezone is the canonical local zone all calendar dates are computed in.
	Timezone           string          `yaml:"timezone"`
	GraceWindowMinutes int             `yaml:"grace_window_minutes"`
	GraceWindow        time.Duration   `yaml:"-"` // Ignored by YAML parser
	Machines           []MachineConfig `yaml:"machines"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	Enabled    bool   `yaml:"enabled"`
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// SweeperConfig holds the configuration for the expired-slot sweeper.
type SweeperConfig struct {
	Enabled         bool          `yaml:"enabled"`
	IntervalSeconds int           `yaml:"interval_seconds"`
	Interval        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// DefaultMachines is the reference deployment roster: two washers, two dryers.
func DefaultMachines() []MachineConfig {
	return []MachineConfig{
		{ID: "lavarropas-1", DisplayName: "Lavarropas 1", Kind: "washer"},
		{ID: "lavarropas-2", DisplayName: "Lavarropas 2", Kind: "washer"},
		{ID: "secadora-1", DisplayName: "Secadora 1", Kind: "dryer"},
		{ID: "secadora-2", DisplayName: "Secadora 2", Kind: "dryer"},
	}
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills in any unset fields with their defaults.
func (cfg *Config) ApplyDefaults() {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}

	if cfg.Booking.Timezone == "" {
		cfg.Booking.Timezone = "America/Argentina/Buenos_Aires"
	}
	if cfg.Booking.GraceWindowMinutes <= 0 {
		cfg.Booking.GraceWindowMinutes = 15
	}
	cfg.Booking.GraceWindow = time.Duration(cfg.Booking.GraceWindowMinutes) * time.Minute
	if len(cfg.Booking.Machines) == 0 {
		log.Printf("booking.machines is not set; using the default roster")
		cfg.Booking.Machines = DefaultMachines()
	}

	if cfg.Auth.TokenTTLMinutes <= 0 {
		cfg.Auth.TokenTTLMinutes = 12 * 60
	}

	if cfg.Sweeper.IntervalSeconds <= 0 {
		cfg.Sweeper.IntervalSeconds = 60
	}
	cfg.Sweeper.Interval = time.Duration(cfg.Sweeper.IntervalSeconds) * time.Second

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}
}
