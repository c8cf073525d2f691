package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

const (
	// DatabaseDriverPostgres stores records in PostgreSQL
	DatabaseDriverPostgres = "postgres"
	// DatabaseDriverMemory keeps records in process memory
	DatabaseDriverMemory = "memory"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or memory
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m"
}

// LedgerConfig holds ledger identity configuration
type LedgerConfig struct {
	ProgramID string `mapstructure:"program_id"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// RateLimitConfig holds the per-signer request budget
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	// RedisAddr shares the budget across API replicas; empty keeps it per process
	RedisAddr      string `mapstructure:"redis_addr"`
	RedisPassword  string `mapstructure:"redis_password"`
	RedisDB        int    `mapstructure:"redis_db"`
	RedisKeyPrefix string `mapstructure:"redis_key_prefix"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey  string        `mapstructure:"jwt_public_key"`
	APIKeys       []string      `mapstructure:"api_keys"`
	SignerMaxSkew time.Duration `mapstructure:"signer_max_skew"`
	// ReplayKeyPrefix namespaces used signatures in the rate limit redis
	ReplayKeyPrefix string          `mapstructure:"replay_key_prefix"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

// RelayConfig holds outbox relay configuration
type RelayConfig struct {
	Name         string        `mapstructure:"name"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	Embedded     bool          `mapstructure:"embedded"`
}

// WebhookEndpointConfig describes one webhook receiver
type WebhookEndpointConfig struct {
	URL        string   `mapstructure:"url"`
	Secret     string   `mapstructure:"secret"`
	EventTypes []string `mapstructure:"event_types"` // "*" or empty matches every event
}

// WebhookConfig holds webhook delivery configuration
type WebhookConfig struct {
	Endpoints  []WebhookEndpointConfig `mapstructure:"endpoints"`
	Timeout    time.Duration           `mapstructure:"timeout"`
	MaxRetries uint64                  `mapstructure:"max_retries"`
	Workers    int                     `mapstructure:"workers"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Server     ServerConfig   `mapstructure:"server"`
	Auth       AuthConfig     `mapstructure:"auth"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Relay      RelayConfig    `mapstructure:"relay"`
}

// EventRelayConfig holds configuration for event-relay
type EventRelayConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Relay      RelayConfig    `mapstructure:"relay"`
}

// EventNotifierConfig holds configuration for event-notifier
type EventNotifierConfig struct {
	BaseConfig `mapstructure:",squash"`
	NATS       NATSConfig    `mapstructure:"nats"`
	Webhooks   WebhookConfig `mapstructure:"webhooks"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("auth.signer_max_skew", "5m")
	v.SetDefault("auth.rate_limit.requests_per_second", 5)
	v.SetDefault("auth.rate_limit.burst", 10)
	v.SetDefault("auth.rate_limit.redis_key_prefix", "propfi:ratelimit:")
	v.SetDefault("auth.replay_key_prefix", "propfi:replay:")
	setDatabaseDefaults(v)
	setNATSDefaults(v, "api")
	setRelayDefaults(v)
	v.SetDefault("relay.embedded", false)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}
	if _, err := config.Ledger.Program(); err != nil {
		return nil, err
	}
	if config.Database.Driver == DatabaseDriverMemory && !config.Relay.Embedded && config.NATS.URL != "" {
		return nil, errors.New("memory database requires relay.embedded to publish events")
	}

	return &config, nil
}

// LoadEventRelayConfig loads configuration for event-relay
func LoadEventRelayConfig(configFile string, envPath string) (*EventRelayConfig, error) {
	v := configureViper("event-relay", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setNATSDefaults(v, "event-relay")
	setRelayDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config EventRelayConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}
	if config.Database.Driver == DatabaseDriverMemory {
		return nil, errors.New("event-relay cannot read a memory database of another process")
	}

	return &config, nil
}

// LoadEventNotifierConfig loads configuration for event-notifier
func LoadEventNotifierConfig(configFile string, envPath string) (*EventNotifierConfig, error) {
	v := configureViper("event-notifier", configFile, envPath)

	// Set defaults
	setNATSDefaults(v, "event-notifier")
	v.SetDefault("nats.consumer_name", "event-notifier")
	v.SetDefault("nats.ack_wait", "1m")
	v.SetDefault("nats.max_deliver", 10)
	v.SetDefault("webhooks.timeout", "10s")
	v.SetDefault("webhooks.max_retries", 3)
	v.SetDefault("webhooks.workers", 8)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config EventNotifierConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for i, endpoint := range config.Webhooks.Endpoints {
		if endpoint.URL == "" {
			return nil, fmt.Errorf("webhooks.endpoints[%d]: url is required", i)
		}
		if endpoint.Secret == "" {
			return nil, fmt.Errorf("webhooks.endpoints[%d]: secret is required", i)
		}
	}

	return &config, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DatabaseDriverPostgres)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("ledger.program_id", domain.DEFAULT_PROGRAM_ID)
}

func setNATSDefaults(v *viper.Viper, service string) {
	v.SetDefault("nats.stream_name", "PROPFI_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", service)
}

func setRelayDefaults(v *viper.Viper) {
	v.SetDefault("relay.name", "default")
	v.SetDefault("relay.poll_interval", "1s")
	v.SetDefault("relay.batch_size", 100)
}

// readConfig reads the config file, falling back to environment variables when none exists
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search order: current directory, cmd/<service>/, config/
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_PROPFI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.driver",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Ledger
		"ledger.program_id",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		"auth.signer_max_skew",
		"auth.replay_key_prefix",
		"auth.rate_limit.requests_per_second",
		"auth.rate_limit.burst",
		"auth.rate_limit.redis_addr",
		"auth.rate_limit.redis_password",
		"auth.rate_limit.redis_db",
		"auth.rate_limit.redis_key_prefix",
		// Relay
		"relay.name",
		"relay.poll_interval",
		"relay.batch_size",
		"relay.embedded",
		// Webhooks (endpoints are only configurable from file)
		"webhooks.timeout",
		"webhooks.max_retries",
		"webhooks.workers",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for i := 0; i < 5; i++ {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Validate checks the database driver
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DatabaseDriverPostgres, DatabaseDriverMemory:
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// Program parses the configured program id
func (c *LedgerConfig) Program() (domain.Address, error) {
	id := c.ProgramID
	if id == "" {
		id = domain.DEFAULT_PROGRAM_ID
	}
	addr, err := domain.ParseAddress(id)
	if err != nil {
		return domain.ZeroAddress, fmt.Errorf("ledger.program_id: %w", err)
	}
	return addr, nil
}
