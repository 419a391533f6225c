package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Device   DeviceConfig   `mapstructure:"device"`
	Poll     PollConfig     `mapstructure:"poll"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Dedup    DedupConfig    `mapstructure:"dedup"`
	Registry RegistryConfig `mapstructure:"registry"`
	Intake   IntakeConfig   `mapstructure:"intake"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// GatewayConfig configures the payment gateway client.
type GatewayConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	AccessToken string        `mapstructure:"access_token"`
	SearchLimit int           `mapstructure:"search_limit"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// DeviceConfig configures the playback device transport.
type DeviceConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	PlayPath    string        `mapstructure:"play_path"`
	AuthToken   string        `mapstructure:"auth_token"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	RetryPause  time.Duration `mapstructure:"retry_pause"`
}

// PollConfig configures the gateway polling loop.
type PollConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// PipelineConfig holds ingestion policy switches.
type PipelineConfig struct {
	// AcceptNonPix treats approved non-PIX payments as qualifying.
	AcceptNonPix bool `mapstructure:"accept_non_pix"`
	// RequeueFailedNotifies queues marked-but-unnotified payments for
	// re-notification on subsequent poll cycles.
	RequeueFailedNotifies bool `mapstructure:"requeue_failed_notifies"`
}

// DedupConfig selects and configures the processed-payments store.
type DedupConfig struct {
	Backend  string `mapstructure:"backend"` // file, redis, postgres
	FilePath string `mapstructure:"file_path"`
}

// RegistryConfig configures the device registry.
type RegistryConfig struct {
	StalenessWindow time.Duration `mapstructure:"staleness_window"`
}

// IntakeConfig configures device intake authentication.
type IntakeConfig struct {
	SharedSecret string `mapstructure:"shared_secret"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PIX_.
// Nested keys use underscore: PIX_GATEWAY_ACCESS_TOKEN, PIX_DEVICE_BASE_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("gateway.base_url", "https://api.mercadopago.com")
	v.SetDefault("gateway.access_token", "")
	v.SetDefault("gateway.search_limit", 10)
	v.SetDefault("gateway.timeout", "6s")
	v.SetDefault("device.base_url", "")
	v.SetDefault("device.play_path", "/play")
	v.SetDefault("device.auth_token", "")
	v.SetDefault("device.timeout", "6s")
	v.SetDefault("device.max_attempts", 2)
	v.SetDefault("device.retry_pause", "1s")
	v.SetDefault("poll.enabled", true)
	v.SetDefault("poll.interval", "60s")
	v.SetDefault("pipeline.accept_non_pix", false)
	v.SetDefault("pipeline.requeue_failed_notifies", false)
	v.SetDefault("dedup.backend", "file")
	v.SetDefault("dedup.file_path", "processed_ids.json")
	v.SetDefault("registry.staleness_window", "3m")
	v.SetDefault("intake.shared_secret", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "pix_notify")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PIX_GATEWAY_BASE_URL -> gateway.base_url
	v.SetEnvPrefix("PIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
