package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Store    StoreConfig    `mapstructure:"store"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host                    string        `mapstructure:"host"`
	Port                    int           `mapstructure:"port"`
	Mode                    string        `mapstructure:"mode"`
	ReadTimeout             time.Duration `mapstructure:"read_timeout"`
	WriteTimeout            time.Duration `mapstructure:"write_timeout"`
	GracefulShutdownTimeout time.Duration `mapstructure:"graceful_shutdown_timeout"`
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr returns the host:port pair go-redis expects.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type StoreConfig struct {
	Backend       string        `mapstructure:"backend"` // "redis" | "memory"
	LookupTimeout time.Duration `mapstructure:"lookup_timeout"`
	Seed          []SeedRecord  `mapstructure:"seed"` // memory backend only
}

// SeedRecord is a list entry rather than a map key because viper lowercases
// map keys and lookup keys are case-sensitive.
type SeedRecord struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// SeedMap flattens Seed; later duplicates win.
func (c StoreConfig) SeedMap() map[string]string {
	m := make(map[string]string, len(c.Seed))
	for _, r := range c.Seed {
		m[r.Key] = r.Value
	}
	return m
}

type CORSConfig struct {
	AllowedOrigins   []string      `mapstructure:"allowed_origins"`
	AllowedMethods   []string      `mapstructure:"allowed_methods"`
	AllowedHeaders   []string      `mapstructure:"allowed_headers"`
	AllowCredentials bool          `mapstructure:"allow_credentials"`
	MaxAge           time.Duration `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.graceful_shutdown_timeout", 15*time.Second)

	v.SetDefault("database.redis.host", "localhost")
	v.SetDefault("database.redis.port", 6379)
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)
	v.SetDefault("database.redis.pool_size", 10)
	v.SetDefault("database.redis.dial_timeout", 2*time.Second)
	v.SetDefault("database.redis.read_timeout", 2*time.Second)
	v.SetDefault("database.redis.write_timeout", 2*time.Second)

	v.SetDefault("store.backend", BackendRedis)
	v.SetDefault("store.lookup_timeout", 2*time.Second)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 12*time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads the YAML file at path (if it exists), overlays environment
// variables, and returns a validated Config. An empty path or a missing file
// leaves defaults and environment in effect.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Environment variable override: DATABASE_REDIS_HOST -> database.redis.host
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the process cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch c.Store.Backend {
	case BackendRedis:
		if c.Database.Redis.Host == "" {
			return errors.New("database.redis.host is required for the redis backend")
		}
		if c.Database.Redis.Port <= 0 || c.Database.Redis.Port > 65535 {
			return fmt.Errorf("database.redis.port out of range: %d", c.Database.Redis.Port)
		}
		if c.Database.Redis.DB < 0 {
			return fmt.Errorf("database.redis.db must not be negative: %d", c.Database.Redis.DB)
		}
	case BackendMemory:
		for i, r := range c.Store.Seed {
			if r.Key == "" {
				return fmt.Errorf("store.seed[%d]: key is required", i)
			}
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Store.LookupTimeout <= 0 {
		return errors.New("store.lookup_timeout must be positive")
	}
	return nil
}
