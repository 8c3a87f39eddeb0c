package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultAddr       = ":8080"
	defaultOrigin     = "http://localhost:8080"
	defaultHistoryKey = "work_id_history"
	defaultDebounce   = 300 * time.Millisecond
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Identity IdentityConfig `mapstructure:"identity"`
	Search   SearchConfig   `mapstructure:"search"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	Origin          string        `mapstructure:"origin"` // used to build permalinks
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type CatalogConfig struct {
	Files     []string      `mapstructure:"files"`
	URLs      []string      `mapstructure:"urls"`
	Reference string        `mapstructure:"reference"` // optional YAML with countries / special categories
	Timeout   time.Duration `mapstructure:"timeout"`
}

// IdentityConfig selects where the work id history lives.
type IdentityConfig struct {
	Driver     string `mapstructure:"driver"` // memory | file | sqlite | redis
	Key        string `mapstructure:"key"`
	File       string `mapstructure:"file"`
	SQLitePath string `mapstructure:"sqlite_path"`
	RedisURL   string `mapstructure:"redis_url"`
}

type SearchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// AuthConfig signs and checks operator tokens. Admin routes stay
// unregistered while JWTSecret is empty.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	Issuer    string        `mapstructure:"issuer"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from an optional file and FLIXHUB_* env vars.
// Env vars win over the file, e.g. FLIXHUB_IDENTITY_DRIVER=redis.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("flixhub")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.flixhub")
	}

	v.SetEnvPrefix("FLIXHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", defaultAddr)
	v.SetDefault("server.origin", defaultOrigin)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("catalog.files", []string{"data/catalog.json"})
	v.SetDefault("catalog.urls", []string{})
	v.SetDefault("catalog.reference", "")
	v.SetDefault("catalog.timeout", 30*time.Second)

	v.SetDefault("identity.driver", "sqlite")
	v.SetDefault("identity.key", defaultHistoryKey)
	v.SetDefault("identity.file", filepath.Join(DataDir(), "work_id_history.json"))
	v.SetDefault("identity.sqlite_path", "") // empty: database.DefaultConfig
	v.SetDefault("identity.redis_url", "redis://localhost:6379/0")

	v.SetDefault("search.debounce", defaultDebounce)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "flixhub")
	v.SetDefault("auth.token_ttl", 24*time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr is required")
	}

	switch c.Identity.Driver {
	case "memory":
	case "file":
		if c.Identity.File == "" {
			return errors.New("identity.file is required for the file driver")
		}
	case "sqlite":
	case "redis":
		if c.Identity.RedisURL == "" {
			return errors.New("identity.redis_url is required for the redis driver")
		}
	default:
		return fmt.Errorf("identity.driver must be one of: memory, file, sqlite, redis (got %q)", c.Identity.Driver)
	}
	if c.Identity.Key == "" {
		return errors.New("identity.key is required")
	}

	if c.Search.Debounce < 0 {
		return errors.New("search.debounce must not be negative")
	}

	if c.Auth.TokenTTL < 0 {
		return errors.New("auth.token_ttl must not be negative")
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Log.Format] {
		return errors.New("log.format must be one of: json, console")
	}
	return nil
}

// DataDir is the local default for state files: ~/.flixhub.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".flixhub")
}
