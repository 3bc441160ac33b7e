// Package config loads the service configuration with viper: defaults,
// then configs/config.yml (optional), then TEMPCONV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tempconv/internal/history"

	"github.com/spf13/viper"
)

const envPrefix = "TEMPCONV"

// Storage drivers for the history key-value store.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

type Config struct {
	Port          string
	Log           LogConfig
	DB            DBConfig
	Storage       StorageConfig
	History       HistoryConfig
	Auth          AuthConfig
	Notifications NotificationsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	Path string
}

type StorageConfig struct {
	Driver string
}

type HistoryConfig struct {
	Key           string
	TimeFormat    string
	UpdatedSuffix string
}

type AuthConfig struct {
	Enabled    bool
	SigningKey string
	TokenTTL   time.Duration
}

type NotificationsConfig struct {
	TTL  time.Duration
	Tick time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "tempconv.db")
	v.SetDefault("storage.driver", StorageSQLite)
	v.SetDefault("history.key", history.DefaultKey)
	v.SetDefault("history.time_format", history.DefaultTimeFormat)
	v.SetDefault("history.updated_suffix", history.DefaultUpdatedSuffix)
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("notifications.ttl", 3*time.Second)
	v.SetDefault("notifications.tick", 500*time.Millisecond)
}

// Load reads configuration. configFile, when set, overrides the search in
// the given paths (default "configs"). A missing config file is not an error.
func Load(configFile string, paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if len(paths) == 0 {
			paths = []string{"configs"}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port: v.GetString("port"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DB:      DBConfig{Path: v.GetString("db.path")},
		Storage: StorageConfig{Driver: strings.ToLower(v.GetString("storage.driver"))},
		History: HistoryConfig{
			Key:           v.GetString("history.key"),
			TimeFormat:    v.GetString("history.time_format"),
			UpdatedSuffix: v.GetString("history.updated_suffix"),
		},
		Auth: AuthConfig{
			Enabled:    v.GetBool("auth.enabled"),
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Notifications: NotificationsConfig{
			TTL:  v.GetDuration("notifications.ttl"),
			Tick: v.GetDuration("notifications.tick"),
		},
	}
	return cfg, cfg.Validate()
}

// Validate checks settings the rest of the program relies on.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("storage.driver: unsupported %q", c.Storage.Driver)
	}
	if c.Auth.Enabled && c.Auth.SigningKey == "" {
		return errors.New("auth.signing_key is required when auth is enabled")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.Notifications.TTL <= 0 || c.Notifications.Tick <= 0 {
		return errors.New("notifications.ttl and notifications.tick must be positive")
	}
	return nil
}
