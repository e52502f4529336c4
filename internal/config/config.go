// Package config loads the page server's settings from a TOML file and
// BAKERY_ environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/Its-donkey/sweet-treats/logging"
)

// EnvPrefix namespaces environment overrides, e.g. BAKERY_SERVER_LISTEN.
const EnvPrefix = "BAKERY"

// Config holds application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" toml:"server"`
	Site   SiteConfig   `mapstructure:"site" toml:"site"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Listen string `mapstructure:"listen" toml:"listen"`
	Assets string `mapstructure:"assets" toml:"assets"`
}

// SiteConfig overrides page copy.
type SiteConfig struct {
	Name        string `mapstructure:"name" toml:"name"`
	Description string `mapstructure:"description" toml:"description"`
}

// LogConfig controls log output. An empty Dir logs to stdout only.
type LogConfig struct {
	Dir       string `mapstructure:"dir" toml:"dir"`
	Level     string `mapstructure:"level" toml:"level"`
	MaxSizeMB int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxFiles  int    `mapstructure:"max_files" toml:"max_files"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{Listen: "127.0.0.1:8880", Assets: "web"},
		Site: SiteConfig{
			Name:        "Sweet Treats Bakery",
			Description: "Small-batch pastries, breads and cakes baked fresh every morning.",
		},
		Log: LogConfig{Level: "info", MaxSizeMB: 10, MaxFiles: 5},
	}
}

// Load reads path when it exists, then applies environment overrides. A
// missing file falls back to defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault("server.listen", def.Server.Listen)
	v.SetDefault("server.assets", def.Server.Assets)
	v.SetDefault("site.name", def.Site.Name)
	v.SetDefault("site.description", def.Site.Description)
	v.SetDefault("log.dir", def.Log.Dir)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_files", def.Log.MaxFiles)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Listen) == "" {
		return errors.New("config: server.listen is required")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxFiles < 0 {
		return errors.New("config: log limits must not be negative")
	}
	return nil
}

// LogLevel is the parsed log.level.
func (c Config) LogLevel() logging.Level {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.INFO
	}
	return level
}

// Write saves cfg as TOML at path, creating parent directories. It refuses
// to replace an existing file unless overwrite is set.
func Write(path string, cfg Config, overwrite bool) error {
	if path == "" {
		return errors.New("config: path is required")
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
