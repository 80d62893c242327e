package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration shared by the client and the
// bridge daemon.
type Config struct {
	Bridge BridgeConfig
	Server ServerConfig
	UI     UIConfig
}

// BridgeConfig holds client-side connection settings.
type BridgeConfig struct {
	URL            string
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// ServerConfig holds daemon settings.
type ServerConfig struct {
	Listen       string
	DatabasePath string `mapstructure:"database_path"`
	ReportsDir   string `mapstructure:"reports_dir"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string
}

// Load reads configuration from file and env. Env var overrides use prefix MATRICHECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("bridge.url", "http://127.0.0.1:8626")
	v.SetDefault("bridge.timeout_seconds", 15)
	v.SetDefault("server.listen", "127.0.0.1:8626")
	v.SetDefault("server.database_path", filepath.Join(os.Getenv("HOME"), ".local", "share", "matricheck", "matricheck.db"))
	v.SetDefault("server.reports_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "matricheck", "reports"))
	v.SetDefault("ui.language", "en")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MATRICHECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "matricheck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MATRICHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. The client calls this when the language preference changes so the
// choice survives restarts.
func Save(cfg Config) error {
	path := os.Getenv("MATRICHECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "matricheck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("bridge.url", cfg.Bridge.URL)
	v.Set("bridge.timeout_seconds", cfg.Bridge.TimeoutSeconds)
	v.Set("server.listen", cfg.Server.Listen)
	v.Set("server.database_path", cfg.Server.DatabasePath)
	v.Set("server.reports_dir", cfg.Server.ReportsDir)
	v.Set("ui.language", cfg.UI.Language)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LogPath returns the client diagnostic log location under the config dir.
// The TUI owns the terminal, so zerolog writes here instead of stderr.
func LogPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "matricheck", "matricheck.log")
}
