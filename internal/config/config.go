// Package config handles configuration loading for ratioscope.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Source    SourceConfig    `mapstructure:"source"    yaml:"source"`
	Report    ReportConfig    `mapstructure:"report"    yaml:"report"`
	News      NewsConfig      `mapstructure:"news"      yaml:"news"`
	Valuation ValuationConfig `mapstructure:"valuation" yaml:"valuation"`
	Archive   ArchiveConfig   `mapstructure:"archive"   yaml:"archive"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// SourceConfig holds statement source settings.
type SourceConfig struct {
	BaseURL           string  `mapstructure:"base_url"            yaml:"base_url"`
	UserAgent         string  `mapstructure:"user_agent"          yaml:"user_agent"`
	TimeoutSec        int     `mapstructure:"timeout_sec"         yaml:"timeout_sec"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	CacheTTLMin       int     `mapstructure:"cache_ttl_min"       yaml:"cache_ttl_min"`
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	Format    string `mapstructure:"format"     yaml:"format"`     // "markdown" or "html"
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// NewsConfig holds headline feed settings.
type NewsConfig struct {
	FeedURL string `mapstructure:"feed_url" yaml:"feed_url"`
	Limit   int    `mapstructure:"limit"    yaml:"limit"`
}

// ValuationConfig holds cost of capital assumptions.
type ValuationConfig struct {
	RiskFreeRate float64 `mapstructure:"risk_free_rate" yaml:"risk_free_rate"`
	MarketReturn float64 `mapstructure:"market_return"  yaml:"market_return"`
}

// ArchiveConfig holds report archive settings. An empty DSN disables the
// archive.
type ArchiveConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.ratioscope/config.yaml (home directory)
//  3. /etc/ratioscope/config.yaml (system)
//
// Environment variables override config file values.
// Format: RATIOSCOPE_<SECTION>_<KEY>, e.g., RATIOSCOPE_LOGGING_LEVEL
func Load() (*Config, error) {
	// Pull in a local .env before viper reads the environment.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".ratioscope"))
	v.AddConfigPath("/etc/ratioscope")

	v.SetEnvPrefix("RATIOSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("RATIOSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Source defaults
	v.SetDefault("source.base_url", "https://finance.yahoo.com")
	v.SetDefault("source.user_agent", "")
	v.SetDefault("source.timeout_sec", 30)
	v.SetDefault("source.requests_per_second", 2.0)
	v.SetDefault("source.cache_ttl_min", 15)

	// Report defaults
	v.SetDefault("report.format", "markdown")
	v.SetDefault("report.output_dir", ".")

	// News defaults
	v.SetDefault("news.feed_url", "")
	v.SetDefault("news.limit", 5)

	// Valuation defaults
	v.SetDefault("valuation.risk_free_rate", 0.02)
	v.SetDefault("valuation.market_return", 0.098)

	// Archive defaults
	v.SetDefault("archive.dsn", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
func overrideFromEnv(cfg *Config) {
	if dsn := os.Getenv("RATIOSCOPE_ARCHIVE_DSN"); dsn != "" {
		cfg.Archive.DSN = dsn
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
