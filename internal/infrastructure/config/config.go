package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Location LocationConfig `mapstructure:"location"`
	UX       UXConfig       `mapstructure:"ux"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// StorageConfig selects and locates the local document store.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `mapstructure:"backend"`
	// Dir is where the file backend keeps its per-key documents.
	Dir string `mapstructure:"dir"`
	// SqlitePath is the database file for the sqlite backend.
	SqlitePath string `mapstructure:"sqlite_path"`
}

// LocationConfig describes the device location capability the CLI runs
// against. Real coordinates come from the host environment; there is no GPS
// in a terminal, so the reading is configured.
type LocationConfig struct {
	// Permission is the state the platform reports before any prompt:
	// granted, denied, or prompt.
	Permission string `mapstructure:"permission"`
	// Available controls whether a one-shot reading succeeds.
	Available bool    `mapstructure:"available"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// UXConfig holds presentation timing. Neither delay is a correctness
// requirement.
type UXConfig struct {
	// FollowUpDelay is how long after an acceptance the "next steps"
	// notification fires.
	FollowUpDelay time.Duration `mapstructure:"follow_up_delay"`
	// RedirectDelay is the grace period after posting a task before the CLI
	// returns to the dashboard view.
	RedirectDelay time.Duration `mapstructure:"redirect_delay"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load loads configuration from various sources
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()
	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.name", "Sahaara")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.debug", false)

	// Storage defaults
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.dir", ".sahaara")
	viper.SetDefault("storage.sqlite_path", ".sahaara/sahaara.db")

	// Location defaults
	viper.SetDefault("location.permission", "prompt")
	viper.SetDefault("location.available", true)
	viper.SetDefault("location.latitude", 28.4595)
	viper.SetDefault("location.longitude", 77.0266)

	// UX defaults
	viper.SetDefault("ux.follow_up_delay", "2s")
	viper.SetDefault("ux.redirect_delay", "1500ms")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output", "stderr")

	// Metrics defaults
	viper.SetDefault("metrics.enabled", true)
}

func bindEnvVars() {
	// App
	viper.BindEnv("app.name", "APP_NAME")
	viper.BindEnv("app.version", "APP_VERSION")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("app.debug", "APP_DEBUG")

	// Storage
	viper.BindEnv("storage.backend", "STORAGE_BACKEND")
	viper.BindEnv("storage.dir", "STORAGE_DIR")
	viper.BindEnv("storage.sqlite_path", "STORAGE_SQLITE_PATH")

	// Location
	viper.BindEnv("location.permission", "LOCATION_PERMISSION")
	viper.BindEnv("location.available", "LOCATION_AVAILABLE")
	viper.BindEnv("location.latitude", "LOCATION_LATITUDE")
	viper.BindEnv("location.longitude", "LOCATION_LONGITUDE")

	// UX
	viper.BindEnv("ux.follow_up_delay", "UX_FOLLOW_UP_DELAY")
	viper.BindEnv("ux.redirect_delay", "UX_REDIRECT_DELAY")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.format", "LOG_FORMAT")
	viper.BindEnv("logger.output", "LOG_OUTPUT")

	// Metrics
	viper.BindEnv("metrics.enabled", "ENABLE_METRICS")
}

func validateConfig(cfg *Config) error {
	switch cfg.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("storage backend must be file or sqlite, got %q", cfg.Storage.Backend)
	}

	if cfg.Storage.Backend == "file" && cfg.Storage.Dir == "" {
		return fmt.Errorf("storage dir is required for the file backend")
	}

	if cfg.Storage.Backend == "sqlite" && cfg.Storage.SqlitePath == "" {
		return fmt.Errorf("sqlite path is required for the sqlite backend")
	}

	switch cfg.Location.Permission {
	case "granted", "denied", "prompt":
	default:
		return fmt.Errorf("location permission must be granted, denied, or prompt, got %q", cfg.Location.Permission)
	}

	if cfg.UX.FollowUpDelay < 0 || cfg.UX.RedirectDelay < 0 {
		return fmt.Errorf("ux delays must not be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (cfg *AppConfig) IsDevelopment() bool {
	return cfg.Environment == "development"
}

// IsProduction returns true if the environment is production
func (cfg *AppConfig) IsProduction() bool {
	return cfg.Environment == "production"
}
