package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Providers ProvidersConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Source string // value of the "source" field of every reply
}

// ProvidersConfig holds the upstream API settings
type ProvidersConfig struct {
	Timeout   time.Duration
	Geocode   GeocodeConfig
	Forecast  ForecastConfig
	Legacy    LegacyConfig
	Knowledge KnowledgeConfig
}

type GeocodeConfig struct {
	BaseURL   string
	UserAgent string
}

type ForecastConfig struct {
	BaseURL string
	APIKey  string
	Units   string
}

type LegacyConfig struct {
	BaseURL string
}

type KnowledgeConfig struct {
	BaseURL       string
	SearchResults int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.assistant-webhook")

	setDefaults(v)

	// Read from environment variables, e.g. ASSISTANT_WEBHOOK_PROVIDERS_FORECAST_APIKEY
	v.SetEnvPrefix("ASSISTANT_WEBHOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Hosting platforms hand the listen port over in PORT
	if err := v.BindEnv("server.port", "ASSISTANT_WEBHOOK_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port env: %w", err)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.source", "apiai-weather-webhook-sample")

	v.SetDefault("providers.timeout", 10*time.Second)
	v.SetDefault("providers.geocode.baseurl", "https://nominatim.openstreetmap.org")
	v.SetDefault("providers.geocode.useragent", "assistant-webhook/1.0")
	v.SetDefault("providers.forecast.baseurl", "https://api.pirateweather.net")
	v.SetDefault("providers.forecast.apikey", "")
	v.SetDefault("providers.forecast.units", "auto")
	v.SetDefault("providers.legacy.baseurl", "https://query.yahooapis.com/v1/public/yql")
	v.SetDefault("providers.knowledge.baseurl", "https://en.wikipedia.org/w/api.php")
	v.SetDefault("providers.knowledge.searchresults", 2)
}

// GetServerAddr returns the server address in the format "0.0.0.0:port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
