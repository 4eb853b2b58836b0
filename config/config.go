package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfig marks missing or invalid startup configuration.
var ErrConfig = errors.New("invalid configuration")

const DefaultCalendarScope = "https://www.googleapis.com/auth/calendar.readonly"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar attendees specifics
	GoogleOAuth GoogleOAuthConfig
	Aggregation AggregationConfig
	RateLimit   RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Scopes       []string
	AccessType   string // "offline" or "online"
}

type AggregationConfig struct {
	WindowDays   int
	OrderBy      string
	SingleEvents bool
}

type RateLimitConfig struct {
	CallbackPerMin int // 0 disables the limiter
}

// Load loads configuration using Viper. A .env file in the working directory
// is applied to the environment first.
// Config file name: config.yaml, searched in ./config, . and /etc/app/.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google OAuth
	cfg.GoogleOAuth.ClientID = viper.GetString("google_oauth.client_id")
	cfg.GoogleOAuth.ClientSecret = viper.GetString("google_oauth.client_secret")
	cfg.GoogleOAuth.CallbackURL = viper.GetString("google_oauth.callback_url")
	cfg.GoogleOAuth.Scopes = viper.GetStringSlice("google_oauth.scopes")
	cfg.GoogleOAuth.AccessType = viper.GetString("google_oauth.access_type")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.GoogleOAuth.ClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.GoogleOAuth.ClientSecret = clientSecret
	}
	if callbackURL := viper.GetString("google_callback_url"); callbackURL != "" {
		cfg.GoogleOAuth.CallbackURL = callbackURL
	}

	// Aggregation
	cfg.Aggregation.WindowDays = viper.GetInt("aggregation.window_days")
	cfg.Aggregation.OrderBy = viper.GetString("aggregation.order_by")
	cfg.Aggregation.SingleEvents = viper.GetBool("aggregation.single_events")

	cfg.RateLimit.CallbackPerMin = viper.GetInt("rate_limit.callback_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google_oauth.scopes", []string{DefaultCalendarScope})
	viper.SetDefault("google_oauth.access_type", "offline")

	viper.SetDefault("aggregation.window_days", 30)
	viper.SetDefault("aggregation.order_by", "startTime")
	viper.SetDefault("aggregation.single_events", true)

	viper.SetDefault("rate_limit.callback_per_min", 30)
}

func validate(cfg *Config) error {
	if cfg.GoogleOAuth.ClientID == "" {
		return fmt.Errorf("%w: google_oauth.client_id (GOOGLE_CLIENT_ID) is required", ErrConfig)
	}
	if cfg.GoogleOAuth.ClientSecret == "" {
		return fmt.Errorf("%w: google_oauth.client_secret (GOOGLE_CLIENT_SECRET) is required", ErrConfig)
	}
	if cfg.GoogleOAuth.CallbackURL == "" {
		return fmt.Errorf("%w: google_oauth.callback_url (GOOGLE_CALLBACK_URL) is required", ErrConfig)
	}
	if len(cfg.GoogleOAuth.Scopes) == 0 {
		return fmt.Errorf("%w: google_oauth.scopes must not be empty", ErrConfig)
	}
	if cfg.GoogleOAuth.AccessType != "offline" && cfg.GoogleOAuth.AccessType != "online" {
		return fmt.Errorf("%w: google_oauth.access_type must be offline or online, got %q", ErrConfig, cfg.GoogleOAuth.AccessType)
	}
	// Google only accepts orderBy=startTime on expanded instances.
	if cfg.Aggregation.OrderBy == "startTime" && !cfg.Aggregation.SingleEvents {
		return fmt.Errorf("%w: aggregation.order_by=startTime requires aggregation.single_events=true", ErrConfig)
	}
	if cfg.Aggregation.WindowDays <= 0 {
		return fmt.Errorf("%w: aggregation.window_days must be positive", ErrConfig)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("%w: http_server.port must be positive", ErrConfig)
	}
	return nil
}
