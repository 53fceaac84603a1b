package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Version is injected at build time via ldflags.
var Version = "dev"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	TMDB      TMDBConfig      `mapstructure:"tmdb"`
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	// DeveloperMode serves a built-in sample catalog instead of calling TMDB.
	DeveloperMode bool `mapstructure:"developer_mode"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// TMDBConfig holds configuration for the TMDB catalog API.
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Language     string `mapstructure:"language"`
	Timeout      int    `mapstructure:"timeout"` // seconds
}

// DiscoveryConfig controls how candidate movies are searched for.
type DiscoveryConfig struct {
	Region         string `mapstructure:"region"`
	Providers      []int  `mapstructure:"providers"`
	RandomAttempts int    `mapstructure:"random_attempts"`
	RandomPageMax  int    `mapstructure:"random_page_max"`
	MaxPages       int    `mapstructure:"max_pages"`
	KeywordLimit   int    `mapstructure:"keyword_limit"`
	PosterPages    int    `mapstructure:"poster_pages"`
}

// SchedulerConfig holds cron expressions for background tasks.
type SchedulerConfig struct {
	HealthCron      string `mapstructure:"health_cron"`
	LookupCheckCron string `mapstructure:"lookup_check_cron"`
}

// DefaultProviders are the TMDB watch-provider IDs of the supported US subscription services:
// Netflix (8), Amazon Prime Video (9), Hulu (15) and Disney Plus (337).
var DefaultProviders = []int{8, 9, 15, 337}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		TMDB: TMDBConfig{
			APIKey:       EmbeddedTMDBKey,
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			Language:     "en-US",
			Timeout:      10,
		},
		Discovery: DiscoveryConfig{
			Region:         "US",
			Providers:      append([]int(nil), DefaultProviders...),
			RandomAttempts: 5,
			RandomPageMax:  100,
			MaxPages:       10,
			KeywordLimit:   5,
			PosterPages:    3,
		},
		Scheduler: SchedulerConfig{
			HealthCron:      "*/15 * * * *",
			LookupCheckCron: "5 * * * *",
		},
	}
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.reelpick")
	}

	v.SetEnvPrefix("REELPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("tmdb.api_key", "REELPICK_TMDB_API_KEY", "TMDB_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	// Watch-provider results are keyed by upper-case country code.
	cfg.Discovery.Region = strings.ToUpper(strings.TrimSpace(cfg.Discovery.Region))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.path", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 30)
	v.SetDefault("logging.compress", true)

	v.SetDefault("tmdb.api_key", d.TMDB.APIKey)
	v.SetDefault("tmdb.base_url", d.TMDB.BaseURL)
	v.SetDefault("tmdb.image_base_url", d.TMDB.ImageBaseURL)
	v.SetDefault("tmdb.language", d.TMDB.Language)
	v.SetDefault("tmdb.timeout", d.TMDB.Timeout)

	v.SetDefault("discovery.region", d.Discovery.Region)
	v.SetDefault("discovery.providers", d.Discovery.Providers)
	v.SetDefault("discovery.random_attempts", d.Discovery.RandomAttempts)
	v.SetDefault("discovery.random_page_max", d.Discovery.RandomPageMax)
	v.SetDefault("discovery.max_pages", d.Discovery.MaxPages)
	v.SetDefault("discovery.keyword_limit", d.Discovery.KeywordLimit)
	v.SetDefault("discovery.poster_pages", d.Discovery.PosterPages)

	v.SetDefault("scheduler.health_cron", d.Scheduler.HealthCron)
	v.SetDefault("scheduler.lookup_check_cron", d.Scheduler.LookupCheckCron)

	v.SetDefault("developer_mode", false)
}

// Validate checks that the discovery budget is usable.
func (c *Config) Validate() error {
	d := c.Discovery
	switch {
	case len(d.Region) != 2:
		return fmt.Errorf("discovery.region must be a 2-letter country code, got %q", d.Region)
	case len(d.Providers) == 0:
		return errors.New("discovery.providers must not be empty")
	case d.RandomAttempts < 1 || d.MaxPages < 1:
		return errors.New("discovery.random_attempts and discovery.max_pages must be positive")
	case d.RandomPageMax < 1:
		return errors.New("discovery.random_page_max must be positive")
	case d.KeywordLimit < 1:
		return errors.New("discovery.keyword_limit must be positive")
	case d.PosterPages < 0:
		return errors.New("discovery.poster_pages must not be negative")
	}
	return nil
}

// Address returns the server address string.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
