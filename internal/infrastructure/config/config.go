package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Fetch     FetchConfig     `mapstructure:"fetch"`
	Import    ImportConfig    `mapstructure:"import"`
	PageCache PageCacheConfig `mapstructure:"page_cache"`
	Library   LibraryConfig   `mapstructure:"library"`
	LogLevel  string          `mapstructure:"log_level"`
}

// AppConfig holds application identity settings.
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// FetchConfig configures the external page-fetch boundary client.
type FetchConfig struct {
	Endpoint     string        `mapstructure:"endpoint"`
	Timeout      time.Duration `mapstructure:"timeout"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
	Retries      int           `mapstructure:"retries"`
}

// ImportConfig configures the import driver.
type ImportConfig struct {
	// CustomTags are appended to every assembled recipe before dedup/cap.
	CustomTags []string `mapstructure:"custom_tags"`
	URLFile    string   `mapstructure:"url_file"`
}

// PageCacheConfig configures the fetched-page cache.
type PageCacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"` // memory | redis
	RedisAddr       string        `mapstructure:"redis_addr"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// LibraryConfig configures the recipe library document.
type LibraryConfig struct {
	Path string `mapstructure:"path"`
}

// LoadConfig loads configuration from the .env file and the environment.
func LoadConfig() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("fetch.endpoint", "FETCH_ENDPOINT")
	viper.BindEnv("fetch.timeout", "FETCH_TIMEOUT")
	viper.BindEnv("fetch.request_delay", "FETCH_REQUEST_DELAY")
	viper.BindEnv("fetch.retries", "FETCH_RETRIES")
	viper.BindEnv("import.custom_tags", "IMPORT_CUSTOM_TAGS")
	viper.BindEnv("import.url_file", "IMPORT_URL_FILE")
	viper.BindEnv("page_cache.enabled", "PAGE_CACHE_ENABLED")
	viper.BindEnv("page_cache.backend", "PAGE_CACHE_BACKEND")
	viper.BindEnv("page_cache.redis_addr", "PAGE_CACHE_REDIS_ADDR")
	viper.BindEnv("library.path", "LIBRARY_PATH")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// custom tags arrive as a comma-separated env value; re-split and trim
	config.Import.CustomTags = splitTags(strings.Join(config.Import.CustomTags, ","))

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "dinner-importer")

	viper.SetDefault("fetch.endpoint", "http://localhost:8765")
	viper.SetDefault("fetch.timeout", "30s")
	viper.SetDefault("fetch.request_delay", "3s")
	viper.SetDefault("fetch.retries", 2)

	viper.SetDefault("import.url_file", "urls.txt")

	viper.SetDefault("page_cache.enabled", true)
	viper.SetDefault("page_cache.backend", "memory")
	viper.SetDefault("page_cache.redis_addr", "localhost:6379")
	viper.SetDefault("page_cache.max_size", 500)
	viper.SetDefault("page_cache.ttl", "24h")
	viper.SetDefault("page_cache.cleanup_interval", "10m")

	viper.SetDefault("library.path", "recipes.json")

	viper.SetDefault("log_level", "info")
}

func validateConfig(config *Config) error {
	if config.Fetch.Endpoint == "" {
		return fmt.Errorf("fetch endpoint is required")
	}
	if config.Fetch.RequestDelay < 0 {
		return fmt.Errorf("invalid fetch request delay")
	}
	if config.Fetch.Retries < 0 {
		return fmt.Errorf("invalid fetch retry count")
	}

	if config.PageCache.Enabled {
		switch config.PageCache.Backend {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid page cache backend %q", config.PageCache.Backend)
		}
		if config.PageCache.MaxSize <= 0 {
			return fmt.Errorf("invalid page cache max size")
		}
		if config.PageCache.TTL <= 0 {
			return fmt.Errorf("invalid page cache ttl")
		}
		if config.PageCache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid page cache cleanup interval")
		}
	}

	if config.Library.Path == "" {
		return fmt.Errorf("library path is required")
	}

	return nil
}
