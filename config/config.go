package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Environment   string   `mapstructure:"environment"`
	ServerAddress string   `mapstructure:"server.address"`
	CorsOrigins   []string `mapstructure:"server.cors_origins"`
	LogLevel      string   `mapstructure:"logging.level"`
	Sheets        SheetsConfig
	Snapshot      SnapshotConfig
	Redis         RedisConfig
	Elastic       ElasticConfig
	Tracing       TracingConfig
}

// SheetsConfig holds the Google Sheets source configuration
type SheetsConfig struct {
	Enabled bool          `mapstructure:"sheets.enabled"`
	SheetID string        `mapstructure:"sheets.sheet_id"`
	APIKey  string        `mapstructure:"sheets.api_key"`
	Tab     string        `mapstructure:"sheets.tab"`
	Timeout time.Duration `mapstructure:"sheets.timeout"`
}

// SnapshotConfig holds the in-memory snapshot settings
type SnapshotConfig struct {
	TTL time.Duration `mapstructure:"snapshot.ttl"`
}

// RedisConfig holds Redis configuration for the shared warm snapshot copy
type RedisConfig struct {
	Host     string        `mapstructure:"redis.host"`
	Port     int           `mapstructure:"redis.port"`
	Password string        `mapstructure:"redis.password"`
	DB       int           `mapstructure:"redis.db"`
	Enabled  bool          `mapstructure:"redis.enabled"`
	TTL      time.Duration `mapstructure:"redis.ttl"`
}

// ElasticConfig holds Elasticsearch configuration
type ElasticConfig struct {
	Enabled  bool   `mapstructure:"elastic.enabled"`
	URL      string `mapstructure:"elastic.url"`
	Username string `mapstructure:"elastic.username"`
	Password string `mapstructure:"elastic.password"`
	Prefix   string `mapstructure:"elastic.prefix"`
	Index    string `mapstructure:"elastic.index"`
}

// TracingConfig holds tracing configuration
type TracingConfig struct {
	LicenseKey     string `mapstructure:"tracing.license_key"`
	AppName        string `mapstructure:"tracing.app_name"`
	LogEnabled     bool   `mapstructure:"tracing.log_enabled"`
	DistribTracing bool   `mapstructure:"tracing.distributed_tracing_enabled"`
}

// LoadConfig reads configuration from file or environment variables
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AddConfigPath(path)
	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Continue without a config file - ENV vars and defaults apply
			fmt.Printf("Warning: No configuration file found: %v\n", err)
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Enable environment variables to override config
	v.SetEnvPrefix("EVENTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Core settings
	v.SetDefault("environment", "development")
	v.SetDefault("server.address", "0.0.0.0:8080")
	v.SetDefault("server.cors_origins", []string{"*"})

	// Sheets source settings
	v.SetDefault("sheets.enabled", false)
	v.SetDefault("sheets.sheet_id", "")
	v.SetDefault("sheets.api_key", "")
	v.SetDefault("sheets.tab", "Events")
	v.SetDefault("sheets.timeout", "10s")

	// Snapshot settings
	v.SetDefault("snapshot.ttl", "5m")

	// Redis settings
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.ttl", "5m")

	// Elasticsearch settings
	v.SetDefault("elastic.enabled", false)
	v.SetDefault("elastic.url", "http://localhost:9200")
	v.SetDefault("elastic.prefix", "festivals")
	v.SetDefault("elastic.index", "events")

	// Tracing settings
	v.SetDefault("tracing.app_name", "Events Service")
	v.SetDefault("tracing.log_enabled", true)
	v.SetDefault("tracing.distributed_tracing_enabled", true)

	// Logging settings
	v.SetDefault("logging.level", "info")
}

// FormatIndex formats an Elasticsearch index name with the configured prefix
func FormatIndex(cfg ElasticConfig, index string) string {
	return cfg.Prefix + "-" + index
}
