package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Order intake
	Importer       ImporterConfig
	Kafka          KafkaConfig
	GoogleCalendar GoogleCalendarConfig
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

type DatabaseConfig struct {
	Driver string
	DSN    string
}

type ImporterConfig struct {
	APIKey          string
	RateLimitPerMin int
	DefaultChannel  string
	MaxTextBytes    int
}

type KafkaConfig struct {
	Enabled  bool
	Brokers  []string
	Topic    string
	ClientID string
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	HoldDuration    time.Duration
}

// Load loads configuration using Viper.
// The file is config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return build(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(v, v.GetString("database.dsn"))
	if dbURL := v.GetString("database_url"); dbURL != "" {
		cfg.Database.DSN = dbURL
	}

	// Importer
	cfg.Importer.APIKey = expandEnvVar(v, v.GetString("importer.api_key"))
	cfg.Importer.RateLimitPerMin = v.GetInt("importer.rate_limit_per_min")
	cfg.Importer.DefaultChannel = v.GetString("importer.default_channel")
	cfg.Importer.MaxTextBytes = v.GetInt("importer.max_text_bytes")

	// Kafka; brokers may come from env as a comma separated string
	cfg.Kafka.Enabled = v.GetBool("kafka.enabled")
	cfg.Kafka.Topic = v.GetString("kafka.topic")
	cfg.Kafka.ClientID = v.GetString("kafka.client_id")
	cfg.Kafka.Brokers = splitList(v.GetStringSlice("kafka.brokers"))

	// Google Calendar
	cfg.GoogleCalendar.Enabled = v.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.HoldDuration = time.Duration(v.GetInt("google_calendar.hold_minutes")) * time.Minute
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:order-intake.db?_pragma=busy_timeout(5000)")

	v.SetDefault("importer.rate_limit_per_min", 60)
	v.SetDefault("importer.default_channel", "manual")
	v.SetDefault("importer.max_text_bytes", 64*1024)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.topic", "order.imported")
	v.SetDefault("kafka.client_id", "order-intake")

	v.SetDefault("google_calendar.enabled", false)
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.hold_minutes", 30)
}

func (cfg *Config) validate() error {
	switch cfg.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	switch cfg.Importer.DefaultChannel {
	case "manual", "extension":
	default:
		return fmt.Errorf("importer.default_channel must be manual or extension, got %q", cfg.Importer.DefaultChannel)
	}
	if cfg.Importer.MaxTextBytes <= 0 {
		return fmt.Errorf("importer.max_text_bytes must be positive")
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}

	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath == "" {
		return fmt.Errorf("google_calendar.credentials_path is required when google calendar is enabled")
	}
	return nil
}

// expandEnvVar expands values in the format ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// splitList flattens entries that hold comma separated values.
func splitList(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, s := range strings.Split(entry, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
