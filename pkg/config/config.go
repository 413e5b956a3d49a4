package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/noah-isme/academy-api/pkg/format"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Metrics MetricsConfig
	Store   StoreConfig
}

// ServerConfig holds HTTP listener tuning.
type ServerConfig struct {
	MaxBodyBytes int64
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig selects the logger rendering mode. Format is "pretty" for the
// human-oriented console layout or "compact" for single-line JSON; Color is
// honoured only in pretty mode.
type LogConfig struct {
	Level  string
	Format string
	Color  bool
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// StoreConfig controls the in-memory store bootstrap.
type StoreConfig struct {
	Seed bool
}

// IsDevelopment reports whether the process runs with development defaults
// (detailed error responses, stack traces in logs).
func (c *Config) IsDevelopment() bool {
	return c.Env != EnvProduction
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	maxBody, err := format.ParseRequestSize(v.GetString("MAX_BODY_SIZE"))
	if err != nil {
		return nil, err
	}
	cfg.Server = ServerConfig{MaxBodyBytes: maxBody}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
		Color:  v.GetBool("LOG_COLOR"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}
	cfg.Store = StoreConfig{Seed: v.GetBool("SEED_DATA")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("MAX_BODY_SIZE", "1mb")
	v.SetDefault("ALLOWED_ORIGINS", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "compact")
	v.SetDefault("LOG_COLOR", false)

	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("SEED_DATA", true)
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
