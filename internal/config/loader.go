package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix         = "PICK_SETTLER"
	defaultConfigPath = "config/config.yaml"
)

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = defaultConfigPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional fields.
// A missing file is not an error; defaults and environment variables apply.
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = defaultConfigPath
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadAndValidate loads the configuration, overlays AWS secrets when enabled
// and validates the result.
func LoadAndValidate(configPath string) (*Config, error) {
	cfg, err := LoadWithDefaults(configPath)
	if err != nil {
		return nil, err
	}

	if cfg.Secrets.Enabled {
		if err := LoadSecretsFromAWS(cfg, cfg.Secrets.Region, cfg.Secrets.SecretName); err != nil {
			return nil, err
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pick-settler")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_idle_connections", 2)

	v.SetDefault("settlement.schedule", "*/15 * * * *")
	v.SetDefault("settlement.lookback_days", 3)
	v.SetDefault("settlement.provider_timeout_seconds", 15)
	v.SetDefault("settlement.notify_on_graded", true)

	v.SetDefault("providers.cache_ttl_seconds", 600)
	v.SetDefault("providers.basketball.base_url", "https://v1.basketball.api-sports.io")
	v.SetDefault("providers.basketball.leagues", map[string]string{"NBA": "12", "NCAAB": "116"})
	v.SetDefault("providers.basketball.timezone", "America/New_York")
	v.SetDefault("providers.basketball.rate_limit", 5.0)
	v.SetDefault("providers.basketball.max_retries", 3)
	v.SetDefault("providers.gridiron.base_url", "https://site.api.espn.com/apis/site/v2/sports")
	v.SetDefault("providers.gridiron.leagues", map[string]string{"NFL": "football/nfl", "NCAAF": "football/college-football"})
	v.SetDefault("providers.gridiron.timezone", "America/New_York")
	v.SetDefault("providers.gridiron.rate_limit", 5.0)
	v.SetDefault("providers.gridiron.max_retries", 3)
	v.SetDefault("providers.final_score.base_url", "https://api.the-odds-api.com")
	v.SetDefault("providers.final_score.leagues", map[string]string{"NHL": "icehockey_nhl", "MLB": "baseball_mlb"})
	v.SetDefault("providers.final_score.timezone", "America/New_York")
	v.SetDefault("providers.final_score.days_from", 3)
	v.SetDefault("providers.final_score.rate_limit", 1.0)
	v.SetDefault("providers.final_score.max_retries", 3)

	v.SetDefault("notifications.username", "Pick Settler")
	v.SetDefault("notifications.timeout_seconds", 10)

	v.SetDefault("cache.key_patterns", []string{"picks:*", "dashboard:*"})

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("health.port", 8080)
}
