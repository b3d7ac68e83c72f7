// Package config provides configuration management for the pick settlement engine.
package config

import (
	"fmt"
	"time"

	"github.com/yourusername/pick-settler/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	App           AppConfig           `mapstructure:"app" validate:"required"`
	Database      DatabaseConfig      `mapstructure:"database" validate:"required"`
	Settlement    SettlementConfig    `mapstructure:"settlement" validate:"required"`
	Providers     ProvidersConfig     `mapstructure:"providers" validate:"required"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Cache         CacheConfig         `mapstructure:"cache"`
	Metrics       MetricsConfig       `mapstructure:"metrics" validate:"required"`
	Health        HealthConfig        `mapstructure:"health"`
	Secrets       SecretsConfig       `mapstructure:"secrets"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// SettlementConfig controls the settlement sweep
type SettlementConfig struct {
	Schedule               string `mapstructure:"schedule" validate:"required"`
	LookbackDays           int    `mapstructure:"lookback_days" validate:"required,gt=0,lte=30"`
	ProviderTimeoutSeconds int    `mapstructure:"provider_timeout_seconds" validate:"required,gt=0"`
	NotifyOnGraded         bool   `mapstructure:"notify_on_graded"`
	RunOnStart             bool   `mapstructure:"run_on_start"`
}

// ProvidersConfig holds the upstream score feeds
type ProvidersConfig struct {
	Basketball      ProviderConfig `mapstructure:"basketball"`
	Gridiron        ProviderConfig `mapstructure:"gridiron"`
	FinalScore      ProviderConfig `mapstructure:"final_score"`
	CacheTTLSeconds int            `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// ProviderConfig configures one score feed. Leagues maps a sport code to the
// feed's own league identifier.
type ProviderConfig struct {
	Enabled               bool              `mapstructure:"enabled"`
	BaseURL               string            `mapstructure:"base_url" validate:"required_if=Enabled true,omitempty,url"`
	APIKey                string            `mapstructure:"api_key"`
	Leagues               map[string]string `mapstructure:"leagues" validate:"dive,keys,sport,endkeys,required"`
	Season                string            `mapstructure:"season"`
	Timezone              string            `mapstructure:"timezone" validate:"omitempty,timezone"`
	DaysFrom              int               `mapstructure:"days_from" validate:"gte=0,lte=3"`
	RequestTimeoutSeconds int               `mapstructure:"request_timeout_seconds" validate:"gte=0"`
	RateLimit             float64           `mapstructure:"rate_limit" validate:"gte=0"`
	MaxRetries            int               `mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// NotificationsConfig configures run summary webhooks
type NotificationsConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	SlackWebhookURL string `mapstructure:"slack_webhook_url" validate:"omitempty,url"`
	TeamsWebhookURL string `mapstructure:"teams_webhook_url" validate:"omitempty,url"`
	Username        string `mapstructure:"username"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// CacheConfig configures downstream read-cache invalidation
type CacheConfig struct {
	Enabled     bool     `mapstructure:"enabled"`
	Addr        string   `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password    string   `mapstructure:"password"`
	DB          int      `mapstructure:"db" validate:"gte=0"`
	TLSEnabled  bool     `mapstructure:"tls_enabled"`
	KeyPatterns []string `mapstructure:"key_patterns"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig configures the health check server
type HealthConfig struct {
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}

// SecretsConfig points at an AWS Secrets Manager secret overlaid on the file config
type SecretsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Region     string `mapstructure:"region" validate:"required_if=Enabled true"`
	SecretName string `mapstructure:"secret_name" validate:"required_if=Enabled true"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Lookback returns the settlement lookback window
func (s SettlementConfig) Lookback() time.Duration {
	return time.Duration(s.LookbackDays) * 24 * time.Hour
}

// ProviderTimeout returns the per-call upstream timeout
func (s SettlementConfig) ProviderTimeout() time.Duration {
	return time.Duration(s.ProviderTimeoutSeconds) * time.Second
}

// CacheTTL returns how long final scores are cached in-process
func (p ProvidersConfig) CacheTTL() time.Duration {
	return time.Duration(p.CacheTTLSeconds) * time.Second
}

// LeagueFor returns the feed's league identifier for a sport
func (p ProviderConfig) LeagueFor(sport models.Sport) (string, bool) {
	for key, league := range p.Leagues {
		if s, ok := models.ParseSport(key); ok && s == sport {
			return league, true
		}
	}
	return "", false
}

// Sports returns the sports this provider has a league for
func (p ProviderConfig) Sports() []models.Sport {
	var sports []models.Sport
	for _, sport := range models.AllSports {
		if _, ok := p.LeagueFor(sport); ok {
			sports = append(sports, sport)
		}
	}
	return sports
}

// Location returns the provider's league timezone, defaulting to UTC
func (p ProviderConfig) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// maxDaysFrom is the furthest back a scores feed that takes days_from reaches
const maxDaysFrom = 3

// ScoreWindowDays returns how many past days a days_from feed covers
func (p ProviderConfig) ScoreWindowDays() int {
	if p.DaysFrom <= 0 {
		return maxDaysFrom
	}
	return p.DaysFrom
}

// Timeout returns the webhook request timeout
func (n NotificationsConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}
