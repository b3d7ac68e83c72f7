package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"

	"github.com/yourusername/pick-settler/internal/models"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("sport", validateSport)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateSport validates a sport code; viper lower-cases map keys so case is ignored
func validateSport(fl validator.FieldLevel) bool {
	_, ok := models.ParseSport(fl.Field().String())
	return ok
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	errMsg := ""
	for _, e := range errs {
		field := e.Namespace()
		switch e.Tag() {
		case "required", "required_if":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "min", "max", "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' must satisfy %s=%s\n", field, e.Tag(), e.Param())
		case "environment", "loglevel", "sport", "oneof", "url", "timezone":
			errMsg += fmt.Sprintf("- Field '%s' has invalid value '%v'\n", field, e.Value())
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, e.Tag())
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if _, err := cron.ParseStandard(cfg.Settlement.Schedule); err != nil {
		return fmt.Errorf("invalid settlement schedule %q: %w", cfg.Settlement.Schedule, err)
	}

	if cfg.IsProduction() && cfg.Database.SSLMode == "disable" {
		return fmt.Errorf("production environment requires SSL mode to be 'require' or 'verify-full'")
	}

	if cfg.Database.MaxIdleConnections > cfg.Database.MaxConnections {
		return fmt.Errorf("max_idle_connections cannot exceed max_connections")
	}

	providers := map[string]ProviderConfig{
		"basketball":  cfg.Providers.Basketball,
		"gridiron":    cfg.Providers.Gridiron,
		"final_score": cfg.Providers.FinalScore,
	}
	owner := make(map[models.Sport]string)
	enabled := 0
	for name, p := range providers {
		if !p.Enabled {
			continue
		}
		enabled++
		if len(p.Leagues) == 0 {
			return fmt.Errorf("provider %s is enabled but has no leagues", name)
		}
		if name != "gridiron" && p.APIKey == "" {
			return fmt.Errorf("provider %s requires an api_key", name)
		}
		if cfg.IsProduction() && isTestCredential(p.APIKey) {
			return fmt.Errorf("production environment should not use test credentials for provider %s", name)
		}
		for _, sport := range p.Sports() {
			if other, ok := owner[sport]; ok {
				return fmt.Errorf("sport %s is served by both %s and %s", sport, other, name)
			}
			owner[sport] = name
		}
	}
	if enabled == 0 {
		return fmt.Errorf("at least one score provider must be enabled")
	}

	if fs := cfg.Providers.FinalScore; fs.Enabled && cfg.Settlement.LookbackDays > fs.ScoreWindowDays() {
		return fmt.Errorf("settlement lookback_days (%d) exceeds final_score days_from (%d); older picks could never be matched",
			cfg.Settlement.LookbackDays, fs.ScoreWindowDays())
	}

	if cfg.Notifications.Enabled && cfg.Notifications.SlackWebhookURL == "" && cfg.Notifications.TeamsWebhookURL == "" {
		return fmt.Errorf("notifications are enabled but no webhook url is configured")
	}

	return nil
}

// isTestCredential checks if a credential looks like a test credential
func isTestCredential(credential string) bool {
	testPatterns := []string{
		"test", "demo", "example", "placeholder", "YOUR_",
	}

	for _, pattern := range testPatterns {
		if match, _ := regexp.MatchString("(?i)"+pattern, credential); match {
			return true
		}
	}

	return false
}
