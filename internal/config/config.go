// Package config provides environment-sourced configuration for the monitor.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Defaults for settings that have one. Notification credentials have no
// defaults; leaving them unset disables the corresponding channel.
const (
	DefaultTargetURL    = "https://www.lincolncommonapartments.com/floorplans"
	DefaultPropertyName = "Lincoln Commons"
	DefaultSMTPHost     = "smtp.gmail.com"
	DefaultSMTPPort     = 587
	DefaultLogFile      = "aro_monitor.log"
)

// Config holds everything the monitor reads from the environment. It is
// populated once at startup and passed into constructors by value; business
// logic never does ambient environment lookups.
type Config struct {
	// Target page
	TargetURL    string `validate:"required,url"`
	PropertyName string

	// Email channel
	SMTPHost          string
	SMTPPort          int
	EmailAddress      string `validate:"omitempty,email"`
	EmailPassword     string
	NotificationEmail string `validate:"omitempty,email"`

	// SMS channel
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhone       string `validate:"omitempty,e164"`
	NotificationPhone string `validate:"omitempty,e164"`

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		TargetURL:         envOr("ARO_TARGET_URL", DefaultTargetURL),
		PropertyName:      envOr("ARO_PROPERTY_NAME", DefaultPropertyName),
		SMTPHost:          envOr("SMTP_HOST", DefaultSMTPHost),
		SMTPPort:          DefaultSMTPPort,
		EmailAddress:      os.Getenv("EMAIL_ADDRESS"),
		EmailPassword:     os.Getenv("EMAIL_PASSWORD"),
		NotificationEmail: os.Getenv("NOTIFICATION_EMAIL"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhone:       os.Getenv("TWILIO_PHONE_NUMBER"),
		NotificationPhone: os.Getenv("NOTIFICATION_PHONE"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		LogFile:           envOr("ARO_LOG_FILE", DefaultLogFile),
	}

	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid SMTP_PORT %q: %w", raw, err)
		}
		cfg.SMTPPort = port
	}

	return cfg, nil
}

// Validate checks field formats. Missing notification settings are legal
// (they disable a channel); only malformed values are errors.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// EmailConfigured reports whether all three email settings are present.
func (c *Config) EmailConfigured() bool {
	return c.EmailAddress != "" && c.EmailPassword != "" && c.NotificationEmail != ""
}

// SMSConfigured reports whether the Twilio credentials and both phone
// numbers are present.
func (c *Config) SMSConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioPhone != "" && c.NotificationPhone != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
