package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
	ContactTo    string
}

type Config struct {
	Port           string
	BackendURL     string
	BackendTimeout time.Duration
	AllowOrigins   string
	ContactRoute   string
	PlansFile      string
	ThemeFile      string
	LogLevel       string
	LogFormat      string
	Stripe         StripeConfig
	Email          EmailConfig

	// problems found while reading the environment, reported by Validate
	loadErrs []error
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		BackendURL:     strings.TrimRight(os.Getenv("BACKEND_URL"), "/"),
		AllowOrigins:   getEnv("ALLOW_ORIGINS", "http://localhost:3000"),
		ContactRoute:   "/contact",
		PlansFile:      os.Getenv("PLANS_FILE"),
		ThemeFile:      os.Getenv("THEME_FILE"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	timeout, err := getDuration("BACKEND_TIMEOUT", 15*time.Second)
	if err != nil {
		cfg.loadErrs = append(cfg.loadErrs, fmt.Errorf("BACKEND_TIMEOUT is invalid: %w", err))
	}
	cfg.BackendTimeout = timeout

	// Stripe
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.PublishableKey = os.Getenv("STRIPE_PUBLISHABLE_KEY")

	// Contact mail
	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Sales")
	cfg.Email.ContactTo = os.Getenv("CONTACT_EMAIL")

	return cfg
}

func (c *Config) Validate() error {
	errs := append([]error(nil), c.loadErrs...)

	if c.BackendURL == "" {
		errs = append(errs, errors.New("BACKEND_URL is not set"))
	} else if u, err := url.Parse(c.BackendURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, errors.New("BACKEND_URL must be an absolute url"))
	}
	if c.Stripe.SecretKey == "" && c.Stripe.PublishableKey == "" {
		errs = append(errs, errors.New("STRIPE_SECRET_KEY or STRIPE_PUBLISHABLE_KEY must be set"))
	}
	if c.Email.ResendAPIKey != "" && (c.Email.FromAddress == "" || c.Email.ContactTo == "") {
		errs = append(errs, errors.New("EMAIL_FROM_ADDRESS and CONTACT_EMAIL are required with RESEND_API_KEY"))
	}
	if len(c.loadErrs) == 0 && c.BackendTimeout <= 0 {
		errs = append(errs, errors.New("BACKEND_TIMEOUT must be positive"))
	}
	// credentialed CORS cannot answer with a wildcard origin
	for _, origin := range strings.Split(c.AllowOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			errs = append(errs, errors.New("ALLOW_ORIGINS must list explicit origins, not *"))
			break
		}
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, err
	}
	return d, nil
}
