package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultSuccessURL = "https://beforeigo.app/success?session_id={CHECKOUT_SESSION_ID}"
	DefaultCancelURL  = "https://beforeigo.app/pricing"
	DefaultStripeURL  = "https://api.stripe.com"
)

type StripeConfig struct {
	SecretKey string
	APIURL    string
	Timeout   time.Duration
}

type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type Config struct {
	Port        string
	Env         string
	CatalogFile string
	Stripe      StripeConfig
	Checkout    CheckoutConfig
	CORSOrigins []string
	RateLimit   RateLimitConfig
}

// LoadEnvFile reads a .env file into the process environment. A missing
// file is not an error; deployments set variables directly.
func LoadEnvFile(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.CatalogFile = os.Getenv("CATALOG_FILE")

	// Stripe
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.APIURL = getEnv("STRIPE_API_URL", DefaultStripeURL)
	cfg.Stripe.Timeout = getDuration("STRIPE_TIMEOUT", 5*time.Second)

	// Checkout redirects
	cfg.Checkout.SuccessURL = getEnv("CHECKOUT_SUCCESS_URL", DefaultSuccessURL)
	cfg.Checkout.CancelURL = getEnv("CHECKOUT_CANCEL_URL", DefaultCancelURL)

	cfg.CORSOrigins = splitList(getEnv("CORS_ALLOW_ORIGINS", "*"))

	cfg.RateLimit.Max = getInt("RATE_LIMIT_MAX", 20)
	cfg.RateLimit.Window = getDuration("RATE_LIMIT_WINDOW", time.Minute)

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
