package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server
var (
	ServerPort         = getEnv("PORT", "8000")
	ServerBodyLimit    = 1 << 20
	ServerRateLimitMax = getEnvInt("RATE_LIMIT_MAX", 120)
	ServerRateLimitExp = getEnvDuration("RATE_LIMIT_EXP", time.Minute)
	BaseURL            = getEnv("BASE_URL", "https://fleetra.io")
	SiteName           = getEnv("SITE_NAME", "Fleetra")
)

// Form relay
var (
	// SubmitBodyLimit caps the JSON payload accepted by the relay endpoint.
	SubmitBodyLimit = 64 * 1024

	SubmitRateLimitMax = getEnvInt("SUBMIT_RATE_LIMIT_MAX", 5)
	SubmitRateLimitExp = getEnvDuration("SUBMIT_RATE_LIMIT_EXP", 10*time.Minute)

	// AllowedOrigins is a comma separated CORS origin list for /api.
	AllowedOrigins = getEnv("ALLOWED_ORIGINS", "https://fleetra.io,https://www.fleetra.io")

	UpstreamTimeout = getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second)
)

// Spreadsheet API
var (
	SheetAPIURL   = os.Getenv("SHEET_API_URL")
	SheetAPIToken = os.Getenv("SHEET_API_TOKEN")
)

// Email API (SendGrid compatible)
var (
	SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
	EmailAPIURL    = getEnv("EMAIL_API_URL", "https://api.sendgrid.com/v3/mail/send")
	EmailFrom      = getEnv("EMAIL_FROM", "no-reply@fleetra.io")
	NotifyEmail    = getEnv("NOTIFY_EMAIL", "hello@fleetra.io")
)

// Twilio SMS alerts. Optional.
var (
	TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	TwilioAuthToken  = os.Getenv("TWILIO_AUTH_TOKEN")
	TwilioFromNumber = os.Getenv("TWILIO_FROM_NUMBER")
	NotifyPhone      = os.Getenv("NOTIFY_PHONE")
	SMSTimeout       = getEnvDuration("SMS_TIMEOUT", 3*time.Second)
)

// Storage
var (
	DatabaseURL = getEnv("DATABASE_URL", "file:fleetra.db?_journal_mode=WAL")

	// RedisAddress enables shared rate-limit state across instances. Empty
	// keeps limits in process memory.
	RedisAddress  = os.Getenv("REDIS_ADDRESS")
	RedisPassword = os.Getenv("REDIS_PASSWORD")
)

// Admin
var (
	AdminUser         = getEnv("ADMIN_USER", "admin")
	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	AdminPasswordSalt = os.Getenv("ADMIN_PASSWORD_SALT")
)

// Frontend
var (
	TailwindCSSURL = getEnv("TAILWIND_CSS_URL", "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css")
	HTMXURL        = getEnv("HTMX_URL", "https://unpkg.com/htmx.org@1.9.10")

	PolyfillBaseURL = getEnv("POLYFILL_BASE_URL", "/js/polyfills/")

	// StorageClearVersion is bumped to force another one-time client storage
	// clear on affected browsers.
	StorageClearVersion = getEnv("STORAGE_CLEAR_VERSION", "1")

	// PageCacheTTL is how long a rendered page body is kept.
	PageCacheTTL = getEnvDuration("PAGE_CACHE_TTL", time.Hour)
)

const (
	// RedirectDelay is the time to wait before redirecting the user after a successful action.
	RedirectDelay = 1 * time.Second
)

// Origins returns the configured CORS origins, trimmed, without empties.
func Origins() []string {
	var out []string
	for _, o := range strings.Split(AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
