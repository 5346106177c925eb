package config

import (
	"os"
	"strconv"
)

// MailSettings holds the SMTP transport and addressing configuration.
type MailSettings struct {
	Host              string
	Port              int
	Username          string
	Password          string
	From              string
	BusinessRecipient string
}

// AssetSettings controls where consultation images are resolved from.
type AssetSettings struct {
	// Root is the local static asset directory checked first for /-prefixed paths.
	Root string
	// BaseURL prefixes relative image paths when falling back to an HTTP fetch.
	BaseURL string
}

// SMSSettings holds the optional Twilio configuration. Empty values disable SMS.
type SMSSettings struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

var (
	Mail   MailSettings
	Assets AssetSettings
	SMS    SMSSettings
)

// Load reads the environment into the package-level settings.
func Load() {
	Mail = MailSettings{
		Host:              getenvDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:              getenvInt("SMTP_PORT", 587),
		Username:          os.Getenv("EMAIL_USER"),
		Password:          os.Getenv("EMAIL_PASS"),
		From:              getenvDefault("EMAIL_FROM", os.Getenv("EMAIL_USER")),
		BusinessRecipient: os.Getenv("BUSINESS_EMAIL"),
	}
	Assets = AssetSettings{
		Root:    getenvDefault("STATIC_ASSET_ROOT", "./public"),
		BaseURL: getenvDefault("PUBLIC_BASE_URL", "http://localhost:3000"),
	}
	SMS = SMSSettings{
		AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		FromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// Configured reports whether the mail transport has credentials to work with.
func (m MailSettings) Configured() bool {
	return m.Username != "" && m.Password != ""
}

// Enabled reports whether SMS confirmations can be sent.
func (s SMSSettings) Enabled() bool {
	return s.AccountSID != "" && s.AuthToken != "" && s.FromNumber != ""
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
