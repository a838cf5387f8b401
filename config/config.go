package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SetupEnvFile loads the .env file if present. Running without one is fine,
// the environment itself wins either way.
func SetupEnvFile() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file loaded:", err)
	}
}

// Config reads an environment variable with a fallback value.
func Config(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

// PaymentSettings holds everything the payment stack reads from the
// environment. Built once at startup via LoadPaymentSettings.
type PaymentSettings struct {
	TapPayAppID       int
	TapPayAppKey      string
	TapPayEnv         string // "sandbox" or "production"
	TapPayBaseURL     string
	ApplePayMerchant  string
	GooglePayMerchant string
	PaymentAPIURL     string
	RedirectURL       string
	NotifyURL         string
}

const defaultPaymentAPIURL = "http://localhost:3000/api/payment"

// LoadPaymentSettings reads the payment configuration. Missing SDK
// credentials are logged as an error but do not stop the server; missing
// merchant identifiers only disable the matching wallet.
func LoadPaymentSettings() PaymentSettings {
	appID, _ := strconv.Atoi(Config("TAPPAY_APP_ID", "0"))
	appKey := Config("TAPPAY_APP_KEY", "")

	if appID == 0 || appKey == "" {
		log.Println("ERROR: missing TapPay configuration in environment variables")
	}

	env := Config("TAPPAY_ENV", "production")
	if env != "sandbox" {
		env = "production"
	}

	baseURL := Config("TAPPAY_BASE_URL", "")
	if baseURL == "" {
		if env == "sandbox" {
			baseURL = "https://sandbox.tappaysdk.com"
		} else {
			baseURL = "https://prod.tappaysdk.com"
		}
	}

	apiURL := Config("PAYMENT_API_URL", "")
	if apiURL == "" {
		apiURL = defaultPaymentAPIURL
		log.Printf("PAYMENT_API_URL missing; falling back to %s", apiURL)
	}

	settings := PaymentSettings{
		TapPayAppID:       appID,
		TapPayAppKey:      appKey,
		TapPayEnv:         env,
		TapPayBaseURL:     baseURL,
		ApplePayMerchant:  Config("APPLE_MERCHANT_ID", ""),
		GooglePayMerchant: Config("GOOGLE_MERCHANT_ID", ""),
		PaymentAPIURL:     apiURL,
		RedirectURL:       Config("GIVE_REDIRECT_URL", "https://thehope.co/24report"),
		NotifyURL:         Config("GIVE_NOTIFY_URL", ""),
	}

	if settings.ApplePayMerchant == "" {
		log.Println("Apple Pay merchant identifier is missing. Apple Pay will be disabled until it is configured.")
	}
	if settings.GooglePayMerchant == "" {
		log.Println("Google Pay merchant identifier is missing. Google Pay will be disabled until it is configured.")
	}

	return settings
}
