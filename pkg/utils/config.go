package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Payment   PaymentConfig
	Assistant AssistantConfig
	Session   SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// DatabaseConfig is the optional catalog database. When Host is empty the
// embedded fixture catalog is used instead.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type PaymentConfig struct {
	Currency          string
	StripeSecretKey   string
	PaystackSecretKey string
	PaystackBaseURL   string
	PaypalClientID    string
}

type AssistantConfig struct {
	APIKey string
	Model  string
}

type SessionConfig struct {
	IdleTTLMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinenyc-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("CURRENCY", "usd")
	viper.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("SESSION_IDLE_TTL_MINUTES", 30)

	// .env is optional, env vars alone are enough to run
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Payment: PaymentConfig{
			Currency:          viper.GetString("CURRENCY"),
			StripeSecretKey:   viper.GetString("STRIPE_SECRET_KEY"),
			PaystackSecretKey: viper.GetString("PAYSTACK_SECRET_KEY"),
			PaystackBaseURL:   viper.GetString("PAYSTACK_BASE_URL"),
			PaypalClientID:    viper.GetString("PAYPAL_CLIENT_ID"),
		},
		Assistant: AssistantConfig{
			APIKey: viper.GetString("GEMINI_API_KEY"),
			Model:  viper.GetString("GEMINI_MODEL"),
		},
		Session: SessionConfig{
			IdleTTLMinutes: viper.GetInt("SESSION_IDLE_TTL_MINUTES"),
		},
	}

	return config, nil
}
