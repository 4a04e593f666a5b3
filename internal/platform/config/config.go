package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// BalanceTolerance is the maximum absolute debit/credit difference an
	// entry may carry and still post, expressed in currency units.
	BalanceTolerance decimal.Decimal

	// AllowCloseWithDrafts permits closing a fiscal period that still has
	// draft entries dated inside it.
	AllowCloseWithDrafts bool

	// GSTControlAccountCode and GSTClearingAccountCode name the accounts the
	// GST settlement entry moves the net amount between.
	GSTControlAccountCode  string
	GSTClearingAccountCode string

	// DefaultCurrencyCode is the currency settlement entries are booked in.
	DefaultCurrencyCode string

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BALANCE_TOLERANCE", "0.01")
	viper.SetDefault("ALLOW_CLOSE_WITH_DRAFTS", false)
	viper.SetDefault("GST_CONTROL_ACCOUNT_CODE", "2201")
	viper.SetDefault("GST_CLEARING_ACCOUNT_CODE", "2202")
	viper.SetDefault("DEFAULT_CURRENCY_CODE", "SGD")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	toleranceStr := viper.GetString("BALANCE_TOLERANCE")
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil || tolerance.IsNegative() {
		tolerance = decimal.RequireFromString("0.01")
		log.Printf("Warning: Invalid value for BALANCE_TOLERANCE ('%s'). Defaulting to %s.\n", toleranceStr, tolerance.String())
	}
	cfg.BalanceTolerance = tolerance

	cfg.AllowCloseWithDrafts = viper.GetBool("ALLOW_CLOSE_WITH_DRAFTS")
	cfg.GSTControlAccountCode = viper.GetString("GST_CONTROL_ACCOUNT_CODE")
	cfg.GSTClearingAccountCode = viper.GetString("GST_CLEARING_ACCOUNT_CODE")
	cfg.DefaultCurrencyCode = viper.GetString("DEFAULT_CURRENCY_CODE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
