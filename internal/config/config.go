package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Storefront  StorefrontConfig
	Redis       RedisConfig
	CORS        CORSConfig
	LogLevel    string
}

// StorefrontConfig holds the Shopify Storefront API credentials. Both
// ShopDomain and AccessToken empty is a supported state: the client runs in
// degraded mode (empty catalog, cart mutations rejected) instead of crashing.
type StorefrontConfig struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

// RedisConfig is used for the cart-session store. Empty Addr disables
// session persistence (every request starts without a cart).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_DB", "0")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Storefront: StorefrontConfig{
			ShopDomain:  strings.TrimSpace(getEnvOrViper("SHOP_DOMAIN", "")),
			AccessToken: strings.TrimSpace(getEnvOrViper("STOREFRONT_ACCESS_TOKEN", "")),
			APIVersion:  getEnvOrViper("STOREFRONT_API_VERSION", "2024-01"),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(getEnvOrViper("REDIS_ADDR", "")),
			Password: getEnvOrViper("REDIS_PASSWORD", ""),
			DB:       viper.GetInt("REDIS_DB"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(getEnvOrViper("CORS_ALLOWED_ORIGINS", "*")),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Missing storefront credentials are deliberately not an error here:
	// the catalog degrades to empty and cart writes fail with a typed error.
	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
