package config

import "os"

// ShopConfig holds the target storefront configuration.
type ShopConfig struct {
	// BaseURL is the storefront root. Empty means the suite should start
	// its own stub storefront and test against that.
	BaseURL string
	// Email and Password are the registered-customer fixture used by
	// scenarios that require prior authentication.
	Email    string
	Password string
}

// LoadShopConfig loads storefront configuration from environment variables.
func LoadShopConfig() ShopConfig {
	cfg := ShopConfig{
		BaseURL:  os.Getenv("SHOPTEST_BASE_URL"),
		Email:    os.Getenv("SHOPTEST_EMAIL"),
		Password: os.Getenv("SHOPTEST_PASSWORD"),
	}
	if cfg.Email == "" {
		cfg.Email = "jim_finch@gmail.com"
	}
	if cfg.Password == "" {
		cfg.Password = "qwerty"
	}
	return cfg
}
