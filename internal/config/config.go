package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv            string
	DataDir           string
	CustomersPath     string
	ProductsPath      string
	OrdersPath        string
	ShippingZonesPath string
	PromotionsPath    string
	ReportOut         string
	SummaryOut        string
	LogLevel          string
	LogFormat         string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	dataDir := valueOrDefault(k.String("DATA_DIR"), "data")

	cfg := &Config{
		AppEnv:            valueOrDefault(k.String("APP_ENV"), "development"),
		DataDir:           dataDir,
		CustomersPath:     valueOrDefault(k.String("CUSTOMERS_CSV"), filepath.Join(dataDir, "customers.csv")),
		ProductsPath:      valueOrDefault(k.String("PRODUCTS_CSV"), filepath.Join(dataDir, "products.csv")),
		OrdersPath:        valueOrDefault(k.String("ORDERS_CSV"), filepath.Join(dataDir, "orders.csv")),
		ShippingZonesPath: valueOrDefault(k.String("SHIPPING_ZONES_CSV"), filepath.Join(dataDir, "shipping_zones.csv")),
		PromotionsPath:    valueOrDefault(k.String("PROMOTIONS_CSV"), filepath.Join(dataDir, "promotions.csv")),
		ReportOut:         strings.TrimSpace(k.String("REPORT_OUT")),
		SummaryOut:        valueOrDefault(k.String("SUMMARY_OUT"), "output.json"),
		LogLevel:          valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:         valueOrDefault(k.String("LOG_FORMAT"), "console"),
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
