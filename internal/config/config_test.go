package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/laporan-toko/internal/config"
)

// Clears every knob so ambient environment cannot leak into the test.
func cleared(overrides map[string]string) map[string]string {
	env := map[string]string{
		"APP_ENV":            "",
		"DATA_DIR":           "",
		"CUSTOMERS_CSV":      "",
		"PRODUCTS_CSV":       "",
		"ORDERS_CSV":         "",
		"SHIPPING_ZONES_CSV": "",
		"PROMOTIONS_CSV":     "",
		"REPORT_OUT":         "",
		"SUMMARY_OUT":        "",
		"LOG_LEVEL":          "",
		"LOG_FORMAT":         "",
	}
	for key, value := range overrides {
		env[key] = value
	}
	return env
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(cleared(nil))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, filepath.Join("data", "customers.csv"), cfg.CustomersPath)
	require.Equal(t, filepath.Join("data", "products.csv"), cfg.ProductsPath)
	require.Equal(t, filepath.Join("data", "orders.csv"), cfg.OrdersPath)
	require.Equal(t, filepath.Join("data", "shipping_zones.csv"), cfg.ShippingZonesPath)
	require.Equal(t, filepath.Join("data", "promotions.csv"), cfg.PromotionsPath)
	require.Empty(t, cfg.ReportOut)
	require.Equal(t, "output.json", cfg.SummaryOut)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
}

func TestLoadForTestsOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(cleared(map[string]string{
		"DATA_DIR":    "input",
		"ORDERS_CSV":  filepath.Join("elsewhere", "orders.csv"),
		"REPORT_OUT":  "report.txt",
		"SUMMARY_OUT": "summary.json",
		"LOG_LEVEL":   "debug",
	}))
	require.NoError(t, err)

	// DATA_DIR moves every derived path; explicit per-file overrides win.
	require.Equal(t, filepath.Join("input", "customers.csv"), cfg.CustomersPath)
	require.Equal(t, filepath.Join("elsewhere", "orders.csv"), cfg.OrdersPath)
	require.Equal(t, "report.txt", cfg.ReportOut)
	require.Equal(t, "summary.json", cfg.SummaryOut)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadForTestsRestoresEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "ambient")

	_, err := config.LoadForTests(map[string]string{"DATA_DIR": "scoped"})
	require.NoError(t, err)
	require.Equal(t, "ambient", os.Getenv("DATA_DIR"))
}

func TestMustLoad(t *testing.T) {
	t.Setenv("DATA_DIR", "testdata")

	cfg := config.MustLoad()
	require.Equal(t, "testdata", cfg.DataDir)
	require.Equal(t, filepath.Join("testdata", "orders.csv"), cfg.OrdersPath)
}
