// Command report computes the per-customer invoice report from the
// CSV inputs and emits the text report plus the JSON summary.
package main

import (
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/laporan-toko/internal/config"
	"github.com/noah-isme/laporan-toko/internal/loader"
	"github.com/noah-isme/laporan-toko/internal/obs"
	"github.com/noah-isme/laporan-toko/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := obs.NewLogger("console", "info")
		fallback.Fatal().Err(err).Msg("load config")
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().
		Str("run_id", uuid.NewString()).
		Logger()

	start := time.Now()
	cat, orders, err := loader.Load(loader.Paths{
		Customers:     cfg.CustomersPath,
		Products:      cfg.ProductsPath,
		Orders:        cfg.OrdersPath,
		ShippingZones: cfg.ShippingZonesPath,
		Promotions:    cfg.PromotionsPath,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("load input data")
	}
	logger.Info().
		Int("customers", len(cat.Customers)).
		Int("products", len(cat.Products)).
		Int("zones", len(cat.Zones)).
		Int("promotions", len(cat.Promotions)).
		Int("orders", len(orders)).
		Dur("elapsed", time.Since(start)).
		Msg("input data loaded")

	rep := report.Build(cat, orders)
	logger.Info().
		Int("rows", len(rep.Rows)).
		Float64("grand_total", rep.GrandTotal).
		Float64("tax_collected", rep.TotalTaxCollected).
		Msg("report computed")

	if err := report.Print(os.Stdout, rep); err != nil {
		logger.Fatal().Err(err).Msg("print report")
	}
	if cfg.ReportOut != "" {
		if err := report.WriteText(cfg.ReportOut, rep); err != nil {
			logger.Fatal().Err(err).Msg("write report file")
		}
		logger.Info().Str("path", cfg.ReportOut).Msg("report written")
	}
	if err := report.WriteSummary(cfg.SummaryOut, rep); err != nil {
		logger.Fatal().Err(err).Msg("write summary file")
	}
	logger.Info().Str("path", cfg.SummaryOut).Msg("summary written")
}
