// Package report drives the full computation for a report run and
// renders the result: one block per customer in ascending id order,
// grand totals at the end, plus the machine-readable summary records.
package report

import (
	"sort"

	"github.com/noah-isme/laporan-toko/internal/catalog"
	"github.com/noah-isme/laporan-toko/internal/common"
	"github.com/noah-isme/laporan-toko/internal/currency"
	"github.com/noah-isme/laporan-toko/internal/discount"
	"github.com/noah-isme/laporan-toko/internal/loyalty"
	"github.com/noah-isme/laporan-toko/internal/pricing"
	"github.com/noah-isme/laporan-toko/internal/shipping"
	"github.com/noah-isme/laporan-toko/internal/tax"
)

// Row carries every figure the report shows for one customer.
type Row struct {
	CustomerID   string
	Name         string
	Level        string
	Zone         string
	Currency     string
	Subtotal     float64
	Discount     discount.Breakdown
	MorningBonus float64
	Tax          float64
	Shipping     float64
	Weight       float64
	Handling     float64
	ItemCount    int
	Rate         float64
	Total        float64
	Points       float64
}

// Report is the assembled result of one run. The grand totals sum the
// already-converted per-customer figures under the nominal EUR label;
// mixed-currency runs are reported that way on purpose because the
// historical output does the same.
type Report struct {
	Rows              []Row
	GrandTotal        float64
	TotalTaxCollected float64
}

// Build runs the engine over the loaded data: a single pass pricing
// and grouping the orders, then one independent computation per
// customer in ascending id order.
func Build(cat *catalog.Catalog, orders []catalog.Order) Report {
	points := loyalty.Accumulate(orders)
	totals := pricing.Accumulate(orders, cat)

	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var rep Report
	for _, id := range ids {
		agg := totals[id]
		cust := cat.Customer(id)
		pts := points[id]

		firstOrderDate := ""
		if len(agg.Items) > 0 {
			firstOrderDate = agg.Items[0].Date
		}

		disc := discount.Compute(agg.Subtotal, cust.Level, pts, firstOrderDate)
		taxable := agg.Subtotal - disc.Total
		taxAmount := tax.Compute(taxable, agg.Items, cat)
		shipFee := shipping.Fee(agg.Subtotal, agg.Weight, cat.Zone(cust.ShippingZone))
		handling := shipping.Handling(len(agg.Items))
		rate := currency.Rate(cust.Currency)
		total := common.Round2((taxable + taxAmount + shipFee + handling) * rate)

		rep.GrandTotal += total
		rep.TotalTaxCollected += taxAmount * rate

		rep.Rows = append(rep.Rows, Row{
			CustomerID:   id,
			Name:         cust.Name,
			Level:        cust.Level,
			Zone:         cust.ShippingZone,
			Currency:     cust.Currency,
			Subtotal:     agg.Subtotal,
			Discount:     disc,
			MorningBonus: agg.MorningBonus,
			Tax:          taxAmount,
			Shipping:     shipFee,
			Weight:       agg.Weight,
			Handling:     handling,
			ItemCount:    len(agg.Items),
			Rate:         rate,
			Total:        total,
			Points:       pts,
		})
	}
	return rep
}
