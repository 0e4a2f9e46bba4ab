// Package pricing turns raw order lines into priced per-customer
// aggregates: promotion and morning-bonus rules per line, then a fold
// grouping lines by customer.
package pricing

import (
	"strings"

	"github.com/noah-isme/laporan-toko/internal/catalog"
	"github.com/noah-isme/laporan-toko/internal/common"
)

// MorningBonusRate is the reduction granted to lines ordered before
// MorningCutoffHour.
const (
	MorningBonusRate  = 0.03
	MorningCutoffHour = 10
)

// Line is one priced order line.
type Line struct {
	Order        catalog.Order
	Net          float64
	MorningBonus float64
	Weight       float64
}

// Aggregate collects the priced lines of one customer. Items keeps the
// input order because the weekend rule downstream reads the first
// order's date.
type Aggregate struct {
	Subtotal     float64
	Items        []catalog.Order
	Weight       float64
	MorningBonus float64
}

// PriceLine prices a single order against the catalog, resolving its
// product and any promotion it carries.
//
// A FIXED promotion deducts value × quantity from the line, not a
// single fixed amount per order. Historical report totals depend on
// this, so it must not be corrected here.
func PriceLine(o catalog.Order, cat *catalog.Catalog) Line {
	product := cat.ProductFor(o)

	discountRate := 0.0
	fixedDiscount := 0.0

	if o.PromoCode != "" {
		if promo, ok := cat.Promotion(o.PromoCode); ok && promo.Active {
			switch promo.Type {
			case catalog.PromoPercentage:
				discountRate = common.ParseFloatDefault(promo.Value, 0) / 100
			case catalog.PromoFixed:
				fixedDiscount = common.ParseFloatDefault(promo.Value, 0)
			}
		}
	}

	qty := float64(o.Qty)
	net := qty*product.Price*(1-discountRate) - fixedDiscount*qty

	bonus := 0.0
	if hourOf(o.Time) < MorningCutoffHour {
		bonus = net * MorningBonusRate
		net -= bonus
	}

	return Line{
		Order:        o,
		Net:          net,
		MorningBonus: bonus,
		Weight:       product.Weight * qty,
	}
}

// Accumulate prices every order and folds the lines into per-customer
// aggregates. Orders referencing unknown customers still accumulate
// under their declared customer id.
func Accumulate(orders []catalog.Order, cat *catalog.Catalog) map[string]*Aggregate {
	totals := make(map[string]*Aggregate)
	for _, o := range orders {
		line := PriceLine(o, cat)

		agg, ok := totals[o.CustomerID]
		if !ok {
			agg = &Aggregate{}
			totals[o.CustomerID] = agg
		}
		agg.Subtotal += line.Net
		agg.Weight += line.Weight
		agg.MorningBonus += line.MorningBonus
		agg.Items = append(agg.Items, o)
	}
	return totals
}

// hourOf extracts the hour from a free-text "HH:MM" value. Malformed
// input counts as hour 0.
func hourOf(value string) int {
	token, _, _ := strings.Cut(value, ":")
	return common.AtoiDefault(token, 0)
}
