// Package shipping prices delivery and handling for a customer's
// combined order set.
package shipping

import "github.com/noah-isme/laporan-toko/internal/catalog"

const (
	// FreeShippingLimit is the subtotal above which shipping is free
	// apart from the heavy-parcel residual.
	FreeShippingLimit = 50.0
	// HandlingFee is charged once above ten items and doubled above
	// twenty.
	HandlingFee = 2.5

	midWeightRate   = 0.3
	heavyFreeRate   = 0.25
	remoteSurcharge = 1.2
)

// Fee computes the shipping fee for a customer given their subtotal,
// total parcel weight and resolved shipping zone.
//
// Below the free-shipping limit the fee tiers on weight: above 10kg
// the zone's own per-kg rate applies to the excess, between 5 and
// 10kg a fixed intermediate rate applies, otherwise the zone base fee
// stands alone. Exactly 10kg and exactly 5kg fall into the lower
// branch. ZONE3 and ZONE4 carry a remote surcharge on the result.
func Fee(subtotal, weight float64, zone catalog.ShippingZone) float64 {
	if subtotal >= FreeShippingLimit {
		if weight > 20 {
			return (weight - 20) * heavyFreeRate
		}
		return 0
	}

	var fee float64
	switch {
	case weight > 10:
		fee = zone.Base + (weight-10)*zone.PerKg
	case weight > 5:
		fee = zone.Base + (weight-5)*midWeightRate
	default:
		fee = zone.Base
	}

	if zone.Zone == "ZONE3" || zone.Zone == "ZONE4" {
		fee *= remoteSurcharge
	}
	return fee
}

// Handling returns the item-count handling fee. The rules are an
// ordered overwrite: the twenty-item rule replaces the ten-item rule
// for large orders.
func Handling(itemCount int) float64 {
	fee := 0.0
	if itemCount > 10 {
		fee = HandlingFee
	}
	if itemCount > 20 {
		fee = HandlingFee * 2
	}
	return fee
}
