// Package discount computes the customer-level discounts: a tiered
// volume discount with a weekend boost, a tiered loyalty discount and
// a global cap that rescales both proportionally.
//
// Tiers are ordered rule lists where the last matching rule wins. They
// replace, never add to, an earlier match; converting them into a
// lookup table or a max-scan would change which rate applies at the
// PREMIUM-gated top tier.
package discount

import "time"

// MaxDiscount caps the combined volume plus loyalty discount.
const MaxDiscount = 200.0

// WeekendBoost multiplies the volume discount when the customer's
// first order fell on a Saturday or Sunday.
const WeekendBoost = 1.05

// Breakdown is the discount figure set for one customer.
type Breakdown struct {
	Volume  float64
	Loyalty float64
	Total   float64
}

type volumeTier struct {
	applies func(subtotal float64, level string) bool
	rate    float64
}

// Evaluated top to bottom; every matching tier overwrites the one
// before it. The 100 and 500 thresholds are inclusive, the 50 and
// 1000 thresholds are not; the mix is part of the published rate
// schedule.
var volumeTiers = []volumeTier{
	{func(s float64, _ string) bool { return s > 50 }, 0.05},
	{func(s float64, _ string) bool { return s >= 100 }, 0.10},
	{func(s float64, _ string) bool { return s >= 500 }, 0.15},
	{func(s float64, level string) bool { return s > 1000 && level == "PREMIUM" }, 0.20},
}

type loyaltyTier struct {
	applies func(points float64) bool
	value   func(points float64) float64
}

var loyaltyTiers = []loyaltyTier{
	{func(p float64) bool { return p > 100 }, func(p float64) float64 { return min(p*0.1, 50.0) }},
	{func(p float64) bool { return p > 500 }, func(p float64) float64 { return min(p*0.15, 100.0) }},
}

// Volume returns the tiered volume discount for a subtotal and level.
func Volume(subtotal float64, level string) float64 {
	discount := 0.0
	for _, tier := range volumeTiers {
		if tier.applies(subtotal, level) {
			discount = subtotal * tier.rate
		}
	}
	return discount
}

// ApplyWeekendBonus boosts an already computed volume discount when
// the given date falls on a weekend. Empty or unparseable dates leave
// the discount unchanged.
func ApplyWeekendBonus(discount float64, firstOrderDate string) float64 {
	day, ok := weekdayOf(firstOrderDate)
	if !ok {
		return discount
	}
	if day == time.Saturday || day == time.Sunday {
		return discount * WeekendBoost
	}
	return discount
}

// Loyalty returns the tiered loyalty discount for a points balance.
func Loyalty(points float64) float64 {
	discount := 0.0
	for _, tier := range loyaltyTiers {
		if tier.applies(points) {
			discount = tier.value(points)
		}
	}
	return discount
}

// ApplyCap combines the two discounts, rescaling both by the same
// ratio when their sum exceeds MaxDiscount so the capped total lands
// on exactly MaxDiscount with the volume:loyalty ratio preserved.
func ApplyCap(volume, loyalty float64) Breakdown {
	total := volume + loyalty
	if total > MaxDiscount {
		ratio := MaxDiscount / total
		return Breakdown{
			Volume:  volume * ratio,
			Loyalty: loyalty * ratio,
			Total:   MaxDiscount,
		}
	}
	return Breakdown{Volume: volume, Loyalty: loyalty, Total: total}
}

// Compute runs the full discount pipeline for one customer.
func Compute(subtotal float64, level string, points float64, firstOrderDate string) Breakdown {
	volume := ApplyWeekendBonus(Volume(subtotal, level), firstOrderDate)
	return ApplyCap(volume, Loyalty(points))
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

func weekdayOf(value string) (time.Weekday, bool) {
	if value == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Weekday(), true
		}
	}
	return 0, false
}
