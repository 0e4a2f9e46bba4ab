package report

import (
	"fmt"
	"math"
	"strings"
)

// Summary is the machine-readable record emitted per customer.
type Summary struct {
	CustomerID    string  `json:"customer_id"`
	Name          string  `json:"name"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
	LoyaltyPoints int     `json:"loyalty_points"`
}

// Text renders the fixed-format human-readable report. The layout is a
// contract with downstream consumers; do not reorder or reformat the
// lines.
func (r Report) Text() string {
	var lines []string
	for _, row := range r.Rows {
		lines = append(lines,
			fmt.Sprintf("Customer: %s (%s)", row.Name, row.CustomerID),
			fmt.Sprintf("Level: %s | Zone: %s | Currency: %s", row.Level, row.Zone, row.Currency),
			fmt.Sprintf("Subtotal: %.2f", row.Subtotal),
			fmt.Sprintf("Discount: %.2f", row.Discount.Total),
			fmt.Sprintf("  - Volume discount: %.2f", row.Discount.Volume),
			fmt.Sprintf("  - Loyalty discount: %.2f", row.Discount.Loyalty),
		)
		if row.MorningBonus > 0 {
			lines = append(lines, fmt.Sprintf("  - Morning bonus: %.2f", row.MorningBonus))
		}
		lines = append(lines,
			fmt.Sprintf("Tax: %.2f", row.Tax*row.Rate),
			fmt.Sprintf("Shipping (%s, %.1fkg): %.2f", row.Zone, row.Weight, row.Shipping),
		)
		if row.Handling > 0 {
			lines = append(lines, fmt.Sprintf("Handling (%d items): %.2f", row.ItemCount, row.Handling))
		}
		lines = append(lines,
			fmt.Sprintf("Total: %.2f %s", row.Total, row.Currency),
			fmt.Sprintf("Loyalty Points: %d", flooredPoints(row.Points)),
			"",
		)
	}
	lines = append(lines,
		fmt.Sprintf("Grand Total: %.2f EUR", r.GrandTotal),
		fmt.Sprintf("Total Tax Collected: %.2f EUR", r.TotalTaxCollected),
	)
	return strings.Join(lines, "\n")
}

// Summaries returns the per-customer summary records in report order.
func (r Report) Summaries() []Summary {
	summaries := make([]Summary, 0, len(r.Rows))
	for _, row := range r.Rows {
		summaries = append(summaries, Summary{
			CustomerID:    row.CustomerID,
			Name:          row.Name,
			Total:         row.Total,
			Currency:      row.Currency,
			LoyaltyPoints: flooredPoints(row.Points),
		})
	}
	return summaries
}

func flooredPoints(points float64) int {
	return int(math.Floor(points))
}
