// Package loyalty accrues per-customer loyalty points from the order
// stream.
package loyalty

import "github.com/noah-isme/laporan-toko/internal/catalog"

// PointsRatio converts order value into loyalty points.
const PointsRatio = 0.01

// Accumulate folds the full order sequence into a map of customer id
// to accumulated points. Customers without orders are absent from the
// result and count as zero points downstream.
func Accumulate(orders []catalog.Order) map[string]float64 {
	points := make(map[string]float64)
	for _, o := range orders {
		points[o.CustomerID] += float64(o.Qty) * o.UnitPrice * PointsRatio
	}
	return points
}
