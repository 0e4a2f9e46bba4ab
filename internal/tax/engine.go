// Package tax computes the tax owed on a customer's order set.
package tax

import (
	"github.com/noah-isme/laporan-toko/internal/catalog"
	"github.com/noah-isme/laporan-toko/internal/common"
)

// Rate is the flat tax rate applied to taxable amounts.
const Rate = 0.20

// Compute returns the tax for one customer, rounded to two decimals.
//
// When every line resolves to a taxable product the tax is a single
// aggregate computation over the discounted taxable amount. As soon as
// one product is explicitly non-taxable the computation switches to a
// per-line sum over the undiscounted line values. The two paths really
// do disagree about the discount; report consumers reconcile against
// the historical output, so both must stay as they are.
func Compute(taxableAmount float64, items []catalog.Order, cat *catalog.Catalog) float64 {
	if allTaxable(items, cat) {
		return common.Round2(taxableAmount * Rate)
	}

	total := 0.0
	for _, o := range items {
		product := cat.ProductFor(o)
		if !product.Taxable {
			continue
		}
		total += float64(o.Qty) * product.Price * Rate
	}
	return common.Round2(total)
}

func allTaxable(items []catalog.Order, cat *catalog.Catalog) bool {
	for _, o := range items {
		if !cat.ProductFor(o).Taxable {
			return false
		}
	}
	return true
}
