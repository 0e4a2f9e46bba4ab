// Package catalog holds the reference data a report run is computed
// against: customers, products, shipping zones and promotions, keyed by
// their natural ids, plus the order records themselves. Lookups never
// fail; an unknown key resolves to a documented default record so the
// engine downstream never has to branch on missing data.
package catalog

// Customer levels recognized by the discount rules. Anything else in
// the source data behaves like BASIC.
const (
	LevelBasic   = "BASIC"
	LevelPremium = "PREMIUM"
)

// Promotion types recognized by the line pricer. Unrecognized types
// apply no discount.
const (
	PromoPercentage = "PERCENTAGE"
	PromoFixed      = "FIXED"
)

// Customer is an immutable reference record loaded once per run.
type Customer struct {
	ID           string
	Name         string
	Level        string
	ShippingZone string
	Currency     string
}

// Product is an immutable reference record loaded once per run.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    float64
	Weight   float64
	Taxable  bool
}

// ShippingZone describes the fee schedule for one delivery zone.
type ShippingZone struct {
	Zone  string
	Base  float64
	PerKg float64
}

// Promotion is a discount rule addressable by code. Value stays a
// string as stored in the source data; it is parsed at the point of
// use, where a malformed value degrades to zero.
type Promotion struct {
	Code   string
	Type   string
	Value  string
	Active bool
}

// Order is one line of business: a product/quantity pairing placed by
// a customer. Date and Time are kept as the free-text the source
// recorded; the engine parses them leniently.
type Order struct {
	ID         string
	CustomerID string
	ProductID  string
	Qty        int
	UnitPrice  float64
	Date       string
	PromoCode  string
	Time       string
}

// Catalog bundles the keyed reference sets for one run.
type Catalog struct {
	Customers  map[string]Customer
	Products   map[string]Product
	Zones      map[string]ShippingZone
	Promotions map[string]Promotion
}

// New returns an empty catalog with all maps initialized.
func New() *Catalog {
	return &Catalog{
		Customers:  map[string]Customer{},
		Products:   map[string]Product{},
		Zones:      map[string]ShippingZone{},
		Promotions: map[string]Promotion{},
	}
}

// Customer resolves a customer id, falling back to the placeholder
// record used for orders whose customer is not in the reference set.
func (c *Catalog) Customer(id string) Customer {
	if cust, ok := c.Customers[id]; ok {
		return cust
	}
	return Customer{
		ID:           id,
		Name:         "Unknown",
		Level:        LevelBasic,
		ShippingZone: "ZONE1",
		Currency:     "EUR",
	}
}

// ProductFor resolves the product of an order line. When the product
// id is unknown the returned record is derived from the line itself:
// the order's own unit price, a weight of 1.0 and taxable treatment.
func (c *Catalog) ProductFor(o Order) Product {
	if p, ok := c.Products[o.ProductID]; ok {
		return p
	}
	return Product{
		ID:      o.ProductID,
		Price:   o.UnitPrice,
		Weight:  1.0,
		Taxable: true,
	}
}

// Zone resolves a shipping zone id, keeping the requested id on the
// default record so zone-based surcharges still see the original name.
func (c *Catalog) Zone(id string) ShippingZone {
	if z, ok := c.Zones[id]; ok {
		return z
	}
	return ShippingZone{Zone: id, Base: 5.0, PerKg: 0.5}
}

// Promotion looks up a promotion code. The second return reports
// whether the code exists; inactive promotions are still returned so
// the caller decides how to treat them.
func (c *Catalog) Promotion(code string) (Promotion, bool) {
	p, ok := c.Promotions[code]
	return p, ok
}
