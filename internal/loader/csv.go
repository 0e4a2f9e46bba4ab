// Package loader reads the five CSV inputs into typed collections.
// Parsing is deliberately lenient: short rows fill in the documented
// per-column defaults and malformed numerics degrade to zero, because
// the engine downstream treats missing reference data as a normal
// condition, never an error. The only validation in the whole system
// lives here: order rows with a non-positive quantity or a negative
// unit price are dropped before the engine ever sees them.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/laporan-toko/internal/catalog"
	"github.com/noah-isme/laporan-toko/internal/common"
)

var validate = validator.New()

// Paths locates the five input files of one run.
type Paths struct {
	Customers     string
	Products      string
	Orders        string
	ShippingZones string
	Promotions    string
}

// Load reads every input and assembles the catalog plus the ordered
// order list.
func Load(p Paths) (*catalog.Catalog, []catalog.Order, error) {
	cat := catalog.New()

	var err error
	if cat.Customers, err = Customers(p.Customers); err != nil {
		return nil, nil, err
	}
	if cat.Products, err = Products(p.Products); err != nil {
		return nil, nil, err
	}
	if cat.Zones, err = ShippingZones(p.ShippingZones); err != nil {
		return nil, nil, err
	}
	if cat.Promotions, err = Promotions(p.Promotions); err != nil {
		return nil, nil, err
	}

	orders, err := Orders(p.Orders)
	if err != nil {
		return nil, nil, err
	}
	return cat, orders, nil
}

// Customers reads the customer reference file.
func Customers(path string) (map[string]catalog.Customer, error) {
	customers := map[string]catalog.Customer{}
	err := eachRow(path, func(row []string) {
		customers[field(row, 0, "")] = catalog.Customer{
			ID:           field(row, 0, ""),
			Name:         field(row, 1, ""),
			Level:        field(row, 2, catalog.LevelBasic),
			ShippingZone: field(row, 3, "ZONE1"),
			Currency:     field(row, 4, "EUR"),
		}
	})
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	return customers, nil
}

// Products reads the product reference file.
func Products(path string) (map[string]catalog.Product, error) {
	products := map[string]catalog.Product{}
	err := eachRow(path, func(row []string) {
		products[field(row, 0, "")] = catalog.Product{
			ID:       field(row, 0, ""),
			Name:     field(row, 1, ""),
			Category: field(row, 2, ""),
			Price:    common.ParseFloatDefault(field(row, 3, ""), 0),
			Weight:   common.ParseFloatDefault(field(row, 4, "1.0"), 0),
			Taxable:  field(row, 5, "true") == "true",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return products, nil
}

// ShippingZones reads the zone fee schedule.
func ShippingZones(path string) (map[string]catalog.ShippingZone, error) {
	zones := map[string]catalog.ShippingZone{}
	err := eachRow(path, func(row []string) {
		zones[field(row, 0, "")] = catalog.ShippingZone{
			Zone:  field(row, 0, ""),
			Base:  common.ParseFloatDefault(field(row, 1, ""), 0),
			PerKg: common.ParseFloatDefault(field(row, 2, "0.5"), 0),
		}
	})
	if err != nil {
		return nil, fmt.Errorf("load shipping zones: %w", err)
	}
	return zones, nil
}

// Promotions reads the promotion file. A missing file is not an
// error; runs without promotions are normal.
func Promotions(path string) (map[string]catalog.Promotion, error) {
	promotions := map[string]catalog.Promotion{}
	err := eachRow(path, func(row []string) {
		promotions[field(row, 0, "")] = catalog.Promotion{
			Code:   field(row, 0, ""),
			Type:   field(row, 1, ""),
			Value:  field(row, 2, ""),
			Active: field(row, 3, "true") != "false",
		}
	})
	if errors.Is(err, os.ErrNotExist) {
		return promotions, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load promotions: %w", err)
	}
	return promotions, nil
}

// orderRow carries the sanity rules the loader enforces before a row
// becomes an order.
type orderRow struct {
	Qty       int     `validate:"gt=0"`
	UnitPrice float64 `validate:"gte=0"`
}

// Orders reads the order file in input order, dropping rows that fail
// the quantity/price sanity rules.
func Orders(path string) ([]catalog.Order, error) {
	var orders []catalog.Order
	err := eachRow(path, func(row []string) {
		parsed := orderRow{
			Qty:       common.AtoiDefault(field(row, 3, ""), 0),
			UnitPrice: common.ParseFloatDefault(field(row, 4, ""), 0),
		}
		if validate.Struct(parsed) != nil {
			return
		}
		orders = append(orders, catalog.Order{
			ID:         field(row, 0, ""),
			CustomerID: field(row, 1, ""),
			ProductID:  field(row, 2, ""),
			Qty:        parsed.Qty,
			UnitPrice:  parsed.UnitPrice,
			Date:       field(row, 5, ""),
			PromoCode:  field(row, 6, ""),
			Time:       field(row, 7, "12:00"),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

// eachRow streams the data rows of a CSV file, skipping the header.
func eachRow(path string, fn func(row []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fn(row)
	}
}

// field returns the column value or the default when the row is too
// short.
func field(row []string, idx int, def string) string {
	if idx < len(row) {
		return row[idx]
	}
	return def
}
