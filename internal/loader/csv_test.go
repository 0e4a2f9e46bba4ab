package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/laporan-toko/internal/catalog"
	"github.com/noah-isme/laporan-toko/internal/loader"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCustomersDefaultsShortRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "customers.csv",
		"id,name,level,zone,currency\nC1,Alice,PREMIUM,ZONE2,USD\nC2,Bob\n")

	customers, err := loader.Customers(path)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	require.Equal(t, catalog.Customer{ID: "C1", Name: "Alice", Level: "PREMIUM", ShippingZone: "ZONE2", Currency: "USD"}, customers["C1"])
	require.Equal(t, catalog.Customer{ID: "C2", Name: "Bob", Level: "BASIC", ShippingZone: "ZONE1", Currency: "EUR"}, customers["C2"])
}

func TestProductsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "products.csv",
		"id,name,category,price,weight,taxable\nP1,Mug,Kitchen,9.5,0.4,true\nP2,Book,Media,12,1.2,false\nP3,Pen,Office,2\n")

	products, err := loader.Products(path)
	require.NoError(t, err)
	require.Len(t, products, 3)
	require.False(t, products["P2"].Taxable)

	pen := products["P3"]
	require.InDelta(t, 1.0, pen.Weight, 1e-9)
	require.True(t, pen.Taxable)
}

func TestShippingZonesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "zones.csv",
		"zone,base,per_kg\nZONE1,4.5,0.6\nZONE2,6\n")

	zones, err := loader.ShippingZones(path)
	require.NoError(t, err)
	require.InDelta(t, 0.6, zones["ZONE1"].PerKg, 1e-9)
	require.InDelta(t, 0.5, zones["ZONE2"].PerKg, 1e-9)
}

func TestPromotionsActiveFlag(t *testing.T) {
	path := writeFile(t, t.TempDir(), "promotions.csv",
		"code,type,value,active\nTEN,PERCENTAGE,10,true\nDEAD,FIXED,5,false\nSHORT,PERCENTAGE,20\n")

	promotions, err := loader.Promotions(path)
	require.NoError(t, err)
	require.True(t, promotions["TEN"].Active)
	require.False(t, promotions["DEAD"].Active)
	// Absent flag means active; only the literal "false" disables.
	require.True(t, promotions["SHORT"].Active)
	require.Equal(t, "10", promotions["TEN"].Value)
}

func TestPromotionsMissingFileIsEmpty(t *testing.T) {
	promotions, err := loader.Promotions(filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, err)
	require.Empty(t, promotions)
}

func TestOrdersDropsInvalidRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "orders.csv",
		"id,customer,product,qty,price,date,promo,time\n"+
			"O1,C1,P1,2,10,2024-01-13,TEN,08:30\n"+
			"O2,C1,P1,0,10,2024-01-13,,\n"+
			"O3,C1,P1,3,-1,2024-01-13,,\n"+
			"O4,C2,P2,1,5\n")

	orders, err := loader.Orders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	require.Equal(t, "O1", orders[0].ID)
	require.Equal(t, "TEN", orders[0].PromoCode)
	require.Equal(t, "08:30", orders[0].Time)

	short := orders[1]
	require.Equal(t, "O4", short.ID)
	require.Equal(t, "", short.Date)
	require.Equal(t, "", short.PromoCode)
	require.Equal(t, "12:00", short.Time)
}

func TestOrdersMissingFileFails(t *testing.T) {
	_, err := loader.Orders(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestLoadAssemblesCatalog(t *testing.T) {
	dir := t.TempDir()
	paths := loader.Paths{
		Customers:     writeFile(t, dir, "customers.csv", "id,name\nC1,Alice\n"),
		Products:      writeFile(t, dir, "products.csv", "id,name,category,price\nP1,Mug,Kitchen,9.5\n"),
		Orders:        writeFile(t, dir, "orders.csv", "id,customer,product,qty,price\nO1,C1,P1,1,9.5\n"),
		ShippingZones: writeFile(t, dir, "zones.csv", "zone,base\nZONE1,5\n"),
		Promotions:    filepath.Join(dir, "promotions.csv"),
	}

	cat, orders, err := loader.Load(paths)
	require.NoError(t, err)
	require.Len(t, cat.Customers, 1)
	require.Len(t, cat.Products, 1)
	require.Len(t, cat.Zones, 1)
	require.Empty(t, cat.Promotions)
	require.Len(t, orders, 1)
}
