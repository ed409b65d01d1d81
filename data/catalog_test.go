package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindItem(t *testing.T) {
	item, ok := FindItem("CLASSIC")
	require.True(t, ok)
	assert.Equal(t, CategoryBurger, item.Category)
	assert.Equal(t, 29.00, item.Prices["beef"])

	_, ok = FindItem("Nie ma takiego")
	assert.False(t, ok)
}

func TestItemCategory(t *testing.T) {
	tests := []struct {
		item string
		want string
	}{
		{"CLASSIC", CategoryBurger},
		{"U.F.O Bacon", CategoryUfo},
		{"Frytki", CategoryExtra},
		{"Pepsi", CategoryDrink},
		{"Ziemniak", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemCategory(tt.item))
		})
	}
}

func TestCatalogItemsHaveExactlyOnePricingMode(t *testing.T) {
	for _, item := range Catalog {
		flat := item.Price > 0
		variants := len(item.Prices) > 0
		assert.NotEqual(t, flat, variants, "item %q must price either flat or by variant", item.Name)
	}
}

func TestBurgersPriceByEveryListedMeat(t *testing.T) {
	for _, burger := range Burgers {
		require.NotEmpty(t, burger.AvailableMeats, "burger %q lists no meats", burger.Name)
		for _, meat := range burger.AvailableMeats {
			price, ok := burger.Prices[meat]
			assert.True(t, ok, "burger %q has no price for meat %q", burger.Name, meat)
			assert.Greater(t, price, 0.0)
		}
	}
}

func TestWarehouseSeedHasNoDuplicates(t *testing.T) {
	seen := map[string]bool{}
	for _, product := range WarehouseSeedProducts {
		assert.False(t, seen[product.Name], "duplicate seed product %q", product.Name)
		seen[product.Name] = true
		assert.NotEmpty(t, product.Category)
		assert.NotEmpty(t, product.Unit)
	}
}
