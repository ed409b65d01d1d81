package controllers

import (
	"testing"

	"burgerpos/data"
	"burgerpos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFind(t *testing.T, name string) data.CatalogItem {
	t.Helper()
	item, ok := data.FindItem(name)
	require.True(t, ok, "catalog item %q not found", name)
	return item
}

func TestResolvePrice(t *testing.T) {
	tests := []struct {
		name    string
		item    string
		meat    string
		size    string
		want    float64
		wantErr bool
	}{
		{name: "burger by meat smash90", item: "CLASSIC", meat: "smash90", want: 22.00},
		{name: "burger by meat beef", item: "CLASSIC", meat: "beef", want: 29.00},
		{name: "burger by meat chicken", item: "Cheese", meat: "chicken", want: 27.00},
		{name: "sized extra", item: "Frytki", size: "M", want: 9.00},
		{name: "sized extra large", item: "Frytki", size: "L", want: 12.00},
		{name: "sized drink", item: "Pepsi", size: "1l", want: 10.00},
		{name: "flat price", item: "U.F.O Bacon", want: 28.00},
		{name: "flat price ignores size", item: "Sos", size: "XXL", want: 3.00},
		{name: "burger without meat", item: "CLASSIC", wantErr: true},
		{name: "burger with unknown meat", item: "CLASSIC", meat: "tofu", wantErr: true},
		{name: "sized item without size", item: "Frytki", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := ResolvePrice(mustFind(t, tt.item), tt.meat, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, price)
		})
	}
}

func TestAddLineItemMergesDuplicates(t *testing.T) {
	classic := mustFind(t, "CLASSIC")
	fries := mustFind(t, "Frytki")

	cart, err := AddLineItem(nil, classic, "beef", "")
	require.NoError(t, err)
	cart, err = AddLineItem(cart, classic, "beef", "")
	require.NoError(t, err)
	cart, err = AddLineItem(cart, classic, "chicken", "")
	require.NoError(t, err)
	cart, err = AddLineItem(cart, fries, "", "M")
	require.NoError(t, err)

	require.Len(t, cart, 3)
	assert.Equal(t, 2, cart[0].Qty)
	assert.Equal(t, "beef", cart[0].Meat)
	assert.Equal(t, 1, cart[1].Qty)
	assert.Equal(t, "chicken", cart[1].Meat)
	assert.Equal(t, "Frytki", cart[2].Name)
}

func TestAddLineItemUnresolvableVariant(t *testing.T) {
	classic := mustFind(t, "CLASSIC")
	cart, err := AddLineItem(nil, classic, "", "")
	assert.Error(t, err)
	assert.Empty(t, cart)
}

func TestComputeTotal(t *testing.T) {
	items := []models.OrderItem{
		{Name: "CLASSIC", Meat: "beef", Qty: 2, Price: 29.00},
		{Name: "Frytki", Size: "M", Qty: 1, Price: 9.00},
	}

	tests := []struct {
		name             string
		items            []models.OrderItem
		discount         float64
		takeawayPackages int
		orderType        string
		deliveryFee      float64
		want             float64
	}{
		{name: "plain onsite", items: items, orderType: models.OrderTypeOnSite, want: 67.00},
		{name: "takeaway packages add a zloty each", items: items, orderType: models.OrderTypeTakeaway, takeawayPackages: 3, want: 70.00},
		{name: "delivery fee only applied for delivery", items: items, orderType: models.OrderTypeOnSite, deliveryFee: 10.00, want: 67.00},
		{name: "delivery fee applied for delivery", items: items, orderType: models.OrderTypeDelivery, deliveryFee: 10.00, want: 77.00},
		{name: "discount subtracted", items: items, orderType: models.OrderTypeOnSite, discount: 7.00, want: 60.00},
		{name: "oversized discount clamps to zero", items: items, orderType: models.OrderTypeOnSite, discount: 500.00, want: 0},
		{
			name: "delivery with packages and discount",
			items: []models.OrderItem{
				{Name: "CLASSIC", Meat: "beef", Qty: 2, Price: 10.00},
				{Name: "Sos", Qty: 1, Price: 5.00},
			},
			orderType:        models.OrderTypeDelivery,
			takeawayPackages: 2,
			deliveryFee:      7.00,
			discount:         3.00,
			want:             31.00,
		},
		{name: "empty cart", items: nil, orderType: models.OrderTypeOnSite, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.items, tt.discount, tt.takeawayPackages, tt.orderType, tt.deliveryFee)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestTotalBeforeClampGoesNegative(t *testing.T) {
	items := []models.OrderItem{{Name: "Sos", Qty: 1, Price: 3.00}}

	raw := totalBeforeClamp(items, 5.00, 0, models.OrderTypeOnSite, 0)
	assert.InDelta(t, -2.00, raw, 0.001)
	assert.Equal(t, 0.0, ComputeTotal(items, 5.00, 0, models.OrderTypeOnSite, 0))

	// a split that would match the clamped zero must not settle the order
	_, err := ValidateSplitPayment([]models.PaymentPart{{Method: models.PaymentCash, Amount: 0.01}}, raw)
	assert.Error(t, err)
}

func TestValidateSplitPayment(t *testing.T) {
	tests := []struct {
		name     string
		payments []models.PaymentPart
		total    float64
		wantLen  int
		wantErr  bool
	}{
		{
			name: "exact split",
			payments: []models.PaymentPart{
				{Method: models.PaymentCash, Amount: 30.00},
				{Method: models.PaymentCard, Amount: 37.00},
			},
			total:   67.00,
			wantLen: 2,
		},
		{
			name: "within tolerance",
			payments: []models.PaymentPart{
				{Method: models.PaymentCash, Amount: 33.50},
				{Method: models.PaymentCard, Amount: 33.51},
			},
			total:   67.00,
			wantLen: 2,
		},
		{
			name: "over tolerance",
			payments: []models.PaymentPart{
				{Method: models.PaymentCash, Amount: 33.50},
				{Method: models.PaymentCard, Amount: 33.55},
			},
			total:   67.00,
			wantErr: true,
		},
		{
			name: "zero amounts dropped",
			payments: []models.PaymentPart{
				{Method: models.PaymentCash, Amount: 67.00},
				{Method: models.PaymentCard, Amount: 0},
			},
			total:   67.00,
			wantLen: 1,
		},
		{
			name: "negative amount rejected",
			payments: []models.PaymentPart{
				{Method: models.PaymentCash, Amount: 70.00},
				{Method: models.PaymentCard, Amount: -3.00},
			},
			total:   67.00,
			wantErr: true,
		},
		{
			name:     "all zero rejected",
			payments: []models.PaymentPart{{Method: models.PaymentCash, Amount: 0}},
			total:    67.00,
			wantErr:  true,
		},
		{
			name: "ten plus five against fifteen",
			payments: []models.PaymentPart{
				{Method: models.PaymentCash, Amount: 10.00},
				{Method: models.PaymentCard, Amount: 5.00},
			},
			total:   15.00,
			wantLen: 2,
		},
		{
			name: "two grosze short is rejected",
			payments: []models.PaymentPart{
				{Method: models.PaymentCash, Amount: 10.00},
				{Method: models.PaymentCard, Amount: 5.00},
			},
			total:   15.02,
			wantErr: true,
		},
		{
			name: "float sum stays within tolerance",
			payments: []models.PaymentPart{
				{Method: models.PaymentCash, Amount: 0.1},
				{Method: models.PaymentCard, Amount: 0.2},
			},
			total:   0.30,
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := ValidateSplitPayment(tt.payments, tt.total)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, filtered, tt.wantLen)
		})
	}
}
