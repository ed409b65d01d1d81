package controllers

import (
	"testing"

	"burgerpos/models"

	"github.com/stretchr/testify/assert"
)

func TestPaymentBucket(t *testing.T) {
	tests := []struct {
		name  string
		order models.Order
		want  string
	}{
		{
			name:  "single method",
			order: models.Order{PaymentMethod: models.PaymentCash},
			want:  models.PaymentCash,
		},
		{
			name: "split goes to its own bucket",
			order: models.Order{
				SplitPayment: []models.PaymentPart{
					{Method: models.PaymentCash, Amount: 10},
					{Method: models.PaymentCard, Amount: 20},
				},
			},
			want: models.PaymentSplitKey,
		},
		{
			name: "split wins even with a method set",
			order: models.Order{
				PaymentMethod: models.PaymentCard,
				SplitPayment:  []models.PaymentPart{{Method: models.PaymentCash, Amount: 30}},
			},
			want: models.PaymentSplitKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paymentBucket(tt.order))
		})
	}
}

func TestOrderTotalUsesStoredPrices(t *testing.T) {
	order := models.Order{
		Items: []models.OrderItem{
			{Name: "CLASSIC", Meat: "beef", Qty: 1, Price: 29.00},
			{Name: "Pepsi", Size: "0.5l", Qty: 2, Price: 7.00},
		},
		OrderType:        models.OrderTypeTakeaway,
		TakeawayPackages: 2,
		Discount:         5.00,
	}

	assert.InDelta(t, 40.00, orderTotal(order), 0.001)
}
