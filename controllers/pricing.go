package controllers

import (
	"fmt"

	"burgerpos/data"
	"burgerpos/models"

	"github.com/shopspring/decimal"
)

// SplitPaymentTolerance is the allowed gap between the split-payment sum and
// the order total, in currency units.
const SplitPaymentTolerance = 0.01

// ResolvePrice selects the unit price for a catalog entry: burgers price by
// meat, sized items by size, flat items by Price. A price that cannot be
// resolved is an error, never a zero.
func ResolvePrice(item data.CatalogItem, meat, size string) (float64, error) {
	if len(item.Prices) == 0 {
		if item.Price <= 0 {
			return 0, fmt.Errorf("no price defined for %q", item.Name)
		}
		return item.Price, nil
	}

	key := size
	if item.Category == data.CategoryBurger {
		key = meat
	}
	price, ok := item.Prices[key]
	if !ok {
		return 0, fmt.Errorf("no price for %q with variant %q", item.Name, key)
	}
	return price, nil
}

// lineKey identifies a cart line; lines with the same product, meat and size
// merge instead of duplicating.
func lineKey(name, meat, size string) string {
	return name + "|" + meat + "|" + size
}

// AddLineItem merges the product into an existing matching line (qty+1) or
// appends a new line with the resolved unit price.
func AddLineItem(cart []models.OrderItem, item data.CatalogItem, meat, size string) ([]models.OrderItem, error) {
	for i := range cart {
		if lineKey(cart[i].Name, cart[i].Meat, cart[i].Size) == lineKey(item.Name, meat, size) {
			cart[i].Qty++
			return cart, nil
		}
	}

	price, err := ResolvePrice(item, meat, size)
	if err != nil {
		return cart, err
	}
	return append(cart, models.OrderItem{
		Name:  item.Name,
		Meat:  meat,
		Size:  size,
		Qty:   1,
		Price: price,
	}), nil
}

// totalBeforeClamp is the signed grand total: sum of line totals, plus
// takeaway packages, plus the delivery fee for delivery orders, minus the
// discount. Split payments settle against this value even when it is
// negative.
func totalBeforeClamp(items []models.OrderItem, discount float64, takeawayPackages int, orderType string, deliveryFee float64) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}
	total += float64(takeawayPackages) * models.TakeawayPackageFee
	if orderType == models.OrderTypeDelivery {
		total += deliveryFee
	}
	return total - discount
}

// ComputeTotal is totalBeforeClamp floored at zero for display; the store
// itself never enforces the floor.
func ComputeTotal(items []models.OrderItem, discount float64, takeawayPackages int, orderType string, deliveryFee float64) float64 {
	total := totalBeforeClamp(items, discount, takeawayPackages, orderType, deliveryFee)
	if total < 0 {
		return 0
	}
	return total
}

// ValidateSplitPayment checks that the split entries sum to the grand total
// within SplitPaymentTolerance. Zero-amount entries are ignored; negative
// amounts are rejected outright.
func ValidateSplitPayment(payments []models.PaymentPart, grandTotal float64) ([]models.PaymentPart, error) {
	var filtered []models.PaymentPart
	sum := decimal.Zero
	for _, p := range payments {
		if p.Amount < 0 {
			return nil, fmt.Errorf("payment amount for %s must not be negative", p.Method)
		}
		if p.Amount == 0 {
			continue
		}
		filtered = append(filtered, p)
		sum = sum.Add(decimal.NewFromFloat(p.Amount))
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("split payment requires at least one amount")
	}

	diff := sum.Sub(decimal.NewFromFloat(grandTotal)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(SplitPaymentTolerance)) {
		return nil, fmt.Errorf("split payments sum to %s, order total is %.2f", sum.StringFixed(2), grandTotal)
	}
	return filtered, nil
}
