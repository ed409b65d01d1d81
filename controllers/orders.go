package controllers

import (
	"context"
	"net/http"
	"time"

	"burgerpos/config"
	"burgerpos/data"
	"burgerpos/middleware"
	"burgerpos/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextOrderNumber scans all orders for the highest number and adds one.
// Scan-then-increment: two registers submitting at the same moment can pick
// the same number, accepted for single-register operation.
func nextOrderNumber(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.M{"orderNumber": -1}).SetProjection(bson.M{"orderNumber": 1})
	var top struct {
		OrderNumber int `bson:"orderNumber"`
	}
	err := config.OrderCollection.FindOne(ctx, bson.M{}, opts).Decode(&top)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 1, nil
		}
		return 0, err
	}
	return top.OrderNumber + 1, nil
}

// buildOrderItems resolves catalog prices for the submitted lines and merges
// duplicates. Unknown products or unresolvable variants reject the order.
func buildOrderItems(input models.OrderInput) ([]models.OrderItem, error) {
	var cart []models.OrderItem
	for _, line := range input.Items {
		item, ok := data.FindItem(line.Name)
		if !ok {
			return nil, &orderValidationError{"unknown product: " + line.Name}
		}
		qty := line.Qty
		if qty <= 0 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			var err error
			cart, err = AddLineItem(cart, item, line.Meat, line.Size)
			if err != nil {
				return nil, &orderValidationError{err.Error()}
			}
		}
	}
	return cart, nil
}

type orderValidationError struct{ msg string }

func (e *orderValidationError) Error() string { return e.msg }

// CreateOrder validates and persists a new order with status pending.
// All validation happens before any write.
func CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one item"})
		return
	}
	if !validDate(input.SessionDay) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sessionDay, expected YYYY-MM-DD"})
		return
	}
	if input.Discount < 0 || input.TakeawayPackages < 0 || input.DeliveryFee < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount, packages and delivery fee must not be negative"})
		return
	}

	switch input.OrderType {
	case models.OrderTypeOnSite, models.OrderTypeTakeaway, models.OrderTypeDelivery:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order type"})
		return
	}

	items, err := buildOrderItems(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deliveryFee := 0.0
	if input.OrderType == models.OrderTypeDelivery {
		deliveryFee = input.DeliveryFee
	}
	grandTotal := ComputeTotal(items, input.Discount, input.TakeawayPackages, input.OrderType, deliveryFee)

	order := models.Order{
		SessionDay:       input.SessionDay,
		Items:            items,
		OrderType:        input.OrderType,
		Discount:         input.Discount,
		TakeawayPackages: input.TakeawayPackages,
		DeliveryFee:      deliveryFee,
		Status:           models.OrderStatusPending,
		IsArchived:       false,
		CustomerName:     input.CustomerName,
		Timestamp:        time.Now(),
	}

	if len(input.SplitPayment) > 0 {
		// split entries settle the unclamped total; the clamp is display-only
		settleTotal := totalBeforeClamp(items, input.Discount, input.TakeawayPackages, input.OrderType, deliveryFee)
		filtered, err := ValidateSplitPayment(input.SplitPayment, settleTotal)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order.SplitPayment = filtered
	} else {
		switch input.PaymentMethod {
		case models.PaymentCash, models.PaymentCard, models.PaymentBlik:
		case "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method is required"})
			return
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method"})
			return
		}
		order.PaymentMethod = input.PaymentMethod
	}

	ctx := context.TODO()
	number, err := nextOrderNumber(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order number"})
		return
	}
	order.OrderNumber = number

	res, err := config.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	middleware.OrdersCreatedTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"order":      order,
		"grandTotal": grandTotal,
	})
}

// GetActiveOrders lists unarchived orders for a day, legacy timestamp
// fallback included.
func GetActiveOrders(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	cursor, err := config.OrderCollection.Find(context.TODO(), bson.M{"isArchived": false})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	defer cursor.Close(context.TODO())

	orders := []models.Order{}
	for cursor.Next(context.TODO()) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			continue
		}
		if OrderOnDay(order, date) {
			orders = append(orders, order)
		}
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderHistory lists archived orders, newest deletion first.
func GetOrderHistory(c *gin.Context) {
	opts := options.Find().SetSort(bson.M{"deletionTimestamp": -1})
	cursor, err := config.OrderCollection.Find(context.TODO(), bson.M{"isArchived": true}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order history"})
		return
	}
	defer cursor.Close(context.TODO())

	orders := []models.Order{}
	if err = cursor.All(context.TODO(), &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode order history"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// MarkOrderPaid sets the status only; archiving is a separate action.
func MarkOrderPaid(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	update := bson.M{"$set": bson.M{
		"status":        models.OrderStatusPaid,
		"paidTimestamp": time.Now(),
	}}
	res, err := config.OrderCollection.UpdateOne(context.TODO(), bson.M{"_id": objID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order marked as paid"})
}

// ArchiveOrder removes the order from the active worklist. The record stays
// queryable in history; this is not a delete.
func ArchiveOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	update := bson.M{"$set": bson.M{
		"isArchived":        true,
		"deletionTimestamp": time.Now(),
	}}
	res, err := config.OrderCollection.UpdateOne(context.TODO(), bson.M{"_id": objID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive order"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order archived"})
}

// EditOrder overwrites the editable fields wholesale. Paid orders are
// rejected; the register corrects an order before taking payment.
func EditOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(patch.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one item"})
		return
	}
	switch patch.OrderType {
	case models.OrderTypeOnSite, models.OrderTypeTakeaway, models.OrderTypeDelivery:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order type"})
		return
	}
	switch patch.PaymentMethod {
	case "", models.PaymentCash, models.PaymentCard, models.PaymentBlik:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method"})
		return
	}
	if patch.Discount < 0 || patch.TakeawayPackages < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount and packages must not be negative"})
		return
	}

	var order models.Order
	err = config.OrderCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		}
		return
	}
	if order.Status == models.OrderStatusPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "Paid orders cannot be edited"})
		return
	}

	update := bson.M{"$set": bson.M{
		"customerName":     patch.CustomerName,
		"orderType":        patch.OrderType,
		"paymentMethod":    patch.PaymentMethod,
		"discount":         patch.Discount,
		"takeawayPackages": patch.TakeawayPackages,
		"items":            patch.Items,
	}}
	if _, err := config.OrderCollection.UpdateOne(context.TODO(), bson.M{"_id": objID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

// ClearOrderHistory hard-deletes every archived order.
func ClearOrderHistory(c *gin.Context) {
	res, err := config.OrderCollection.DeleteMany(context.TODO(), bson.M{"isArchived": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear order history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": res.DeletedCount})
}

// GetCatalog returns the static menu.
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"burgers": data.Burgers,
		"ufo":     data.UfoBurgers,
		"extras":  data.Extras,
		"drinks":  data.Drinks,
	})
}
