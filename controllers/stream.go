package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"burgerpos/config"
	"burgerpos/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func activeOrdersForDay(ctx context.Context, date string) ([]models.Order, error) {
	cursor, err := config.OrderCollection.Find(ctx, bson.M{"isArchived": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			continue
		}
		if OrderOnDay(order, date) {
			orders = append(orders, order)
		}
	}
	return orders, cursor.Err()
}

// StreamOrders pushes the day's active order list over SSE. The full set
// is re-sent on every change so the client never has to merge deltas.
// Requires MongoDB running as a replica set for change streams.
func StreamOrders(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	stream, err := config.OrderCollection.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open change stream"})
		return
	}
	defer stream.Close(ctx)

	events := make(chan struct{}, 1)
	go func() {
		defer close(events)
		for stream.Next(ctx) {
			select {
			case events <- struct{}{}:
			default:
			}
		}
	}()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	send := func(w io.Writer) bool {
		orders, err := activeOrdersForDay(ctx, date)
		if err != nil {
			return false
		}
		payload, err := json.Marshal(orders)
		if err != nil {
			return false
		}
		c.SSEvent("orders", string(payload))
		return true
	}

	first := true
	c.Stream(func(w io.Writer) bool {
		if first {
			first = false
			return send(w)
		}
		select {
		case _, ok := <-events:
			if !ok {
				return false
			}
			return send(w)
		case <-ctx.Done():
			return false
		}
	})
}
