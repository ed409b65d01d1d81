package main

import (
	"context"
	"log"
	"time"

	"burgerpos/config"
	"burgerpos/models"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
)

// Wipes all operational data: day sessions, snapshots and orders are
// deleted, warehouse products are kept but zeroed. Run only against a
// database you are prepared to lose.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config.ConnectDatabase()
	ctx := context.TODO()

	sessions, err := config.DaySessionCollection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("failed to delete day sessions: %v", err)
	}
	log.Printf("deleted %d day sessions", sessions.DeletedCount)

	snapshots, err := config.SnapshotCollection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("failed to delete snapshots: %v", err)
	}
	log.Printf("deleted %d warehouse snapshots", snapshots.DeletedCount)

	orders, err := config.OrderCollection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("failed to delete orders: %v", err)
	}
	log.Printf("deleted %d orders", orders.DeletedCount)

	consumption, err := config.ConsumptionCollection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("failed to delete consumption entries: %v", err)
	}
	log.Printf("deleted %d consumption entries", consumption.DeletedCount)

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"currentStock": 0.0,
		"isAvailable":  false,
		"lastUpdated":  now,
		"history": []models.StockHistoryEntry{{
			Type:      models.HistoryInitial,
			Quantity:  0,
			Timestamp: now,
		}},
	}}
	products, err := config.WarehouseCollection.UpdateMany(ctx, bson.M{}, update)
	if err != nil {
		log.Fatalf("failed to zero warehouse products: %v", err)
	}
	log.Printf("zeroed %d warehouse products", products.ModifiedCount)
}
