package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	DaySessionCollection     *mongo.Collection
	SnapshotCollection       *mongo.Collection
	OrderCollection          *mongo.Collection
	WarehouseCollection      *mongo.Collection
	ConsumptionCollection    *mongo.Collection
	LowStockReportCollection *mongo.Collection
	UserCollection           *mongo.Collection
	LoginAuditCollection     *mongo.Collection
)

func ConnectDatabase() {
	client, err := mongo.NewClient(options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	Client = client
	db := client.Database("burgerpos")

	DaySessionCollection = db.Collection("dailySessions")
	SnapshotCollection = db.Collection("dailyWarehouseReports")
	OrderCollection = db.Collection("orders")
	WarehouseCollection = db.Collection("warehouse")
	ConsumptionCollection = db.Collection("employeeConsumption")
	LowStockReportCollection = db.Collection("lowStockReports")
	UserCollection = db.Collection("users")
	LoginAuditCollection = db.Collection("sessions")

	log.Println("Connected to MongoDB")
}
