package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Snapshot types.
const (
	SnapshotStart = "start"
	SnapshotEnd   = "end"
)

// Stock history entry types.
const (
	HistoryInitial = "initial"
	HistoryUpdate  = "update"
)

type StockHistoryEntry struct {
	Type      string    `bson:"type" json:"type"`
	Quantity  float64   `bson:"quantity" json:"quantity"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	UpdatedBy string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

type WarehouseProduct struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string              `bson:"name" json:"name"`
	Category     string              `bson:"category" json:"category"`
	CurrentStock float64             `bson:"currentStock" json:"currentStock"`
	MinStock     float64             `bson:"minStock" json:"minStock"`
	Unit         string              `bson:"unit" json:"unit"`
	Price        float64             `bson:"price" json:"price"`
	IsAvailable  bool                `bson:"isAvailable" json:"isAvailable"`
	IsDeleted    bool                `bson:"isDeleted,omitempty" json:"isDeleted,omitempty"`
	PhotoURL     string              `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	History      []StockHistoryEntry `bson:"history" json:"history"`
	CreatedAt    time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	LastUpdated  time.Time           `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
	DeletedAt    time.Time           `bson:"deletedAt,omitempty" json:"-"`
}

// SnapshotEntry is one counted product inside a warehouse snapshot.
type SnapshotEntry struct {
	Name     string  `bson:"name" json:"name"`
	Category string  `bson:"category" json:"category"`
	Quantity float64 `bson:"quantity" json:"quantity"`
	Unit     string  `bson:"unit" json:"unit"`
	MinStock float64 `bson:"minStock,omitempty" json:"minStock,omitempty"`
}

// WarehouseSnapshot records every product's count at a day boundary.
// Snapshots are never mutated after creation.
type WarehouseSnapshot struct {
	ID         primitive.ObjectID       `bson:"_id,omitempty" json:"id,omitempty"`
	SessionDay string                   `bson:"sessionDay" json:"sessionDay"`
	Type       string                   `bson:"type" json:"type"`
	Snapshot   map[string]SnapshotEntry `bson:"snapshot" json:"snapshot"`
	Timestamp  time.Time                `bson:"timestamp" json:"timestamp"`
}

type LowStockReport struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID    string             `bson:"productId" json:"productId"`
	ProductName  string             `bson:"productName" json:"productName"`
	CurrentStock float64            `bson:"currentStock" json:"currentStock"`
	MinStock     float64            `bson:"minStock" json:"minStock"`
	Comment      string             `bson:"comment,omitempty" json:"comment,omitempty"`
	ReportedBy   string             `bson:"reportedBy" json:"reportedBy"`
	Status       string             `bson:"status" json:"status"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}
