package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeConsumption records self-consumption outside of paid orders.
// Entries are created and deleted, never updated.
type EmployeeConsumption struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EmployeeName string             `bson:"employeeName" json:"employeeName"`
	ProductName  string             `bson:"productName" json:"productName"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Category     string             `bson:"category" json:"category"`
	SessionDay   string             `bson:"sessionDay" json:"sessionDay"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}
