package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order types.
const (
	OrderTypeOnSite   = "onsite"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
)

// Payment methods.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentBlik     = "blik_numer"
	PaymentSplitKey = "split"
)

// TakeawayPackageFee is charged per takeaway package.
const TakeawayPackageFee = 1.00

type OrderItem struct {
	Name  string  `bson:"name" json:"name"`
	Meat  string  `bson:"meat,omitempty" json:"meat,omitempty"`
	Size  string  `bson:"size,omitempty" json:"size,omitempty"`
	Qty   int     `bson:"qty" json:"qty"`
	Price float64 `bson:"price" json:"price"` // unit price captured at order creation
}

type PaymentPart struct {
	Method string  `bson:"method" json:"method"`
	Amount float64 `bson:"amount" json:"amount"`
}

type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderNumber       int                `bson:"orderNumber" json:"orderNumber"`
	SessionDay        string             `bson:"sessionDay,omitempty" json:"sessionDay,omitempty"`
	Items             []OrderItem        `bson:"items" json:"items"`
	PaymentMethod     string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	SplitPayment      []PaymentPart      `bson:"splitPayment,omitempty" json:"splitPayment,omitempty"`
	OrderType         string             `bson:"orderType" json:"orderType"`
	Discount          float64            `bson:"discount" json:"discount"`
	TakeawayPackages  int                `bson:"takeawayPackages" json:"takeawayPackages"`
	DeliveryFee       float64            `bson:"deliveryFee" json:"deliveryFee"`
	Status            string             `bson:"status" json:"status"`
	IsArchived        bool               `bson:"isArchived" json:"isArchived"`
	CustomerName      string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	Timestamp         time.Time          `bson:"timestamp" json:"timestamp"`
	PaidTimestamp     time.Time          `bson:"paidTimestamp,omitempty" json:"paidTimestamp,omitempty"`
	DeletionTimestamp time.Time          `bson:"deletionTimestamp,omitempty" json:"deletionTimestamp,omitempty"`
}

// OrderInput is the submit payload. Items carry no price: unit prices are
// resolved against the catalog server-side.
type OrderInput struct {
	Items []struct {
		Name string `json:"name" binding:"required"`
		Meat string `json:"meat"`
		Size string `json:"size"`
		Qty  int    `json:"qty"`
	} `json:"items"`
	PaymentMethod    string        `json:"paymentMethod"`
	SplitPayment     []PaymentPart `json:"splitPayment"`
	OrderType        string        `json:"orderType"`
	Discount         float64       `json:"discount"`
	TakeawayPackages int           `json:"takeawayPackages"`
	DeliveryFee      float64       `json:"deliveryFee"`
	CustomerName     string        `json:"customerName"`
	SessionDay       string        `json:"sessionDay"`
}

// OrderPatch overwrites the editable fields wholesale.
type OrderPatch struct {
	CustomerName     string      `json:"customerName"`
	OrderType        string      `json:"orderType"`
	PaymentMethod    string      `json:"paymentMethod"`
	Discount         float64     `json:"discount"`
	TakeawayPackages int         `json:"takeawayPackages"`
	Items            []OrderItem `json:"items"`
}
