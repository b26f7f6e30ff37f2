package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryType string

const (
	DeliveryStandard DeliveryType = "standard"
	DeliveryExpress  DeliveryType = "express"

	// Order statuses. Creation leaves the status empty; "Pending" is the
	// implied initial state until reconciliation or an admin override.
	OrderStatusPaid      = "Paid"
	OrderStatusPending   = "Pending"
	OrderStatusCancelled = "Cancelled"
)

// OrderUser is the denormalized user snapshot embedded at creation time.
// Later profile edits do not propagate into existing orders.
type OrderUser struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

// OrderProduct is a line item: a product reference plus the requested
// quantity. The unit price is not snapshotted; TotalPrice on the order is
// the only priced record of the sale.
type OrderProduct struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Transaction is the embedded gateway sub-record, populated with a pending
// stamp at creation and overwritten on reconciliation.
type Transaction struct {
	ID                string `bson:"id,omitempty" json:"id,omitempty"`
	TransactionStatus string `bson:"transactionStatus,omitempty" json:"transactionStatus,omitempty"`
	BankStatus        string `bson:"bank_status,omitempty" json:"bank_status,omitempty"`
	SPCode            string `bson:"sp_code,omitempty" json:"sp_code,omitempty"`
	SPMessage         string `bson:"sp_message,omitempty" json:"sp_message,omitempty"`
	Method            string `bson:"method,omitempty" json:"method,omitempty"`
	DateTime          string `bson:"date_time,omitempty" json:"date_time,omitempty"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User         OrderUser          `bson:"user" json:"user"`
	Products     []OrderProduct     `bson:"products" json:"products"`
	TotalPrice   float64            `bson:"totalPrice" json:"totalPrice"`
	DeliveryType DeliveryType       `bson:"deliveryType" json:"deliveryType"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
	Transaction  Transaction        `bson:"transaction,omitempty" json:"transaction,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
