package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is an immutable snapshot of one purchased line. Price is the
// unit price at the time of checkout, deliberately decoupled from later
// catalog price changes.
type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Size     string  `bson:"size" json:"size"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
}

// Order is created once from a non-empty cart and never mutated.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	Items      []OrderItem        `bson:"items" json:"items"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
