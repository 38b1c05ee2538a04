package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single line of an order. Name and price are snapshotted
// from the catalog at order-creation time so the order stays a faithful
// receipt even if the product is later repriced or removed.
type OrderItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Name     string             `json:"name" bson:"name"`
	Price    float64            `json:"price" bson:"price"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// Order is the authoritative record of a placed order. It is written exactly
// once; nothing in the API mutates or deletes it afterwards.
type Order struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	User       primitive.ObjectID `json:"user" bson:"user"`
	Items      []OrderItem        `json:"items" bson:"items"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice"`
	IsPaid     bool               `json:"isPaid" bson:"isPaid"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
