package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one mutable line in a cart: a product reference plus the
// chosen size and quantity. No two items in a cart share the same
// (product, size) pair; adds merge by summing quantities.
type CartItem struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Size     string             `bson:"size" json:"size"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Cart is the per-user aggregate of in-progress line items. Created lazily
// on first access, emptied at checkout, never deleted.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Merge folds (product, size, quantity) into the cart: an existing line for
// the same product and size has its quantity increased, otherwise a new line
// is appended.
func (c *Cart) Merge(product primitive.ObjectID, size string, quantity int) {
	for i := range c.Items {
		if c.Items[i].Product == product && c.Items[i].Size == size {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ID:       primitive.NewObjectID(),
		Product:  product,
		Size:     size,
		Quantity: quantity,
	})
}

// ItemIndex returns the position of the line with the given id, or -1.
func (c *Cart) ItemIndex(itemID primitive.ObjectID) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// PopulatedCartItem is a cart line with the product reference resolved to
// the full product document, for display.
type PopulatedCartItem struct {
	ID       primitive.ObjectID `json:"_id"`
	Product  Product            `json:"product"`
	Size     string             `json:"size"`
	Quantity int                `json:"quantity"`
}

// PopulatedCart is the response shape of every cart endpoint.
type PopulatedCart struct {
	ID    primitive.ObjectID  `json:"_id"`
	User  primitive.ObjectID  `json:"user"`
	Items []PopulatedCartItem `json:"items"`
}
