package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories and sizes are fixed enumerations; products are seeded
// out-of-band and read-only from the API.
var (
	Categories = []string{"Men", "Women", "Kids"}
	Sizes      = []string{"S", "M", "L", "XL"}
)

// Product is one catalog entry.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Category    string             `bson:"category" json:"category"`
	Sizes       []string           `bson:"sizes" json:"sizes"`
	Stock       int                `bson:"stock" json:"stock"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasSize reports whether the product is offered in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
