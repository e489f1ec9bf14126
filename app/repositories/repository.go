// Package repositories persists the storefront aggregates. The interfaces
// here are what services depend on; MongoDB implementations back the live
// server and the in-memory implementations back tests.
//
// Lookup methods return (nil, nil) when no document matches: "not found" is
// a domain outcome for this API, not a transport error.
package repositories

import (
	"context"

	"github.com/shashiranjanraj/stylevault/app/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductFilter is the recognized catalog filter configuration. Nil price
// bounds mean unbounded.
type ProductFilter struct {
	Search   string
	Category string
	Size     string
	MinPrice *float64
	MaxPrice *float64
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type ProductStore interface {
	Find(ctx context.Context, filter ProductFilter, skip, limit int64) ([]models.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type CartStore interface {
	FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	// Save persists the full current state of the cart (items replaced
	// wholesale). Carts are read-modify-write documents with no version
	// guard; concurrent writers follow last-write-wins.
	Save(ctx context.Context, cart *models.Cart) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
}
