package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/stylevault/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository handles the carts collection: one document per user.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection("carts")}
}

// FindByUser returns the user's cart, or nil when none exists yet.
func (r *CartRepository) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.col.FindOne(ctx, bson.M{"user": user}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("carts: find by user: %w", err)
	}
	return &cart, nil
}

// Create persists a new cart and assigns its id.
func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) error {
	now := time.Now().UTC()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	res, err := r.col.InsertOne(ctx, cart)
	if err != nil {
		return fmt.Errorf("carts: insert: %w", err)
	}
	cart.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Save replaces the cart's items wholesale. Last write wins when two
// requests race on the same cart.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": cart.ID},
		bson.M{"$set": bson.M{"items": cart.Items, "updatedAt": cart.UpdatedAt}},
	)
	if err != nil {
		return fmt.Errorf("carts: save: %w", err)
	}
	return nil
}
