package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/stylevault/app/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository handles the orders collection. Orders are write-once.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection("orders")}
}

// Create persists a new order snapshot and assigns its id.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	order.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("orders: insert: %w", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
