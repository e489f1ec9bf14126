package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/shashiranjanraj/stylevault/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository handles the products collection (read-only from the API;
// writes happen through the seeder).
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

func buildQuery(f ProductFilter) bson.M {
	query := bson.M{}

	if f.Search != "" {
		// Case-insensitive substring match over name and description.
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
		}
	}

	if f.Category != "" {
		query["category"] = f.Category
	}

	if f.Size != "" {
		query["sizes"] = bson.M{"$in": bson.A{f.Size}}
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}

	return query
}

// Find returns a page of matching products, newest first.
func (r *ProductRepository) Find(ctx context.Context, f ProductFilter, skip, limit int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, buildQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

// Count returns the total number of products matching the filter.
func (r *ProductRepository) Count(ctx context.Context, f ProductFilter) (int64, error) {
	total, err := r.col.CountDocuments(ctx, buildQuery(f))
	if err != nil {
		return 0, fmt.Errorf("products: count: %w", err)
	}
	return total, nil
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("products: find by id: %w", err)
	}
	return &product, nil
}
