package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/app/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncItem is one line of a guest cart held in client storage, pushed to the
// server right after the guest authenticates.
type SyncItem struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// CartService owns all mutations of the per-user cart aggregate. Every
// operation returns the cart with product references resolved, since that is
// what every cart endpoint responds with.
type CartService struct {
	carts    repositories.CartStore
	products repositories.ProductStore
}

func NewCartService(carts repositories.CartStore, products repositories.ProductStore) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(ctx context.Context, user primitive.ObjectID) (*models.PopulatedCart, error) {
	cart, err := s.findOrCreate(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, cart)
}

// Add merges (product, size, quantity) into the cart. An existing line for
// the same product and size has its quantity increased; otherwise a new line
// is appended.
func (s *CartService) Add(ctx context.Context, user primitive.ObjectID, productID, size string, quantity int) (*models.PopulatedCart, error) {
	if quantity < 1 {
		return nil, Validation("Quantity must be at least 1")
	}

	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, NotFound("Product not found")
	}
	product, err := s.products.FindByID(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("cart: add: %w", err)
	}
	if product == nil {
		return nil, NotFound("Product not found")
	}
	if !product.HasSize(size) {
		return nil, Validation("Invalid size for this product")
	}

	cart, err := s.findOrCreate(ctx, user)
	if err != nil {
		return nil, err
	}

	cart.Merge(pid, size, quantity)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("cart: add: %w", err)
	}
	return s.populate(ctx, cart)
}

// UpdateItem replaces the quantity of one existing line.
func (s *CartService) UpdateItem(ctx context.Context, user primitive.ObjectID, itemID string, quantity int) (*models.PopulatedCart, error) {
	if quantity < 1 {
		return nil, Validation("Quantity must be at least 1")
	}

	cart, err := s.carts.FindByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("cart: update: %w", err)
	}
	if cart == nil {
		return nil, NotFound("Cart not found")
	}

	idx, err := s.itemIndex(cart, itemID)
	if err != nil {
		return nil, err
	}
	cart.Items[idx].Quantity = quantity

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("cart: update: %w", err)
	}
	return s.populate(ctx, cart)
}

// RemoveItem deletes one line entirely; there is no partial-quantity removal.
func (s *CartService) RemoveItem(ctx context.Context, user primitive.ObjectID, itemID string) (*models.PopulatedCart, error) {
	cart, err := s.carts.FindByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("cart: remove: %w", err)
	}
	if cart == nil {
		return nil, NotFound("Cart not found")
	}

	idx, err := s.itemIndex(cart, itemID)
	if err != nil {
		return nil, err
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("cart: remove: %w", err)
	}
	return s.populate(ctx, cart)
}

// Sync bulk-merges a guest cart into the server cart with the same
// merge-by-(product, size) rule as Add, applied per item. Replaying the same
// sync doubles quantities; there is no dedup across sync calls.
func (s *CartService) Sync(ctx context.Context, user primitive.ObjectID, items []SyncItem) (*models.PopulatedCart, error) {
	cart, err := s.findOrCreate(ctx, user)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		pid, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, Validation("Invalid productId in items")
		}
		if item.Quantity < 1 {
			return nil, Validation("Quantity must be at least 1")
		}
		cart.Merge(pid, item.Size, item.Quantity)
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("cart: sync: %w", err)
	}
	return s.populate(ctx, cart)
}

func (s *CartService) findOrCreate(ctx context.Context, user primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("cart: load: %w", err)
	}
	if cart != nil {
		return cart, nil
	}

	cart = &models.Cart{User: user, Items: []models.CartItem{}}
	if err := s.carts.Create(ctx, cart); err != nil {
		return nil, fmt.Errorf("cart: create: %w", err)
	}
	return cart, nil
}

func (s *CartService) itemIndex(cart *models.Cart, itemID string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return 0, NotFound("Item not found in cart")
	}
	idx := cart.ItemIndex(oid)
	if idx < 0 {
		return 0, NotFound("Item not found in cart")
	}
	return idx, nil
}

// populate resolves each line's product reference for display. A product
// that has vanished from the catalog renders as an empty product rather
// than failing the whole cart.
func (s *CartService) populate(ctx context.Context, cart *models.Cart) (*models.PopulatedCart, error) {
	populated := &models.PopulatedCart{
		ID:    cart.ID,
		User:  cart.User,
		Items: make([]models.PopulatedCartItem, 0, len(cart.Items)),
	}

	for _, item := range cart.Items {
		line := models.PopulatedCartItem{
			ID:       item.ID,
			Size:     item.Size,
			Quantity: item.Quantity,
		}
		product, err := s.products.FindByID(ctx, item.Product)
		if err != nil {
			return nil, fmt.Errorf("cart: populate: %w", err)
		}
		if product != nil {
			line.Product = *product
		}
		populated.Items = append(populated.Items, line)
	}

	return populated, nil
}
