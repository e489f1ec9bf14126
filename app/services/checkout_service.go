package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/pkg/logger"
	"github.com/shashiranjanraj/stylevault/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier delivers an order confirmation to the customer. Delivery is
// best-effort: checkout logs and swallows its failures.
type Notifier interface {
	OrderCreated(ctx context.Context, order *models.Order, user *models.User) error
}

// CheckoutService turns a non-empty cart into an immutable order snapshot:
// it resolves the cart lines against the catalog, prices them at their
// current values, persists the order, empties the cart, and fires the
// notification. Order durability is prioritized over notification delivery.
type CheckoutService struct {
	carts    repositories.CartStore
	products repositories.ProductStore
	orders   repositories.OrderStore
	users    repositories.UserStore
	notifier Notifier
}

func NewCheckoutService(
	carts repositories.CartStore,
	products repositories.ProductStore,
	orders repositories.OrderStore,
	users repositories.UserStore,
	notifier Notifier,
) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		products: products,
		orders:   orders,
		users:    users,
		notifier: notifier,
	}
}

// Checkout creates exactly one order from the user's cart and empties the
// cart. The snapshot records name, size, quantity, and unit price at the
// moment of purchase; the total is computed here, never recomputed later.
func (s *CheckoutService) Checkout(ctx context.Context, user primitive.ObjectID) (*models.Order, error) {
	cart, err := s.carts.FindByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, Validation("Cart is empty")
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	var total float64
	for _, line := range cart.Items {
		product, err := s.products.FindByID(ctx, line.Product)
		if err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
		if product == nil {
			return nil, NotFound("Product not found")
		}
		items = append(items, models.OrderItem{
			Name:     product.Name,
			Size:     line.Size,
			Quantity: line.Quantity,
			Price:    product.Price,
		})
		total += product.Price * float64(line.Quantity)
	}

	order := &models.Order{User: user, Items: items, TotalPrice: total}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	cart.Items = []models.CartItem{}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("checkout: empty cart: %w", err)
	}

	metrics.OrdersCreated.Inc()
	s.notify(ctx, order)

	return order, nil
}

// notify fires the confirmation outside the durability boundary of the
// order: any failure is logged and swallowed, never rolling back checkout.
func (s *CheckoutService) notify(ctx context.Context, order *models.Order) {
	if s.notifier == nil {
		return
	}

	log := logger.WithCtx(ctx)

	owner, err := s.users.FindByID(ctx, order.User)
	if err != nil || owner == nil {
		log.Warn("order created but owner lookup failed for notification",
			"order_id", order.ID.Hex(), "error", err)
		return
	}

	if err := s.notifier.OrderCreated(ctx, order, owner); err != nil {
		log.Warn("order created but confirmation was not delivered",
			"order_id", order.ID.Hex(), "error", err)
	}
}
