package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recordingNotifier captures confirmations and optionally fails.
type recordingNotifier struct {
	calls int
	fail  error
}

func (n *recordingNotifier) OrderCreated(_ context.Context, _ *models.Order, _ *models.User) error {
	n.calls++
	return n.fail
}

type checkoutFixture struct {
	svc      *services.CheckoutService
	carts    *repositories.MemoryCartStore
	products *repositories.MemoryProductStore
	orders   *repositories.MemoryOrderStore
	notifier *recordingNotifier
	user     primitive.ObjectID
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		carts:    repositories.NewMemoryCartStore(),
		products: repositories.NewMemoryProductStore(),
		orders:   repositories.NewMemoryOrderStore(),
		notifier: &recordingNotifier{},
	}

	users := repositories.NewMemoryUserStore()
	owner := &models.User{Name: "Priya", Email: "priya@example.com", Role: "user"}
	require.NoError(t, users.Create(context.Background(), owner))
	f.user = owner.ID

	f.svc = services.NewCheckoutService(f.carts, f.products, f.orders, users, f.notifier)
	return f
}

func (f *checkoutFixture) fillCart(t *testing.T, lines ...models.CartItem) {
	t.Helper()
	cart := &models.Cart{User: f.user, Items: lines}
	require.NoError(t, f.carts.Create(context.Background(), cart))
}

func TestCheckoutSnapshotsCartAtCurrentPrices(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	tee := f.products.Add(models.Product{Name: "Classic White T-Shirt", Price: 1999, Sizes: []string{"M"}})
	hoodie := f.products.Add(models.Product{Name: "Cotton Blend Hoodie", Price: 4999, Sizes: []string{"S"}})

	f.fillCart(t,
		models.CartItem{ID: primitive.NewObjectID(), Product: tee.ID, Size: "M", Quantity: 2},
		models.CartItem{ID: primitive.NewObjectID(), Product: hoodie.ID, Size: "S", Quantity: 1},
	)

	order, err := f.svc.Checkout(ctx, f.user)
	require.NoError(t, err)
	require.Len(t, order.Items, 2)

	assert.Equal(t, models.OrderItem{Name: "Classic White T-Shirt", Size: "M", Quantity: 2, Price: 1999}, order.Items[0])
	assert.Equal(t, models.OrderItem{Name: "Cotton Blend Hoodie", Size: "S", Quantity: 1, Price: 4999}, order.Items[1])
	assert.Equal(t, 8997.0, order.TotalPrice)
	assert.Equal(t, f.user, order.User)
	assert.False(t, order.ID.IsZero())

	// The cart is emptied, not deleted.
	cart, err := f.carts.FindByUser(ctx, f.user)
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Empty(t, cart.Items)

	assert.Equal(t, 1, f.notifier.calls)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	t.Run("no cart at all", func(t *testing.T) {
		_, err := f.svc.Checkout(ctx, f.user)
		de := domainErr(t, err)
		assert.Equal(t, 400, de.Status)
		assert.Equal(t, "Cart is empty", de.Message)
	})

	t.Run("cart with no items", func(t *testing.T) {
		f.fillCart(t)
		_, err := f.svc.Checkout(ctx, f.user)
		de := domainErr(t, err)
		assert.Equal(t, "Cart is empty", de.Message)
		assert.Empty(t, f.orders.Orders())
	})
}

func TestCheckoutSurvivesNotificationFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	f.notifier.fail = errors.New("smtp unreachable")
	ctx := context.Background()

	tee := f.products.Add(models.Product{Name: "Classic White T-Shirt", Price: 1999, Sizes: []string{"M"}})
	f.fillCart(t, models.CartItem{ID: primitive.NewObjectID(), Product: tee.ID, Size: "M", Quantity: 1})

	order, err := f.svc.Checkout(ctx, f.user)
	require.NoError(t, err, "a dead mailer must never fail checkout")
	require.NotNil(t, order)
	assert.Equal(t, 1, f.notifier.calls)
	assert.Len(t, f.orders.Orders(), 1)
}

func TestOrderSnapshotIsImmuneToLaterPriceChanges(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	tee := f.products.Add(models.Product{Name: "Classic White T-Shirt", Price: 1999, Sizes: []string{"M"}})
	f.fillCart(t, models.CartItem{ID: primitive.NewObjectID(), Product: tee.ID, Size: "M", Quantity: 1})

	order, err := f.svc.Checkout(ctx, f.user)
	require.NoError(t, err)

	// Reprice the product after checkout; the stored order keeps the old
	// name and price because it holds copies, not references.
	f.products.Add(models.Product{Name: "Classic White T-Shirt v2", Price: 2999, Sizes: []string{"M"}})

	stored := f.orders.Orders()
	require.Len(t, stored, 1)
	assert.Equal(t, order.Items, stored[0].Items)
	assert.Equal(t, 1999.0, stored[0].Items[0].Price)
	assert.Equal(t, 1999.0, stored[0].TotalPrice)
}

func TestCheckoutWithVanishedProduct(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	f.fillCart(t, models.CartItem{
		ID: primitive.NewObjectID(), Product: primitive.NewObjectID(), Size: "M", Quantity: 1,
	})

	_, err := f.svc.Checkout(ctx, f.user)
	de := domainErr(t, err)
	assert.Equal(t, 404, de.Status)
	assert.Equal(t, "Product not found", de.Message)
	assert.Empty(t, f.orders.Orders())
}
