package notifications

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/pkg/mail"
	"github.com/shashiranjanraj/stylevault/pkg/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		0:      "₹0",
		999:    "₹999",
		1999:   "₹1,999",
		19999:  "₹19,999",
		199999: "₹199,999",
	}

	for amount, want := range cases {
		assert.Equal(t, want, formatPrice(amount), "amount %v", amount)
	}
	assert.Equal(t, "-₹1,500", formatPrice(-1500))
}

func sampleOrder() (*models.Order, *models.User) {
	order := &models.Order{
		ID:   primitive.NewObjectID(),
		User: primitive.NewObjectID(),
		Items: []models.OrderItem{
			{Name: "Classic White T-Shirt", Size: "M", Quantity: 2, Price: 1999},
			{Name: "Cotton Blend Hoodie", Size: "S", Quantity: 1, Price: 4999},
		},
		TotalPrice: 8997,
		CreatedAt:  time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC),
	}
	user := &models.User{Name: "Priya", Email: "priya@example.com"}
	return order, user
}

func TestRenderConfirmation(t *testing.T) {
	n := NewOrderNotifier(mail.New(mail.SMTP{}), nil)
	order, user := sampleOrder()

	html, err := n.render(order, user)
	require.NoError(t, err)

	assert.Contains(t, html, "Dear Priya,")
	assert.Contains(t, html, order.ID.Hex())
	assert.Contains(t, html, "3/5/2026")
	assert.Contains(t, html, "Classic White T-Shirt")
	assert.Contains(t, html, "₹1,999")
	assert.Contains(t, html, "₹3,998", "line total is price times quantity")
	assert.Contains(t, html, "₹8,997")
}

func TestOrderCreatedWithoutMailCredentials(t *testing.T) {
	hub := ws.NewHub()
	n := NewOrderNotifier(mail.New(mail.SMTP{}), hub)
	order, user := sampleOrder()

	err := n.OrderCreated(context.Background(), order, user)
	require.NoError(t, err, "missing credentials skip the email, not fail it")

	// The order still reached the websocket feed.
	select {
	case payload := <-hub.Broadcast:
		assert.True(t, strings.Contains(string(payload), order.ID.Hex()))
	default:
		t.Fatal("expected a broadcast payload")
	}
}
