package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/stylevault/app/middleware"
	"github.com/shashiranjanraj/stylevault/app/services"
	"github.com/shashiranjanraj/stylevault/pkg/response"
	"github.com/shashiranjanraj/stylevault/pkg/ws"
)

type OrderController struct {
	service *services.CheckoutService
	hub     *ws.Hub
}

func NewOrderController(service *services.CheckoutService, hub *ws.Hub) *OrderController {
	return &OrderController{service: service, hub: hub}
}

// Create checks out the authenticated user's cart. The request carries no
// body: everything the order needs is already in the cart.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	order, err := c.service.Checkout(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	response.Created(w, order)
}

// Stream subscribes the client to the live order feed.
func (c *OrderController) Stream(w http.ResponseWriter, r *http.Request) {
	ws.Upgrade(w, r, c.hub)
}
