package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/stylevault/app/middleware"
	"github.com/shashiranjanraj/stylevault/app/services"
	"github.com/shashiranjanraj/stylevault/pkg/bind"
	"github.com/shashiranjanraj/stylevault/pkg/response"
)

// CartController serves the gated cart routes. Every handler resolves the
// acting user from the request context set by the session gate.
type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	cart, err := c.service.Get(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	response.OK(w, cart)
}

type addToCartInput struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var input addToCartInput
	if _, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	// Zero quantity counts as absent; negative quantities fall through to
	// the service's range check.
	if input.ProductID == "" || input.Size == "" || input.Quantity == 0 {
		response.Error(w, http.StatusBadRequest, "Please provide productId, size, and quantity")
		return
	}

	cart, err := c.service.Add(r.Context(), user.ID, input.ProductID, input.Size, input.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	response.OK(w, cart)
}

type updateCartInput struct {
	ItemID string `json:"itemId"`
	// Pointer so an explicit zero (rejected with a range error) is
	// distinguishable from an absent field (rejected as missing).
	Quantity *int `json:"quantity"`
}

func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var input updateCartInput
	if _, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.ItemID == "" || input.Quantity == nil {
		response.Error(w, http.StatusBadRequest, "Please provide itemId and quantity")
		return
	}

	cart, err := c.service.UpdateItem(r.Context(), user.ID, input.ItemID, *input.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	response.OK(w, cart)
}

type removeFromCartInput struct {
	ItemID string `json:"itemId"`
}

func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var input removeFromCartInput
	if _, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.ItemID == "" {
		response.Error(w, http.StatusBadRequest, "Please provide itemId")
		return
	}

	cart, err := c.service.RemoveItem(r.Context(), user.ID, input.ItemID)
	if err != nil {
		respondError(w, err)
		return
	}
	response.OK(w, cart)
}

type syncCartInput struct {
	Items []services.SyncItem `json:"items"`
}

// Sync merges a guest cart pushed by the client after login. A missing
// items field is rejected; an empty array is a valid no-op.
func (c *CartController) Sync(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var input syncCartInput
	if _, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Items == nil {
		response.Error(w, http.StatusBadRequest, "Please provide items array")
		return
	}

	cart, err := c.service.Sync(r.Context(), user.ID, input.Items)
	if err != nil {
		respondError(w, err)
		return
	}
	response.OK(w, cart)
}
