package routes_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/stylevault/app/controllers"
	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/app/routes"
	"github.com/shashiranjanraj/stylevault/app/services"
	"github.com/shashiranjanraj/stylevault/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	handler  http.Handler
	products *repositories.MemoryProductStore
	orders   *repositories.MemoryOrderStore
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	users := repositories.NewMemoryUserStore()
	products := repositories.NewMemoryProductStore()
	carts := repositories.NewMemoryCartStore()
	orders := repositories.NewMemoryOrderStore()

	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{
		Auth:    controllers.NewAuthController(services.NewAuthService(users), false),
		Product: controllers.NewProductController(services.NewCatalogService(products, nil)),
		Cart:    controllers.NewCartController(services.NewCartService(carts, products)),
		Order: controllers.NewOrderController(
			services.NewCheckoutService(carts, products, orders, users, nil), nil),
		Users: users,
	})

	return &apiFixture{handler: r.Handler(), products: products, orders: orders}
}

func (f *apiFixture) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	return body.Message
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func register(t *testing.T, f *apiFixture, email string) *http.Cookie {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/auth/register",
		fmt.Sprintf(`{"name":"Priya","email":%q,"password":"secret123"}`, email))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return sessionCookie(t, rec)
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is running", message(t, rec))
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/auth/register",
		`{"name":"Priya","email":"priya@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var user struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}
	decodeBody(t, rec, &user)
	assert.Equal(t, "Priya", user.Name)
	assert.Equal(t, "user", user.Role)
	assert.Empty(t, user.Password, "password hash must never leave the server")

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)

	t.Run("duplicate email", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/register",
			`{"name":"Other","email":"priya@example.com","password":"secret123"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User already exists with this email", message(t, rec))
	})

	t.Run("short password", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/register",
			`{"name":"A","email":"a@example.com","password":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The password must be at least 6 characters.", message(t, rec))
	})

	t.Run("login", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/login",
			`{"email":"priya@example.com","password":"secret123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		sessionCookie(t, rec)
	})

	t.Run("bad login", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/login",
			`{"email":"priya@example.com","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", message(t, rec))
	})

	t.Run("profile", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/auth/profile", "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/logout", "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Logged out successfully", message(t, rec))
		assert.Negative(t, sessionCookie(t, rec).MaxAge)
	})
}

func TestGatedRoutesRequireSession(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/cart", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized, no token", message(t, rec))

	rec = f.do(t, http.MethodGet, "/api/cart", "",
		&http.Cookie{Name: "token", Value: "forged"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized, token failed", message(t, rec))
}

func TestProductListing(t *testing.T) {
	f := newAPIFixture(t)
	tee := f.products.Add(models.Product{
		Name: "Classic White T-Shirt", Price: 1999, Category: "Men",
		Sizes: []string{"S", "M", "L", "XL"},
	})
	f.products.Add(models.Product{
		Name: "Floral Midi Dress", Price: 7499, Category: "Women",
		Sizes: []string{"S", "M", "L"},
	})

	t.Run("list with filters", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/products?category=Men&page=1&limit=12", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var page struct {
			Products      []models.Product `json:"products"`
			CurrentPage   int              `json:"currentPage"`
			TotalPages    int              `json:"totalPages"`
			TotalProducts int64            `json:"totalProducts"`
			HasMore       bool             `json:"hasMore"`
		}
		decodeBody(t, rec, &page)
		require.Len(t, page.Products, 1)
		assert.Equal(t, "Classic White T-Shirt", page.Products[0].Name)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, int64(1), page.TotalProducts)
		assert.False(t, page.HasMore)
	})

	t.Run("detail", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/products/"+tee.ID.Hex(), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Product
		decodeBody(t, rec, &got)
		assert.Equal(t, tee.ID, got.ID)
	})

	t.Run("missing product", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/products/ffffffffffffffffffffffff", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", message(t, rec))
	})
}

func TestCartAndCheckoutFlow(t *testing.T) {
	f := newAPIFixture(t)
	cookie := register(t, f, "priya@example.com")

	tee := f.products.Add(models.Product{
		Name: "Classic White T-Shirt", Price: 1999, Category: "Men",
		Sizes: []string{"S", "M", "L", "XL"},
	})

	t.Run("checkout with empty cart", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/orders", "", cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Cart is empty", message(t, rec))
	})

	addBody := fmt.Sprintf(`{"productId":%q,"size":"M","quantity":2}`, tee.ID.Hex())
	rec := f.do(t, http.MethodPost, "/api/cart/add", addBody, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cart models.PopulatedCart
	decodeBody(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "Classic White T-Shirt", cart.Items[0].Product.Name)

	t.Run("sync without items field", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/cart/sync", `{}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide items array", message(t, rec))
	})

	t.Run("sync merges guest items", func(t *testing.T) {
		body := fmt.Sprintf(`{"items":[{"productId":%q,"size":"M","quantity":1}]}`, tee.ID.Hex())
		rec := f.do(t, http.MethodPost, "/api/cart/sync", body, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var synced models.PopulatedCart
		decodeBody(t, rec, &synced)
		require.Len(t, synced.Items, 1)
		assert.Equal(t, 3, synced.Items[0].Quantity)
	})

	t.Run("checkout", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/orders", "", cookie)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var order models.Order
		decodeBody(t, rec, &order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Classic White T-Shirt", order.Items[0].Name)
		assert.Equal(t, 3, order.Items[0].Quantity)
		assert.Equal(t, 5997.0, order.TotalPrice)

		// Cart was emptied by checkout.
		rec = f.do(t, http.MethodGet, "/api/cart", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		var emptied models.PopulatedCart
		decodeBody(t, rec, &emptied)
		assert.Empty(t, emptied.Items)
	})
}

func TestCartInputValidation(t *testing.T) {
	f := newAPIFixture(t)
	cookie := register(t, f, "priya@example.com")
	tee := f.products.Add(models.Product{
		Name: "Classic White T-Shirt", Price: 1999, Category: "Men", Sizes: []string{"M"},
	})

	t.Run("add with zero quantity", func(t *testing.T) {
		body := fmt.Sprintf(`{"productId":%q,"size":"M","quantity":0}`, tee.ID.Hex())
		rec := f.do(t, http.MethodPost, "/api/cart/add", body, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide productId, size, and quantity", message(t, rec))
	})

	t.Run("add without productId", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/cart/add", `{"size":"M","quantity":1}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide productId, size, and quantity", message(t, rec))
	})

	t.Run("add without size", func(t *testing.T) {
		body := fmt.Sprintf(`{"productId":%q,"quantity":1}`, tee.ID.Hex())
		rec := f.do(t, http.MethodPost, "/api/cart/add", body, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide productId, size, and quantity", message(t, rec))
	})

	t.Run("add with negative quantity", func(t *testing.T) {
		body := fmt.Sprintf(`{"productId":%q,"size":"M","quantity":-1}`, tee.ID.Hex())
		rec := f.do(t, http.MethodPost, "/api/cart/add", body, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Quantity must be at least 1", message(t, rec))
	})

	t.Run("update without itemId", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/cart/update", `{"quantity":2}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide itemId and quantity", message(t, rec))
	})

	t.Run("update without quantity", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/cart/update",
			`{"itemId":"ffffffffffffffffffffffff"}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide itemId and quantity", message(t, rec))
	})

	t.Run("update with zero quantity", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/cart/update",
			`{"itemId":"ffffffffffffffffffffffff","quantity":0}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Quantity must be at least 1", message(t, rec))
	})

	t.Run("remove without itemId", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, "/api/cart/remove", `{}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide itemId", message(t, rec))
	})
}

func TestCartUpdateAndRemoveOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	cookie := register(t, f, "dev@example.com")
	tee := f.products.Add(models.Product{
		Name: "Classic White T-Shirt", Price: 1999, Category: "Men", Sizes: []string{"M"},
	})

	addBody := fmt.Sprintf(`{"productId":%q,"size":"M","quantity":1}`, tee.ID.Hex())
	rec := f.do(t, http.MethodPost, "/api/cart/add", addBody, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart models.PopulatedCart
	decodeBody(t, rec, &cart)
	itemID := cart.Items[0].ID.Hex()

	rec = f.do(t, http.MethodPut, "/api/cart/update",
		fmt.Sprintf(`{"itemId":%q,"quantity":4}`, itemID), cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &cart)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	rec = f.do(t, http.MethodDelete, "/api/cart/remove",
		fmt.Sprintf(`{"itemId":%q}`, itemID), cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &cart)
	assert.Empty(t, cart.Items)

	rec = f.do(t, http.MethodDelete, "/api/cart/remove",
		fmt.Sprintf(`{"itemId":%q}`, itemID), cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found in cart", message(t, rec))
}
