// Package routes declares the HTTP surface. Route registration is kept in
// one place so `stylevault route:list` reflects the whole API.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/stylevault/app/controllers"
	"github.com/shashiranjanraj/stylevault/app/middleware"
	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/pkg/metrics"
	"github.com/shashiranjanraj/stylevault/pkg/response"
	"github.com/shashiranjanraj/stylevault/pkg/router"
)

// Controllers bundles everything RegisterAPI mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Users   repositories.UserStore
}

// RegisterAPI mounts all routes. Cart and order routes sit behind the
// session gate; catalog and auth routes are public.
func RegisterAPI(r *router.Router, c Controllers) {
	gate := router.Middleware(middleware.Authenticate(c.Users))

	api := r.Group("/api")

	api.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Message(w, "Server is running")
	})

	auth := api.Group("/auth")
	auth.Post("/register", "auth.register", c.Auth.Register)
	auth.Post("/login", "auth.login", c.Auth.Login)
	auth.Post("/logout", "auth.logout", c.Auth.Logout)
	auth.Get("/profile", "auth.profile", c.Auth.Profile, gate)

	api.Get("/products", "products.list", c.Product.List)
	api.Get("/products/{id}", "products.get", c.Product.Get)

	cart := api.Group("/cart", gate)
	cart.Get("/", "cart.get", c.Cart.Get)
	cart.Post("/add", "cart.add", c.Cart.Add)
	cart.Put("/update", "cart.update", c.Cart.Update)
	cart.Delete("/remove", "cart.remove", c.Cart.Remove)
	cart.Post("/sync", "cart.sync", c.Cart.Sync)

	api.Post("/orders", "orders.create", c.Order.Create, gate)
	api.Get("/orders/stream", "orders.stream", c.Order.Stream, gate)

	r.Handle(http.MethodGet, "/metrics", "metrics", metrics.Handler())
}
