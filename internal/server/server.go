// Package server boots the storefront: configuration, logging, MongoDB,
// Redis, the mailer, the websocket hub, and the HTTP server with graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/stylevault/app/controllers"
	"github.com/shashiranjanraj/stylevault/app/notifications"
	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/app/routes"
	"github.com/shashiranjanraj/stylevault/app/services"
	"github.com/shashiranjanraj/stylevault/config"
	"github.com/shashiranjanraj/stylevault/database/seeders"
	"github.com/shashiranjanraj/stylevault/pkg/cache"
	"github.com/shashiranjanraj/stylevault/pkg/database"
	"github.com/shashiranjanraj/stylevault/pkg/logger"
	"github.com/shashiranjanraj/stylevault/pkg/mail"
	"github.com/shashiranjanraj/stylevault/pkg/metrics"
	"github.com/shashiranjanraj/stylevault/pkg/middleware"
	"github.com/shashiranjanraj/stylevault/pkg/reqid"
	"github.com/shashiranjanraj/stylevault/pkg/router"
	"github.com/shashiranjanraj/stylevault/pkg/ws"
	"go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := database.Connect(ctx, config.MongoURI(), config.MongoDatabase())
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer client.Disconnect(context.Background())

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	var mongoSink *logger.MongoHandler
	if config.LogToMongo() {
		mongoSink = logger.NewMongoHandler(db.Collection("logs"))
		logger.Attach(mongoSink)
		defer mongoSink.Close()
	}

	// Redis is optional: a nil cache disables catalog caching.
	store, err := cache.Connect(config.RedisAddr(), config.RedisPassword())
	if err != nil {
		logger.Warn("redis unavailable, catalog caching disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	hub := ws.NewHub()
	go hub.Run()

	r := buildRouter(db, store, hub)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildRouter assembles the middleware stack, repositories, services, and
// controllers around the given backends.
func buildRouter(db *mongo.Database, store *cache.Cache, hub *ws.Hub) *router.Router {
	users := repositories.NewUserRepository(db)
	products := repositories.NewProductRepository(db)
	carts := repositories.NewCartRepository(db)
	orders := repositories.NewOrderRepository(db)

	mailer := mail.New(mail.SMTP{
		Host:     config.MailHost(),
		Port:     config.MailPort(),
		Username: config.MailUsername(),
		Password: config.MailPassword(),
		From:     config.MailFrom(),
		FromName: config.MailFromName(),
	})
	notifier := notifications.NewOrderNotifier(mailer, hub)

	authService := services.NewAuthService(users)
	catalogService := services.NewCatalogService(products, store)
	cartService := services.NewCartService(carts, products)
	checkoutService := services.NewCheckoutService(carts, products, orders, users, notifier)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(config.FrontendURL())),
		middleware.RateLimit(config.RateLimit(), time.Minute),
	)

	routes.RegisterAPI(r, routes.Controllers{
		Auth:    controllers.NewAuthController(authService, config.SecureCookies()),
		Product: controllers.NewProductController(catalogService),
		Cart:    controllers.NewCartController(cartService),
		Order:   controllers.NewOrderController(checkoutService, hub),
		Users:   users,
	})

	return r
}

// Routes returns the registered route table without touching any backend;
// used by `stylevault route:list`.
func Routes() []router.Route {
	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{
		Auth:    controllers.NewAuthController(nil, false),
		Product: controllers.NewProductController(nil),
		Cart:    controllers.NewCartController(nil),
		Order:   controllers.NewOrderController(nil, nil),
	})
	return r.Routes()
}

// Seed connects to MongoDB and runs all registered seeders.
func Seed() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, db, err := database.Connect(ctx, config.MongoURI(), config.MongoDatabase())
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer client.Disconnect(context.Background())

	return seeders.RunAll(ctx, db)
}
