// cmd/api/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/lib/pq"

	"storeadmin/internal/config"
	"storeadmin/internal/customers"
	"storeadmin/internal/dashboard"
	"storeadmin/internal/orders"
	"storeadmin/internal/products"
	"storeadmin/internal/store"
	"storeadmin/internal/telemetry"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, "storeadmin-api", cfg.OTLPEndpoint)
	if err != nil {
		log.WithError(err).Fatal("initializing tracing")
	}

	st, cleanup, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("initializing collection store")
	}
	defer cleanup()

	if err := seedData(ctx, st, log); err != nil {
		log.WithError(err).Fatal("seeding collections")
	}

	productsHandler := products.NewHandler(products.NewService(st))
	customersHandler := customers.NewHandler(customers.NewService(st))
	ordersHandler := orders.NewHandler(orders.NewService(st))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(st, nil))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(log))
	router.Use(middleware.Recoverer)
	router.Use(rateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	router.Route("/api", func(r chi.Router) {
		r.Mount("/products", productsHandler.Routes())
		r.Mount("/customers", customersHandler.Routes())
		r.Mount("/orders", ordersHandler.Routes())
		r.Mount("/dashboard", dashboardHandler.Routes())
		r.Get("/health", handleHealth)
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("API server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server shutdown")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Warn("tracing shutdown")
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// buildStore selects the collection store backend from configuration. The
// returned cleanup closes any connections the store owns.
func buildStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (store.Store, func(), error) {
	noop := func() {}
	switch cfg.StoreDriver {
	case "file":
		fs, err := store.NewFileStore(cfg.DataDir, log)
		if err != nil {
			return nil, nil, err
		}
		return fs, noop, nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		pg := store.NewPostgres(db, log)
		if err := pg.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return pg, func() { db.Close() }, nil
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, nil, err
		}
		cleanup := func() { client.Disconnect(context.Background()) }
		return store.NewMongo(client, cfg.MongoDatabase, log), cleanup, nil
	case "memory":
		return store.NewMemory(), noop, nil
	}
	return nil, nil, errors.New("unknown store driver: " + cfg.StoreDriver)
}
