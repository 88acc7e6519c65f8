package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"floralblossom/internal/catalog"
	"floralblossom/internal/config"
	"floralblossom/internal/httpserver"
	"floralblossom/internal/migrate"
	"floralblossom/internal/repository/kv"
	cartsvc "floralblossom/internal/service/cart"
	checkoutsvc "floralblossom/internal/service/checkout"
	ordersvc "floralblossom/internal/service/order"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	state, cleanup, err := openState(ctx, cfg)
	if err != nil {
		logger.Fatalf("open state backend %q: %v", cfg.StateBackend, err)
	}
	defer cleanup()

	loader := catalog.NewLoader(cfg.CatalogURL)
	cat := catalog.New(loader)

	cartService := cartsvc.New(ctx, state, logger)
	orderService := ordersvc.New(ctx, state, logger)
	checkoutService := checkoutsvc.New(cartService, orderService)

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:  cat,
		CartSvc:  cartService,
		OrderSvc: orderService,
		Checkout: checkoutService,
		State:    state,
		DataDir:  cfg.DataDir,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// openState builds the persistence adapter named by STATE_BACKEND. The
// returned cleanup closes whatever connection the backend holds.
func openState(ctx context.Context, cfg config.Config) (kv.Store, func(), error) {
	noop := func() {}
	switch cfg.StateBackend {
	case "memory":
		return kv.NewMemory(), noop, nil
	case "postgres":
		pool, err := kv.Dial(ctx, cfg.DBConnString)
		if err != nil {
			return nil, noop, err
		}
		if err := migrate.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return kv.NewPostgres(pool), pool.Close, nil
	case "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, err
		}
		return kv.NewRedis(client), func() { client.Close() }, nil
	default:
		store, err := kv.NewFile(cfg.StateDir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}
}
