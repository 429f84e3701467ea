package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gourmet-burgers/config"
	httpapi "gourmet-burgers/order-svc/internal/api/http"
	"gourmet-burgers/order-svc/internal/service"
	"gourmet-burgers/order-svc/internal/storage"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()

	store := storage.NewPostgresSnapshotStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg.Kafka)
	defer writer.Close()

	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		log.Fatal("Failed to load seed inventory:", err)
	}

	system, err := service.LoadSystem(ctx, store, seed)
	if err != nil {
		log.Fatal("Failed to load restaurant:", err)
	}

	restaurant := service.NewRestaurantService(system, service.Options{
		Store:       store,
		Cache:       storage.NewRedisStatusCache(rdb, cfg.StatusTTL),
		Publisher:   storage.NewKafkaPublisher(writer),
		QR:          service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
		OrderExpiry: cfg.OrderExpiry,
	})

	server := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(httpapi.NewHandler(restaurant)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Order Service starting on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down Order Service...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Order Service stopped:", err)
	}
}
