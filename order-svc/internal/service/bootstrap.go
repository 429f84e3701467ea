package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gourmet-burgers/config"
	"gourmet-burgers/order-svc/internal/domain"
	"gourmet-burgers/order-svc/internal/storage"

	"github.com/shopspring/decimal"
)

// LoadSystem restores the last saved registry, or builds a fresh one stocked
// from the seed when nothing has been saved yet.
func LoadSystem(ctx context.Context, store SnapshotStore, seed *config.Seed) (*domain.RestaurantSystem, error) {
	if store != nil {
		system, err := store.Load(ctx)
		if err == nil {
			log.Printf("Restored restaurant snapshot, next order id %d", system.NextOrderID())
			return system, nil
		}
		if !errors.Is(err, storage.ErrNoSnapshot) {
			return nil, err
		}
	}

	system := domain.NewRestaurantSystem()
	if seed != nil {
		if err := SeedInventory(system.Inventory(), seed); err != nil {
			return nil, err
		}
	}
	log.Printf("Started fresh restaurant with %d ingredients", len(system.Inventory().Ingredients()))
	return system, nil
}

func SeedInventory(inv *domain.Inventory, seed *config.Seed) error {
	for _, item := range seed.Ingredients {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return fmt.Errorf("seed %s: %w", item.Name, err)
		}
		err = inv.RegisterIngredient(item.Name, price, item.Quantity, domain.IngredientType(item.Type), item.ServingSizes, domain.Unit(item.Unit))
		if err != nil {
			return fmt.Errorf("seed %s: %w", item.Name, err)
		}
	}
	return nil
}
