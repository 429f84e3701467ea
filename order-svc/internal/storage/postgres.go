package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"gourmet-burgers/order-svc/internal/domain"
)

var ErrNoSnapshot = errors.New("no restaurant snapshot saved")

// snapshotID is the single row the whole registry lives in.
const snapshotID = 1

type PostgresSnapshotStore struct {
	DB *sql.DB
}

func NewPostgresSnapshotStore(db *sql.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{DB: db}
}

func (s *PostgresSnapshotStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurant_snapshots (
			id INT PRIMARY KEY,
			payload JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresSnapshotStore) Save(ctx context.Context, system *domain.RestaurantSystem) error {
	payload, err := json.Marshal(system)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO restaurant_snapshots (id, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`, snapshotID, payload)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *PostgresSnapshotStore) Load(ctx context.Context) (*domain.RestaurantSystem, error) {
	var payload []byte
	err := s.DB.QueryRowContext(ctx, "SELECT payload FROM restaurant_snapshots WHERE id = $1", snapshotID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	system := domain.NewRestaurantSystem()
	if err := json.Unmarshal(payload, system); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return system, nil
}
