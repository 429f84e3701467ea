package service

import (
	"context"
	"time"

	"gourmet-burgers/order-svc/internal/domain"
	"gourmet-burgers/order-svc/internal/storage"

	"github.com/shopspring/decimal"
)

type SnapshotStore interface {
	Save(ctx context.Context, system *domain.RestaurantSystem) error
	Load(ctx context.Context) (*domain.RestaurantSystem, error)
}

type StatusCache interface {
	SetStatus(ctx context.Context, orderID int, status domain.OrderStatus) error
	GetStatus(ctx context.Context, orderID int) (domain.OrderStatus, bool, error)
	DeleteStatus(ctx context.Context, orderID int) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type PaymentGateway interface {
	Authorize(ctx context.Context, orderID int, amount decimal.Decimal) (bool, error)
}

type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

type RestaurantServiceInterface interface {
	Ingredients() []domain.Ingredient
	Availability() map[domain.IngredientType]bool
	RegisterIngredient(ctx context.Context, input IngredientInput) error
	AdjustStock(ctx context.Context, quantities map[string]int) error

	CreateOrder(ctx context.Context) (domain.OrderView, error)
	ListOrders(state string) ([]domain.OrderView, error)
	GetOrder(id int) (domain.OrderView, error)
	AddBurger(ctx context.Context, id int, ingredients map[string]int) (domain.OrderView, error)
	AddWrap(ctx context.Context, id int, ingredients map[string]int) (domain.OrderView, error)
	AddSide(ctx context.Context, id int, item domain.SideOrDrink) (domain.OrderView, error)
	AddDrink(ctx context.Context, id int, item domain.SideOrDrink) (domain.OrderView, error)
	Checkout(ctx context.Context, id int) (domain.OrderView, error)
	CancelOrder(ctx context.Context, id int) error
	MarkPrepared(ctx context.Context, id int) (domain.OrderView, error)
	OrderStatus(ctx context.Context, id int) (string, error)
	ActiveOrdersReport() (string, error)
	ReceiptQRCode(id int) ([]byte, error)
}

var (
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ SnapshotStore              = (*storage.PostgresSnapshotStore)(nil)
	_ StatusCache                = (*storage.RedisStatusCache)(nil)
	_ EventPublisher             = (*storage.KafkaPublisher)(nil)
)
