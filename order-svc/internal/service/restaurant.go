package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gourmet-burgers/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownState   = errors.New("unknown order state")
	ErrPaymentGateway = errors.New("payment gateway unavailable")
	ErrInvalidPrice   = errors.New("ingredient price must be a decimal number")
)

// IngredientInput is a catalogue registration request.
type IngredientInput struct {
	Name         string                `json:"name"`
	Price        string                `json:"price"`
	Quantity     int                   `json:"quantity"`
	Type         domain.IngredientType `json:"type"`
	ServingSizes map[string]int        `json:"serving_sizes"`
	Unit         domain.Unit           `json:"unit"`
}

type Options struct {
	Store       SnapshotStore
	Cache       StatusCache
	Publisher   EventPublisher
	Payments    PaymentGateway
	Scheduler   Scheduler
	QR          QRGenerator
	OrderExpiry time.Duration
}

// RestaurantService serialises every access to the order registry and fans
// successful mutations out to the snapshot store, the status cache and the
// event stream.
type RestaurantService struct {
	mu     sync.Mutex
	system *domain.RestaurantSystem

	store       SnapshotStore
	cache       StatusCache
	publisher   EventPublisher
	payments    PaymentGateway
	scheduler   Scheduler
	qr          QRGenerator
	orderExpiry time.Duration
}

func NewRestaurantService(system *domain.RestaurantSystem, opts Options) *RestaurantService {
	if opts.Payments == nil {
		opts.Payments = ApproveAll{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	s := &RestaurantService{
		system:      system,
		store:       opts.Store,
		cache:       opts.Cache,
		publisher:   opts.Publisher,
		payments:    opts.Payments,
		scheduler:   opts.Scheduler,
		qr:          opts.QR,
		orderExpiry: opts.OrderExpiry,
	}
	// Pending orders restored from a snapshot get a fresh payment window.
	for _, order := range system.PendingOrders() {
		s.scheduleExpiry(order.ID())
	}
	return s
}

func (s *RestaurantService) scheduleExpiry(id int) {
	if s.orderExpiry <= 0 {
		return
	}
	s.scheduler.AfterFunc(s.orderExpiry, func() { s.expire(id) })
}

func (s *RestaurantService) Ingredients() []domain.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.system.Inventory().Ingredients()
}

func (s *RestaurantService) Availability() map[domain.IngredientType]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	availability := make(map[domain.IngredientType]bool, len(domain.IngredientTypes))
	for _, typ := range domain.IngredientTypes {
		availability[typ] = s.system.Inventory().HasAvailable(typ)
	}
	return availability
}

func (s *RestaurantService) RegisterIngredient(ctx context.Context, input IngredientInput) error {
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPrice, input.Price)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.system.Inventory().RegisterIngredient(input.Name, price, input.Quantity, input.Type, input.ServingSizes, input.Unit); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// AdjustStock keeps the entries applied before a failing one, so the snapshot
// is saved either way.
func (s *RestaurantService) AdjustStock(ctx context.Context, quantities map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.system.Inventory().ApplyAdjustment(quantities)
	s.persist(ctx)
	return err
}

func (s *RestaurantService) CreateOrder(ctx context.Context) (domain.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.system.CreateOrder()
	s.persist(ctx)
	s.cacheStatus(ctx, order)
	s.publish(ctx, domain.EventOrderCreated, order, "")

	s.scheduleExpiry(order.ID())
	return s.view(order)
}

func (s *RestaurantService) ListOrders(state string) ([]domain.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []*domain.Order
	switch domain.OrderStatus(state) {
	case "":
		orders = append(orders, s.system.PendingOrders()...)
		orders = append(orders, s.system.ActiveOrders()...)
		orders = append(orders, s.system.FinishedOrders()...)
	case domain.StatusPending:
		orders = s.system.PendingOrders()
	case domain.StatusActive:
		orders = s.system.ActiveOrders()
	case domain.StatusFinished:
		orders = s.system.FinishedOrders()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, state)
	}

	views := make([]domain.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := s.view(order)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *RestaurantService) GetOrder(id int) (domain.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, err := s.system.FindOrder(id)
	if err != nil {
		return domain.OrderView{}, err
	}
	return s.view(order)
}

// AddBurger adds the standard burger when ingredients is empty.
func (s *RestaurantService) AddBurger(ctx context.Context, id int, ingredients map[string]int) (domain.OrderView, error) {
	return s.mutateOrder(ctx, id, func(order *domain.Order, inv *domain.Inventory) error {
		if len(ingredients) == 0 {
			return order.AddStandardBurger(inv)
		}
		return order.AddBurger(inv, ingredients)
	})
}

// AddWrap adds the standard wrap when ingredients is empty.
func (s *RestaurantService) AddWrap(ctx context.Context, id int, ingredients map[string]int) (domain.OrderView, error) {
	return s.mutateOrder(ctx, id, func(order *domain.Order, inv *domain.Inventory) error {
		if len(ingredients) == 0 {
			return order.AddStandardWrap(inv)
		}
		return order.AddWrap(inv, ingredients)
	})
}

func (s *RestaurantService) AddSide(ctx context.Context, id int, item domain.SideOrDrink) (domain.OrderView, error) {
	return s.mutateOrder(ctx, id, func(order *domain.Order, inv *domain.Inventory) error {
		return order.AddSide(inv, item.Name, item.Quantity, item.ServingSize)
	})
}

func (s *RestaurantService) AddDrink(ctx context.Context, id int, item domain.SideOrDrink) (domain.OrderView, error) {
	return s.mutateOrder(ctx, id, func(order *domain.Order, inv *domain.Inventory) error {
		return order.AddDrink(inv, item.Name, item.Quantity, item.ServingSize)
	})
}

func (s *RestaurantService) mutateOrder(ctx context.Context, id int, fn func(*domain.Order, *domain.Inventory) error) (domain.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.system.FindOrder(id)
	if err != nil {
		return domain.OrderView{}, err
	}
	if err := fn(order, s.system.Inventory()); err != nil {
		return domain.OrderView{}, err
	}
	s.persist(ctx)
	return s.view(order)
}

// Checkout only consults the payment gateway for a pending order with items;
// every other case is rejected by the registry with its usual error.
func (s *RestaurantService) Checkout(ctx context.Context, id int) (domain.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.system.FindOrder(id)
	if err != nil {
		return domain.OrderView{}, err
	}

	outcome := true
	if order.Status() == domain.StatusPending && !order.Empty() {
		total, err := order.TotalPrice(s.system.Inventory())
		if err != nil {
			return domain.OrderView{}, err
		}
		outcome, err = s.payments.Authorize(ctx, id, total)
		if err != nil {
			return domain.OrderView{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
		}
	}

	if err := s.system.Checkout(id, outcome); err != nil {
		return domain.OrderView{}, err
	}
	log.Printf("Order %d paid", id)
	s.persist(ctx)
	s.cacheStatus(ctx, order)
	s.publish(ctx, domain.EventOrderPaid, order, "")
	return s.view(order)
}

func (s *RestaurantService) CancelOrder(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel(ctx, id, domain.CancelReasonCustomer)
}

func (s *RestaurantService) cancel(ctx context.Context, id int, reason string) error {
	order, err := s.system.FindOrder(id)
	if err != nil {
		return err
	}
	if err := s.system.CancelOrder(id); err != nil {
		return err
	}
	s.persist(ctx)
	s.dropStatus(ctx, id)
	s.publish(ctx, domain.EventOrderCancelled, order, reason)
	return nil
}

// expire cancels an order whose payment window has closed. Orders that were
// paid or cancelled in the meantime are left alone.
func (s *RestaurantService) expire(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cancel(context.Background(), id, domain.CancelReasonExpired); err != nil {
		log.Printf("Order %d expiry skipped: %v", id, err)
		return
	}
	log.Printf("Order %d expired unpaid and was cancelled", id)
}

func (s *RestaurantService) MarkPrepared(ctx context.Context, id int) (domain.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.system.MarkOrderPrepared(id); err != nil {
		return domain.OrderView{}, err
	}
	order, err := s.system.FindOrder(id)
	if err != nil {
		return domain.OrderView{}, err
	}
	s.persist(ctx)
	s.cacheStatus(ctx, order)
	s.publish(ctx, domain.EventOrderPrepared, order, "")
	return s.view(order)
}

// OrderStatus answers from the status cache when it can.
func (s *RestaurantService) OrderStatus(ctx context.Context, id int) (string, error) {
	if s.cache != nil {
		status, ok, err := s.cache.GetStatus(ctx, id)
		if err != nil {
			log.Printf("Failed to read cached status for order %d: %v", id, err)
		} else if ok {
			return domain.StatusMessage(status), nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.system.OrderStatus(id)
}

func (s *RestaurantService) ActiveOrdersReport() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.system.ActiveOrdersReport()
}

// ReceiptQRCode renders a receipt code for a paid order.
func (s *RestaurantService) ReceiptQRCode(id int) ([]byte, error) {
	s.mu.Lock()
	_, err := s.system.FindPaidOrder(id)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if s.qr == nil {
		return nil, errors.New("qr generator not configured")
	}
	return s.qr.Generate(id)
}

func (s *RestaurantService) view(order *domain.Order) (domain.OrderView, error) {
	view, err := domain.NewOrderView(order, s.system.Inventory())
	if err != nil {
		return domain.OrderView{}, err
	}
	if s.qr != nil && order.Paid() {
		view.QRCode = s.qr.Link(order.ID())
	}
	return view, nil
}

func (s *RestaurantService) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.system); err != nil {
		log.Printf("Failed to save restaurant snapshot: %v", err)
	}
}

func (s *RestaurantService) cacheStatus(ctx context.Context, order *domain.Order) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetStatus(ctx, order.ID(), order.Status()); err != nil {
		log.Printf("Failed to cache status for order %d: %v", order.ID(), err)
	}
}

func (s *RestaurantService) dropStatus(ctx context.Context, id int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteStatus(ctx, id); err != nil {
		log.Printf("Failed to drop cached status for order %d: %v", id, err)
	}
}

func (s *RestaurantService) publish(ctx context.Context, eventType string, order *domain.Order, reason string) {
	if s.publisher == nil {
		return
	}
	event, err := domain.NewOrderEvent(eventType, order, s.system.Inventory())
	if err != nil {
		log.Printf("Failed to build %s event for order %d: %v", eventType, order.ID(), err)
		return
	}
	event.Reason = reason
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Failed to publish %s event for order %d: %v", eventType, order.ID(), err)
	}
}
