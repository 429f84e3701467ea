package mocks

import (
	context "context"

	domain "gourmet-burgers/order-svc/internal/domain"
	service "gourmet-burgers/order-svc/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// RestaurantServiceInterface is a mock type for the RestaurantServiceInterface type
type RestaurantServiceInterface struct {
	mock.Mock
}

func (_m *RestaurantServiceInterface) Ingredients() []domain.Ingredient {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).([]domain.Ingredient)
}

func (_m *RestaurantServiceInterface) Availability() map[domain.IngredientType]bool {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(map[domain.IngredientType]bool)
}

func (_m *RestaurantServiceInterface) RegisterIngredient(ctx context.Context, input service.IngredientInput) error {
	ret := _m.Called(ctx, input)
	return ret.Error(0)
}

func (_m *RestaurantServiceInterface) AdjustStock(ctx context.Context, quantities map[string]int) error {
	ret := _m.Called(ctx, quantities)
	return ret.Error(0)
}

func (_m *RestaurantServiceInterface) CreateOrder(ctx context.Context) (domain.OrderView, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.OrderView), ret.Error(1)
}

func (_m *RestaurantServiceInterface) ListOrders(state string) ([]domain.OrderView, error) {
	ret := _m.Called(state)
	var r0 []domain.OrderView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OrderView)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantServiceInterface) GetOrder(id int) (domain.OrderView, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.OrderView), ret.Error(1)
}

func (_m *RestaurantServiceInterface) AddBurger(ctx context.Context, id int, ingredients map[string]int) (domain.OrderView, error) {
	ret := _m.Called(ctx, id, ingredients)
	return ret.Get(0).(domain.OrderView), ret.Error(1)
}

func (_m *RestaurantServiceInterface) AddWrap(ctx context.Context, id int, ingredients map[string]int) (domain.OrderView, error) {
	ret := _m.Called(ctx, id, ingredients)
	return ret.Get(0).(domain.OrderView), ret.Error(1)
}

func (_m *RestaurantServiceInterface) AddSide(ctx context.Context, id int, item domain.SideOrDrink) (domain.OrderView, error) {
	ret := _m.Called(ctx, id, item)
	return ret.Get(0).(domain.OrderView), ret.Error(1)
}

func (_m *RestaurantServiceInterface) AddDrink(ctx context.Context, id int, item domain.SideOrDrink) (domain.OrderView, error) {
	ret := _m.Called(ctx, id, item)
	return ret.Get(0).(domain.OrderView), ret.Error(1)
}

func (_m *RestaurantServiceInterface) Checkout(ctx context.Context, id int) (domain.OrderView, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.OrderView), ret.Error(1)
}

func (_m *RestaurantServiceInterface) CancelOrder(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *RestaurantServiceInterface) MarkPrepared(ctx context.Context, id int) (domain.OrderView, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.OrderView), ret.Error(1)
}

func (_m *RestaurantServiceInterface) OrderStatus(ctx context.Context, id int) (string, error) {
	ret := _m.Called(ctx, id)
	return ret.String(0), ret.Error(1)
}

func (_m *RestaurantServiceInterface) ActiveOrdersReport() (string, error) {
	ret := _m.Called()
	return ret.String(0), ret.Error(1)
}

func (_m *RestaurantServiceInterface) ReceiptQRCode(id int) ([]byte, error) {
	ret := _m.Called(id)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

// NewRestaurantServiceInterface registers a cleanup that asserts the mock's expectations.
func NewRestaurantServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
