package mocks

import (
	context "context"

	decimal "github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	ret := _m.Called(ctx, eventID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *StoreInterface) IncrementCounter(ctx context.Context, day string, field string) error {
	ret := _m.Called(ctx, day, field)
	return ret.Error(0)
}

func (_m *StoreInterface) AddRevenue(ctx context.Context, day string, amount decimal.Decimal) error {
	ret := _m.Called(ctx, day, amount)
	return ret.Error(0)
}

func (_m *StoreInterface) AddIngredientUsage(ctx context.Context, day string, usage map[string]int) error {
	ret := _m.Called(ctx, day, usage)
	return ret.Error(0)
}

// NewStoreInterface registers a cleanup that asserts the mock's expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
