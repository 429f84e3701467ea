package mocks

import (
	context "context"

	domain "gourmet-burgers/order-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// StatusCache is a mock type for the StatusCache type
type StatusCache struct {
	mock.Mock
}

// DeleteStatus provides a mock function with given fields: ctx, orderID
func (_m *StatusCache) DeleteStatus(ctx context.Context, orderID int) error {
	ret := _m.Called(ctx, orderID)
	return ret.Error(0)
}

// GetStatus provides a mock function with given fields: ctx, orderID
func (_m *StatusCache) GetStatus(ctx context.Context, orderID int) (domain.OrderStatus, bool, error) {
	ret := _m.Called(ctx, orderID)
	return ret.Get(0).(domain.OrderStatus), ret.Bool(1), ret.Error(2)
}

// SetStatus provides a mock function with given fields: ctx, orderID, status
func (_m *StatusCache) SetStatus(ctx context.Context, orderID int, status domain.OrderStatus) error {
	ret := _m.Called(ctx, orderID, status)
	return ret.Error(0)
}

// NewStatusCache registers a cleanup that asserts the mock's expectations.
func NewStatusCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatusCache {
	m := &StatusCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
