package mocks

import (
	context "context"

	domain "gourmet-burgers/order-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// SnapshotStore is a mock type for the SnapshotStore type
type SnapshotStore struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx
func (_m *SnapshotStore) Load(ctx context.Context) (*domain.RestaurantSystem, error) {
	ret := _m.Called(ctx)

	var r0 *domain.RestaurantSystem
	if rf, ok := ret.Get(0).(func(context.Context) *domain.RestaurantSystem); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RestaurantSystem)
	}

	return r0, ret.Error(1)
}

// Save provides a mock function with given fields: ctx, system
func (_m *SnapshotStore) Save(ctx context.Context, system *domain.RestaurantSystem) error {
	ret := _m.Called(ctx, system)
	return ret.Error(0)
}

// NewSnapshotStore registers a cleanup that asserts the mock's expectations.
func NewSnapshotStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SnapshotStore {
	m := &SnapshotStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
