package mocks

import (
	context "context"

	decimal "github.com/shopspring/decimal"

	mock "github.com/stretchr/testify/mock"
)

// PaymentGateway is a mock type for the PaymentGateway type
type PaymentGateway struct {
	mock.Mock
}

// Authorize provides a mock function with given fields: ctx, orderID, amount
func (_m *PaymentGateway) Authorize(ctx context.Context, orderID int, amount decimal.Decimal) (bool, error) {
	ret := _m.Called(ctx, orderID, amount)
	return ret.Bool(0), ret.Error(1)
}

// NewPaymentGateway registers a cleanup that asserts the mock's expectations.
func NewPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
