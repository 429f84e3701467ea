package domain

import "errors"

// InventoryError reports a stock or catalogue violation.
type InventoryError struct {
	Msg string
}

func (e *InventoryError) Error() string { return e.Msg }

// OrderError reports an invalid composition or a forbidden order mutation.
type OrderError struct {
	Msg string
}

func (e *OrderError) Error() string { return e.Msg }

// SystemError reports an unknown order id or an order in the wrong collection.
type SystemError struct {
	Msg string
}

func (e *SystemError) Error() string { return e.Msg }

const (
	MsgIncorrectOrderID = "Incorrect order ID entered."
	MsgOrderNotPending  = "Order is not pending."
	MsgOrderNotActive   = "Order is not active."
)

func inventoryError(msg string) error { return &InventoryError{Msg: msg} }
func orderError(msg string) error     { return &OrderError{Msg: msg} }
func systemError(msg string) error    { return &SystemError{Msg: msg} }

func IsInventoryError(err error) bool {
	var target *InventoryError
	return errors.As(err, &target)
}

func IsOrderError(err error) bool {
	var target *OrderError
	return errors.As(err, &target)
}

func IsSystemError(err error) bool {
	var target *SystemError
	return errors.As(err, &target)
}

// IsUnknownOrder reports whether err is the registry's unknown id failure.
func IsUnknownOrder(err error) bool {
	var target *SystemError
	return errors.As(err, &target) && target.Msg == MsgIncorrectOrderID
}
