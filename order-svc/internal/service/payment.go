package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// ApproveAll is the counter gateway: every payment succeeds.
type ApproveAll struct{}

func (ApproveAll) Authorize(_ context.Context, _ int, _ decimal.Decimal) (bool, error) {
	return true, nil
}
