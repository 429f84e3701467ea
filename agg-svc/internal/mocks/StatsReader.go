package mocks

import (
	context "context"

	domain "gourmet-burgers/agg-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// StatsReader is a mock type for the StatsReader type
type StatsReader struct {
	mock.Mock
}

func (_m *StatsReader) DailyStats(ctx context.Context, day string) (domain.DailyStats, error) {
	ret := _m.Called(ctx, day)
	return ret.Get(0).(domain.DailyStats), ret.Error(1)
}

// NewStatsReader registers a cleanup that asserts the mock's expectations.
func NewStatsReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsReader {
	m := &StatsReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
