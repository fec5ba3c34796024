package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SlotsBot_Go/internal/domain"
)

type MockSlotsService struct {
	mock.Mock
}

func (m *MockSlotsService) Spin(ctx context.Context, userID int64, displayName string, bet int64) (*domain.SpinOutcome, error) {
	args := m.Called(ctx, userID, displayName, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinOutcome), args.Error(1)
}

func (m *MockSlotsService) Balance(ctx context.Context, userID int64) domain.BalanceSummary {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.BalanceSummary)
}

func (m *MockSlotsService) JackpotPool() int64 {
	return int64(m.Called().Int(0))
}

func (m *MockSlotsService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) ClaimDailyBonus(ctx context.Context, userID int64) (domain.BonusResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.BonusResult), args.Error(1)
}

func (m *MockEconomyService) AdminAdjustBalance(ctx context.Context, userID, amount int64) (domain.AdjustResult, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(domain.AdjustResult), args.Error(1)
}

func (m *MockEconomyService) SetDefaultBet(ctx context.Context, userID, bet int64) error {
	return m.Called(ctx, userID, bet).Error(0)
}

func (m *MockEconomyService) DefaultBet(ctx context.Context, userID int64) int64 {
	return m.Called(ctx, userID).Get(0).(int64)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Leaderboard(ctx context.Context, limit int) []domain.LeaderboardEntry {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.LeaderboardEntry)
}

func (m *MockStatsService) UserList(ctx context.Context) domain.UserList {
	return m.Called(ctx).Get(0).(domain.UserList)
}

func (m *MockStatsService) SystemStats(ctx context.Context) domain.SystemStats {
	return m.Called(ctx).Get(0).(domain.SystemStats)
}

type MockFlusher struct {
	mock.Mock
}

func (m *MockFlusher) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
