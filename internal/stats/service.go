package stats

import (
	"context"
	"sort"

	"github.com/osse101/SlotsBot_Go/internal/domain"
)

// AccountSource lists every account in the ledger
type AccountSource interface {
	Accounts() []domain.Account
}

// JackpotSource reports the current progressive jackpot
type JackpotSource interface {
	Value() int64
}

// Service defines the interface for read-only aggregate views
type Service interface {
	Leaderboard(ctx context.Context, limit int) []domain.LeaderboardEntry
	UserList(ctx context.Context) domain.UserList
	SystemStats(ctx context.Context) domain.SystemStats
}

type service struct {
	accounts AccountSource
	jackpot  JackpotSource
}

// NewService creates a new stats service
func NewService(accounts AccountSource, jackpot JackpotSource) Service {
	return &service{accounts: accounts, jackpot: jackpot}
}

// ClampLimit normalizes a requested leaderboard size
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		return MaxLeaderboardLimit
	default:
		return limit
	}
}

// Leaderboard returns the richest users, ties broken by user id
func (s *service) Leaderboard(_ context.Context, limit int) []domain.LeaderboardEntry {
	return topByBalance(s.accounts.Accounts(), ClampLimit(limit))
}

func topByBalance(accounts []domain.Account, limit int) []domain.LeaderboardEntry {
	sort.SliceStable(accounts, func(i, j int) bool {
		if accounts[i].Balance != accounts[j].Balance {
			return accounts[i].Balance > accounts[j].Balance
		}
		return accounts[i].UserID < accounts[j].UserID
	})
	if len(accounts) > limit {
		accounts = accounts[:limit]
	}

	entries := make([]domain.LeaderboardEntry, len(accounts))
	for i, acc := range accounts {
		entries[i] = domain.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      acc.UserID,
			DisplayName: acc.DisplayName,
			Balance:     acc.Balance,
		}
	}
	return entries
}

// UserList returns the most active accounts by spin count
func (s *service) UserList(_ context.Context) domain.UserList {
	accounts := s.accounts.Accounts()

	list := domain.UserList{TotalUsers: len(accounts)}
	for _, acc := range accounts {
		list.TotalSpins += acc.Stats.Spins
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		if accounts[i].Stats.Spins != accounts[j].Stats.Spins {
			return accounts[i].Stats.Spins > accounts[j].Stats.Spins
		}
		return accounts[i].UserID < accounts[j].UserID
	})
	if len(accounts) > AdminUserListLimit {
		accounts = accounts[:AdminUserListLimit]
	}

	list.Users = make([]domain.UserSummary, len(accounts))
	for i, acc := range accounts {
		list.Users[i] = domain.UserSummary{
			UserID:      acc.UserID,
			DisplayName: acc.DisplayName,
			Balance:     acc.Balance,
			Spins:       acc.Stats.Spins,
			TotalBet:    acc.Stats.TotalBet,
			TotalWin:    acc.Stats.TotalWin,
		}
	}
	return list
}

// SystemStats aggregates totals over every account
func (s *service) SystemStats(_ context.Context) domain.SystemStats {
	accounts := s.accounts.Accounts()

	st := domain.SystemStats{
		TotalUsers:  len(accounts),
		JackpotPool: s.jackpot.Value(),
	}
	for _, acc := range accounts {
		if acc.Stats.Spins > 0 {
			st.ActiveUsers++
		}
		st.TotalBalance += acc.Balance
		st.TotalSpins += acc.Stats.Spins
		st.TotalWagered += acc.Stats.TotalBet
		st.TotalWon += acc.Stats.TotalWin
	}
	st.HouseProfit = st.TotalWagered - st.TotalWon
	st.TopBalances = topByBalance(accounts, SystemStatsTopBalances)
	return st
}
