package service

import (
	"context"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

type statsService struct {
	users       ports.UserRepository
	friendships ports.FriendshipRepository
}

// NewStatsService returns a StatsService implementation.
func NewStatsService(users ports.UserRepository, friendships ports.FriendshipRepository) ports.StatsService {
	return &statsService{users: users, friendships: friendships}
}

// Snapshot aggregates user and friendship counters. Every status is present
// in the result, zero when no record has it.
func (s *statsService) Snapshot(ctx context.Context) (*ports.Stats, error) {
	us, err := s.users.Stats(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.friendships.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := map[domain.FriendshipStatus]int64{
		domain.StatusPending:  0,
		domain.StatusAccepted: 0,
		domain.StatusDeclined: 0,
		domain.StatusBlocked:  0,
	}
	for st, n := range counts {
		byStatus[st] += n
	}

	return &ports.Stats{
		TotalUsers:          us.Total,
		ActiveUsers:         us.Active,
		UsersWithLocation:   us.WithLocation,
		FriendshipsByStatus: byStatus,
	}, nil
}
