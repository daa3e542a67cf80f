package services

import (
	"context"
	"fmt"

	"nordlys_studio/internal/cache"
	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/repository"
)

type StatsService struct {
	repo  repository.StatsRepository
	cache *cache.Cache
}

func NewStatsService(repo repository.StatsRepository, c *cache.Cache) *StatsService {
	return &StatsService{repo: repo, cache: c}
}

// Dashboard returns the admin counters, cached until the next relevant
// mutation drops the key.
func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	const op = "stats_service.Dashboard"

	if cached, ok := s.cache.Get(cache.KeyDashboardStats); ok {
		return cached.(*models.DashboardStats), nil
	}

	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Set(cache.KeyDashboardStats, stats)
	return stats, nil
}
