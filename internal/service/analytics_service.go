package service

import (
	"context"
	"fmt"

	"secure_vault/internal/model"
	"secure_vault/internal/repository"
)

// AnalyticsService provides per-user storage usage overviews
type AnalyticsService interface {
	GetStorageStats(ctx context.Context, userID string) (*model.StorageStats, error)
}

type analyticsService struct {
	repo repository.StatsRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(repo repository.StatsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) GetStorageStats(ctx context.Context, userID string) (*model.StorageStats, error) {
	stats, err := s.repo.GetStorageStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage stats: %w", err)
	}
	return stats, nil
}
