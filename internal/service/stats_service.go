package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sportshub/internal/cache"
	"sportshub/internal/model"
	"sportshub/internal/repository"
)

const (
	statsCacheKey = "admin_stats"
	statsCacheTTL = time.Minute
	statsListCap  = 5
)

// DashboardStats is the aggregate shown on the admin dashboard.
type DashboardStats struct {
	TotalEvents         int64                    `json:"total_events"`
	UpcomingEvents      int64                    `json:"upcoming_events"`
	TotalAchievements   int64                    `json:"total_achievements"`
	TotalGalleryImages  int64                    `json:"total_gallery_images"`
	AchievementsByLevel []repository.GroupCount  `json:"achievements_by_level"`
	AchievementsBySport []repository.GroupCount  `json:"achievements_by_sport"`
	RecentAchievements  []model.Achievement      `json:"recent_achievements"`
	NextEvents          []model.Event            `json:"next_events"`
}

// StatsService computes dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	eventRepo       repository.EventRepository
	achievementRepo repository.AchievementRepository
	galleryRepo     repository.GalleryRepository
	cache           *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(
	eventRepo repository.EventRepository,
	achievementRepo repository.AchievementRepository,
	galleryRepo repository.GalleryRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{
		eventRepo:       eventRepo,
		achievementRepo: achievementRepo,
		galleryRepo:     galleryRepo,
		cache:           cache,
	}
}

// Dashboard aggregates counts and short lists, cached for a minute since the
// dashboard is polled far more often than the underlying data changes.
func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var stats DashboardStats
		if err := json.Unmarshal(data, &stats); err == nil {
			return &stats, nil
		}
	}

	now := time.Now()
	stats := &DashboardStats{}
	var err error

	if stats.TotalEvents, err = s.eventRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	if stats.UpcomingEvents, err = s.eventRepo.CountUpcoming(ctx, now); err != nil {
		return nil, fmt.Errorf("count upcoming events: %w", err)
	}
	if stats.TotalAchievements, err = s.achievementRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count achievements: %w", err)
	}
	if stats.TotalGalleryImages, err = s.galleryRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count gallery images: %w", err)
	}
	if stats.AchievementsByLevel, err = s.achievementRepo.CountByLevel(ctx); err != nil {
		return nil, fmt.Errorf("group achievements by level: %w", err)
	}
	if stats.AchievementsBySport, err = s.achievementRepo.CountBySport(ctx); err != nil {
		return nil, fmt.Errorf("group achievements by sport: %w", err)
	}
	if stats.RecentAchievements, err = s.achievementRepo.ListRecent(ctx, statsListCap); err != nil {
		return nil, fmt.Errorf("list recent achievements: %w", err)
	}
	if stats.NextEvents, err = s.eventRepo.ListUpcoming(ctx, now, statsListCap); err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}
	return stats, nil
}
