package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sportshub/internal/cache"
	"sportshub/internal/model"
	"sportshub/internal/repository"
)

const (
	settingsCacheKey = "settings"
	settingsCacheTTL = 5 * time.Minute
)

// SettingsUpdate carries the fields an admin may change. Nil means
// "leave unchanged".
type SettingsUpdate struct {
	RegistrationEnabled *bool
	GoogleCalendarID    *string
}

// SettingsService manages the singleton site settings.
type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, update SettingsUpdate, updatedBy uuid.UUID) (*model.Settings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	cache        *cache.Client
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo repository.SettingsRepository, cache *cache.Client) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, cache: cache}
}

// Get returns the settings row, served from cache when possible.
func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	if data, _ := s.cache.Get(ctx, settingsCacheKey); data != nil {
		var settings model.Settings
		if err := json.Unmarshal(data, &settings); err == nil {
			return &settings, nil
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if payload, err := json.Marshal(settings); err == nil {
		_ = s.cache.Set(ctx, settingsCacheKey, payload, settingsCacheTTL)
	}
	return settings, nil
}

// Update applies the changed fields and invalidates the cache.
func (s *settingsService) Update(ctx context.Context, update SettingsUpdate, updatedBy uuid.UUID) (*model.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if update.RegistrationEnabled != nil {
		settings.RegistrationEnabled = *update.RegistrationEnabled
	}
	if update.GoogleCalendarID != nil {
		settings.GoogleCalendarID = *update.GoogleCalendarID
	}
	settings.UpdatedBy = updatedBy

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	_ = s.cache.Delete(ctx, settingsCacheKey)
	return settings, nil
}
