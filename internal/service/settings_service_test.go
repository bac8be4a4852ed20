package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sportshub/internal/model"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *model.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// Tests run with a nil cache client, which degrades to direct repository
// reads the same way a lost Redis connection does at runtime.
func TestSettingsService_Get(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewSettingsService(repo, nil)

	repo.On("Get", mock.Anything).Return(&model.Settings{
		ID:                  1,
		RegistrationEnabled: true,
	}, nil)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, settings.RegistrationEnabled)
	repo.AssertExpectations(t)
}

func TestSettingsService_Update_PartialFields(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewSettingsService(repo, nil)
	adminID := uuid.New()

	repo.On("Get", mock.Anything).Return(&model.Settings{
		ID:                  1,
		RegistrationEnabled: true,
		GoogleCalendarID:    "calendar@group.calendar.google.com",
	}, nil)

	var saved *model.Settings
	repo.On("Save", mock.Anything, mock.AnythingOfType("*model.Settings")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Settings)
		}).
		Return(nil)

	disabled := false
	settings, err := svc.Update(context.Background(), SettingsUpdate{
		RegistrationEnabled: &disabled,
	}, adminID)
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.False(t, saved.RegistrationEnabled)
	assert.Equal(t, "calendar@group.calendar.google.com", saved.GoogleCalendarID, "omitted field keeps its value")
	assert.Equal(t, adminID, saved.UpdatedBy)
	assert.Equal(t, saved, settings)
}

func TestSettingsService_Update_NoChanges(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := NewSettingsService(repo, nil)

	repo.On("Get", mock.Anything).Return(&model.Settings{ID: 1, RegistrationEnabled: true}, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*model.Settings")).Return(nil)

	settings, err := svc.Update(context.Background(), SettingsUpdate{}, uuid.New())
	require.NoError(t, err)
	assert.True(t, settings.RegistrationEnabled)
}
