package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "sportshub/internal/errors"
	"sportshub/internal/model"
)

type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, registration *model.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *MockRegistrationRepository) List(ctx context.Context) ([]model.Registration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func TestRegistrationService_UpdateStatus_Success(t *testing.T) {
	repo := new(MockRegistrationRepository)
	svc := NewRegistrationService(repo)
	id := uuid.New()

	repo.On("UpdateStatus", mock.Anything, id, model.RegistrationApproved).Return(int64(1), nil)
	repo.On("FindByID", mock.Anything, id).Return(&model.Registration{
		ID:     id,
		Status: model.RegistrationApproved,
	}, nil)

	reg, err := svc.UpdateStatus(context.Background(), id, model.RegistrationApproved)
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationApproved, reg.Status)
	repo.AssertExpectations(t)
}

func TestRegistrationService_UpdateStatus_UnknownStatus(t *testing.T) {
	repo := new(MockRegistrationRepository)
	svc := NewRegistrationService(repo)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "archived")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationService_UpdateStatus_NotFound(t *testing.T) {
	repo := new(MockRegistrationRepository)
	svc := NewRegistrationService(repo)
	id := uuid.New()

	repo.On("UpdateStatus", mock.Anything, id, model.RegistrationRejected).Return(int64(0), nil)

	_, err := svc.UpdateStatus(context.Background(), id, model.RegistrationRejected)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
