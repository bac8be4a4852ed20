package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "sportshub/internal/errors"
	"sportshub/internal/model"
	"sportshub/internal/repository"
)

// ContactService handles contact form messages.
type ContactService interface {
	Create(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) Create(ctx context.Context, contact *model.Contact) error {
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.contactRepo.List(ctx)
}

func (s *contactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	affected, err := s.contactRepo.UpdateStatus(ctx, id, model.ContactRead)
	if err != nil {
		return fmt.Errorf("mark contact read: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
