package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "sportshub/internal/errors"
	"sportshub/internal/model"
	"sportshub/internal/repository"
)

// GalleryService handles gallery image records. File storage itself is the
// handler's concern; the service only tracks metadata.
type GalleryService interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	// Delete removes the record and returns it so the caller can remove the
	// underlying file.
	Delete(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error)
	List(ctx context.Context) ([]model.GalleryImage, error)
}

type galleryService struct {
	galleryRepo repository.GalleryRepository
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(galleryRepo repository.GalleryRepository) GalleryService {
	return &galleryService{galleryRepo: galleryRepo}
}

func (s *galleryService) Create(ctx context.Context, image *model.GalleryImage) error {
	if err := s.galleryRepo.Create(ctx, image); err != nil {
		return fmt.Errorf("create gallery image: %w", err)
	}
	return nil
}

func (s *galleryService) Delete(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	image, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find gallery image: %w", err)
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete gallery image: %w", err)
	}
	return image, nil
}

func (s *galleryService) List(ctx context.Context) ([]model.GalleryImage, error) {
	return s.galleryRepo.List(ctx)
}
