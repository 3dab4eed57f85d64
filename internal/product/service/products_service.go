package service

import (
	"context"

	"puramente/internal/domain"
	apperrors "puramente/internal/errors"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id uint, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id uint) error
}

type Service struct {
	repo ProductRepository
}

func NewService(repo ProductRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Add(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p.Name == "" {
		return nil, apperrors.NewValidationError("name is required", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}
	return s.repo.Create(ctx, p)
}

// Update requires the product to exist first so callers get a 404 instead
// of a silent no-op update.
func (s *Service) Update(ctx context.Context, id uint, p *domain.Product) (*domain.Product, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
