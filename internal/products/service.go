package products

import (
	"context"
	"fmt"

	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
)

// Service exposes catalog reads to the HTTP layer.
type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database connection error")
	}
	return FromModels(rows), nil
}
