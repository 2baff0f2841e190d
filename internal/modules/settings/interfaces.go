package settings

import (
	"context"

	"studiobooking/internal/domain"
)

type Repository interface {
	Get(ctx context.Context) (*domain.StudioSettings, error)
	Update(ctx context.Context, s *domain.StudioSettings) error
}
