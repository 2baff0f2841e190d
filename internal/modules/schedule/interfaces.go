package schedule

import (
	"context"
	"time"

	"studiobooking/internal/domain"
)

type BlockRepository interface {
	Create(ctx context.Context, b *domain.BlockedSlot) error
	Delete(ctx context.Context, id int64) error
	ListByDate(ctx context.Context, date time.Time) ([]domain.BlockedSlot, error)
	ListRange(ctx context.Context, from, to time.Time) ([]domain.BlockedSlot, error)
}

type SettingsSource interface {
	Get(ctx context.Context) (*domain.StudioSettings, error)
}
