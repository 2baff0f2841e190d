package pricing

import (
	"context"

	"studiobooking/internal/domain"
)

type FormulaSource interface {
	GetByID(ctx context.Context, id int64) (*domain.Formula, error)
}

type PackSource interface {
	GetActiveForUser(ctx context.Context, userID int64) (*domain.HourPack, error)
}

type PromoSource interface {
	Create(ctx context.Context, p *domain.PromoCode) error
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	MarkUsed(ctx context.Context, id int64) (bool, error)
}

type SettingsSource interface {
	Get(ctx context.Context) (*domain.StudioSettings, error)
}
