package repository

import (
	"context"
	"errors"

	"studiobooking/internal/domain"

	"gorm.io/gorm"
)

type HourPackRepository struct {
	db *gorm.DB
}

func NewHourPackRepository(db *gorm.DB) *HourPackRepository {
	return &HourPackRepository{db: db}
}

func (r *HourPackRepository) Create(ctx context.Context, p *domain.HourPack) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetActiveForUser returns the user's usable pack, or nil when they have
// none. Expiry and quota checks stay in the domain type.
func (r *HourPackRepository) GetActiveForUser(ctx context.Context, userID int64) (*domain.HourPack, error) {
	var p domain.HourPack
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AddUsedHours charges consumed hours against the pack quota.
func (r *HourPackRepository) AddUsedHours(ctx context.Context, id int64, hours float64) error {
	return r.db.WithContext(ctx).
		Model(&domain.HourPack{}).
		Where("id = ?", id).
		Update("hours_used", gorm.Expr("hours_used + ?", hours)).Error
}
