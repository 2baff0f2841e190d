package repository

import (
	"context"
	"time"

	"studiobooking/internal/domain"

	"gorm.io/gorm"
)

type PaymentIntentRepository struct {
	db *gorm.DB
}

func NewPaymentIntentRepository(db *gorm.DB) *PaymentIntentRepository {
	return &PaymentIntentRepository{db: db}
}

func (r *PaymentIntentRepository) Create(ctx context.Context, p *domain.PaymentIntent) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentIntentRepository) GetByReference(ctx context.Context, reference string) (*domain.PaymentIntent, error) {
	var p domain.PaymentIntent
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkSucceeded settles the intent once; a repeated provider callback is a
// no-op and returns false.
func (r *PaymentIntentRepository) MarkSucceeded(ctx context.Context, reference string, paidAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.PaymentIntent{}).
		Where("reference = ? AND status = ?", reference, domain.PaymentIntentCreated).
		Updates(map[string]any{
			"status":  domain.PaymentIntentSucceeded,
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *PaymentIntentRepository) MarkFailed(ctx context.Context, reference string) error {
	return r.db.WithContext(ctx).
		Model(&domain.PaymentIntent{}).
		Where("reference = ? AND status = ?", reference, domain.PaymentIntentCreated).
		Update("status", domain.PaymentIntentFailed).Error
}
