package repository

import (
	"context"
	"strings"

	"studiobooking/internal/domain"

	"gorm.io/gorm"
)

type PromoCodeRepository struct {
	db *gorm.DB
}

func NewPromoCodeRepository(db *gorm.DB) *PromoCodeRepository {
	return &PromoCodeRepository{db: db}
}

func (r *PromoCodeRepository) Create(ctx context.Context, p *domain.PromoCode) error {
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PromoCodeRepository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	var p domain.PromoCode
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkUsed flips the code to used only if it is still unused, so two
// concurrent redemptions cannot both succeed. Returns false when the code
// was already burned.
func (r *PromoCodeRepository) MarkUsed(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.PromoCode{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
