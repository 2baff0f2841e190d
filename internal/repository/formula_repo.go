package repository

import (
	"context"

	"studiobooking/internal/domain"

	"gorm.io/gorm"
)

type FormulaRepository struct {
	db *gorm.DB
}

func NewFormulaRepository(db *gorm.DB) *FormulaRepository {
	return &FormulaRepository{db: db}
}

func (r *FormulaRepository) GetByID(ctx context.Context, id int64) (*domain.Formula, error) {
	var f domain.Formula
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FormulaRepository) ListActive(ctx context.Context) ([]domain.Formula, error) {
	var out []domain.Formula
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&out).Error
	return out, err
}

// SeedDefaults inserts the standard offers when the table is empty.
func (r *FormulaRepository) SeedDefaults(ctx context.Context) error {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&domain.Formula{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	defaults := []domain.Formula{
		{Name: "Session", Kind: domain.FormulaHourly, PriceHour: 50, IsActive: true},
		{Name: "Session + montage", Kind: domain.FormulaHourly, PriceHour: 80, IsActive: true},
		{Name: "Pack lancement", Kind: domain.FormulaPackage, PriceFlat: 350, IsActive: true},
	}
	return r.db.WithContext(ctx).Create(&defaults).Error
}
