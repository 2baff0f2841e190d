package repository

import (
	"context"
	"errors"

	"studiobooking/internal/domain"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the singleton settings row, creating it with defaults on
// first read. Later calls are pure reads.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.StudioSettings, error) {
	var s domain.StudioSettings
	err := r.db.WithContext(ctx).Order("id").First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := domain.DefaultStudioSettings()
	if err := r.db.WithContext(ctx).Create(defaults).Error; err != nil {
		// Lost the creation race: another request inserted first.
		var existing domain.StudioSettings
		if err2 := r.db.WithContext(ctx).Order("id").First(&existing).Error; err2 == nil {
			return &existing, nil
		}
		return nil, err
	}
	return defaults, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *domain.StudioSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
