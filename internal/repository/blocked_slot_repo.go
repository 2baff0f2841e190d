package repository

import (
	"context"
	"time"

	"studiobooking/internal/domain"

	"gorm.io/gorm"
)

type BlockedSlotRepository struct {
	db *gorm.DB
}

func NewBlockedSlotRepository(db *gorm.DB) *BlockedSlotRepository {
	return &BlockedSlotRepository{db: db}
}

// Create inserts a block. A full-day block replaces any partial blocks
// already recorded for that date (last writer wins, no merging).
func (r *BlockedSlotRepository) Create(ctx context.Context, b *domain.BlockedSlot) error {
	b.Date = truncateToDay(b.Date)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.IsFullDay {
			if err := tx.
				Where("date = ? AND is_full_day = ? AND is_unblock = ?", b.Date, false, false).
				Delete(&domain.BlockedSlot{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(b).Error
	})
}

func (r *BlockedSlotRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.BlockedSlot{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByDate returns every slot recorded for the calendar date, unblocks
// included.
func (r *BlockedSlotRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.BlockedSlot, error) {
	var out []domain.BlockedSlot
	err := r.db.WithContext(ctx).
		Where("date = ?", truncateToDay(date)).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *BlockedSlotRepository) ListRange(ctx context.Context, from, to time.Time) ([]domain.BlockedSlot, error) {
	var out []domain.BlockedSlot
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", truncateToDay(from), truncateToDay(to)).
		Order("date, id").
		Find(&out).Error
	return out, err
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
