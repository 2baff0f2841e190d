package repository

import (
	"context"
	"time"

	"studiobooking/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// Overlapping returns active reservations whose interval overlaps the given
// one (half-open semantics, touching endpoints don't collide). Pending rows
// created before pendingDeadline are treated as reclaimed inventory and
// excluded, so an expired hold frees its slot before the sweeper lands.
// excludeID > 0 leaves out that reservation, for reschedule self-exclusion.
func (r *ReservationRepository) Overlapping(ctx context.Context, interval domain.TimeInterval, excludeID int64, pendingDeadline time.Time) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).
		Where("start_time < ? AND end_time > ?", interval.End, interval.Start).
		Where("(status = ? OR (status = ? AND created_at >= ?))",
			domain.ReservationConfirmed, domain.ReservationPending, pendingDeadline)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var out []domain.Reservation
	err := q.Order("start_time").Find(&out).Error
	return out, err
}

// UpdateStatus is a compare-and-set: the row is written only if it still
// holds the expected status, so a concurrent cancel cannot be overwritten.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReservationRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              domain.ReservationCancelled,
			"cancellation_reason": reason,
			"cancelled_at":        now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReservationRepository) UpdateInterval(ctx context.Context, id int64, interval domain.TimeInterval) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"start_time": interval.Start,
			"end_time":   interval.End,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReservationRepository) SetPaymentReference(ctx context.Context, id int64, reference string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Update("payment_reference", reference).Error
}

// ExpirePending cancels every pending reservation created before deadline
// and returns how many rows were reclaimed.
func (r *ReservationRepository) ExpirePending(ctx context.Context, deadline time.Time) (int64, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("status = ? AND created_at < ?", domain.ReservationPending, deadline).
		Updates(map[string]any{
			"status":              domain.ReservationCancelled,
			"cancellation_reason": "payment not completed in time",
			"cancelled_at":        now,
		})
	return res.RowsAffected, res.Error
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}
