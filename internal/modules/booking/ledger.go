package booking

import (
	"context"
	"errors"
	"time"

	"studiobooking/internal/domain"
	"studiobooking/internal/pkg/lock"

	"github.com/jackc/pgx/v5/pgconn"
)

// timelineKey is the lock key for the studio's single timeline. One studio,
// one resource, one critical section.
const timelineKey = "studio-timeline"

const noOverlapConstraint = domain.ReservationNoOverlapConstraint

// Ledger is the authoritative set of non-cancelled reservations. TryReserve
// runs the whole check-overlap-then-insert sequence under the locker so no
// concurrent caller can observe a gap and slip a conflicting row in between.
type Ledger struct {
	reservations     ReservationRepository
	locker           lock.Locker
	pendingRetention time.Duration
	lockTTL          time.Duration
}

func NewLedger(reservations ReservationRepository, locker lock.Locker, pendingRetention, lockTTL time.Duration) *Ledger {
	return &Ledger{
		reservations:     reservations,
		locker:           locker,
		pendingRetention: pendingRetention,
		lockTTL:          lockTTL,
	}
}

// Overlaps returns the active reservations colliding with the interval.
// Pending rows past the retention window don't count: their inventory is
// already reclaimable even before the sweeper cancels them.
func (l *Ledger) Overlaps(ctx context.Context, interval domain.TimeInterval, excludeID int64) ([]domain.Reservation, error) {
	deadline := time.Now().Add(-l.pendingRetention)
	return l.reservations.Overlapping(ctx, interval, excludeID, deadline)
}

// TryReserve atomically inserts the pending reservation if its interval is
// free. Exactly one of several concurrent callers for the same interval
// wins; the rest get ErrConflict. Once the critical section is entered the
// sequence completes to a row or nothing, never a partial state.
func (l *Ledger) TryReserve(ctx context.Context, res *domain.Reservation) error {
	ok, err := l.locker.Lock(ctx, timelineKey, l.lockTTL)
	if err != nil {
		return err
	}
	if !ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		return ErrLockUnavailable
	}
	defer func() {
		// Release with a fresh context so a cancelled request can't leak
		// the lock.
		_ = l.locker.Unlock(context.Background(), timelineKey)
	}()

	overlaps, err := l.Overlaps(ctx, res.Interval(), 0)
	if err != nil {
		return err
	}
	if len(overlaps) > 0 {
		return ErrConflict
	}

	err = l.reservations.Create(ctx, res)
	if isTransientSerializationFailure(err) {
		// One bounded retry: the store aborted the commit without a real
		// overlap behind it.
		err = l.reservations.Create(ctx, res)
	}
	if isOverlapViolation(err) {
		return ErrConflict
	}
	return err
}

// Reschedule moves an existing reservation under the same critical section,
// excluding its own row from the overlap check so it cannot conflict with
// itself.
func (l *Ledger) Reschedule(ctx context.Context, id int64, newInterval domain.TimeInterval) error {
	ok, err := l.locker.Lock(ctx, timelineKey, l.lockTTL)
	if err != nil {
		return err
	}
	if !ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		return ErrLockUnavailable
	}
	defer func() {
		_ = l.locker.Unlock(context.Background(), timelineKey)
	}()

	overlaps, err := l.Overlaps(ctx, newInterval, id)
	if err != nil {
		return err
	}
	if len(overlaps) > 0 {
		return ErrConflict
	}

	err = l.reservations.UpdateInterval(ctx, id, newInterval)
	if isOverlapViolation(err) {
		return ErrConflict
	}
	return err
}

// isOverlapViolation recognizes the store's no-overlap exclusion constraint,
// the second line of defense when another writer bypasses the locker.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return (pgErr.Code == "23505" || pgErr.Code == "23P01") && pgErr.ConstraintName == noOverlapConstraint
	}
	return false
}

func isTransientSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}
