package booking

import (
	"context"
	"log"
	"time"
)

// Reclaimer sweeps pending reservations whose payment never arrived back
// into available inventory. The ledger already ignores them lazily; the
// sweep settles their status for history and reporting.
type Reclaimer struct {
	reservations ReservationRepository
	retention    time.Duration
	interval     time.Duration
}

func NewReclaimer(reservations ReservationRepository, retention, interval time.Duration) *Reclaimer {
	return &Reclaimer{
		reservations: reservations,
		retention:    retention,
		interval:     interval,
	}
}

// ReclaimExpired cancels every pending reservation past the retention
// window and returns how many were reclaimed.
func (r *Reclaimer) ReclaimExpired(ctx context.Context) (int64, error) {
	startTime := time.Now()
	deadline := startTime.Add(-r.retention)

	reclaimed, err := r.reservations.ExpirePending(ctx, deadline)
	if err != nil {
		log.Printf("reclaimer: sweep failed: %v", err)
		return 0, err
	}
	if reclaimed > 0 {
		log.Printf("reclaimer: released %d expired pending reservations in %v", reclaimed, time.Since(startTime))
	}
	return reclaimed, nil
}

// Run sweeps on a ticker until ctx is done. Single-flight: the next tick
// waits for the previous sweep to finish.
func (r *Reclaimer) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = r.ReclaimExpired(ctx)
		}
	}
}
