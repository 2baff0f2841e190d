package schedule

import (
	"context"
	"errors"
	"time"

	"studiobooking/internal/domain"
	"studiobooking/internal/modules/settings"

	"gorm.io/gorm"
)

type Service struct {
	blocks   BlockRepository
	settings SettingsSource
}

func NewService(blocks BlockRepository, settingsSource SettingsSource) *Service {
	return &Service{blocks: blocks, settings: settingsSource}
}

// SnapshotFor loads the settings row and the date's blocks in one pass.
func (s *Service) SnapshotFor(ctx context.Context, date time.Time) (Snapshot, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	blocks, err := s.blocks.ListByDate(ctx, date)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Settings: *cfg, Blocks: blocks}, nil
}

// IsBlocked evaluates the interval against a fresh snapshot.
func (s *Service) IsBlocked(ctx context.Context, interval domain.TimeInterval) (Verdict, error) {
	snap, err := s.SnapshotFor(ctx, interval.Start)
	if err != nil {
		return Verdict{}, err
	}
	return Resolve(snap, interval), nil
}

func (s *Service) CreateBlock(ctx context.Context, req CreateBlockRequest) (*domain.BlockedSlot, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	b := &domain.BlockedSlot{
		Date:      date,
		IsFullDay: req.IsFullDay,
		IsUnblock: req.IsUnblock,
		Reason:    req.Reason,
	}

	// A full-day block has no bounds; an exceptional opening must have
	// explicit ones. The two flags are mutually exclusive.
	switch {
	case req.IsFullDay && req.IsUnblock:
		return nil, ErrValidation
	case req.IsFullDay:
		if req.StartTime != "" || req.EndTime != "" {
			return nil, ErrValidation
		}
	default:
		if req.StartTime == "" || req.EndTime == "" {
			return nil, ErrValidation
		}
		if _, err := settings.ParseClock(req.StartTime); err != nil {
			return nil, ErrValidation
		}
		if _, err := settings.ParseClock(req.EndTime); err != nil {
			return nil, ErrValidation
		}
		if settings.ClockMinutes(req.StartTime) >= settings.ClockMinutes(req.EndTime) {
			return nil, ErrValidation
		}
		start, end := req.StartTime, req.EndTime
		b.StartTime = &start
		b.EndTime = &end
	}

	if err := s.blocks.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) DeleteBlock(ctx context.Context, id int64) error {
	if err := s.blocks.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListBlocks(ctx context.Context, from, to time.Time) ([]domain.BlockedSlot, error) {
	return s.blocks.ListRange(ctx, from, to)
}
