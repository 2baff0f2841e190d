package schedule

import (
	"testing"
	"time"

	"studiobooking/internal/domain"

	"github.com/stretchr/testify/assert"
)

// 2026-12-30 is a Wednesday (open by default), 2027-01-03 a Sunday (closed).
var (
	openDay   = time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC)
	closedDay = time.Date(2027, 1, 3, 0, 0, 0, 0, time.UTC)
)

func at(day time.Time, h, m int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.UTC)
}

func interval(day time.Time, fromH, fromM, toH, toM int) domain.TimeInterval {
	return domain.TimeInterval{Start: at(day, fromH, fromM), End: at(day, toH, toM)}
}

func clockPtr(s string) *string { return &s }

func manualBlock(day time.Time, from, to string) domain.BlockedSlot {
	return domain.BlockedSlot{Date: day, StartTime: clockPtr(from), EndTime: clockPtr(to)}
}

func unblock(day time.Time, from, to string) domain.BlockedSlot {
	return domain.BlockedSlot{Date: day, StartTime: clockPtr(from), EndTime: clockPtr(to), IsUnblock: true}
}

func snapshot(blocks ...domain.BlockedSlot) Snapshot {
	return Snapshot{Settings: *domain.DefaultStudioSettings(), Blocks: blocks}
}

func TestResolve_AllowsOpenDayInsideHours(t *testing.T) {
	v := Resolve(snapshot(), interval(openDay, 10, 0, 12, 0))

	assert.False(t, v.Blocked)
	assert.Empty(t, v.Reason)
}

func TestResolve_DeniesClosedWeekday(t *testing.T) {
	v := Resolve(snapshot(), interval(closedDay, 10, 0, 12, 0))

	assert.True(t, v.Blocked)
	assert.Equal(t, ReasonDayClosed, v.Reason)
}

func TestResolve_UnblockOpensClosedWeekday(t *testing.T) {
	v := Resolve(
		snapshot(unblock(closedDay, "10:00", "14:00")),
		interval(closedDay, 10, 0, 12, 0),
	)

	assert.False(t, v.Blocked)
}

func TestResolve_UnblockRequiresFullCoverage(t *testing.T) {
	snap := snapshot(unblock(openDay, "10:00", "12:00"))

	inside := Resolve(snap, interval(openDay, 10, 30, 11, 30))
	assert.False(t, inside.Blocked)

	// Straddling the window edge on a closed stretch stays denied.
	straddling := Resolve(
		snapshot(unblock(closedDay, "10:00", "12:00")),
		interval(closedDay, 9, 30, 11, 0),
	)
	assert.True(t, straddling.Blocked)
	assert.Equal(t, ReasonDayClosed, straddling.Reason)
}

func TestResolve_DeniesOutsideOpeningHours(t *testing.T) {
	v := Resolve(snapshot(), interval(openDay, 19, 0, 22, 0))

	assert.True(t, v.Blocked)
	assert.Equal(t, ReasonOutsideHours, v.Reason)
}

func TestResolve_UnblockOpensEveningHours(t *testing.T) {
	v := Resolve(
		snapshot(unblock(openDay, "20:00", "23:00")),
		interval(openDay, 20, 0, 22, 0),
	)

	assert.False(t, v.Blocked)
}

func TestResolve_FullDayBlockBeatsUnblock(t *testing.T) {
	v := Resolve(
		snapshot(
			domain.BlockedSlot{Date: openDay, IsFullDay: true, Reason: "maintenance"},
			unblock(openDay, "10:00", "14:00"),
		),
		interval(openDay, 10, 0, 12, 0),
	)

	assert.True(t, v.Blocked)
	assert.Equal(t, ReasonFullDay, v.Reason)
}

func TestResolve_DeniesManualBlockOverlap(t *testing.T) {
	snap := snapshot(manualBlock(openDay, "11:00", "13:00"))

	v := Resolve(snap, interval(openDay, 12, 0, 14, 0))
	assert.True(t, v.Blocked)
	assert.Equal(t, ReasonManualBlock, v.Reason)

	// Touching intervals do not overlap.
	adjacent := Resolve(snap, interval(openDay, 13, 0, 15, 0))
	assert.False(t, adjacent.Blocked)
}

func TestResolve_UnblockNeverLiftsManualBlock(t *testing.T) {
	v := Resolve(
		snapshot(
			manualBlock(openDay, "10:00", "12:00"),
			unblock(openDay, "09:00", "14:00"),
		),
		interval(openDay, 10, 0, 12, 0),
	)

	assert.True(t, v.Blocked)
	assert.Equal(t, ReasonManualBlock, v.Reason)
}

func TestResolve_Idempotent(t *testing.T) {
	snap := snapshot(
		manualBlock(openDay, "11:00", "13:00"),
		unblock(openDay, "20:00", "22:00"),
	)
	in := interval(openDay, 12, 0, 14, 0)

	first := Resolve(snap, in)
	second := Resolve(snap, in)
	assert.Equal(t, first, second)
}
