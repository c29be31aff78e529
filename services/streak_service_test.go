package services

import (
	"testing"
	"time"

	"github.com/dhall711/health-coach/models"

	"gorm.io/datatypes"
)

func streakOn(current, longest int, last string, freezes int) models.StreakState {
	st := models.StreakState{
		CurrentStreak:    current,
		LongestStreak:    longest,
		FreezesRemaining: freezes,
	}
	if last != "" {
		d, err := time.ParseInLocation("2006-01-02", last, time.Local)
		if err != nil {
			panic(err)
		}
		dd := datatypes.Date(d)
		st.LastCheckInDate = &dd
	}
	return st
}

func localDay(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAdvanceStreakConsecutiveDay(t *testing.T) {
	t.Parallel()
	st := streakOn(3, 5, "2024-01-10", 1)
	next, status := AdvanceStreak(st, localDay("2024-01-11"), true)
	if status != StatusStreakUpdated {
		t.Fatalf("expected streak_updated, got %s", status)
	}
	if next.CurrentStreak != 4 || next.LongestStreak != 5 {
		t.Fatalf("expected 4/5, got %d/%d", next.CurrentStreak, next.LongestStreak)
	}
	if next.FreezesRemaining != 1 {
		t.Fatalf("freeze consumed on a consecutive day")
	}
}

func TestAdvanceStreakFreezeBridgesOneMissedDay(t *testing.T) {
	t.Parallel()
	st := streakOn(3, 5, "2024-01-10", 1)
	next, status := AdvanceStreak(st, localDay("2024-01-13"), true)
	// Missed only the 12th? No: last check-in the 10th, today the 13th
	// means the 11th and 12th were both missed, beyond a freeze.
	if status != StatusStreakReset || next.CurrentStreak != 1 {
		t.Fatalf("expected reset on a two-day gap... got %s %d", status, next.CurrentStreak)
	}

	st = streakOn(3, 5, "2024-01-11", 1)
	next, status = AdvanceStreak(st, localDay("2024-01-13"), true)
	if status != StatusFreezeUsed {
		t.Fatalf("expected freeze_used, got %s", status)
	}
	if next.CurrentStreak != 4 || next.FreezesRemaining != 0 || next.FreezesUsed != 1 {
		t.Fatalf("unexpected state after freeze: %+v", next)
	}
}

func TestAdvanceStreakResetWithoutFreeze(t *testing.T) {
	t.Parallel()
	st := streakOn(3, 5, "2024-01-11", 0)
	next, status := AdvanceStreak(st, localDay("2024-01-13"), true)
	if status != StatusStreakReset || next.CurrentStreak != 1 {
		t.Fatalf("expected reset to 1, got %s %d", status, next.CurrentStreak)
	}
	if next.LongestStreak != 5 {
		t.Fatalf("longest streak must survive a reset, got %d", next.LongestStreak)
	}
}

func TestAdvanceStreakIdempotentPerDay(t *testing.T) {
	t.Parallel()
	st := streakOn(4, 5, "2024-01-11", 1)
	next, status := AdvanceStreak(st, localDay("2024-01-11"), true)
	if status != StatusAlreadyCheckedIn {
		t.Fatalf("expected already_checked_in, got %s", status)
	}
	if next.CurrentStreak != 4 {
		t.Fatalf("state must not change, got %d", next.CurrentStreak)
	}
}

func TestAdvanceStreakNoActivityIsNoOp(t *testing.T) {
	t.Parallel()
	st := streakOn(4, 5, "2024-01-10", 1)
	next, status := AdvanceStreak(st, localDay("2024-01-11"), false)
	if status != StatusNoActivity {
		t.Fatalf("expected no_activity_today, got %s", status)
	}
	if next.CurrentStreak != 4 || next.LastCheckInDate == nil {
		t.Fatalf("state must not change on a no-activity day")
	}
	if !time.Time(*next.LastCheckInDate).Equal(time.Time(*st.LastCheckInDate)) {
		t.Fatalf("last check-in date must not move")
	}
}

func TestAdvanceStreakFreshUserStartsAtOne(t *testing.T) {
	t.Parallel()
	st := models.StreakState{FreezesRemaining: 1}
	next, status := AdvanceStreak(st, localDay("2024-01-11"), true)
	if status != StatusStreakReset {
		t.Fatalf("expected streak_reset for first check-in, got %s", status)
	}
	if next.CurrentStreak != 1 || next.LongestStreak != 1 {
		t.Fatalf("expected 1/1, got %d/%d", next.CurrentStreak, next.LongestStreak)
	}
	if next.FreezesRemaining != 1 {
		t.Fatalf("first check-in must not burn the freeze")
	}
}

func TestAdvanceStreakLongestFollowsCurrent(t *testing.T) {
	t.Parallel()
	st := streakOn(5, 5, "2024-01-10", 1)
	next, _ := AdvanceStreak(st, localDay("2024-01-11"), true)
	if next.LongestStreak != 6 {
		t.Fatalf("expected longest to follow current, got %d", next.LongestStreak)
	}
	if next.LongestStreak < next.CurrentStreak {
		t.Fatalf("invariant violated: longest < current")
	}
}
