package services

import (
	"testing"
	"time"
)

func scheduleDay() (time.Time, time.Time) {
	// Monday 2024-05-13, window 06:00-21:00 local.
	d := time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local)
	return d.Add(6 * time.Hour), d.Add(21 * time.Hour)
}

func busyAt(dayStart time.Time, fromHour, toHour float64) BusyInterval {
	return BusyInterval{
		Start: dayStart.Add(time.Duration(fromHour * float64(time.Hour))),
		End:   dayStart.Add(time.Duration(toHour * float64(time.Hour))),
	}
}

func TestFreeSlotsEmptyCalendarIsOneBigSlot(t *testing.T) {
	t.Parallel()
	dayStart, dayEnd := scheduleDay()
	slots := FreeSlots(nil, dayStart, dayEnd)
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(dayStart) || !slots[0].End.Equal(dayEnd) {
		t.Fatalf("expected slot spanning the window, got %+v", slots[0])
	}
	if slots[0].DurationMin != 15*60 {
		t.Fatalf("expected 900 minutes, got %d", slots[0].DurationMin)
	}
}

func TestFreeSlotsTileTheWindow(t *testing.T) {
	t.Parallel()
	dayStart, dayEnd := scheduleDay()
	busy := []BusyInterval{
		busyAt(dayStart, 3, 4.5),  // 09:00-10:30
		busyAt(dayStart, 6, 7),    // 12:00-13:00
		busyAt(dayStart, 6.5, 8),  // 12:30-14:00 overlaps previous
		busyAt(dayStart, 12, 12.5), // 18:00-18:30
	}
	slots := FreeSlots(busy, dayStart, dayEnd)

	for i := 1; i < len(slots); i++ {
		if slots[i].Start.Before(slots[i-1].End) {
			t.Fatalf("slots overlap: %+v then %+v", slots[i-1], slots[i])
		}
	}
	for _, s := range slots {
		if s.DurationMin < 30 {
			t.Fatalf("slot shorter than 30 minutes: %+v", s)
		}
	}
	// Expected gaps: 06:00-09:00, 10:30-12:00, 14:00-18:00, 18:30-21:00.
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d: %+v", len(slots), slots)
	}
	if slots[2].DurationMin != 4*60 {
		t.Fatalf("overlapping meetings double-counted: %+v", slots[2])
	}
}

func TestFreeSlotsDropsShortGaps(t *testing.T) {
	t.Parallel()
	dayStart, dayEnd := scheduleDay()
	busy := []BusyInterval{
		busyAt(dayStart, 0, 5),    // 06:00-11:00
		busyAt(dayStart, 5.25, 15), // 11:15-21:00; 15-minute gap must vanish
	}
	slots := FreeSlots(busy, dayStart, dayEnd)
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %+v", slots)
	}
}

func TestFreeSlotsIgnoresAllDayMarkers(t *testing.T) {
	t.Parallel()
	dayStart, dayEnd := scheduleDay()
	busy := []BusyInterval{
		{Start: dayStart.Add(-6 * time.Hour), End: dayStart.Add(18 * time.Hour), AllDay: true},
	}
	slots := FreeSlots(busy, dayStart, dayEnd)
	if len(slots) != 1 {
		t.Fatalf("expected all-day marker not to block, got %+v", slots)
	}
}

func TestScoreSlotIsPureAndStacksDurationBonuses(t *testing.T) {
	t.Parallel()
	noon := time.Date(2024, 5, 13, 11, 30, 0, 0, time.Local) // Monday lunch band
	if a, b := ScoreSlot(noon, 50), ScoreSlot(noon, 50); a != b {
		t.Fatalf("score not deterministic: %d vs %d", a, b)
	}
	if got := ScoreSlot(noon, 30); got != 30 {
		t.Fatalf("lunch band 30min: expected 30, got %d", got)
	}
	if got := ScoreSlot(noon, 45); got != 45 {
		t.Fatalf("lunch band 45min: expected 45, got %d", got)
	}
	if got := ScoreSlot(noon, 60); got != 55 {
		t.Fatalf("lunch band 60min: expected both bonuses (55), got %d", got)
	}
}

func TestScoreSlotTimeBandsAreMutuallyExclusive(t *testing.T) {
	t.Parallel()
	day := time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local) // Monday
	cases := []struct {
		hour int
		want int
	}{
		{7, 10},  // early band
		{10, 5},  // baseline
		{12, 30}, // lunch band
		{14, 5},  // baseline
		{17, 20}, // evening band
		{20, 5},  // baseline (20:00 is outside 16-20)
	}
	for _, tc := range cases {
		got := ScoreSlot(day.Add(time.Duration(tc.hour)*time.Hour), 30)
		if got != tc.want {
			t.Fatalf("hour %d: expected %d, got %d", tc.hour, tc.want, got)
		}
	}
}

func TestScoreSlotWeekendBump(t *testing.T) {
	t.Parallel()
	sat := time.Date(2024, 5, 11, 12, 0, 0, 0, time.Local)
	mon := time.Date(2024, 5, 13, 12, 0, 0, 0, time.Local)
	if ScoreSlot(sat, 30)-ScoreSlot(mon, 30) != 5 {
		t.Fatalf("expected +5 weekend bump")
	}
}

func TestRankedSuggestionsFilterSortCap(t *testing.T) {
	t.Parallel()
	day := time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local)
	var slots []FreeSlot
	for i := 0; i < 15; i++ {
		start := day.Add(time.Duration(6+i) * time.Hour)
		dur := 40 + i
		slots = append(slots, FreeSlot{Start: start, DurationMin: dur, Score: ScoreSlot(start, dur)})
	}
	slots = append(slots, FreeSlot{Start: day.Add(9 * time.Hour), DurationMin: 35, Score: 5})

	ranked := RankedSuggestions(slots)
	if len(ranked) != 10 {
		t.Fatalf("expected cap at 10, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("not sorted by score desc at %d", i)
		}
	}
	for _, s := range ranked {
		if s.DurationMin < suggestionSlotMinutes {
			t.Fatalf("short slot leaked into suggestions: %+v", s)
		}
	}
}

func TestSimpleBestSlotPrefersFirstFortyFive(t *testing.T) {
	t.Parallel()
	day := time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local)
	slots := []FreeSlot{
		{Start: day.Add(7 * time.Hour), DurationMin: 30},
		{Start: day.Add(10 * time.Hour), DurationMin: 50},
		{Start: day.Add(12 * time.Hour), DurationMin: 120}, // higher score, still not picked
	}
	best := SimpleBestSlot(slots)
	if best == nil || !best.Start.Equal(day.Add(10*time.Hour)) {
		t.Fatalf("expected first >=45min slot, got %+v", best)
	}
}

func TestSimpleBestSlotFallsBackToFirst(t *testing.T) {
	t.Parallel()
	day := time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local)
	slots := []FreeSlot{
		{Start: day.Add(7 * time.Hour), DurationMin: 30},
		{Start: day.Add(9 * time.Hour), DurationMin: 40},
	}
	best := SimpleBestSlot(slots)
	if best == nil || !best.Start.Equal(day.Add(7*time.Hour)) {
		t.Fatalf("expected fallback to first slot, got %+v", best)
	}
	if SimpleBestSlot(nil) != nil {
		t.Fatalf("expected nil for no slots")
	}
}
