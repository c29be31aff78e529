package services

import (
	"sort"
	"time"
)

// Workday window and slot thresholds; contract values, not config.
const (
	dayWindowStartHour    = 6
	dayWindowEndHour      = 21
	minSlotMinutes        = 30
	suggestionSlotMinutes = 40
	maxSuggestions        = 10
)

// BusyInterval is a calendar event as reported by the provider.
type BusyInterval struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Title  string    `json:"title,omitempty"`
	AllDay bool      `json:"allDay,omitempty"`
}

// FreeSlot is a scored gap inside the day window.
type FreeSlot struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DurationMin int       `json:"durationMin"`
	Score       int       `json:"score"`
}

// FreeSlots computes the gaps of at least 30 minutes between busy
// intervals inside [dayStart, dayEnd). A single cursor sweeps forward
// and only ever advances, so overlapping and nested meetings are
// absorbed without double-counting. The trailing gap up to dayEnd is
// included.
func FreeSlots(busy []BusyInterval, dayStart, dayEnd time.Time) []FreeSlot {
	sorted := make([]BusyInterval, 0, len(busy))
	for _, b := range busy {
		if b.AllDay || !b.End.After(dayStart) || !b.Start.Before(dayEnd) {
			continue // all-day markers and events outside the window don't block
		}
		sorted = append(sorted, b)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var slots []FreeSlot
	cursor := dayStart
	emit := func(from, to time.Time) {
		mins := int(to.Sub(from).Minutes())
		if mins >= minSlotMinutes {
			slots = append(slots, FreeSlot{
				Start:       from,
				End:         to,
				DurationMin: mins,
				Score:       ScoreSlot(from, mins),
			})
		}
	}

	for _, b := range sorted {
		start := b.Start
		if start.Before(dayStart) {
			start = dayStart
		}
		if start.After(cursor) {
			emit(cursor, start)
		}
		end := b.End
		if end.After(dayEnd) {
			end = dayEnd
		}
		if end.After(cursor) {
			cursor = end
		}
	}
	if dayEnd.After(cursor) {
		emit(cursor, dayEnd)
	}
	return slots
}

// ScoreSlot rates a free slot for workout suitability. The time-of-day
// terms are mutually exclusive; the duration bonuses stack (a 60+
// minute slot earns both), and weekends get a flat bump.
func ScoreSlot(start time.Time, durationMin int) int {
	score := 5
	switch h := start.Hour(); {
	case h >= 11 && h < 13:
		score = 30
	case h >= 16 && h < 20:
		score = 20
	case h >= 6 && h < 9:
		score = 10
	}
	if durationMin >= 45 {
		score += 15
	}
	if durationMin >= 60 {
		score += 10
	}
	if wd := start.Weekday(); wd == time.Saturday || wd == time.Sunday {
		score += 5
	}
	return score
}

// RankedSuggestions filters slots to the suggestion-worthy size, sorts
// by score descending (ties keep chronological order) and caps the list
// at ten.
func RankedSuggestions(slots []FreeSlot) []FreeSlot {
	ranked := make([]FreeSlot, 0, len(slots))
	for _, s := range slots {
		if s.DurationMin >= suggestionSlotMinutes {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	return ranked
}

// SimpleBestSlot returns the first slot of at least 45 minutes, falling
// back to the first slot of any size. The single-day sync endpoint uses
// this weaker, non-score-based pick. It is deliberately not unified
// with RankedSuggestions; the two policies serve different call sites.
func SimpleBestSlot(slots []FreeSlot) *FreeSlot {
	for i := range slots {
		if slots[i].DurationMin >= 45 {
			return &slots[i]
		}
	}
	if len(slots) > 0 {
		return &slots[0]
	}
	return nil
}

// dayWindow returns the [06:00, 21:00) bounds of t's local calendar day.
func dayWindow(t time.Time) (time.Time, time.Time) {
	d := dayStartLocal(t)
	return d.Add(dayWindowStartHour * time.Hour), d.Add(dayWindowEndHour * time.Hour)
}
