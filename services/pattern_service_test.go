package services

import (
	"testing"
	"time"

	"github.com/dhall711/health-coach/models"
)

// patternWindow returns an asOf anchored so the 14-day window is easy
// to reason about: a Wednesday evening.
func patternWindow() time.Time {
	return time.Date(2024, 5, 15, 20, 0, 0, 0, time.Local) // Wednesday
}

func foodOn(day time.Time, mealType string, calories, protein float64) models.FoodLog {
	return models.FoodLog{AteAt: day.Add(12 * time.Hour), MealType: mealType, TotalCalories: calories, ProteinG: protein}
}

func TestDetectPatternsEmptyWindow(t *testing.T) {
	t.Parallel()
	out := detectPatternsAt(nil, nil, 1800, 14, patternWindow())
	if len(out) != 0 {
		t.Fatalf("expected no insights on empty data, got %d", len(out))
	}
}

func TestDetectPatternsFridayOvereating(t *testing.T) {
	t.Parallel()
	asOf := patternWindow()
	day := dayStartLocal(asOf)

	var logs []models.FoodLog
	for i := 0; i < 14; i++ {
		d := day.AddDate(0, 0, -i)
		cals := 1700.0
		if d.Weekday() == time.Friday {
			cals = 2200 // >15% over an 1800 target
		}
		logs = append(logs, foodOn(d, "dinner", cals, 100))
	}

	out := detectPatternsAt(logs, nil, 1800, 14, asOf)

	var overeating []Insight
	for _, in := range out {
		if in.Type == InsightOvereating {
			overeating = append(overeating, in)
		}
	}
	if len(overeating) != 1 {
		t.Fatalf("expected exactly one overeating insight, got %d: %+v", len(overeating), overeating)
	}
	if overeating[0].ID != "overeating-friday" {
		t.Fatalf("expected overeating-friday, got %s", overeating[0].ID)
	}
}

func TestDetectPatternsRestDayCorrelation(t *testing.T) {
	t.Parallel()
	asOf := patternWindow()
	day := dayStartLocal(asOf)

	var logs []models.FoodLog
	var workouts []models.WorkoutLog
	for i := 0; i < 10; i++ {
		d := day.AddDate(0, 0, -i)
		if i%2 == 0 {
			workouts = append(workouts, models.WorkoutLog{StartedAt: d.Add(18 * time.Hour), Type: "run", DurationMin: 30})
			logs = append(logs, foodOn(d, "dinner", 1700, 90))
		} else {
			logs = append(logs, foodOn(d, "dinner", 2100, 90))
		}
	}

	out := detectPatternsAt(logs, workouts, 1800, 14, asOf)
	found := false
	for _, in := range out {
		if in.ID == "rest-day-calories" && in.Type == InsightCorrelation {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected rest-day correlation insight, got %+v", out)
	}
}

func TestDetectPatternsLunchSkipping(t *testing.T) {
	t.Parallel()
	asOf := patternWindow()
	day := dayStartLocal(asOf)

	var logs []models.FoodLog
	weekdaysSeen := 0
	for i := 0; i < 14 && weekdaysSeen < 5; i++ {
		d := day.AddDate(0, 0, -i)
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		weekdaysSeen++
		logs = append(logs, foodOn(d, "breakfast", 500, 30))
		if weekdaysSeen > 2 {
			logs = append(logs, foodOn(d, "lunch", 700, 40))
		}
	}

	out := detectPatternsAt(logs, nil, 1800, 14, asOf)
	found := false
	for _, in := range out {
		if in.ID == "lunch-skipping" && in.Type == InsightSkipping {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lunch-skipping insight, got %+v", out)
	}
}

func TestDetectPatternsLowProteinAndPositiveCoexist(t *testing.T) {
	t.Parallel()
	asOf := patternWindow()
	day := dayStartLocal(asOf)

	var logs []models.FoodLog
	for i := 0; i < 6; i++ {
		logs = append(logs, foodOn(day.AddDate(0, 0, -i), "dinner", 1750, 60)) // adherent, low protein
	}

	out := detectPatternsAt(logs, nil, 1800, 14, asOf)
	var gotLowProtein, gotPositive bool
	for _, in := range out {
		switch in.ID {
		case "low-protein":
			gotLowProtein = true
		case "on-track":
			gotPositive = true
		}
	}
	if !gotLowProtein || !gotPositive {
		t.Fatalf("expected low-protein and on-track to coexist, got %+v", out)
	}
}

func TestDetectPatternsRuleOrderIsStable(t *testing.T) {
	t.Parallel()
	asOf := patternWindow()
	day := dayStartLocal(asOf)

	var logs []models.FoodLog
	for i := 0; i < 6; i++ {
		l := foodOn(day.AddDate(0, 0, -i), "lunch", 1750, 60)
		l.LapseContext = "stressed"
		logs = append(logs, l)
	}

	out := detectPatternsAt(logs, nil, 1800, 14, asOf)
	var ids []string
	for _, in := range out {
		ids = append(ids, in.ID)
	}
	// low-protein (rule 4) before on-track (rule 5) before lapse (rule 6).
	want := []string{"low-protein", "on-track", "lapse-stressed"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestDetectPatternsLapseContextLabel(t *testing.T) {
	t.Parallel()
	asOf := patternWindow()
	day := dayStartLocal(asOf)

	var logs []models.FoodLog
	for i := 0; i < 3; i++ {
		l := foodOn(day.AddDate(0, 0, -i), "snack", 400, 5)
		l.LapseContext = "deadline-crunch" // unmapped tag shown verbatim
		logs = append(logs, l)
	}

	out := detectPatternsAt(logs, nil, 1800, 14, asOf)
	found := false
	for _, in := range out {
		if in.ID == "lapse-deadline-crunch" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lapse insight for unmapped tag, got %+v", out)
	}
}
