package services

import (
	"testing"
	"time"

	"github.com/dhall711/health-coach/models"
)

func TestWeeklyCalorieAdherenceEmitsExactlyRequestedDays(t *testing.T) {
	t.Parallel()
	asOf := time.Date(2024, 5, 10, 14, 0, 0, 0, time.Local)
	logs := []models.FoodLog{
		{AteAt: asOf.Add(-2 * time.Hour), TotalCalories: 600},
		{AteAt: asOf.AddDate(0, 0, -1), TotalCalories: 1700},
	}
	rows := weeklyCalorieAdherenceAt(logs, 1800, 7, asOf)
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if rows[6].Date != "2024-05-10" {
		t.Fatalf("expected most recent row last, got %s", rows[6].Date)
	}
	if rows[6].Calories != 600 || rows[6].Delta != -1200 {
		t.Fatalf("unexpected today row: %+v", rows[6])
	}
	if rows[5].Calories != 1700 || rows[5].Delta != -100 {
		t.Fatalf("unexpected yesterday row: %+v", rows[5])
	}
	for _, r := range rows[:5] {
		if r.Calories != 0 || r.Delta != -1800 {
			t.Fatalf("expected zero-filled day, got %+v", r)
		}
	}
}

func TestWeeklyCalorieAdherenceSumsSameDayLogs(t *testing.T) {
	t.Parallel()
	asOf := time.Date(2024, 5, 10, 20, 0, 0, 0, time.Local)
	logs := []models.FoodLog{
		{AteAt: asOf.Add(-12 * time.Hour), TotalCalories: 500},
		{AteAt: asOf.Add(-6 * time.Hour), TotalCalories: 700},
		{AteAt: asOf.Add(-1 * time.Hour), TotalCalories: 800},
	}
	rows := weeklyCalorieAdherenceAt(logs, 1800, 3, asOf)
	if rows[2].Calories != 2000 {
		t.Fatalf("expected 2000 kcal today, got %v", rows[2].Calories)
	}
	if rows[2].Delta != 200 {
		t.Fatalf("expected +200 delta, got %v", rows[2].Delta)
	}
}

func TestMacroBreakdownEnergyPercentages(t *testing.T) {
	t.Parallel()
	m := MacroBreakdown([]models.FoodLog{
		{ProteinG: 45, CarbsG: 60, FatG: 20},
	})
	if m.ProteinPct != 30 || m.CarbsPct != 40 || m.FatPct != 30 {
		t.Fatalf("expected 30/40/30, got %d/%d/%d", m.ProteinPct, m.CarbsPct, m.FatPct)
	}
}

func TestMacroBreakdownNoDataIsZeroNotUndefined(t *testing.T) {
	t.Parallel()
	m := MacroBreakdown([]models.FoodLog{{TotalCalories: 900}})
	if m.ProteinPct != 0 || m.CarbsPct != 0 || m.FatPct != 0 {
		t.Fatalf("expected all-zero percentages, got %+v", m)
	}
}
