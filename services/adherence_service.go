package services

import (
	"math"
	"time"

	"github.com/dhall711/health-coach/models"
)

// DailyAdherence is one day of the calorie adherence report.
type DailyAdherence struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Target   float64 `json:"target"`
	Delta    float64 `json:"delta"`
}

// WeeklyCalorieAdherence buckets food logs by local calendar day and
// emits exactly `days` rows ending today, most recent last. Days with
// no data are zero-filled rather than omitted.
func WeeklyCalorieAdherence(logs []models.FoodLog, target float64, days int) []DailyAdherence {
	return weeklyCalorieAdherenceAt(logs, target, days, time.Now())
}

func weeklyCalorieAdherenceAt(logs []models.FoodLog, target float64, days int, asOf time.Time) []DailyAdherence {
	if days <= 0 {
		days = 7
	}
	byDay := make(map[string]float64)
	for _, l := range logs {
		byDay[localDayKey(l.AteAt)] += l.TotalCalories
	}

	today := dayStartLocal(asOf)
	out := make([]DailyAdherence, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format("2006-01-02")
		cals := byDay[key]
		out = append(out, DailyAdherence{
			Date:     key,
			Calories: cals,
			Target:   target,
			Delta:    cals - target,
		})
	}
	return out
}

// MacroSummary reports macro grams and their share of energy.
type MacroSummary struct {
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	ProteinPct int     `json:"protein_pct"`
	CarbsPct   int     `json:"carbs_pct"`
	FatPct     int     `json:"fat_pct"`
}

// MacroBreakdown sums macro grams and derives energy percentages at
// 4/4/9 kcal per gram. The split is computed from the grams alone, so
// it can disagree with logged calorie totals when items are
// inconsistent; that is accepted behavior. All percentages are 0 when
// no grams were logged.
func MacroBreakdown(logs []models.FoodLog) MacroSummary {
	var m MacroSummary
	for _, l := range logs {
		m.ProteinG += l.ProteinG
		m.CarbsG += l.CarbsG
		m.FatG += l.FatG
	}
	energy := m.ProteinG*4 + m.CarbsG*4 + m.FatG*9
	if energy > 0 {
		m.ProteinPct = int(math.Round(m.ProteinG * 4 / energy * 100))
		m.CarbsPct = int(math.Round(m.CarbsG * 4 / energy * 100))
		m.FatPct = int(math.Round(m.FatG * 9 / energy * 100))
	}
	return m
}

func localDayKey(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}
