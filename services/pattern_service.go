package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dhall711/health-coach/models"
)

// Insight is an ephemeral behavioral signal, recomputed on every call.
// ID is a stable slug for UI diffing, not a stored identifier.
type Insight struct {
	ID     string `json:"id"`
	Type   string `json:"type"` // overeating|skipping|correlation|positive|suggestion
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

const (
	InsightOvereating  = "overeating"
	InsightSkipping    = "skipping"
	InsightCorrelation = "correlation"
	InsightPositive    = "positive"
	InsightSuggestion  = "suggestion"
)

// lapseLabels maps lapse-context tags to display phrasing; unmapped
// tags are shown verbatim.
var lapseLabels = map[string]string{
	"stressed":    "stressful moments",
	"social":      "social events",
	"bored":       "boredom",
	"tired":       "low-energy evenings",
	"traveling":   "travel days",
	"celebration": "celebrations",
}

// dayFacts aggregates one local calendar day of logs for the rules.
type dayFacts struct {
	date       time.Time
	calories   float64
	proteinG   float64
	hadFood    bool
	hadLunch   bool
	hadWorkout bool
}

// DetectPatterns scans the trailing `days`-day window for recurring
// behavioral signals. Rules run independently, in a fixed order, and
// never suppress each other; the insertion order IS the output order
// (documented contract, there is no severity ranking).
func DetectPatterns(foodLogs []models.FoodLog, workouts []models.WorkoutLog, calorieTarget float64, days int) []Insight {
	return detectPatternsAt(foodLogs, workouts, calorieTarget, days, time.Now())
}

func detectPatternsAt(foodLogs []models.FoodLog, workouts []models.WorkoutLog, calorieTarget float64, days int, asOf time.Time) []Insight {
	if days <= 0 {
		days = 14
	}
	if calorieTarget <= 0 {
		calorieTarget = CalorieTarget
	}

	facts := collectDayFacts(foodLogs, workouts, days, asOf)

	insights := make([]Insight, 0, 4)
	insights = append(insights, weekdayOvereatingInsights(facts, calorieTarget)...)
	insights = append(insights, restDayCalorieInsights(facts)...)
	insights = append(insights, lunchSkippingInsights(facts)...)
	insights = append(insights, lowProteinInsights(facts)...)
	insights = append(insights, positiveAdherenceInsights(facts, calorieTarget)...)
	insights = append(insights, lapseContextInsights(foodLogs, days, asOf)...)
	return insights
}

func collectDayFacts(foodLogs []models.FoodLog, workouts []models.WorkoutLog, days int, asOf time.Time) []dayFacts {
	today := dayStartLocal(asOf)
	windowStart := today.AddDate(0, 0, -(days - 1))

	byDay := make(map[string]*dayFacts, days)
	ordered := make([]*dayFacts, 0, days)
	for i := 0; i < days; i++ {
		d := windowStart.AddDate(0, 0, i)
		f := &dayFacts{date: d}
		byDay[d.Format("2006-01-02")] = f
		ordered = append(ordered, f)
	}

	for _, l := range foodLogs {
		f, ok := byDay[localDayKey(l.AteAt)]
		if !ok {
			continue
		}
		f.hadFood = true
		f.calories += l.TotalCalories
		f.proteinG += l.ProteinG
		if strings.EqualFold(l.MealType, "lunch") {
			f.hadLunch = true
		}
	}
	for _, w := range workouts {
		if f, ok := byDay[localDayKey(w.StartedAt)]; ok {
			f.hadWorkout = true
		}
	}

	out := make([]dayFacts, 0, len(ordered))
	for _, f := range ordered {
		out = append(out, *f)
	}
	return out
}

// Rule 1: a weekday whose average logged calories run >15% over target
// across at least two occurrences.
func weekdayOvereatingInsights(facts []dayFacts, target float64) []Insight {
	type acc struct {
		sum float64
		n   int
	}
	byWeekday := map[time.Weekday]*acc{}
	for _, f := range facts {
		if !f.hadFood {
			continue
		}
		wd := f.date.Weekday()
		if byWeekday[wd] == nil {
			byWeekday[wd] = &acc{}
		}
		byWeekday[wd].sum += f.calories
		byWeekday[wd].n++
	}

	var out []Insight
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		a := byWeekday[wd]
		if a == nil || a.n < 2 {
			continue
		}
		avg := a.sum / float64(a.n)
		if avg > target*1.15 {
			name := wd.String()
			out = append(out, Insight{
				ID:    "overeating-" + strings.ToLower(name),
				Type:  InsightOvereating,
				Title: fmt.Sprintf("%ss run high", name),
				Detail: fmt.Sprintf("You average %.0f calories on %ss, %.0f%% over your %.0f target.",
					avg, name, (avg/target-1)*100, target),
			})
		}
	}
	return out
}

// Rule 2: rest days noticeably heavier than workout days.
func restDayCalorieInsights(facts []dayFacts) []Insight {
	var workoutSum, restSum float64
	var workoutN, restN int
	for _, f := range facts {
		if !f.hadFood {
			continue
		}
		if f.hadWorkout {
			workoutSum += f.calories
			workoutN++
		} else {
			restSum += f.calories
			restN++
		}
	}
	if workoutN == 0 || restN == 0 {
		return nil
	}
	workoutAvg := workoutSum / float64(workoutN)
	restAvg := restSum / float64(restN)
	if restAvg <= workoutAvg*1.1 {
		return nil
	}
	return []Insight{{
		ID:    "rest-day-calories",
		Type:  InsightCorrelation,
		Title: "Rest days run heavier",
		Detail: fmt.Sprintf("You eat about %.0f calories on rest days vs %.0f on workout days.",
			restAvg, workoutAvg),
	}}
}

// Rule 3: lunches skipped on weekdays that otherwise have logged food.
func lunchSkippingInsights(facts []dayFacts) []Insight {
	var weekdays, skipped int
	for _, f := range facts {
		wd := f.date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if !f.hadFood {
			continue
		}
		weekdays++
		if !f.hadLunch {
			skipped++
		}
	}
	if weekdays <= 3 || skipped < 2 {
		return nil
	}
	return []Insight{{
		ID:    "lunch-skipping",
		Type:  InsightSkipping,
		Title: "Lunch keeps getting skipped",
		Detail: fmt.Sprintf("You skipped lunch on %d of %d logged weekdays; long gaps often lead to heavier evenings.",
			skipped, weekdays),
	}}
}

// Rule 4: mean daily protein under 80% of the fixed target.
func lowProteinInsights(facts []dayFacts) []Insight {
	var sum float64
	var n int
	for _, f := range facts {
		if f.proteinG > 0 {
			sum += f.proteinG
			n++
		}
	}
	if n <= 3 {
		return nil
	}
	avg := sum / float64(n)
	if avg >= ProteinTargetG*0.8 {
		return nil
	}
	return []Insight{{
		ID:    "low-protein",
		Type:  InsightSuggestion,
		Title: "Protein is trailing your target",
		Detail: fmt.Sprintf("You average %.0fg protein a day against a %.0fg target. Consider front-loading protein at breakfast.",
			avg, ProteinTargetG),
	}}
}

// Rule 5: most logged days landing within 105% of target.
func positiveAdherenceInsights(facts []dayFacts, target float64) []Insight {
	var foodDays, onTrack int
	for _, f := range facts {
		if !f.hadFood {
			continue
		}
		foodDays++
		if f.calories <= target*1.05 {
			onTrack++
		}
	}
	if foodDays <= 3 {
		return nil
	}
	if float64(onTrack) < float64(foodDays)*0.6 {
		return nil
	}
	return []Insight{{
		ID:    "on-track",
		Type:  InsightPositive,
		Title: "Strong calorie adherence",
		Detail: fmt.Sprintf("%d of %d logged days landed within 5%% of your target. Keep it up.",
			onTrack, foodDays),
	}}
}

// Rule 6: a single lapse-context tag concentrating across the window.
func lapseContextInsights(foodLogs []models.FoodLog, days int, asOf time.Time) []Insight {
	windowStart := dayStartLocal(asOf).AddDate(0, 0, -(days - 1))
	counts := map[string]int{}
	for _, l := range foodLogs {
		tag := strings.TrimSpace(strings.ToLower(l.LapseContext))
		if tag == "" || l.AteAt.Before(windowStart) {
			continue
		}
		counts[tag]++
	}

	topTag, topCount := "", 0
	for tag, n := range counts {
		if n > topCount || (n == topCount && tag < topTag) {
			topTag, topCount = tag, n
		}
	}
	if topCount < 3 {
		return nil
	}
	label := topTag
	if mapped, ok := lapseLabels[topTag]; ok {
		label = mapped
	}
	return []Insight{{
		ID:    "lapse-" + topTag,
		Type:  InsightOvereating,
		Title: "A trigger keeps showing up",
		Detail: fmt.Sprintf("%d recent entries were tagged with %s. Planning ahead for those situations may help.",
			topCount, label),
	}}
}
