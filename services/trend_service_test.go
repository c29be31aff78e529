package services

import (
	"testing"
	"time"

	"github.com/dhall711/health-coach/models"
)

func dailyWeighIns(start time.Time, weights ...float64) []models.WeightLog {
	logs := make([]models.WeightLog, 0, len(weights))
	for i, w := range weights {
		logs = append(logs, models.WeightLog{
			MeasuredAt: start.AddDate(0, 0, i),
			WeightLbs:  w,
			Source:     models.SourceManual,
		})
	}
	return logs
}

func TestRollingAverageConstantSeries(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	for _, window := range []int{1, 3, 7, 30} {
		points := RollingAverage(dailyWeighIns(start, 180, 180, 180, 180, 180), window)
		if len(points) != 5 {
			t.Fatalf("window %d: expected 5 points, got %d", window, len(points))
		}
		for i, p := range points {
			if p.Avg != 180 {
				t.Fatalf("window %d point %d: expected avg 180, got %v", window, i, p.Avg)
			}
		}
	}
}

func TestRollingAverageGrowsWindowFromStart(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	points := RollingAverage(dailyWeighIns(start, 200, 198, 196), 7)
	want := []float64{200, 199, 198}
	for i, p := range points {
		if p.Avg != want[i] {
			t.Fatalf("point %d: expected %v, got %v", i, want[i], p.Avg)
		}
	}
}

func TestRollingAverageOnePointPerEntryNotPerDay(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	logs := []models.WeightLog{
		{MeasuredAt: at, WeightLbs: 200},
		{MeasuredAt: at.Add(10 * time.Hour), WeightLbs: 202}, // same calendar day
	}
	points := RollingAverage(logs, 7)
	if len(points) != 2 {
		t.Fatalf("expected one point per entry, got %d", len(points))
	}
	if points[1].Avg != 201 {
		t.Fatalf("expected avg 201, got %v", points[1].Avg)
	}
}

func TestEstimateGoalDateNeedsSevenPoints(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	points := RollingAverage(dailyWeighIns(start, 200, 199, 198, 197, 196, 195), 7)
	if got := EstimateGoalDate(points, 180); got != "" {
		t.Fatalf("expected no estimate under 7 points, got %q", got)
	}
}

func TestEstimateGoalDateNeverExtrapolatesGainingTrend(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	points := RollingAverage(dailyWeighIns(start, 195, 195, 195, 195, 196, 196, 197, 197), 7)
	if got := EstimateGoalDate(points, 180); got != "" {
		t.Fatalf("expected no estimate for gaining trend, got %q", got)
	}
}

func TestEstimateGoalDateGoalReached(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	points := RollingAverage(dailyWeighIns(start, 182, 181.5, 181, 180.5, 180, 179.5, 179), 7)
	if got := EstimateGoalDate(points, 185); got != GoalReachedMessage {
		t.Fatalf("expected %q, got %q", GoalReachedMessage, got)
	}
}

func TestEstimateGoalDateProjectsForward(t *testing.T) {
	t.Parallel()
	// Smoothed trend loses exactly the raw loss rate once the series is
	// linear long enough; use a generous window so arithmetic is stable.
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	weights := make([]float64, 0, 14)
	for i := 0; i < 14; i++ {
		weights = append(weights, 200-0.5*float64(i))
	}
	points := RollingAverage(dailyWeighIns(start, weights...), 7)
	got := EstimateGoalDate(points, 190)
	if got == "" || got == GoalReachedMessage {
		t.Fatalf("expected a projected date, got %q", got)
	}
	date, err := time.Parse("2006-01-02", got)
	if err != nil {
		t.Fatalf("expected yyyy-mm-dd date, got %q: %v", got, err)
	}
	if !date.After(points[len(points)-1].Date) {
		t.Fatalf("projected date %s not after last point %s", got, points[len(points)-1].Date)
	}
}

func TestWeeklyWeightChangeRateRequiresFourteenPoints(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	points := RollingAverage(dailyWeighIns(start, 200, 199, 198, 197, 196, 195, 194, 193, 192, 191, 190, 189, 188), 7)
	if rate := WeeklyWeightChangeRate(points); rate != nil {
		t.Fatalf("expected nil under 14 points, got %v", *rate)
	}
}

func TestWeeklyWeightChangeRateLosingTrendIsNegative(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	weights := make([]float64, 0, 20)
	for i := 0; i < 20; i++ {
		weights = append(weights, 200-0.5*float64(i))
	}
	points := RollingAverage(dailyWeighIns(start, weights...), 7)
	rate := WeeklyWeightChangeRate(points)
	if rate == nil {
		t.Fatalf("expected a rate with %d points", len(points))
	}
	if *rate >= 0 {
		t.Fatalf("expected negative weekly rate, got %v", *rate)
	}
}

func TestProjectWeightTrajectoryStopsAtGoal(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	weights := make([]float64, 0, 20)
	for i := 0; i < 20; i++ {
		weights = append(weights, 200-0.5*float64(i))
	}
	points := RollingAverage(dailyWeighIns(start, weights...), 7)
	traj := ProjectWeightTrajectory(points, 185)
	if len(traj) == 0 {
		t.Fatalf("expected trajectory points")
	}
	last := traj[len(traj)-1]
	if last.Projected != 185 {
		t.Fatalf("expected trajectory to end at goal 185, got %v", last.Projected)
	}
	for _, p := range traj[:len(traj)-1] {
		if p.Projected <= 185 {
			t.Fatalf("checkpoint %v crossed goal before the clamp", p)
		}
	}
}

func TestProjectWeightTrajectoryCapsAtSixMonths(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	weights := make([]float64, 0, 20)
	for i := 0; i < 20; i++ {
		weights = append(weights, 200-0.1*float64(i))
	}
	points := RollingAverage(dailyWeighIns(start, weights...), 7)
	traj := ProjectWeightTrajectory(points, 100) // far-away goal never reached in window
	if len(traj) != 180/7 {
		t.Fatalf("expected %d weekly checkpoints, got %d", 180/7, len(traj))
	}
}
