package services

import (
	"math"
	"sort"
	"time"

	"github.com/dhall711/health-coach/models"
)

// GoalReachedMessage is returned by EstimateGoalDate once the smoothed
// weight is already at or below the goal.
const GoalReachedMessage = "Goal reached!"

// RollingAveragePoint is a derived, never-persisted point of the
// smoothed weight series. One point per input weigh-in, chronological;
// multiple same-day weigh-ins each produce a point.
type RollingAveragePoint struct {
	Date time.Time `json:"date"`
	Avg  float64   `json:"avg"`
	Raw  float64   `json:"raw"`
}

// RollingAverage smooths a weigh-in series with a causal trailing
// window of up to windowDays entries. The window counts entries, not
// calendar days: logging twice in one day shrinks the averaged time
// span. Earlier points never change when later data arrives.
func RollingAverage(logs []models.WeightLog, windowDays int) []RollingAveragePoint {
	if windowDays <= 0 {
		windowDays = 7
	}
	sorted := make([]models.WeightLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MeasuredAt.Before(sorted[j].MeasuredAt)
	})

	points := make([]RollingAveragePoint, 0, len(sorted))
	for i := range sorted {
		start := i - windowDays + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for _, l := range sorted[start : i+1] {
			sum += l.WeightLbs
		}
		points = append(points, RollingAveragePoint{
			Date: sorted[i].MeasuredAt,
			Avg:  round1(sum / float64(i-start+1)),
			Raw:  sorted[i].WeightLbs,
		})
	}
	return points
}

// EstimateGoalDate projects the date the smoothed trend crosses
// goalWeight, from the net loss over the last 14 points. Returns "" when
// there is not enough history or no net loss over that window: a flat or
// gaining trend is never extrapolated toward a lower goal.
func EstimateGoalDate(points []RollingAveragePoint, goalWeight float64) string {
	if len(points) < 7 || goalWeight <= 0 {
		return ""
	}
	recent := lastPoints(points, 14)
	first := recent[0]
	last := recent[len(recent)-1]

	if last.Avg <= goalWeight {
		return GoalReachedMessage
	}
	if last.Avg >= first.Avg {
		return ""
	}
	days := last.Date.Sub(first.Date).Hours() / 24
	if days <= 0 {
		return ""
	}
	lossPerDay := (first.Avg - last.Avg) / days
	daysToGoal := int(math.Ceil((last.Avg - goalWeight) / lossPerDay))
	return last.Date.AddDate(0, 0, daysToGoal).Format("2006-01-02")
}

// WeeklyWeightChangeRate compares the mean of the last 7 points to the
// mean of the 7 before them. Nil until 14 points exist; there is no
// shorter-window fallback.
func WeeklyWeightChangeRate(points []RollingAveragePoint) *float64 {
	if len(points) < 14 {
		return nil
	}
	recent := meanAvg(points[len(points)-7:])
	prior := meanAvg(points[len(points)-14 : len(points)-7])
	rate := round2(recent - prior)
	return &rate
}

// TrajectoryPoint is one weekly checkpoint of the projected series.
type TrajectoryPoint struct {
	Date      string  `json:"date"`
	Projected float64 `json:"projected"`
}

// ProjectWeightTrajectory fits an ordinary least-squares line through
// the last 14 smoothed points (x = index) and emits weekly checkpoints
// up to 180 days out. Once the projection would cross goalWeight the
// series emits the goal value once and stops.
func ProjectWeightTrajectory(points []RollingAveragePoint, goalWeight float64) []TrajectoryPoint {
	if len(points) < 7 {
		return nil
	}
	recent := lastPoints(points, 14)

	n := float64(len(recent))
	var sumX, sumY, sumXY, sumXX float64
	for i, p := range recent {
		x := float64(i)
		sumX += x
		sumY += p.Avg
		sumXY += x * p.Avg
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return nil
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	lastX := n - 1
	last := recent[len(recent)-1]

	out := make([]TrajectoryPoint, 0, 180/7)
	for day := 7; day <= 180; day += 7 {
		projected := intercept + slope*(lastX+float64(day))
		date := last.Date.AddDate(0, 0, day).Format("2006-01-02")
		if goalWeight > 0 && crossedGoal(slope, projected, goalWeight) {
			out = append(out, TrajectoryPoint{Date: date, Projected: round1(goalWeight)})
			break
		}
		out = append(out, TrajectoryPoint{Date: date, Projected: round1(projected)})
	}
	return out
}

func crossedGoal(slope, projected, goalWeight float64) bool {
	if slope < 0 {
		return projected <= goalWeight
	}
	return projected >= goalWeight && slope > 0
}

func lastPoints(points []RollingAveragePoint, n int) []RollingAveragePoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

func meanAvg(points []RollingAveragePoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Avg
	}
	return sum / float64(len(points))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
