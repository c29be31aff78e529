package services

import (
	"math"
	"sort"
	"time"

	"github.com/dhall711/health-coach/models"
)

// sourceRank orders weight sources by authority; lower rank wins when
// two sources describe the same weigh-in. Adding a source is a one-line
// addition here.
var sourceRank = map[string]int{
	models.SourceWithings:    10,
	models.SourceManual:      20,
	models.SourceAppleHealth: 30,
	models.SourceTrendweight: 40,
}

const (
	weighInDedupWindow    = 30 * time.Minute
	weighInDedupTolerance = 0.5 // lbs
	workoutDedupWindow    = 15 * time.Minute
	workoutDedupTolerance = 5 // minutes of duration
)

func rankOf(source string) int {
	if r, ok := sourceRank[source]; ok {
		return r
	}
	return 100 // unknown sources lose to every known one
}

// ReconcileWeighIns collapses near-duplicate weigh-ins mirrored through
// multiple integrations into a single survivor per real-world event.
// Entries are walked in ascending time order (ties broken by source
// authority) so a less authoritative mirror can be dropped in favor of
// an already-kept reading, but never the other way around. Pure; the
// store is a read-time view and is never touched.
func ReconcileWeighIns(logs []models.WeightLog) []models.WeightLog {
	sorted := make([]models.WeightLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].MeasuredAt.Equal(sorted[j].MeasuredAt) {
			return sorted[i].MeasuredAt.Before(sorted[j].MeasuredAt)
		}
		return rankOf(sorted[i].Source) < rankOf(sorted[j].Source)
	})

	kept := make([]models.WeightLog, 0, len(sorted))
	for _, cand := range sorted {
		if isDuplicateWeighIn(kept, cand) {
			continue
		}
		kept = append(kept, cand)
	}
	return kept
}

func isDuplicateWeighIn(kept []models.WeightLog, cand models.WeightLog) bool {
	for _, k := range kept {
		gap := cand.MeasuredAt.Sub(k.MeasuredAt)
		if gap < 0 {
			gap = -gap
		}
		if gap <= weighInDedupWindow &&
			math.Abs(cand.WeightLbs-k.WeightLbs) <= weighInDedupTolerance &&
			rankOf(cand.Source) >= rankOf(k.Source) {
			return true
		}
	}
	return false
}

// ReconcileWorkouts drops mirrored workout sessions. A non-empty
// ExternalID match against a kept entry is authoritative; otherwise two
// sessions starting within 15 minutes whose durations differ by at most
// 5 minutes are treated as the same session. Calories are deliberately
// not compared: duration is the proxy for "same session".
func ReconcileWorkouts(logs []models.WorkoutLog) []models.WorkoutLog {
	sorted := make([]models.WorkoutLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.Before(sorted[j].StartedAt)
	})

	kept := make([]models.WorkoutLog, 0, len(sorted))
	for _, cand := range sorted {
		if isDuplicateWorkout(kept, cand) {
			continue
		}
		kept = append(kept, cand)
	}
	return kept
}

func isDuplicateWorkout(kept []models.WorkoutLog, cand models.WorkoutLog) bool {
	for _, k := range kept {
		if cand.ExternalID != "" && cand.ExternalID == k.ExternalID {
			return true
		}
		gap := cand.StartedAt.Sub(k.StartedAt)
		if gap < 0 {
			gap = -gap
		}
		durDiff := cand.DurationMin - k.DurationMin
		if durDiff < 0 {
			durDiff = -durDiff
		}
		if gap <= workoutDedupWindow && durDiff <= workoutDedupTolerance {
			return true
		}
	}
	return false
}
