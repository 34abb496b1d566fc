package progress_test

import (
	"testing"
	"time"

	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/progress"
)

var testNow = time.Date(2026, 8, 20, 12, 0, 0, 0, time.Local)

// day returns the YYYY-MM-DD date N days before testNow.
func day(daysAgo int) string {
	return testNow.AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func weightsOnly(weights map[int]float64) []model.TrackerLog {
	logs := make([]model.TrackerLog, 0, len(weights))
	for daysAgo, w := range weights {
		logs = append(logs, model.TrackerLog{Date: day(daysAgo), Weight: w})
	}
	return logs
}

func TestWeeklyWeightChange(t *testing.T) {
	t.Parallel()
	logs := weightsOnly(map[int]float64{
		13: 80.0, 10: 79.8, 8: 79.6, // last week
		6: 79.2, 3: 79.0, 0: 78.8, // this week
	})

	change := progress.WeeklyWeightChange(logs, testNow)
	if change == nil {
		t.Fatalf("expected a change, got nil")
	}
	want := (79.2+79.0+78.8)/3 - (80.0+79.8+79.6)/3
	if diff := *change - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected change %.4f, got %.4f", want, *change)
	}
}

func TestWeeklyWeightChangeNeedsBothWindows(t *testing.T) {
	t.Parallel()
	logs := weightsOnly(map[int]float64{3: 79.0, 0: 78.8})
	if change := progress.WeeklyWeightChange(logs, testNow); change != nil {
		t.Fatalf("expected nil with an empty prior week, got %.4f", *change)
	}
	if change := progress.WeeklyWeightChange(nil, testNow); change != nil {
		t.Fatalf("expected nil for no logs, got %.4f", *change)
	}
}

func TestWeeklyAvgWeightIgnoresOldEntries(t *testing.T) {
	t.Parallel()
	logs := weightsOnly(map[int]float64{20: 85.0, 3: 79.0, 1: 78.6})
	avg := progress.WeeklyAvgWeight(logs, testNow)
	if avg == nil {
		t.Fatalf("expected an average, got nil")
	}
	if *avg != 78.8 {
		t.Fatalf("expected 78.8, got %.4f", *avg)
	}
}

func TestCheckFastLoss(t *testing.T) {
	t.Parallel()
	fast := -1.0
	slow := -0.5
	if !progress.CheckFastLoss(&fast) {
		t.Fatalf("expected -1.0 kg/week to flag fast loss")
	}
	if progress.CheckFastLoss(&slow) {
		t.Fatalf("expected -0.5 kg/week not to flag")
	}
	if progress.CheckFastLoss(nil) {
		t.Fatalf("expected nil change not to flag")
	}
}

func TestCheckStall(t *testing.T) {
	t.Parallel()
	flat := weightsOnly(map[int]float64{
		18: 80.0, 16: 80.05,
		11: 80.02, 9: 80.0,
		4: 80.04, 1: 80.0,
	})
	if !progress.CheckStall(flat, testNow) {
		t.Fatalf("expected flat 3 weeks to read as a stall")
	}

	dropping := weightsOnly(map[int]float64{
		18: 81.0, 16: 80.8,
		11: 80.2, 9: 80.0,
		4: 79.4, 1: 79.2,
	})
	if progress.CheckStall(dropping, testNow) {
		t.Fatalf("expected steady loss not to read as a stall")
	}

	// A window with no data never stalls.
	twoWeeks := weightsOnly(map[int]float64{11: 80.0, 4: 80.0, 1: 80.0})
	if progress.CheckStall(twoWeeks, testNow) {
		t.Fatalf("expected missing third week to disable the stall check")
	}
}

func TestScorePerfectWeek(t *testing.T) {
	t.Parallel()
	logs := make([]model.TrackerLog, 0, 7)
	for i := 0; i < 7; i++ {
		cardio := 0
		if i < 3 {
			cardio = 30
		}
		logs = append(logs, model.TrackerLog{
			Date:          day(i),
			Weight:        79,
			Calories:      2050,
			Protein:       130,
			CardioMinutes: cardio,
		})
	}
	change := -0.5

	score := progress.Score(logs, 2000, 120, &change, testNow)
	if score.Total != 100 {
		t.Fatalf("expected a perfect 100, got %+v", score)
	}
	if score.Calories != 25 || score.Protein != 25 || score.Trend != 30 || score.Cardio != 20 {
		t.Fatalf("unexpected breakdown %+v", score)
	}
}

func TestScorePartialCompliance(t *testing.T) {
	t.Parallel()
	logs := []model.TrackerLog{
		{Date: day(0), Weight: 79, Calories: 2050, Protein: 130, CardioMinutes: 30},
		{Date: day(1), Weight: 79, Calories: 2600, Protein: 90},
	}

	// Calorie and protein compliance at 1/2 each, no trend data, one cardio
	// session out of three.
	score := progress.Score(logs, 2000, 120, nil, testNow)
	if score.Calories != 13 {
		t.Fatalf("expected 13 calorie points, got %d", score.Calories)
	}
	if score.Protein != 13 {
		t.Fatalf("expected 13 protein points, got %d", score.Protein)
	}
	if score.Trend != 0 {
		t.Fatalf("expected 0 trend points, got %d", score.Trend)
	}
	if score.Cardio != 7 {
		t.Fatalf("expected 7 cardio points, got %d", score.Cardio)
	}
}

func TestScoreEmptyWindow(t *testing.T) {
	t.Parallel()
	old := []model.TrackerLog{{Date: day(30), Weight: 80, Calories: 2000, Protein: 120}}
	if score := progress.Score(old, 2000, 120, nil, testNow); score != (progress.ScoreBreakdown{}) {
		t.Fatalf("expected zero score with no recent logs, got %+v", score)
	}
}

func TestScoreTrendPartialCredit(t *testing.T) {
	t.Parallel()
	logs := []model.TrackerLog{{Date: day(0), Weight: 79, Calories: 2000, Protein: 120, CardioMinutes: 30}}

	tooFast := -1.5
	if score := progress.Score(logs, 2000, 120, &tooFast, testNow); score.Trend != 15 {
		t.Fatalf("expected 15 trend points for off-band loss, got %d", score.Trend)
	}
	gaining := 0.3
	if score := progress.Score(logs, 2000, 120, &gaining, testNow); score.Trend != 0 {
		t.Fatalf("expected 0 trend points while gaining, got %d", score.Trend)
	}
}

func TestStrengthChange(t *testing.T) {
	t.Parallel()
	logs := []model.StrengthLog{
		{Date: day(10), Exercise: "squat", Sets: 3, Reps: 5, WeightKg: 90},
		{Date: day(9), Exercise: "squat", Sets: 3, Reps: 5, WeightKg: 92.5},
		{Date: day(2), Exercise: "squat", Sets: 3, Reps: 5, WeightKg: 95},
		{Date: day(1), Exercise: "bench", Sets: 3, Reps: 5, WeightKg: 70},
	}

	thisWeek, lastWeek, change := progress.StrengthChange(logs, "squat", testNow)
	if thisWeek == nil || *thisWeek != 95 {
		t.Fatalf("expected this week's best 95, got %v", thisWeek)
	}
	if lastWeek == nil || *lastWeek != 92.5 {
		t.Fatalf("expected last week's best 92.5, got %v", lastWeek)
	}
	if change == nil {
		t.Fatalf("expected a change percentage")
	}
	want := (95.0 - 92.5) / 92.5 * 100
	if diff := *change - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected change %.4f%%, got %.4f%%", want, *change)
	}

	_, _, none := progress.StrengthChange(logs, "deadlift", testNow)
	if none != nil {
		t.Fatalf("expected nil change for an unlogged exercise")
	}
}

func TestTargetWeightAndPrediction(t *testing.T) {
	t.Parallel()
	// 80kg at 25% body fat has 60kg lean mass; at 15% that sits at 70.6kg.
	target := progress.TargetWeight(80, 25, 15)
	if target != 70.6 {
		t.Fatalf("expected target weight 70.6, got %.1f", target)
	}

	weeks := progress.PredictedWeeks(80, target, 0.5)
	if weeks != 19 {
		t.Fatalf("expected 19 weeks, got %d", weeks)
	}
	if got := progress.PredictedWeeks(80, target, 0); got != 19 {
		t.Fatalf("expected non-positive rate to fall back to the default, got %d", got)
	}
}

func TestLatestWeight(t *testing.T) {
	t.Parallel()
	logs := []model.TrackerLog{
		{Date: "2026-08-01", Weight: 80},
		{Date: "2026-08-15", Weight: 78.5},
		{Date: "2026-08-07", Weight: 79.2},
	}
	got := progress.LatestWeight(logs)
	if got == nil || *got != 78.5 {
		t.Fatalf("expected 78.5, got %v", got)
	}
	if progress.LatestWeight(nil) != nil {
		t.Fatalf("expected nil for no logs")
	}
}
