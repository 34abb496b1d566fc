package service

import (
	"time"

	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/nutrition"
	"github.com/minhvu/cutcoach/internal/progress"
	"github.com/minhvu/cutcoach/internal/store"
)

// ProgressReport bundles everything the score screen shows: derived
// targets, the weekly trend, warnings, the composite score and the
// target-weight prediction.
type ProgressReport struct {
	BMI             float64                 `json:"bmi"`
	TDEE            int                     `json:"tdee"`
	Targets         model.MacroSummary      `json:"targets"`
	WeeklyAvgWeight *float64                `json:"weeklyAvgWeight,omitempty"`
	WeeklyChange    *float64                `json:"weeklyChange,omitempty"`
	Stall           bool                    `json:"stall"`
	FastLoss        bool                    `json:"fastLoss"`
	Score           progress.ScoreBreakdown `json:"score"`
	TargetWeight    *float64                `json:"targetWeight,omitempty"`
	PredictedWeeks  *int                    `json:"predictedWeeks,omitempty"`
}

// BuildProgressReport derives the full progress view for a user. targetBF
// enables the target-weight prediction when both it and the profile's
// body-fat are known; pass 0 to skip it. An incomplete or missing profile
// yields zero targets (the "set up your profile" state), not an error.
func BuildProgressReport(s store.Store, userID string, targetBF float64, now time.Time) (*ProgressReport, error) {
	report := &ProgressReport{}

	profile, err := store.LoadProfile(s, userID)
	if err != nil {
		return nil, err
	}
	logs, err := store.LoadTrackerLogs(s, userID)
	if err != nil {
		return nil, err
	}

	if profile != nil {
		report.BMI = nutrition.CalcBMI(profile.WeightKg, profile.HeightCm)
		report.TDEE = nutrition.CalcTDEE(*profile)
		report.Targets = nutrition.CalcMacroTargets(*profile)
	}

	report.WeeklyAvgWeight = progress.WeeklyAvgWeight(logs, now)
	report.WeeklyChange = progress.WeeklyWeightChange(logs, now)
	report.Stall = progress.CheckStall(logs, now)
	report.FastLoss = progress.CheckFastLoss(report.WeeklyChange)
	report.Score = progress.Score(logs, report.Targets.Calories, report.Targets.Protein, report.WeeklyChange, now)

	if profile != nil && profile.BodyFatPercentage != nil && targetBF > 0 && targetBF < 100 {
		current := profile.WeightKg
		if latest := progress.LatestWeight(logs); latest != nil {
			current = *latest
		}
		target := progress.TargetWeight(current, *profile.BodyFatPercentage, targetBF)
		weeks := progress.PredictedWeeks(current, target, progress.DefaultWeeklyRate)
		report.TargetWeight = &target
		report.PredictedWeeks = &weeks
	}

	return report, nil
}
