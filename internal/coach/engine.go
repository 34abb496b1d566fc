package coach

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/minhvu/cutcoach/internal/model"
)

// Thresholds tunes the coaching engine. The defaults reproduce the observed
// product behavior; every knob is named here rather than inlined so it can
// be overridden in one place.
type Thresholds struct {
	// MinWeightEntries is the weight-log history required before the
	// engine makes any call at all.
	MinWeightEntries int
	// RateLimit is the minimum spacing between generated suggestions.
	RateLimit time.Duration
	// FastLossPctBodyWeight is the percent of starting body weight lost
	// week-over-week beyond which loss is considered too fast.
	FastLossPctBodyWeight float64
	// ProteinCompliance is the weekly actual/target protein ratio below
	// which the engine nags.
	ProteinCompliance float64
	// Calorie adjustments carried in the suggestion payloads.
	PlateauAdjustment  int
	FastLossAdjustment int
}

// DefaultThresholds are the stock cut-coaching constants.
var DefaultThresholds = Thresholds{
	MinWeightEntries:      14,
	RateLimit:             7 * 24 * time.Hour,
	FastLossPctBodyWeight: 1.2,
	ProteinCompliance:     0.85,
	PlateauAdjustment:     -100,
	FastLossAdjustment:    100,
}

// Generate compares the two trailing 7-day weight windows and weekly
// protein compliance against the thresholds and returns at most one new
// suggestion, or nil. It never mutates its inputs; appending the result to
// the persisted history is the caller's job.
//
// Silent no-op preconditions: the engine only coaches cuts, needs
// MinWeightEntries weight logs, and emits at most one suggestion per
// RateLimit window (measured against the last generated suggestion).
func Generate(profile model.UserProfile, logs []model.DailyLog, weightLogs []model.WeightLogEntry, history []model.AdaptiveSuggestion, now time.Time, th Thresholds) *model.AdaptiveSuggestion {
	if profile.Goal != model.GoalCut {
		return nil
	}
	if len(weightLogs) < th.MinWeightEntries {
		return nil
	}
	if len(history) > 0 {
		last, err := time.ParseInLocation(dayFormat, history[len(history)-1].DateGenerated, time.Local)
		if err == nil && now.Sub(last) < th.RateLimit {
			return nil
		}
	}

	today := now.Format(dayFormat)

	sorted := make([]model.WeightLogEntry, len(weightLogs))
	copy(sorted, weightLogs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	last14 := sorted[len(sorted)-14:]

	week1Avg := meanWeight(last14[:7])
	week2Avg := meanWeight(last14[7:])

	weightLost := week1Avg - week2Avg
	bodyWeightScore := weightLost / week1Avg * 100

	switch {
	case weightLost <= 0:
		return &model.AdaptiveSuggestion{
			ID:            uuid.NewString(),
			Type:          model.SuggestionDecreaseCalories,
			Title:         "Weight Loss Plateau Detected",
			Message:       "Your average weight hasn't dropped over the last 14 days. It looks like your metabolism has adapted. Let's try dropping calories by 100-150 kcal.",
			ActionLabel:   "Update Macro Targets",
			ActionPayload: th.PlateauAdjustment,
			DateGenerated: today,
			Status:        model.StatusNew,
		}
	case bodyWeightScore > th.FastLossPctBodyWeight:
		return &model.AdaptiveSuggestion{
			ID:            uuid.NewString(),
			Type:          model.SuggestionIncreaseCalories,
			Title:         "Losing Weight Too Fast!",
			Message:       "You've lost over 1% of your body weight on average this week. To preserve muscle mass, we highly recommend bumping your calories up by 100 kcal.",
			ActionLabel:   "Update Macro Targets",
			ActionPayload: th.FastLossAdjustment,
			DateGenerated: today,
			Status:        model.StatusNew,
		}
	}

	// Weekly protein compliance over the 7 most recent logs, counting only
	// days where anything was logged.
	recent := make([]model.DailyLog, len(logs))
	copy(recent, logs)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > 7 {
		recent = recent[:7]
	}

	var proteinSum, targetSum float64
	for _, l := range recent {
		if l.DailyTotals.Calories > 0 {
			proteinSum += l.DailyTotals.Protein
			targetSum += l.Targets.Protein
		}
	}
	if targetSum > 0 && proteinSum/targetSum < th.ProteinCompliance {
		return &model.AdaptiveSuggestion{
			ID:            uuid.NewString(),
			Type:          model.SuggestionIncreaseProtein,
			Title:         "Protein Target Missed (Weekly)",
			Message:       "Over the last week, your protein intake is under 85% of your target. High protein is critical on a cut to maintain muscle mass!",
			DateGenerated: today,
			Status:        model.StatusNew,
		}
	}

	return nil
}

func meanWeight(entries []model.WeightLogEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.Weight
	}
	return sum / float64(len(entries))
}
