package progress

import (
	"math"
	"time"

	"github.com/minhvu/cutcoach/internal/model"
)

// Weekly weight-change thresholds in kg/week. Negative is loss.
const (
	// FastLossThreshold marks an unsafe loss rate.
	FastLossThreshold = -0.8
	// Ideal cutting band used by the trend score.
	IdealLossMin = -0.8
	IdealLossMax = -0.3
	// StallTolerance is the max drift between weekly averages that still
	// counts as "no movement".
	StallTolerance = 0.1
	// DefaultWeeklyRate is the assumed loss rate for time predictions.
	DefaultWeeklyRate = 0.5
)

// parseDay reads a YYYY-MM-DD date in local time.
func parseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// weightsIn collects the weights of logs dated in [from, to). A zero `to`
// means no upper bound beyond `now` inclusive.
func weightsIn(logs []model.TrackerLog, from, before time.Time) []float64 {
	out := make([]float64, 0, len(logs))
	for _, l := range logs {
		d, ok := parseDay(l.Date)
		if !ok {
			continue
		}
		if !d.Before(from) && d.Before(before) {
			out = append(out, l.Weight)
		}
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// WeeklyAvgWeight is the mean weight over the trailing 7 days, or nil when
// no entry falls in the window.
func WeeklyAvgWeight(logs []model.TrackerLog, now time.Time) *float64 {
	w := weightsIn(logs, now.AddDate(0, 0, -7), now.AddDate(0, 0, 1))
	if len(w) == 0 {
		return nil
	}
	avg := mean(w)
	return &avg
}

// WeeklyWeightChange is this week's average weight minus the prior week's.
// Positive means gain. Nil when either window is empty.
func WeeklyWeightChange(logs []model.TrackerLog, now time.Time) *float64 {
	weekAgo := now.AddDate(0, 0, -7)
	thisWeek := weightsIn(logs, weekAgo, now.AddDate(0, 0, 1))
	lastWeek := weightsIn(logs, now.AddDate(0, 0, -14), weekAgo)
	if len(thisWeek) == 0 || len(lastWeek) == 0 {
		return nil
	}
	change := mean(thisWeek) - mean(lastWeek)
	return &change
}

// CheckFastLoss reports whether the weekly change crosses the unsafe loss
// rate. A nil (unknown) change is never fast loss.
func CheckFastLoss(weeklyChange *float64) bool {
	return weeklyChange != nil && *weeklyChange < FastLossThreshold
}

// CheckStall reports a plateau: three consecutive weekly averages each
// within StallTolerance of their neighbor. All three windows must have data.
func CheckStall(logs []model.TrackerLog, now time.Time) bool {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)
	threeWeeksAgo := now.AddDate(0, 0, -21)

	thisWeek := weightsIn(logs, weekAgo, now.AddDate(0, 0, 1))
	lastWeek := weightsIn(logs, twoWeeksAgo, weekAgo)
	prevWeek := weightsIn(logs, threeWeeksAgo, twoWeeksAgo)
	if len(thisWeek) == 0 || len(lastWeek) == 0 || len(prevWeek) == 0 {
		return false
	}
	w1, w2, w3 := mean(thisWeek), mean(lastWeek), mean(prevWeek)
	return math.Abs(w1-w2) < StallTolerance && math.Abs(w2-w3) < StallTolerance
}

// ScoreBreakdown is the 0-100 progress score with its four components, so
// callers can show where points were lost.
type ScoreBreakdown struct {
	Total    int `json:"total"`
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Trend    int `json:"trend"`
	Cardio   int `json:"cardio"`
}

// Score rates the trailing 7 days: calorie compliance (25), protein
// compliance (25), weight trend (30) and cardio frequency (20). An empty
// window scores zero across the board.
func Score(logs []model.TrackerLog, caloriesTarget int, proteinTarget float64, weeklyChange *float64, now time.Time) ScoreBreakdown {
	weekAgo := now.AddDate(0, 0, -7)
	recent := make([]model.TrackerLog, 0, len(logs))
	for _, l := range logs {
		d, ok := parseDay(l.Date)
		if !ok {
			continue
		}
		if !d.Before(weekAgo) && d.Before(now.AddDate(0, 0, 1)) {
			recent = append(recent, l)
		}
	}
	if len(recent) == 0 {
		return ScoreBreakdown{}
	}

	calDays, proteinDays, cardioSessions := 0, 0, 0
	for _, l := range recent {
		if abs(l.Calories-caloriesTarget) <= 100 {
			calDays++
		}
		if l.Protein >= proteinTarget {
			proteinDays++
		}
		if l.CardioMinutes > 0 {
			cardioSessions++
		}
	}

	calScore := int(math.Round(float64(calDays) / float64(len(recent)) * 25))
	proteinScore := int(math.Round(float64(proteinDays) / float64(len(recent)) * 25))

	trendScore := 0
	if weeklyChange != nil {
		switch {
		case *weeklyChange >= IdealLossMin && *weeklyChange <= IdealLossMax:
			trendScore = 30
		case *weeklyChange < -0.1:
			trendScore = 15
		}
	}

	cardioScore := 20
	if cardioSessions < 3 {
		cardioScore = int(math.Round(float64(cardioSessions) / 3 * 20))
	}

	return ScoreBreakdown{
		Total:    calScore + proteinScore + trendScore + cardioScore,
		Calories: calScore,
		Protein:  proteinScore,
		Trend:    trendScore,
		Cardio:   cardioScore,
	}
}

// StrengthChange compares the best single-set weight for an exercise this
// week against last week. Change is a percentage, nil unless both weeks
// have data and last week's best is positive.
func StrengthChange(logs []model.StrengthLog, exercise string, now time.Time) (thisWeek, lastWeek, change *float64) {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	best := func(from, before time.Time) *float64 {
		var top *float64
		for _, l := range logs {
			if l.Exercise != exercise {
				continue
			}
			d, ok := parseDay(l.Date)
			if !ok {
				continue
			}
			if d.Before(from) || !d.Before(before) {
				continue
			}
			if top == nil || l.WeightKg > *top {
				v := l.WeightKg
				top = &v
			}
		}
		return top
	}

	thisWeek = best(weekAgo, now.AddDate(0, 0, 1))
	lastWeek = best(twoWeeksAgo, weekAgo)
	if thisWeek != nil && lastWeek != nil && *lastWeek > 0 {
		v := (*thisWeek - *lastWeek) / *lastWeek * 100
		change = &v
	}
	return thisWeek, lastWeek, change
}

// LeanMass is body weight minus estimated fat mass.
func LeanMass(weightKg, bodyFatPct float64) float64 {
	return weightKg * (1 - bodyFatPct/100)
}

// TargetWeight is the weight at which current lean mass would sit at the
// target body-fat percentage, to one decimal.
func TargetWeight(currentWeight, currentBF, targetBF float64) float64 {
	lean := LeanMass(currentWeight, currentBF)
	return math.Round(lean/(1-targetBF/100)*10) / 10
}

// PredictedWeeks estimates the weeks to reach the target weight at the
// given loss rate (kg/week). A non-positive rate uses DefaultWeeklyRate.
func PredictedWeeks(currentWeight, targetWeight, weeklyRate float64) int {
	if weeklyRate <= 0 {
		weeklyRate = DefaultWeeklyRate
	}
	return int(math.Ceil(math.Abs(currentWeight-targetWeight) / weeklyRate))
}

// LatestWeight is the weight of the most recent log by date, nil when there
// are no logs.
func LatestWeight(logs []model.TrackerLog) *float64 {
	var bestDate string
	var weight float64
	found := false
	for _, l := range logs {
		if !found || l.Date > bestDate {
			bestDate = l.Date
			weight = l.Weight
			found = true
		}
	}
	if !found {
		return nil
	}
	return &weight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
