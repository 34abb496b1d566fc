package service

import (
	"time"

	"github.com/minhvu/cutcoach/internal/coach"
	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/store"
)

// DailyCheck runs the streak update and badge evaluation for "now" and
// persists the resulting gamification state. Safe to call repeatedly; the
// streak machine ignores repeat calls within the same day.
func DailyCheck(s store.Store, userID string, now time.Time) (model.GamificationState, error) {
	g, err := store.LoadGamification(s, userID)
	if err != nil {
		return model.GamificationState{}, err
	}
	logs, err := store.LoadDailyLogs(s, userID)
	if err != nil {
		return model.GamificationState{}, err
	}

	today := now.Format(dayFormat)
	var todayLog *model.DailyLog
	for i := range logs {
		if logs[i].Date == today {
			todayLog = &logs[i]
			break
		}
	}

	g = coach.UpdateDailyStreak(g, todayLog, now)
	g, _ = coach.CheckBadges(g, logs, now)

	if err := store.SaveGamification(s, userID, g); err != nil {
		return model.GamificationState{}, err
	}
	return g, nil
}

// RunCoach evaluates the adaptive coaching engine and appends any produced
// suggestion to the user's history. Returns nil when the engine stayed
// silent (wrong goal, thin data, rate limit, or nothing to flag).
func RunCoach(s store.Store, userID string, now time.Time, th coach.Thresholds) (*model.AdaptiveSuggestion, error) {
	profile, err := store.LoadProfile(s, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	logs, err := store.LoadDailyLogs(s, userID)
	if err != nil {
		return nil, err
	}
	weightLogs, err := store.LoadWeightLogs(s, userID)
	if err != nil {
		return nil, err
	}
	history, err := store.LoadSuggestions(s, userID)
	if err != nil {
		return nil, err
	}

	sg := coach.Generate(*profile, logs, weightLogs, history, now, th)
	if sg == nil {
		return nil, nil
	}
	if err := store.AppendSuggestion(s, userID, *sg); err != nil {
		return nil, err
	}
	return sg, nil
}
