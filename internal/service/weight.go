package service

import (
	"fmt"
	"time"

	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/store"
)

const dayFormat = "2006-01-02"

// LogWeight upserts a weigh-in for a date (defaulting to today) and mirrors
// weight/body-fat into the profile.
func LogWeight(s store.Store, userID string, entry model.WeightLogEntry, now time.Time) error {
	if entry.Weight <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	if entry.BodyFatPercentage != nil {
		if *entry.BodyFatPercentage < 0 || *entry.BodyFatPercentage > 100 {
			return fmt.Errorf("body-fat must be between 0 and 100")
		}
	}
	if entry.Date == "" {
		entry.Date = now.Format(dayFormat)
	}
	if _, err := time.Parse(dayFormat, entry.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", entry.Date)
	}
	return store.AddWeightLog(s, userID, entry, now.Format(time.RFC3339))
}

// TrackDay upserts the daily tracker check-in for a date.
func TrackDay(s store.Store, userID string, log model.TrackerLog, now time.Time) error {
	if log.Date == "" {
		log.Date = now.Format(dayFormat)
	}
	if _, err := time.Parse(dayFormat, log.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", log.Date)
	}
	if log.Weight < 0 || log.Calories < 0 || log.Protein < 0 || log.CardioMinutes < 0 || log.Steps < 0 {
		return fmt.Errorf("tracker values must be >= 0")
	}
	return store.SaveTrackerLog(s, userID, log)
}
