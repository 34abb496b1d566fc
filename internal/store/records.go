package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/minhvu/cutcoach/internal/model"
)

// Storage keys. Each holds one JSON document per user.
const (
	KeyProfile      = "profile"
	KeyDailyLogs    = "daily_logs"
	KeyWeightLogs   = "weight_logs"
	KeyTrackerLogs  = "tracker_logs"
	KeyStrengthLogs = "strength_logs"
	KeySuggestions  = "suggestions"
	KeyGamification = "gamification"
)

func loadJSON(s Store, userID, key string, out any) (bool, error) {
	data, err := s.Load(userID, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(s Store, userID, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Save(userID, key, data)
}

// LoadProfile returns nil when no profile has been set up yet.
func LoadProfile(s Store, userID string) (*model.UserProfile, error) {
	var p model.UserProfile
	ok, err := loadJSON(s, userID, KeyProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func SaveProfile(s Store, userID string, p model.UserProfile) error {
	return saveJSON(s, userID, KeyProfile, p)
}

func LoadDailyLogs(s Store, userID string) ([]model.DailyLog, error) {
	logs := make([]model.DailyLog, 0)
	if _, err := loadJSON(s, userID, KeyDailyLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func SaveDailyLogs(s Store, userID string, logs []model.DailyLog) error {
	return saveJSON(s, userID, KeyDailyLogs, logs)
}

// GetDailyLog returns the log for a date, or nil when none is persisted.
func GetDailyLog(s Store, userID, date string) (*model.DailyLog, error) {
	logs, err := LoadDailyLogs(s, userID)
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].Date == date {
			return &logs[i], nil
		}
	}
	return nil, nil
}

// SaveDailyLog upserts by date: the collection is rewritten with any
// existing log for that date filtered out first.
func SaveDailyLog(s Store, userID string, log model.DailyLog) error {
	logs, err := LoadDailyLogs(s, userID)
	if err != nil {
		return err
	}
	updated := make([]model.DailyLog, 0, len(logs)+1)
	for _, l := range logs {
		if l.Date != log.Date {
			updated = append(updated, l)
		}
	}
	updated = append(updated, log)
	return SaveDailyLogs(s, userID, updated)
}

func LoadWeightLogs(s Store, userID string) ([]model.WeightLogEntry, error) {
	logs := make([]model.WeightLogEntry, 0)
	if _, err := loadJSON(s, userID, KeyWeightLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func SaveWeightLogs(s Store, userID string, logs []model.WeightLogEntry) error {
	return saveJSON(s, userID, KeyWeightLogs, logs)
}

// AddWeightLog upserts a weigh-in by date, keeps the collection sorted
// chronologically, and mirrors weight/body-fat back into the profile when
// one exists. The profile mirror is an independent write.
func AddWeightLog(s Store, userID string, entry model.WeightLogEntry, updatedAt string) error {
	logs, err := LoadWeightLogs(s, userID)
	if err != nil {
		return err
	}
	replaced := false
	for i := range logs {
		if logs[i].Date == entry.Date {
			logs[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		logs = append(logs, entry)
		sort.SliceStable(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
	}
	if err := SaveWeightLogs(s, userID, logs); err != nil {
		return err
	}

	profile, err := LoadProfile(s, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}
	profile.WeightKg = entry.Weight
	profile.BodyFatPercentage = entry.BodyFatPercentage
	profile.UpdatedAt = updatedAt
	return SaveProfile(s, userID, *profile)
}

func LoadTrackerLogs(s Store, userID string) ([]model.TrackerLog, error) {
	logs := make([]model.TrackerLog, 0)
	if _, err := loadJSON(s, userID, KeyTrackerLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// SaveTrackerLog upserts the per-day check-in by date.
func SaveTrackerLog(s Store, userID string, log model.TrackerLog) error {
	logs, err := LoadTrackerLogs(s, userID)
	if err != nil {
		return err
	}
	updated := make([]model.TrackerLog, 0, len(logs)+1)
	for _, l := range logs {
		if l.Date != log.Date {
			updated = append(updated, l)
		}
	}
	updated = append(updated, log)
	sort.SliceStable(updated, func(i, j int) bool { return updated[i].Date < updated[j].Date })
	return saveJSON(s, userID, KeyTrackerLogs, updated)
}

func LoadStrengthLogs(s Store, userID string) ([]model.StrengthLog, error) {
	logs := make([]model.StrengthLog, 0)
	if _, err := loadJSON(s, userID, KeyStrengthLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func AddStrengthLog(s Store, userID string, log model.StrengthLog) error {
	logs, err := LoadStrengthLogs(s, userID)
	if err != nil {
		return err
	}
	logs = append(logs, log)
	return saveJSON(s, userID, KeyStrengthLogs, logs)
}

func LoadSuggestions(s Store, userID string) ([]model.AdaptiveSuggestion, error) {
	out := make([]model.AdaptiveSuggestion, 0)
	if _, err := loadJSON(s, userID, KeySuggestions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppendSuggestion adds to the suggestion history; history is append-only
// and never rewritten.
func AppendSuggestion(s Store, userID string, sg model.AdaptiveSuggestion) error {
	existing, err := LoadSuggestions(s, userID)
	if err != nil {
		return err
	}
	existing = append(existing, sg)
	return saveJSON(s, userID, KeySuggestions, existing)
}

var statusRank = map[model.SuggestionStatus]int{
	model.StatusNew:       0,
	model.StatusRead:      1,
	model.StatusApplied:   2,
	model.StatusDismissed: 2,
}

// AdvanceSuggestionStatus moves a suggestion's status forward. Moving
// backward (e.g. read -> new) is silently ignored; statuses never revert.
func AdvanceSuggestionStatus(s Store, userID, suggestionID string, status model.SuggestionStatus) error {
	if _, ok := statusRank[status]; !ok {
		return fmt.Errorf("invalid suggestion status %q", status)
	}
	existing, err := LoadSuggestions(s, userID)
	if err != nil {
		return err
	}
	found := false
	for i := range existing {
		if existing[i].ID != suggestionID {
			continue
		}
		found = true
		if statusRank[status] > statusRank[existing[i].Status] {
			existing[i].Status = status
		}
	}
	if !found {
		return fmt.Errorf("suggestion %s not found", suggestionID)
	}
	return saveJSON(s, userID, KeySuggestions, existing)
}

// LoadGamification returns the stored state, or the starting state for a
// user who has none yet.
func LoadGamification(s Store, userID string) (model.GamificationState, error) {
	g := model.GamificationState{
		Level:      1,
		LevelTitle: "Beginner",
		Badges:     []model.Badge{},
	}
	if _, err := loadJSON(s, userID, KeyGamification, &g); err != nil {
		return model.GamificationState{}, err
	}
	return g, nil
}

func SaveGamification(s Store, userID string, g model.GamificationState) error {
	return saveJSON(s, userID, KeyGamification, g)
}
