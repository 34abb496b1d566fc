package coach

import (
	"time"

	"github.com/minhvu/cutcoach/internal/model"
)

// Streak thresholds for level promotion.
const (
	LevelTwoStreak   = 7
	LevelThreeStreak = 30
)

// ProteinBadgeCompliance is the fraction of the day's protein target that
// still counts as a hit for the badge scan.
const ProteinBadgeCompliance = 0.9

// ProteinBadgeID identifies the 7-day protein badge.
const ProteinBadgeID = "protein_master_7"

const dayFormat = "2006-01-02"

// UpdateDailyStreak advances the streak state machine for "now". Calling it
// again on the same day is a no-op, so a reload cannot double-count.
//
// Three transitions: continue (logged yesterday and today), fresh start
// (logged today after any gap), and reset to zero (nothing logged today).
func UpdateDailyStreak(g model.GamificationState, todayLog *model.DailyLog, now time.Time) model.GamificationState {
	today := now.Format(dayFormat)
	if g.LastLoginDate == today {
		return g
	}

	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)
	loggedToday := todayLog != nil && todayLog.DailyTotals.Calories > 0

	switch {
	case g.LastLoginDate == yesterday && loggedToday:
		g.CurrentStreak++
		if g.CurrentStreak > g.LongestStreak {
			g.LongestStreak = g.CurrentStreak
		}
	case loggedToday:
		g.CurrentStreak = 1
	default:
		g.CurrentStreak = 0
	}

	g.LastLoginDate = today
	g.Level, g.LevelTitle = levelForStreak(g.CurrentStreak)
	return g
}

func levelForStreak(streak int) (int, string) {
	switch {
	case streak >= LevelThreeStreak:
		return 3, "Lean Machine"
	case streak >= LevelTwoStreak:
		return 2, "Cutting Mode"
	default:
		return 1, "Beginner"
	}
}

// CheckBadges evaluates badge unlocks against the daily logs. Currently one
// badge exists: protein target hit 7 days in a row ending today. The scan
// walks back from today and stops at the first miss, so the run must be
// consecutive. Already-earned badges are never re-evaluated.
func CheckBadges(g model.GamificationState, logs []model.DailyLog, now time.Time) (model.GamificationState, bool) {
	for _, b := range g.Badges {
		if b.ID == ProteinBadgeID {
			return g, false
		}
	}

	byDate := make(map[string]*model.DailyLog, len(logs))
	for i := range logs {
		byDate[logs[i].Date] = &logs[i]
	}

	run := 0
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, -i).Format(dayFormat)
		log, ok := byDate[date]
		if !ok || log.DailyTotals.Protein < log.Targets.Protein*ProteinBadgeCompliance {
			break
		}
		run++
	}
	if run < 7 {
		return g, false
	}

	g.Badges = append(g.Badges, model.Badge{
		ID:          ProteinBadgeID,
		Name:        "Protein Master",
		Description: "Hit your protein target 7 days in a row.",
		Icon:        "🥩",
		DateEarned:  now.Format(dayFormat),
	})
	return g, true
}
