package coach_test

import (
	"testing"
	"time"

	"github.com/minhvu/cutcoach/internal/coach"
	"github.com/minhvu/cutcoach/internal/model"
)

var testNow = time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)

func day(daysAgo int) string {
	return testNow.AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func loggedDay(daysAgo int, protein, proteinTarget float64) model.DailyLog {
	return model.DailyLog{
		ID:          day(daysAgo),
		Date:        day(daysAgo),
		DailyTotals: model.MacroSummary{Calories: 2000, Protein: protein},
		Targets:     model.MacroSummary{Calories: 2000, Protein: proteinTarget},
	}
}

func TestUpdateDailyStreakContinues(t *testing.T) {
	t.Parallel()
	g := model.GamificationState{CurrentStreak: 4, LongestStreak: 6, LastLoginDate: day(1)}
	today := loggedDay(0, 120, 120)

	got := coach.UpdateDailyStreak(g, &today, testNow)
	if got.CurrentStreak != 5 {
		t.Fatalf("expected streak 5, got %d", got.CurrentStreak)
	}
	if got.LongestStreak != 6 {
		t.Fatalf("expected longest 6, got %d", got.LongestStreak)
	}
	if got.LastLoginDate != day(0) {
		t.Fatalf("expected last login %s, got %s", day(0), got.LastLoginDate)
	}
}

func TestUpdateDailyStreakIsIdempotentWithinADay(t *testing.T) {
	t.Parallel()
	g := model.GamificationState{CurrentStreak: 4, LongestStreak: 6, LastLoginDate: day(1)}
	today := loggedDay(0, 120, 120)

	once := coach.UpdateDailyStreak(g, &today, testNow)
	twice := coach.UpdateDailyStreak(once, &today, testNow)
	if twice.CurrentStreak != once.CurrentStreak {
		t.Fatalf("second call moved the streak: %d -> %d", once.CurrentStreak, twice.CurrentStreak)
	}
}

func TestUpdateDailyStreakRestartsAfterGap(t *testing.T) {
	t.Parallel()
	g := model.GamificationState{CurrentStreak: 12, LongestStreak: 12, LastLoginDate: day(3)}
	today := loggedDay(0, 120, 120)

	got := coach.UpdateDailyStreak(g, &today, testNow)
	if got.CurrentStreak != 1 {
		t.Fatalf("expected streak to restart at 1, got %d", got.CurrentStreak)
	}
	if got.LongestStreak != 12 {
		t.Fatalf("expected longest streak to survive, got %d", got.LongestStreak)
	}
}

func TestUpdateDailyStreakResetsWhenNothingLogged(t *testing.T) {
	t.Parallel()
	g := model.GamificationState{CurrentStreak: 9, LongestStreak: 9, LastLoginDate: day(1)}

	got := coach.UpdateDailyStreak(g, nil, testNow)
	if got.CurrentStreak != 0 {
		t.Fatalf("expected streak 0, got %d", got.CurrentStreak)
	}

	// An empty shell log counts the same as no log.
	empty := model.DailyLog{Date: day(0)}
	got = coach.UpdateDailyStreak(g, &empty, testNow)
	if got.CurrentStreak != 0 {
		t.Fatalf("expected empty log to reset the streak, got %d", got.CurrentStreak)
	}
}

func TestUpdateDailyStreakPromotesLevels(t *testing.T) {
	t.Parallel()
	today := loggedDay(0, 120, 120)

	g := model.GamificationState{CurrentStreak: 6, LastLoginDate: day(1)}
	got := coach.UpdateDailyStreak(g, &today, testNow)
	if got.Level != 2 || got.LevelTitle != "Cutting Mode" {
		t.Fatalf("expected level 2 at a 7-day streak, got %d %q", got.Level, got.LevelTitle)
	}

	g = model.GamificationState{CurrentStreak: 29, LastLoginDate: day(1)}
	got = coach.UpdateDailyStreak(g, &today, testNow)
	if got.Level != 3 || got.LevelTitle != "Lean Machine" {
		t.Fatalf("expected level 3 at a 30-day streak, got %d %q", got.Level, got.LevelTitle)
	}

	g = model.GamificationState{CurrentStreak: 9, LastLoginDate: day(1)}
	got = coach.UpdateDailyStreak(g, nil, testNow)
	if got.Level != 1 || got.LevelTitle != "Beginner" {
		t.Fatalf("expected a reset to drop back to level 1, got %d %q", got.Level, got.LevelTitle)
	}
}

func TestCheckBadgesAwardsProteinMaster(t *testing.T) {
	t.Parallel()
	logs := make([]model.DailyLog, 0, 7)
	for i := 0; i < 7; i++ {
		// 0.9 compliance is enough.
		logs = append(logs, loggedDay(i, 109, 120))
	}

	g, earned := coach.CheckBadges(model.GamificationState{}, logs, testNow)
	if !earned {
		t.Fatalf("expected the badge to be earned")
	}
	if len(g.Badges) != 1 || g.Badges[0].ID != coach.ProteinBadgeID {
		t.Fatalf("unexpected badges %+v", g.Badges)
	}
	if g.Badges[0].DateEarned != day(0) {
		t.Fatalf("expected badge dated today, got %s", g.Badges[0].DateEarned)
	}
}

func TestCheckBadgesRequiresConsecutiveRun(t *testing.T) {
	t.Parallel()
	logs := make([]model.DailyLog, 0, 7)
	for i := 0; i < 7; i++ {
		protein := 120.0
		if i == 3 {
			protein = 80
		}
		logs = append(logs, loggedDay(i, protein, 120))
	}

	_, earned := coach.CheckBadges(model.GamificationState{}, logs, testNow)
	if earned {
		t.Fatalf("expected a mid-run miss to block the badge")
	}

	// A 7-day run that ended yesterday does not count either.
	stale := make([]model.DailyLog, 0, 7)
	for i := 1; i <= 7; i++ {
		stale = append(stale, loggedDay(i, 120, 120))
	}
	_, earned = coach.CheckBadges(model.GamificationState{}, stale, testNow)
	if earned {
		t.Fatalf("expected the run to have to end today")
	}
}

func TestCheckBadgesNeverReawards(t *testing.T) {
	t.Parallel()
	logs := make([]model.DailyLog, 0, 7)
	for i := 0; i < 7; i++ {
		logs = append(logs, loggedDay(i, 120, 120))
	}
	g := model.GamificationState{Badges: []model.Badge{{ID: coach.ProteinBadgeID}}}

	got, earned := coach.CheckBadges(g, logs, testNow)
	if earned {
		t.Fatalf("expected no re-award")
	}
	if len(got.Badges) != 1 {
		t.Fatalf("expected badge list unchanged, got %d", len(got.Badges))
	}
}
