package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/minhvu/cutcoach/internal/db"
	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/store"
)

var testNow = time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)

func day(daysAgo int) string {
	return testNow.AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func newTestStore(t *testing.T) (store.Store, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cutcoach.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	return store.NewSQLite(sqldb), sqldb
}

func floatPtr(v float64) *float64 {
	return &v
}

func saveTestProfile(t *testing.T, s store.Store, userID string) model.UserProfile {
	t.Helper()
	p := model.UserProfile{
		ID:                userID,
		WeightKg:          70,
		HeightCm:          170,
		Age:               25,
		Sex:               model.SexMale,
		ActivityLevel:     model.ActivityModerate,
		Goal:              model.GoalCut,
		BodyFatPercentage: floatPtr(18),
	}
	if err := store.SaveProfile(s, userID, p); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	return p
}
