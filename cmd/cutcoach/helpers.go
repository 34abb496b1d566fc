package cutcoach

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/minhvu/cutcoach/internal/app"
	"github.com/minhvu/cutcoach/internal/db"
	"github.com/minhvu/cutcoach/internal/store"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func withStore(run func(store.Store) error) error {
	return withDB(func(sqldb *sql.DB) error {
		return run(store.NewSQLite(sqldb))
	})
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env := os.Getenv("CUTCOACH_DB"); env != "" {
		return env, nil
	}
	return app.DefaultDBPath()
}

// parseDateOrToday reads a YYYY-MM-DD flag, defaulting to today's local date.
func parseDateOrToday(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// optionalPct converts a flag that uses -1 as "unset" into an optional value.
func optionalPct(v float64) *float64 {
	if v < 0 {
		return nil
	}
	return &v
}
