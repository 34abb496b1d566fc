package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_store (
  user_id TEXT NOT NULL,
  key TEXT NOT NULL,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(user_id, key)
);
`,
	},
	{
		version: 2,
		name:    "food_database",
		sql: `
CREATE TABLE IF NOT EXISTS foods (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  name_vi TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL,
  calories_100g REAL NOT NULL CHECK(calories_100g >= 0),
  protein_100g REAL NOT NULL CHECK(protein_100g >= 0),
  carbs_100g REAL NOT NULL CHECK(carbs_100g >= 0),
  fat_100g REAL NOT NULL CHECK(fat_100g >= 0),
  common_serving_g REAL NOT NULL DEFAULT 0 CHECK(common_serving_g >= 0),
  is_custom INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_foods_category ON foods(category);
`,
	},
}

type seedFood struct {
	id, name, nameVi, category          string
	calories, protein, carbs, fat, serv float64
}

// Starter foods (per 100g), common Vietnamese staples.
var defaultFoods = []seedFood{
	{"com_trang", "Steamed White Rice", "Cơm trắng", "Cơm & Xôi", 130, 2.7, 28, 0.3, 200},
	{"com_ga", "Chicken Rice", "Cơm gà xé phay", "Cơm & Xôi", 155, 11, 20, 4, 300},
	{"com_chay_gao_lut", "Brown Rice", "Cơm gạo lứt trắng", "Cơm & Xôi", 111, 2.6, 23, 0.9, 200},
	{"pho_bo", "Beef Pho", "Phở bò tái chín", "Phở & Bún & Mì", 93, 5.6, 10.4, 3, 500},
	{"uc_ga_luoc", "Boiled Chicken Breast", "Ức gà luộc", "Thịt & Hải sản", 165, 31, 0, 3.6, 150},
	{"trung_ga_luoc", "Boiled Egg", "Trứng gà luộc", "Trứng & Đậu", 155, 13, 1.1, 11, 50},
	{"ca_hoi", "Salmon Fillet", "Cá hồi áp chảo", "Thịt & Hải sản", 208, 20, 0, 13, 150},
	{"dau_hu", "Tofu", "Đậu hũ trắng", "Trứng & Đậu", 76, 8, 1.9, 4.8, 100},
	{"rau_muong_luoc", "Boiled Water Spinach", "Rau muống luộc", "Rau & Củ", 19, 2.6, 3.1, 0.2, 100},
	{"chuoi", "Banana", "Chuối tiêu", "Trái cây", 89, 1.1, 22.8, 0.3, 100},
	{"sua_chua_khong_duong", "Plain Yogurt", "Sữa chua không đường", "Gym & Meal Prep", 61, 3.5, 4.7, 3.3, 100},
	{"whey_protein", "Whey Protein Powder", "Bột whey protein", "Gym & Meal Prep", 400, 80, 10, 5, 30},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	for _, f := range defaultFoods {
		if _, err := db.Exec(`
INSERT OR IGNORE INTO foods(id, name, name_vi, category, calories_100g, protein_100g, carbs_100g, fat_100g, common_serving_g, is_custom)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
`, f.id, f.name, f.nameVi, f.category, f.calories, f.protein, f.carbs, f.fat, f.serv); err != nil {
			return fmt.Errorf("seed default food %s: %w", f.id, err)
		}
	}

	return nil
}
