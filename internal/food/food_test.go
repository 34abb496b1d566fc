package food_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/minhvu/cutcoach/internal/db"
	"github.com/minhvu/cutcoach/internal/food"
	"github.com/minhvu/cutcoach/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
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
	return sqldb
}

func TestSeededFoodsAreQueryable(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	f, err := food.Find(sqldb, "uc_ga_luoc")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if f == nil {
		t.Fatalf("expected the seeded chicken breast to exist")
	}
	if f.Per100g.Calories != 165 || f.Per100g.Protein != 31 {
		t.Fatalf("unexpected seeded facts %+v", f.Per100g)
	}
	if f.NameVi == "" {
		t.Fatalf("expected a Vietnamese name on seeded foods")
	}
}

func TestFoodCRUD(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	id, err := food.Add(sqldb, food.FoodInput{
		Name:     "Oatmeal",
		NameVi:   "Yến mạch",
		Category: "grain",
		Per100g:  model.NutritionFacts{Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a generated id")
	}

	f, err := food.Find(sqldb, id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if f == nil || f.Name != "Oatmeal" {
		t.Fatalf("unexpected food %+v", f)
	}

	if err := food.Update(sqldb, food.FoodInput{
		ID:       id,
		Name:     "Oatmeal",
		NameVi:   "Yến mạch",
		Category: "grain",
		Per100g:  model.NutritionFacts{Calories: 380, Protein: 16.9, Carbs: 66.3, Fat: 6.9},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	f, err = food.Find(sqldb, id)
	if err != nil {
		t.Fatalf("refind: %v", err)
	}
	if f.Per100g.Calories != 380 {
		t.Fatalf("expected updated calories 380, got %.0f", f.Per100g.Calories)
	}

	if err := food.Delete(sqldb, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	f, err = food.Find(sqldb, id)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if f != nil {
		t.Fatalf("expected the food to be gone, got %+v", f)
	}
}

func TestFoodListFilters(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	byCategory, err := food.List(sqldb, food.FoodFilter{Category: "Thịt & Hải sản"})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 seeded meat foods, got %d", len(byCategory))
	}
	for _, f := range byCategory {
		if f.Category != "Thịt & Hải sản" {
			t.Fatalf("category filter leaked %+v", f)
		}
	}

	bySearch, err := food.List(sqldb, food.FoodFilter{Search: "pho"})
	if err != nil {
		t.Fatalf("list by search: %v", err)
	}
	found := false
	for _, f := range bySearch {
		if f.ID == "pho_bo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected pho_bo in search results, got %+v", bySearch)
	}

	limited, err := food.List(sqldb, food.FoodFilter{Limit: 3})
	if err != nil {
		t.Fatalf("list with limit: %v", err)
	}
	if len(limited) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(limited))
	}
}

func TestFoodValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := food.Add(sqldb, food.FoodInput{Category: "grain"}); err == nil {
		t.Fatalf("expected missing name to fail")
	}
	if _, err := food.Add(sqldb, food.FoodInput{Name: "X"}); err == nil {
		t.Fatalf("expected missing category to fail")
	}
	if _, err := food.Add(sqldb, food.FoodInput{
		Name:     "X",
		Category: "grain",
		Per100g:  model.NutritionFacts{Calories: -1},
	}); err == nil {
		t.Fatalf("expected negative facts to fail")
	}
	if err := food.Update(sqldb, food.FoodInput{ID: "missing", Name: "X", Category: "grain"}); err == nil {
		t.Fatalf("expected updating an unknown id to fail")
	}
	if err := food.Delete(sqldb, "missing"); err == nil {
		t.Fatalf("expected deleting an unknown id to fail")
	}
}
