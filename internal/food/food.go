package food

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/minhvu/cutcoach/internal/model"
)

type FoodInput struct {
	ID             string
	Name           string
	NameVi         string
	Category       string
	Per100g        model.NutritionFacts
	CommonServingG float64
}

type FoodFilter struct {
	Category string
	Search   string
	Limit    int
}

// Add inserts a custom food. An empty id gets a generated one; ids are
// normalized to lower case.
func Add(db *sql.DB, in FoodInput) (string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", fmt.Errorf("food name is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return "", fmt.Errorf("food category is required")
	}
	if err := validateFacts(in.Per100g); err != nil {
		return "", err
	}
	id := strings.ToLower(strings.TrimSpace(in.ID))
	if id == "" {
		id = uuid.NewString()
	}

	_, err := db.Exec(`
INSERT INTO foods(id, name, name_vi, category, calories_100g, protein_100g, carbs_100g, fat_100g, common_serving_g, is_custom)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, 1)
`, id, strings.TrimSpace(in.Name), strings.TrimSpace(in.NameVi), strings.TrimSpace(in.Category),
		in.Per100g.Calories, in.Per100g.Protein, in.Per100g.Carbs, in.Per100g.Fat, in.CommonServingG)
	if err != nil {
		return "", fmt.Errorf("add food %q: %w", id, err)
	}
	return id, nil
}

// Find returns the food for an id, or nil when it does not exist.
func Find(db *sql.DB, id string) (*model.Food, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil, fmt.Errorf("food id is required")
	}
	var f model.Food
	err := db.QueryRow(`
SELECT id, name, name_vi, category, calories_100g, protein_100g, carbs_100g, fat_100g, common_serving_g
FROM foods
WHERE id = ?
`, id).Scan(&f.ID, &f.Name, &f.NameVi, &f.Category,
		&f.Per100g.Calories, &f.Per100g.Protein, &f.Per100g.Carbs, &f.Per100g.Fat, &f.CommonServingG)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find food %q: %w", id, err)
	}
	return &f, nil
}

func List(db *sql.DB, filter FoodFilter) ([]model.Food, error) {
	query := `
SELECT id, name, name_vi, category, calories_100g, protein_100g, carbs_100g, fat_100g, common_serving_g
FROM foods
WHERE 1=1`
	args := make([]any, 0)

	if c := strings.TrimSpace(filter.Category); c != "" {
		query += ` AND category = ?`
		args = append(args, c)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		query += ` AND (name LIKE ? OR name_vi LIKE ?)`
		pattern := "%" + s + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY category ASC, name ASC`
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, filter.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	items := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.NameVi, &f.Category,
			&f.Per100g.Calories, &f.Per100g.Protein, &f.Per100g.Carbs, &f.Per100g.Fat, &f.CommonServingG); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return items, nil
}

// Update rewrites a food's facts. Seeded and custom foods can both be
// edited; daily logs are unaffected because item macros are frozen at add
// time.
func Update(db *sql.DB, in FoodInput) error {
	id := strings.ToLower(strings.TrimSpace(in.ID))
	if id == "" {
		return fmt.Errorf("food id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("food name is required")
	}
	if err := validateFacts(in.Per100g); err != nil {
		return err
	}
	res, err := db.Exec(`
UPDATE foods
SET name = ?, name_vi = ?, category = ?, calories_100g = ?, protein_100g = ?, carbs_100g = ?, fat_100g = ?, common_serving_g = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, strings.TrimSpace(in.Name), strings.TrimSpace(in.NameVi), strings.TrimSpace(in.Category),
		in.Per100g.Calories, in.Per100g.Protein, in.Per100g.Carbs, in.Per100g.Fat, in.CommonServingG, id)
	if err != nil {
		return fmt.Errorf("update food %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("food %q not found", id)
	}
	return nil
}

func Delete(db *sql.DB, id string) error {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return fmt.Errorf("food id is required")
	}
	res, err := db.Exec(`DELETE FROM foods WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete food %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("food %q not found", id)
	}
	return nil
}

func validateFacts(f model.NutritionFacts) error {
	if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 {
		return fmt.Errorf("per-100g values must be >= 0")
	}
	return nil
}
