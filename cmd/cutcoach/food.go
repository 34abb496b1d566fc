package cutcoach

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/food"
	"github.com/minhvu/cutcoach/internal/model"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food database",
}

var (
	foodID       string
	foodName     string
	foodNameVi   string
	foodCategory string
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodServing  float64
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom food (per-100g values)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := food.FoodInput{
			ID:       foodID,
			Name:     foodName,
			NameVi:   foodNameVi,
			Category: foodCategory,
			Per100g: model.NutritionFacts{
				Calories: foodCalories,
				Protein:  foodProtein,
				Carbs:    foodCarbs,
				Fat:      foodFat,
			},
			CommonServingG: foodServing,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := food.Add(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %s\n", id)
			return nil
		})
	},
}

var (
	foodListCategory string
	foodListSearch   string
	foodListLimit    int
)

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := food.FoodFilter{Category: foodListCategory, Search: foodListSearch, Limit: foodListLimit}
		return withDB(func(sqldb *sql.DB) error {
			items, err := food.List(sqldb, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY\tKCAL/100G\tP\tC\tF\tSERVING")
			for _, f := range items {
				name := f.NameVi
				if name == "" {
					name = f.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%.0fg\n",
					f.ID, name, f.Category, f.Per100g.Calories, f.Per100g.Protein, f.Per100g.Carbs, f.Per100g.Fat, f.CommonServingG)
			}
			return nil
		})
	},
}

var foodShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			f, err := food.Find(sqldb, args[0])
			if err != nil {
				return err
			}
			if f == nil {
				return fmt.Errorf("food %q not found", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID: %s\n", f.ID)
			fmt.Fprintf(out, "Name: %s\n", f.Name)
			if f.NameVi != "" {
				fmt.Fprintf(out, "Name (vi): %s\n", f.NameVi)
			}
			fmt.Fprintf(out, "Category: %s\n", f.Category)
			fmt.Fprintf(out, "Per 100g: %.0f kcal, P %.1fg, C %.1fg, F %.1fg\n",
				f.Per100g.Calories, f.Per100g.Protein, f.Per100g.Carbs, f.Per100g.Fat)
			if f.CommonServingG > 0 {
				fmt.Fprintf(out, "Common serving: %.0fg\n", f.CommonServingG)
			}
			return nil
		})
	},
}

var foodUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a food's facts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := food.FoodInput{
			ID:       args[0],
			Name:     foodName,
			NameVi:   foodNameVi,
			Category: foodCategory,
			Per100g: model.NutritionFacts{
				Calories: foodCalories,
				Protein:  foodProtein,
				Carbs:    foodCarbs,
				Fat:      foodFat,
			},
			CommonServingG: foodServing,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := food.Update(sqldb, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated food %s\n", args[0])
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := food.Delete(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %s\n", args[0])
			return nil
		})
	},
}

func addFoodFields(c *cobra.Command) {
	c.Flags().StringVar(&foodName, "name", "", "Food name")
	c.Flags().StringVar(&foodNameVi, "name-vi", "", "Vietnamese name (optional)")
	c.Flags().StringVar(&foodCategory, "category", "", "Category")
	c.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per 100g")
	c.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams per 100g")
	c.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs grams per 100g")
	c.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams per 100g")
	c.Flags().Float64Var(&foodServing, "serving", 0, "Common serving size in grams")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("category")
	_ = c.MarkFlagRequired("calories")
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodShowCmd, foodUpdateCmd, foodDeleteCmd)

	foodAddCmd.Flags().StringVar(&foodID, "id", "", "Food id (generated when empty)")
	addFoodFields(foodAddCmd)
	addFoodFields(foodUpdateCmd)

	foodListCmd.Flags().StringVar(&foodListCategory, "category", "", "Filter by category")
	foodListCmd.Flags().StringVar(&foodListSearch, "search", "", "Search by name")
	foodListCmd.Flags().IntVar(&foodListLimit, "limit", 100, "Result limit")
}
