package cutcoach

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/food"
	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/nutrition"
	"github.com/minhvu/cutcoach/internal/service"
	"github.com/minhvu/cutcoach/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage daily meal logs",
}

var (
	logDate  string
	logSlot  string
	logGrams float64
)

var logAddCmd = &cobra.Command{
	Use:   "add <food-id>",
	Short: "Add a food to a meal slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			f, err := food.Find(sqldb, args[0])
			if err != nil {
				return err
			}
			if f == nil {
				return fmt.Errorf("food %q not found", args[0])
			}
			s := store.NewSQLite(sqldb)
			log, err := service.EnsureDailyLog(s, userID, date)
			if err != nil {
				return err
			}
			item, err := service.AddMealItem(log, *f, model.MealSlotID(logSlot), logGrams)
			if err != nil {
				return err
			}
			if err := store.SaveDailyLog(s, userID, *log); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%.0fg) to %s on %s: %d kcal, P %.1fg\n",
				item.Name, item.Grams, logSlot, date, item.Macros.Calories, item.Macros.Protein)
			fmt.Fprintf(cmd.OutOrStdout(), "Item id: %s\n", item.ID)
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item from a meal slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withStore(func(s store.Store) error {
			log, err := store.GetDailyLog(s, userID, date)
			if err != nil {
				return err
			}
			if log == nil {
				return fmt.Errorf("no log for %s", date)
			}
			if err := service.RemoveMealItem(log, model.MealSlotID(logSlot), args[0]); err != nil {
				return err
			}
			if err := store.SaveDailyLog(s, userID, *log); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed item %s from %s on %s\n", args[0], logSlot, date)
			return nil
		})
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the meal log for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withStore(func(s store.Store) error {
			log, err := service.EnsureDailyLog(s, userID, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Log for %s\n", date)
			for _, id := range model.MealSlotIDs {
				slot := log.Meals[id]
				if slot == nil {
					continue
				}
				fmt.Fprintf(out, "\n%s (%d kcal, P %.1fg, C %.1fg, F %.1fg)\n",
					nutrition.SlotName(id), slot.Totals.Calories, slot.Totals.Protein, slot.Totals.Carbs, slot.Totals.Fat)
				for _, it := range slot.Items {
					fmt.Fprintf(out, "  %s\t%s\t%.0fg\t%d kcal\tP %.1f\tC %.1f\tF %.1f\n",
						it.ID, it.Name, it.Grams, it.Macros.Calories, it.Macros.Protein, it.Macros.Carbs, it.Macros.Fat)
				}
			}
			fmt.Fprintf(out, "\nTotal: %d kcal, P %.1fg, C %.1fg, F %.1fg\n",
				log.DailyTotals.Calories, log.DailyTotals.Protein, log.DailyTotals.Carbs, log.DailyTotals.Fat)
			if log.Targets.Calories > 0 {
				fmt.Fprintf(out, "Target: %d kcal, P %.1fg, C %.1fg, F %.1fg\n",
					log.Targets.Calories, log.Targets.Protein, log.Targets.Carbs, log.Targets.Fat)
				fmt.Fprintf(out, "Remaining: %d kcal\n", log.Targets.Calories-log.DailyTotals.Calories)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logRemoveCmd, logShowCmd)

	for _, c := range []*cobra.Command{logAddCmd, logRemoveCmd} {
		c.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (defaults to today)")
		c.Flags().StringVar(&logSlot, "slot", "", "Meal slot: breakfast, lunch, dinner or snack")
		_ = c.MarkFlagRequired("slot")
	}
	logAddCmd.Flags().Float64Var(&logGrams, "grams", 0, "Amount in grams")
	_ = logAddCmd.MarkFlagRequired("grams")

	logShowCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (defaults to today)")
}
