package cutcoach

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/progress"
	"github.com/minhvu/cutcoach/internal/store"
)

var strengthCmd = &cobra.Command{
	Use:   "strength",
	Short: "Track strength work to watch for muscle loss while cutting",
}

var (
	strengthDate     string
	strengthExercise string
	strengthSets     int
	strengthReps     int
	strengthWeight   float64
)

var strengthAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a strength set",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(strengthDate)
		if err != nil {
			return err
		}
		if strengthWeight <= 0 {
			return fmt.Errorf("--weight must be > 0")
		}
		if strengthSets <= 0 || strengthReps <= 0 {
			return fmt.Errorf("--sets and --reps must be > 0")
		}
		log := model.StrengthLog{
			ID:       uuid.NewString(),
			Date:     date,
			Exercise: strengthExercise,
			Sets:     strengthSets,
			Reps:     strengthReps,
			WeightKg: strengthWeight,
		}
		return withStore(func(s store.Store) error {
			if err := store.AddStrengthLog(s, userID, log); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %dx%d @ %.1f kg on %s\n",
				log.Exercise, log.Sets, log.Reps, log.WeightKg, date)
			return nil
		})
	},
}

var strengthListExercise string

var strengthListCmd = &cobra.Command{
	Use:   "list",
	Short: "List strength logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			logs, err := store.LoadStrengthLogs(s, userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tEXERCISE\tSETS\tREPS\tWEIGHT")
			for _, l := range logs {
				if strengthListExercise != "" && l.Exercise != strengthListExercise {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\t%.1f\n", l.Date, l.Exercise, l.Sets, l.Reps, l.WeightKg)
			}
			return nil
		})
	},
}

var strengthProgressCmd = &cobra.Command{
	Use:   "progress <exercise>",
	Short: "Compare this week's best lift against last week's",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			logs, err := store.LoadStrengthLogs(s, userID)
			if err != nil {
				return err
			}
			thisWeek, lastWeek, change := progress.StrengthChange(logs, args[0], time.Now())
			out := cmd.OutOrStdout()
			if thisWeek == nil && lastWeek == nil {
				fmt.Fprintf(out, "No recent logs for %s\n", args[0])
				return nil
			}
			if thisWeek != nil {
				fmt.Fprintf(out, "This week: %.1f kg\n", *thisWeek)
			}
			if lastWeek != nil {
				fmt.Fprintf(out, "Last week: %.1f kg\n", *lastWeek)
			}
			if change != nil {
				fmt.Fprintf(out, "Change: %+.1f%%\n", *change)
				if *change < 0 {
					fmt.Fprintln(out, "Strength is dropping. Check protein intake and recovery.")
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(strengthCmd)
	strengthCmd.AddCommand(strengthAddCmd, strengthListCmd, strengthProgressCmd)

	strengthAddCmd.Flags().StringVar(&strengthDate, "date", "", "Date YYYY-MM-DD (defaults to today)")
	strengthAddCmd.Flags().StringVar(&strengthExercise, "exercise", "", "Exercise name")
	strengthAddCmd.Flags().IntVar(&strengthSets, "sets", 0, "Number of sets")
	strengthAddCmd.Flags().IntVar(&strengthReps, "reps", 0, "Reps per set")
	strengthAddCmd.Flags().Float64Var(&strengthWeight, "weight", 0, "Working weight in kg")
	_ = strengthAddCmd.MarkFlagRequired("exercise")
	_ = strengthAddCmd.MarkFlagRequired("sets")
	_ = strengthAddCmd.MarkFlagRequired("reps")
	_ = strengthAddCmd.MarkFlagRequired("weight")

	strengthListCmd.Flags().StringVar(&strengthListExercise, "exercise", "", "Filter by exercise")
}
